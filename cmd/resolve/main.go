// Command resolve is a command-line front end for the resolution prover: it
// reads one formula (from an argument or the first line of stdin), parses it
// with pkg/syntax, and reports whether
// pkg/logic's resolution search proves it.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := &cli.CLI{
		Name:     "resolve",
		Version:  version,
		Args:     args,
		Commands: Commands(),
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}
