package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arrowctl/resolve/pkg/syntax"
)

// ParseCommand parses a formula and prints its Sequent structure, without
// running the prover. Useful for checking grammar acceptance in isolation.
type ParseCommand struct{}

func (c *ParseCommand) Synopsis() string {
	return "Parse a formula and print its structure"
}

func (c *ParseCommand) Help() string {
	return strings.TrimSpace(`
Usage: resolve parse [formula]

  Reads a formula from the argument or, if omitted, from the first line
  of stdin, and prints the parsed Sequent.
`)
}

func (c *ParseCommand) Run(args []string) int {
	meta := newMeta(false, false)

	formula, err := readFormula(args, os.Stdin)
	if err != nil {
		meta.Ui.Error(fmt.Sprintf("error: %v", err))
		return exitError
	}

	seq, err := syntax.Parse(formula)
	if err != nil {
		meta.Ui.Error(fmt.Sprintf("parse error: %v", err))
		return exitError
	}

	meta.Ui.Output(seq.String())
	return 0
}
