package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/arrowctl/resolve/pkg/logic"
	"github.com/arrowctl/resolve/pkg/syntax"
)

const (
	exitProved   = 0
	exitUnproved = 5
	exitError    = 1
)

// ProveCommand parses one formula and runs it through the resolution
// prover, printing the normalization trace and resolution steps.
type ProveCommand struct{}

func (c *ProveCommand) Synopsis() string {
	return "Prove a formula by resolution"
}

func (c *ProveCommand) Help() string {
	return strings.TrimSpace(`
Usage: resolve prove [options] [formula]

  Reads a formula from the argument or, if omitted, from the first line
  of stdin, and attempts to prove it by resolution refutation.

Options:

  -v            Verbose: print transformation steps, initial clauses and resolution steps
  -no-color     Disable ANSI colors
  -max-steps=N  Abort after N resolution steps without a verdict (0 = unlimited)
  -timeout=D    Abort after duration D (e.g. "5s"); 0 disables
`)
}

func (c *ProveCommand) Run(args []string) int {
	fs := flag.NewFlagSet("prove", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose")
	noColor := fs.Bool("no-color", false, "disable color output")
	maxSteps := fs.Int("max-steps", 0, "abort after N resolution steps")
	timeout := fs.Duration("timeout", 0, "abort after duration")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	meta := newMeta(*verbose, *noColor)
	if *noColor {
		color.NoColor = true
	}

	formula, err := readFormula(fs.Args(), os.Stdin)
	if err != nil {
		meta.Logger.Error("failed to read formula", "error", err)
		meta.Ui.Error(fmt.Sprintf("error: %v", err))
		return exitError
	}

	seq, err := syntax.Parse(formula)
	if err != nil {
		meta.Logger.Error("failed to parse formula", "error", err)
		meta.Ui.Error(fmt.Sprintf("parse error: %v", err))
		return exitError
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	prover := logic.NewProver()
	prover.MaxSteps = *maxSteps

	result, err := prover.Prove(ctx, seq)
	if err != nil {
		meta.Logger.Error("prover aborted", "error", err)
		meta.Ui.Error(fmt.Sprintf("aborted: %v", err))
		return exitError
	}

	if *verbose {
		c.printTrace(meta, result)
	}

	switch result.Verdict {
	case logic.Proved:
		meta.Ui.Output(color.GreenString("PROVED"))
		return exitProved
	default:
		meta.Ui.Output(color.YellowString("UNPROVED"))
		for _, clause := range result.ResidualClauses {
			meta.Ui.Output(fmt.Sprintf("  %s", clause.String()))
		}
		return exitUnproved
	}
}

func (c *ProveCommand) printTrace(meta Meta, result *logic.Result) {
	meta.Ui.Info(color.CyanString("-- transformations --"))
	for _, step := range result.Transformations {
		meta.Ui.Output(fmt.Sprintf("%s: %s ; %s", step.Label, step.LHS.String(), step.NegRHS.String()))
	}
	meta.Ui.Info(color.CyanString("-- initial clauses --"))
	for _, clause := range result.InitialClauses {
		meta.Ui.Output(clause.String())
	}
	meta.Ui.Info(color.CyanString("-- resolution --"))
	for _, step := range result.ResolutionSteps {
		meta.Ui.Output(step.Diagram())
	}
}

func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return scanner.Text(), nil
}
