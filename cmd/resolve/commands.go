package main

import (
	"io"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

// Meta holds the state shared by every subcommand: where to write output
// and how to log.
type Meta struct {
	Ui     cli.Ui
	Logger hclog.Logger
}

func newMeta(verbose, noColor bool) Meta {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:            "resolve",
		Level:           level,
		Output:          os.Stderr,
		Color:           colorOption(noColor),
		DisableTime:     true,
		ColorHeaderOnly: true,
	})
	return Meta{
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
			Reader:      os.Stdin,
		},
		Logger: logger,
	}
}

func colorOption(noColor bool) hclog.ColorOption {
	if noColor {
		return hclog.ColorOff
	}
	return hclog.AutoColor
}

// Commands returns the CLI's command table. Each factory defers flag
// parsing and Meta construction to Run, since -v/-no-color are per-command
// flags rather than global ones in the hashicorp/cli convention.
func Commands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"prove": func() (cli.Command, error) {
			return &ProveCommand{}, nil
		},
		"parse": func() (cli.Command, error) {
			return &ParseCommand{}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{}, nil
		},
	}
}

// readFormula returns argv[0] if present, else the first line of stdin.
func readFormula(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return readLine(stdin)
}
