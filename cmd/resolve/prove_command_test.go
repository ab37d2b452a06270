package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProveCommandExitsZeroWhenProved(t *testing.T) {
	cmd := &ProveCommand{}
	code := cmd.Run([]string{"-no-color", "p_man('socrates') => p_man('socrates')"})
	assert.Equal(t, exitProved, code)
}

func TestProveCommandExitsFiveWhenUnproved(t *testing.T) {
	cmd := &ProveCommand{}
	code := cmd.Run([]string{"-no-color", "p_p('a') => p_q('a')"})
	assert.Equal(t, exitUnproved, code)
}

func TestProveCommandExitsOneOnParseError(t *testing.T) {
	cmd := &ProveCommand{}
	code := cmd.Run([]string{"-no-color", ")"})
	assert.Equal(t, exitError, code)
}

func TestProveCommandRespectsMaxSteps(t *testing.T) {
	cmd := &ProveCommand{}
	code := cmd.Run([]string{"-no-color", "-max-steps=0", "p_man('socrates') => p_man('socrates')"})
	assert.Equal(t, exitProved, code)
}

func TestRunReportsSynopsisAndHelp(t *testing.T) {
	cmd := &ProveCommand{}
	assert.NotEmpty(t, cmd.Synopsis())
	assert.Contains(t, cmd.Help(), "resolve prove")
}
