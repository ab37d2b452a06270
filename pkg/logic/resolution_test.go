package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryOneResolutionGroundComplementaryLiterals(t *testing.T) {
	man := NewCustom("man", []Node{NewConstant("socrates")})
	mortal := NewCustom("mortal", []Node{NewConstant("socrates")})

	a := mustOr([]Node{NewNot(man), mortal})
	b := man

	step, ok := TryOneResolution(a, b)
	require.True(t, ok)
	assert.True(t, step.Result.Equal(mortal))
}

func TestTryOneResolutionUnifiesBeforeResolving(t *testing.T) {
	x := NewVariable("x")
	man := NewCustom("man", []Node{x})
	mortal := NewCustom("mortal", []Node{x})
	socrates := NewConstant("socrates")
	mortalSocrates := NewCustom("mortal", []Node{socrates})

	a := mustOr([]Node{NewNot(man), mortal}) // forall x. man(x) -> mortal(x)
	b := NewCustom("man", []Node{socrates})  // man(socrates)

	step, ok := TryOneResolution(a, b)
	require.True(t, ok)
	assert.True(t, step.Result.Equal(mortalSocrates))
}

func TestTryOneResolutionNoComplementaryPair(t *testing.T) {
	a := NewCustom("man", []Node{NewConstant("socrates")})
	b := NewCustom("bird", []Node{NewConstant("tweety")})
	_, ok := TryOneResolution(a, b)
	assert.False(t, ok)
}

func TestClauseSetDeduplicates(t *testing.T) {
	a := NewVariable("a")
	set := NewClauseSet([]Node{a, a})
	assert.Len(t, set.Clauses, 1)
	assert.False(t, set.Add(a))
	assert.True(t, set.Contains(a))
}

func TestSaturateFindsEmptyClause(t *testing.T) {
	a := NewVariable("a")
	steps, residual, proved, err := Saturate(context.Background(), []Node{a, NewNot(a)}, 0)
	require.NoError(t, err)
	assert.True(t, proved)
	assert.NotEmpty(t, steps)
	assert.Empty(t, residual)
}

func TestSaturateReportsUnprovedWhenNoResolventsExist(t *testing.T) {
	p := NewCustom("p", nil)
	q := NewCustom("q", nil)
	_, residual, proved, err := Saturate(context.Background(), []Node{p, q}, 0)
	require.NoError(t, err)
	assert.False(t, proved)
	assert.ElementsMatch(t, residual, []Node{p, q})
}

func TestSaturateRespectsStepCeiling(t *testing.T) {
	// P, not(Q), (Q or not(P)): proving the empty clause takes two chained
	// resolution steps (P resolves against the clause to give Q, then Q
	// resolves against not(Q)); a ceiling of 1 must abort after the first.
	p := NewCustom("P", nil)
	q := NewCustom("Q", nil)
	clause := mustOr([]Node{q, NewNot(p)})
	steps, _, _, err := Saturate(context.Background(), []Node{p, NewNot(q), clause}, 1)
	require.Error(t, err)
	var aborted *AbortedError
	assert.ErrorAs(t, err, &aborted)
	assert.Len(t, steps, 1)
}

func TestSaturateRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := NewVariable("a")
	_, _, _, err := Saturate(ctx, []Node{a, NewNot(a)}, 0)
	require.Error(t, err)
	var aborted *AbortedError
	assert.ErrorAs(t, err, &aborted)
}
