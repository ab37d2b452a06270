package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProve_PropositionalTautology(t *testing.T) {
	// P -> (Q -> R) => (P and Q) -> R
	p := NewCustom("P", nil)
	q := NewCustom("Q", nil)
	r := NewCustom("R", nil)
	lhs := NewImplication(p, NewImplication(q, r))
	rhs := NewImplication(mustAnd([]Node{p, q}), r)
	seq := NewSequent([]Node{lhs}, []Node{rhs})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Proved, result.Verdict)
	assert.NotEmpty(t, result.Transformations)
	require.NotEmpty(t, result.ResolutionSteps)
	assert.Nil(t, result.ResolutionSteps[len(result.ResolutionSteps)-1].Result)
}

func TestProve_Identity(t *testing.T) {
	// x => x
	x := NewVariable("x")
	seq := NewSequent([]Node{x}, []Node{x})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Proved, result.Verdict)
	assert.Len(t, result.ResolutionSteps, 1)
}

func TestProve_Duplication(t *testing.T) {
	// x or y => x or y
	x := NewVariable("x")
	y := NewVariable("y")
	clause := mustOr([]Node{x, y})
	seq := NewSequent([]Node{clause}, []Node{clause})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Proved, result.Verdict)
	assert.LessOrEqual(t, len(result.ResolutionSteps), 2)
}

func TestProve_SmithIsAKiller(t *testing.T) {
	// M -> (K xor L), not(K) -> (M and N), N -> (K xor L) => K
	m := NewCustom("M", nil)
	k := NewCustom("K", nil)
	l := NewCustom("L", nil)
	n := NewCustom("N", nil)

	premise1 := NewImplication(m, NewXor(k, l))
	premise2 := NewImplication(NewNot(k), mustAnd([]Node{m, n}))
	premise3 := NewImplication(n, NewXor(k, l))

	seq := NewSequent([]Node{premise1, premise2, premise3}, []Node{k})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Unproved, result.Verdict)

	foundL := false
	for _, clause := range result.ResidualClauses {
		for _, lit := range literals(clause) {
			atom, _ := atom(lit)
			if custom, ok := atom.(*Custom); ok && custom.Name == "L" {
				foundL = true
			}
		}
	}
	assert.True(t, foundL, "residual clauses should contain L or not(L), got %v", result.ResidualClauses)
}

func TestProve_UniversalConclusion(t *testing.T) {
	// x => forall y. y
	x := NewVariable("x")
	y := NewVariable("y")
	conclusion, err := NewForall(y, y)
	require.NoError(t, err)

	seq := NewSequent([]Node{x}, []Node{conclusion})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Proved, result.Verdict)
	assert.Len(t, result.ResolutionSteps, 1)
}

func TestProve_SkolemFunctionCase(t *testing.T) {
	// Forall x Exists y P(x, y) => P(a, f0(a))
	x := NewVariable("x")
	y := NewVariable("y")
	a := NewConstant("a")
	p := func(arg1, arg2 Node) Node { return NewCustom("P", []Node{arg1, arg2}) }

	innerExists, err := NewExists(y, p(x, y))
	require.NoError(t, err)
	premise, err := NewForall(x, innerExists)
	require.NoError(t, err)

	conclusion := p(a, NewCustom("f0", []Node{a}))

	seq := NewSequent([]Node{premise}, []Node{conclusion})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Proved, result.Verdict)
	assert.NotEmpty(t, result.ResolutionSteps)
}

func TestProve_UnprovedSaturates(t *testing.T) {
	p := NewCustom("p", nil)
	q := NewCustom("q", nil)
	seq := NewSequent([]Node{p}, []Node{q})

	prover := NewProver()
	result, err := prover.Prove(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, Unproved, result.Verdict)
}

func TestProve_AbortsOnStepCeiling(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	seq := NewSequent([]Node{a, b}, []Node{mustAnd([]Node{a, b})})

	prover := NewProver()
	prover.MaxSteps = 1
	_, err := prover.Prove(context.Background(), seq)
	require.Error(t, err)
	var aborted *AbortedError
	assert.ErrorAs(t, err, &aborted)
}
