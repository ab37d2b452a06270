package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveLogicalOpsRewritesImplication(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	result := removeLogicalOps(NewImplication(a, b))
	expected := mustOr([]Node{NewNot(a), b})
	assert.True(t, result.Equal(expected))
}

func TestRemoveLogicalOpsRewritesEquivalence(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	result := removeLogicalOps(NewEquivalence(a, b))
	expected := mustAnd([]Node{
		mustOr([]Node{NewNot(a), b}),
		mustOr([]Node{NewNot(b), a}),
	})
	assert.True(t, result.Equal(expected))
}

func TestNarrowNegationDeMorgan(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	and := mustAnd([]Node{a, b})
	result := narrowNegation(NewNot(and))
	expected := mustOr([]Node{NewNot(a), NewNot(b)})
	assert.True(t, result.Equal(expected))
}

func TestNarrowNegationDoubleNegationElimination(t *testing.T) {
	a := NewVariable("a")
	result := narrowNegation(NewNot(NewNot(a)))
	assert.True(t, result.Equal(a))
}

func TestNarrowNegationQuantifierDuals(t *testing.T) {
	x := NewVariable("x")
	body := NewCustom("p", []Node{x})
	forall, err := NewForall(x, body)
	require.NoError(t, err)

	result := narrowNegation(NewNot(forall))
	exists, ok := result.(*Exists)
	require.True(t, ok)
	assert.Equal(t, "x", exists.Var.Name)
	assert.True(t, exists.Body.Equal(NewNot(body)))
}

func TestStandardizeVarNamesRenamesShadowedQuantifier(t *testing.T) {
	x := NewVariable("x")
	inner, err := NewForall(x, NewCustom("q", []Node{x}))
	require.NoError(t, err)
	outer, err := NewForall(x, mustAnd([]Node{NewCustom("p", []Node{x}), inner}))
	require.NoError(t, err)

	nursery := NewSymbolNursery()
	result := standardizeVarNames(outer, nursery, map[string]bool{})

	outerFa := result.(*Forall)
	assert.Equal(t, "x", outerFa.Var.Name)
	and := outerFa.Body.(*And)
	innerFa := and.Operands[1].(*Forall)
	assert.NotEqual(t, "x", innerFa.Var.Name)
}

func TestSkolemizeNoUniversalsInScopeMintsConstant(t *testing.T) {
	x := NewVariable("x")
	ex, err := NewExists(x, NewCustom("p", []Node{x}))
	require.NoError(t, err)

	nursery := NewSymbolNursery()
	result := skolemize(ex, nursery, nil)

	custom, ok := result.(*Custom)
	require.True(t, ok)
	_, ok = custom.Args[0].(*SkolemConstant)
	assert.True(t, ok)
}

func TestSkolemizeUnderUniversalMintsFunction(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	body, err := NewExists(y, NewCustom("loves", []Node{x, y}))
	require.NoError(t, err)
	forall, err := NewForall(x, body)
	require.NoError(t, err)

	nursery := NewSymbolNursery()
	result := skolemize(forall, nursery, nil)

	fa := result.(*Forall)
	custom := fa.Body.(*Custom)
	sf, ok := custom.Args[1].(*SkolemFunction)
	require.True(t, ok)
	require.Len(t, sf.Args, 1)
	assert.True(t, sf.Args[0].Equal(x))
}

func TestRemoveForallsDropsQuantifier(t *testing.T) {
	x := NewVariable("x")
	body := NewCustom("p", []Node{x})
	fa, err := NewForall(x, body)
	require.NoError(t, err)

	result := removeForalls(fa)
	assert.True(t, result.Equal(body))
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	c := NewVariable("c")
	formula := mustOr([]Node{a, mustAnd([]Node{b, c})})

	result := toCNF(formula)
	and, ok := result.(*And)
	require.True(t, ok)
	require.Len(t, and.Operands, 2)
	for _, clause := range and.Operands {
		or, ok := clause.(*Or)
		require.True(t, ok)
		assert.Len(t, or.Operands, 2)
	}
}

func TestRemoveRedundancyDropsContradiction(t *testing.T) {
	a := NewVariable("a")
	and := mustAnd([]Node{a, NewNot(a)})
	result := removeRedundancy(and)
	assert.True(t, IsFalse(result))
}

func TestRemoveRedundancyDedupesOperands(t *testing.T) {
	a := NewVariable("a")
	or := mustOr([]Node{a, a})
	result := removeRedundancy(or)
	assert.True(t, result.Equal(a))
}

func TestBreakToClausesFlattensConjunction(t *testing.T) {
	a := NewVariable("a")
	b := NewVariable("b")
	c := NewVariable("c")
	formula := mustAnd([]Node{a, mustAnd([]Node{b, c})})

	clauses := breakToClauses(formula)
	require.Len(t, clauses, 3)
}

func TestCanonicalizeDropsTrueAndDedupes(t *testing.T) {
	a := NewVariable("a")
	clauses := []Node{ConstantTrue, a, a}
	result := Canonicalize(clauses)
	require.Len(t, result, 1)
	assert.True(t, result[0].Equal(a))
}

func TestPipelineRunProducesClausesForPropositionalTautology(t *testing.T) {
	// a => a, proved by refutation: lhs=a, negRHS=not(a); clauses should
	// include both "a" and "not(a)", which resolve to the empty clause.
	a := NewVariable("a")
	nursery := NewSymbolNursery()
	pipeline := NewPipeline(nursery)

	clauses := pipeline.Run(a, NewNot(a))
	require.Len(t, pipeline.Steps, 7)
	require.Len(t, clauses, 2)

	step, ok := TryOneResolution(clauses[0], clauses[1])
	require.True(t, ok)
	assert.Nil(t, step.Result)
}
