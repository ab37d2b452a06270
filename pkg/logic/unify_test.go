package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyIdenticalTerms(t *testing.T) {
	a := NewConstant("socrates")
	sub, ok := Unify(a, NewConstant("socrates"))
	require.True(t, ok)
	assert.Empty(t, sub)
}

func TestUnifyConstantWithVariable(t *testing.T) {
	c := NewConstant("socrates")
	v := NewVariable("x")
	sub, ok := Unify(c, v)
	require.True(t, ok)
	require.Len(t, sub, 1)
	assert.True(t, sub[0].Source.Equal(c))
	assert.True(t, sub[0].Dest.Equal(v))

	// Symmetric: variable first, constant second.
	sub2, ok := Unify(v, c)
	require.True(t, ok)
	require.Len(t, sub2, 1)
	assert.True(t, sub2[0].Dest.Equal(v))
}

func TestUnifyConstantOrVariableWithSkolemConstant(t *testing.T) {
	sc := &SkolemConstant{ID: 0}
	c := NewConstant(42)
	sub, ok := Unify(c, sc)
	require.True(t, ok)
	require.Len(t, sub, 1)
	assert.True(t, sub[0].Dest.Equal(sc))

	v := NewVariable("x")
	sub2, ok := Unify(sc, v)
	require.True(t, ok)
	assert.True(t, sub2[0].Dest.Equal(sc))
	assert.True(t, sub2[0].Source.Equal(v))
}

func TestUnifySkolemFunctionBindsWholeTerm(t *testing.T) {
	x := NewVariable("x")
	f := &SkolemFunction{ID: 0, Args: []Node{x}}
	c := NewConstant("a")

	sub, ok := Unify(c, f)
	require.True(t, ok)
	require.Len(t, sub, 1)
	assert.True(t, sub[0].Dest.Equal(f))
	assert.True(t, sub[0].Source.Equal(c))
}

func TestUnifyOccursCheckRejectsInfiniteTerm(t *testing.T) {
	x := NewVariable("x")
	f := &SkolemFunction{ID: 0, Args: []Node{x}}

	// f(x) cannot unify with a term containing f(x) itself.
	wrapped := NewCustom("p", []Node{f})
	_, ok := Unify(wrapped, f)
	assert.False(t, ok)
}

func TestUnifySameHeadRecursesIntoChildren(t *testing.T) {
	a := NewCustom("loves", []Node{NewConstant("john"), NewVariable("y")})
	b := NewCustom("loves", []Node{NewConstant("john"), NewConstant("mary")})

	sub, ok := Unify(a, b)
	require.True(t, ok)
	require.Len(t, sub, 1)
	assert.True(t, sub[0].Source.Equal(NewConstant("mary")))
	assert.True(t, sub[0].Dest.Equal(NewVariable("y")))
}

func TestUnifyDifferentSymbolsFail(t *testing.T) {
	a := NewCustom("man", []Node{NewConstant("socrates")})
	b := NewCustom("mortal", []Node{NewConstant("socrates")})
	_, ok := Unify(a, b)
	assert.False(t, ok)
}

func TestUnifyDifferentAritiesFail(t *testing.T) {
	a := NewCustom("p", []Node{NewConstant(1)})
	b := NewCustom("p", []Node{NewConstant(1), NewConstant(2)})
	_, ok := Unify(a, b)
	assert.False(t, ok)
}

func TestSubstitutionApply(t *testing.T) {
	x := NewVariable("x")
	formula := NewCustom("man", []Node{x})
	sub := Substitution{{Source: NewConstant("socrates"), Dest: x}}

	result := sub.Apply(formula)
	expected := NewCustom("man", []Node{NewConstant("socrates")})
	assert.True(t, result.Equal(expected))
}

func TestAreComplementaryFindsOppositePolarityLiterals(t *testing.T) {
	man := NewCustom("man", []Node{NewConstant("socrates")})
	mortal := NewCustom("mortal", []Node{NewConstant("socrates")})

	a := mustOr([]Node{NewNot(man), mortal}) // ¬man(socrates) ∨ mortal(socrates)
	b := man                                 // man(socrates)

	residual, ok := AreComplementary(a, b)
	require.True(t, ok)
	assert.True(t, residual.Equal(mortal))
}

func TestAreComplementaryDerivesEmptyClause(t *testing.T) {
	p := NewCustom("p", nil)
	a := p
	b := NewNot(p)

	residual, ok := AreComplementary(a, b)
	require.True(t, ok)
	assert.Nil(t, residual)
}

func TestAreComplementaryNoMatch(t *testing.T) {
	a := NewCustom("p", nil)
	b := NewCustom("q", nil)
	_, ok := AreComplementary(a, b)
	assert.False(t, ok)
}
