package logic

// Binding is one step of a substitution: "replace every occurrence of Dest
// with Source". Dest is always the variable/Skolem-constant/Skolem-function
// side, Source the term it was bound to.
type Binding struct {
	Source Node
	Dest   Node
}

// Substitution is an ordered list of Bindings. It is a list rather than a
// map so that MGU application order is deterministic.
type Substitution []Binding

// Apply replaces every occurrence of each binding's Dest with its Source,
// in order, using SubstituteEverywhere (sound once quantifiers are gone,
// which normalization guarantees by the time unification runs).
func (s Substitution) Apply(n Node) Node {
	for _, b := range s {
		n = SubstituteEverywhere(n, b.Dest, b.Source)
	}
	return n
}

// Unify computes a most-general unifier of a and b, restricted to the
// symbols this system recognizes. Rules are tried in the order given in
// the rules below; the first applicable rule wins.
func Unify(a, b Node) (Substitution, bool) {
	// 1. Already identical.
	if a.Equal(b) {
		return nil, true
	}

	// 1b. Both sides are distinct Variables -> bind one to the other. Two
	// clauses standardized apart never share a variable name, so two
	// Variable nodes reaching this point are always distinct; picking a
	// deterministic direction keeps traces reproducible.
	if av, ok := a.(*Variable); ok {
		if bv, ok := b.(*Variable); ok {
			if av.Name < bv.Name {
				return Substitution{{Source: a, Dest: b}}, true
			}
			return Substitution{{Source: b, Dest: a}}, true
		}
	}

	// 2. a is Constant, b is Variable -> bind b <- a.
	if _, ok := a.(*Constant); ok {
		if _, ok := b.(*Variable); ok {
			return Substitution{{Source: a, Dest: b}}, true
		}
	}

	// 3. a is Constant or Variable, b is SkolemConstant -> bind b <- a.
	if isConstantOrVariable(a) {
		if _, ok := b.(*SkolemConstant); ok {
			return Substitution{{Source: a, Dest: b}}, true
		}
	}

	// 4. b is a SkolemFunction (any arity) -> bind b <- a, occurs-checked.
	if sf, ok := b.(*SkolemFunction); ok {
		if occurs(sf, a) {
			return nil, false
		}
		return Substitution{{Source: a, Dest: b}}, true
	}

	// 5. Symmetric of 2-4 with sides swapped.
	if _, ok := b.(*Constant); ok {
		if _, ok := a.(*Variable); ok {
			return Substitution{{Source: b, Dest: a}}, true
		}
	}
	if isConstantOrVariable(b) {
		if _, ok := a.(*SkolemConstant); ok {
			return Substitution{{Source: b, Dest: a}}, true
		}
	}
	if sf, ok := a.(*SkolemFunction); ok {
		if occurs(sf, b) {
			return nil, false
		}
		return Substitution{{Source: b, Dest: a}}, true
	}

	// 6. Same outer symbol, same arity -> unify children pairwise, threading
	// each child's bindings into the remaining children before recursing.
	// Without threading, a binding made on an earlier argument (e.g. x <-
	// a) never reaches an occurrence of x buried inside a later argument's
	// own Skolem-function term, so two structurally-equivalent ground terms
	// built from opposite sides of the same variable never compare equal.
	if sameHead(a, b) {
		aChildren, bChildren := a.Children(), b.Children()
		var sub Substitution
		for i := range aChildren {
			s, ok := Unify(sub.Apply(aChildren[i]), sub.Apply(bChildren[i]))
			if !ok {
				return nil, false
			}
			sub = composeSubstitutions(sub, s)
		}
		return sub, true
	}

	// 7. Otherwise, fail.
	return nil, false
}

// composeSubstitutions returns the substitution equivalent to applying base
// first and then next: next is applied to base's own Source terms (so a
// later binding can resolve a variable a prior binding introduced), and
// next's bindings are appended after.
func composeSubstitutions(base, next Substitution) Substitution {
	composed := make(Substitution, 0, len(base)+len(next))
	for _, b := range base {
		composed = append(composed, Binding{Source: next.Apply(b.Source), Dest: b.Dest})
	}
	composed = append(composed, next...)
	return composed
}

func isConstantOrVariable(n Node) bool {
	switch n.(type) {
	case *Constant, *Variable:
		return true
	default:
		return false
	}
}

func sameHead(a, b Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Custom:
		bv := b.(*Custom)
		return av.Name == bv.Name && len(av.Args) == len(bv.Args)
	case *SkolemFunction:
		bv := b.(*SkolemFunction)
		return av.ID == bv.ID && len(av.Args) == len(bv.Args)
	case *Equals:
		return true
	default:
		return false
	}
}

// occurs reports whether needle appears anywhere within haystack's
// structure (including haystack itself). It is the occurs-check that
// guards Skolem-function bindings from producing infinite terms.
func occurs(needle, haystack Node) bool {
	if needle.Equal(haystack) {
		return true
	}
	for _, c := range haystack.Children() {
		if occurs(needle, c) {
			return true
		}
	}
	return false
}

// literals returns clause's disjuncts: an Or's operands, or the single
// literal itself if clause is not an Or.
func literals(clause Node) []Node {
	if or, ok := clause.(*Or); ok {
		return or.Operands
	}
	return []Node{clause}
}

// fromLiterals rebuilds a clause from a literal list: the empty clause
// (nil) when empty, the bare literal when singleton, an Or otherwise.
func fromLiterals(lits []Node) Node {
	switch len(lits) {
	case 0:
		return nil
	case 1:
		return lits[0]
	default:
		return mustOr(lits)
	}
}

// atom strips a leading Not, returning the underlying atomic formula and
// whether the literal was negated.
func atom(literal Node) (Node, bool) {
	if n, ok := literal.(*Not); ok {
		return n.Operand, true
	}
	return literal, false
}

// AreComplementary looks for a literal in a and a literal in b that are
// complementary (one is the negation of the other, structurally) once
// substitution has already been applied by the caller. On success it
// returns the residual clause formed by unioning the two clauses' literals
// minus the complementary pair (nil when nothing remains, i.e. the empty
// clause was derived).
func AreComplementary(a, b Node) (Node, bool) {
	aLits := literals(a)
	bLits := literals(b)
	for i, li := range aLits {
		liAtom, liNeg := atom(li)
		for j, lj := range bLits {
			ljAtom, ljNeg := atom(lj)
			if liNeg == ljNeg {
				continue
			}
			if !liAtom.Equal(ljAtom) {
				continue
			}
			residual := make([]Node, 0, len(aLits)+len(bLits)-2)
			for k, l := range aLits {
				if k != i {
					residual = append(residual, l)
				}
			}
			for k, l := range bLits {
				if k != j {
					residual = append(residual, l)
				}
			}
			return fromLiterals(dedupeNodes(residual)), true
		}
	}
	return nil, false
}
