package logic

// TransformChildren applies f to each child of n and rebuilds n from the
// results, leaving n itself untouched (f is not applied to n). This is the
// generic single-level rewrite helper every normalization pass is built on.
func TransformChildren(n Node, f func(Node) Node) Node {
	children := n.Children()
	for i, c := range children {
		n = n.ReplaceChild(i, f(c))
	}
	return n
}

// RecursivelyTransformChildren applies f to n first, then recurses into the
// result's children, applying the same top-down rewrite at every level, so
// an entire formula tree is rewritten in one call. SubstituteEverywhere is
// built on it; the normalization passes recurse through TransformChildren
// instead.
func RecursivelyTransformChildren(n Node, f func(Node) Node) Node {
	n = f(n)
	children := n.Children()
	for i, c := range children {
		n = n.ReplaceChild(i, RecursivelyTransformChildren(c, f))
	}
	return n
}

// SubstituteFree replaces every free occurrence of var in formula with term.
// Recursion stops at a Forall/Exists whose bound variable equals var, since
// occurrences inside are bound there, not free; every other node recurses
// structurally. Atoms other than the target Variable are returned unchanged.
func SubstituteFree(formula Node, v *Variable, term Node) Node {
	switch f := formula.(type) {
	case *Variable:
		if f.Name == v.Name {
			return term
		}
		return f
	case *Constant, *SkolemConstant:
		return formula
	case *Forall:
		if f.Var.Name == v.Name {
			return f
		}
		return &Forall{Var: f.Var, Body: SubstituteFree(f.Body, v, term)}
	case *Exists:
		if f.Var.Name == v.Name {
			return f
		}
		return &Exists{Var: f.Var, Body: SubstituteFree(f.Body, v, term)}
	default:
		return TransformChildren(formula, func(c Node) Node {
			return SubstituteFree(c, v, term)
		})
	}
}

// SubstituteEverywhere replaces every structurally-equal occurrence of old
// with new, with no binding awareness. It is only sound to call this once
// quantifiers are gone (post-Skolemization, post-universal-elimination),
// which is exactly where unification's MGU application uses it.
func SubstituteEverywhere(formula Node, old, new Node) Node {
	return RecursivelyTransformChildren(formula, func(n Node) Node {
		if n.Equal(old) {
			return new
		}
		return n
	})
}
