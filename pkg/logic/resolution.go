package logic

import (
	"context"
	"fmt"
)

// ResolutionStep records one successful resolution: the two clauses it fired
// on, the unifier that made their complementary literals identical, and the
// resolvent. Result is nil when the step derived the empty clause, i.e. a
// proof was found.
type ResolutionStep struct {
	From1   Node
	From2   Node
	Unifier Substitution
	Result  Node
}

// TryOneResolution looks for a literal in a and a literal in b of opposite
// polarity whose atoms unify, and if found returns the resolution step that
// fires on that pair: the unifier applied to both parent clauses, and the
// residual clause with the resolved pair removed. It returns ok=false if no
// literal pair in a and b unifies.
func TryOneResolution(a, b Node) (*ResolutionStep, bool) {
	aLits := literals(a)
	bLits := literals(b)
	for i, li := range aLits {
		liAtom, liNeg := atom(li)
		for j, lj := range bLits {
			ljAtom, ljNeg := atom(lj)
			if liNeg == ljNeg {
				continue
			}
			sub, ok := Unify(liAtom, ljAtom)
			if !ok {
				continue
			}
			substA := sub.Apply(a)
			substB := sub.Apply(b)
			residual := dropResolvedPair(substA, substB, i, j)
			return &ResolutionStep{From1: a, From2: b, Unifier: sub, Result: residual}, true
		}
	}
	return nil, false
}

// dropResolvedPair builds the resolvent of substA and substB by dropping
// exactly the literal pair found at indices i (in substA) and j (in substB)
// and disjoining everything else, deduplicated. Substitution rewrites terms
// in place without reordering or merging literals, so the indices found
// before Apply still name the same positions afterward.
func dropResolvedPair(substA, substB Node, i, j int) Node {
	aLits := literals(substA)
	bLits := literals(substB)
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
	return fromLiterals(dedupeNodes(residual))
}

// ClauseSet is a deduplicated, order-preserving collection of clauses.
type ClauseSet struct {
	Clauses []Node
}

// NewClauseSet returns a ClauseSet seeded with clauses, deduplicated.
func NewClauseSet(clauses []Node) *ClauseSet {
	set := &ClauseSet{}
	for _, c := range clauses {
		set.Add(c)
	}
	return set
}

// Contains reports whether an equal clause is already present.
func (s *ClauseSet) Contains(c Node) bool {
	for _, existing := range s.Clauses {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}

// Add appends c if no structurally equal clause is already present,
// reporting whether it was added.
func (s *ClauseSet) Add(c Node) bool {
	if s.Contains(c) {
		return false
	}
	s.Clauses = append(s.Clauses, c)
	return true
}

// tryOneResolutionOverSet scans clauses in the order given (already sorted
// by (length, repr) by Canonicalize) for the first ordered pair i<j whose
// clauses resolve, matching the first-pair-wins determinism rule.
func tryOneResolutionOverSet(clauses []Node) (step *ResolutionStep, i, j int, ok bool) {
	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			if s, found := TryOneResolution(clauses[i], clauses[j]); found {
				return s, i, j, true
			}
		}
	}
	return nil, 0, 0, false
}

// Saturate runs the main loop: at each iteration, try_one_resolution scans
// the current canonical clause set for the first resolvable pair; on
// success the two parent clauses are removed, the resolvent is added, and
// the set is re-canonicalized before the next iteration. The loop halts the
// moment a resolution step derives the literal empty clause (proved) or a
// full scan finds no resolvable pair (unproved, reporting the surviving
// clauses as countermodel witnesses) — no backtracking is performed, a
// deliberate simplicity trade. A third way the set can run dry is
// canonicalization discarding every surviving clause as redundant (TRUE or
// tautological) without ever deriving the empty clause itself; that is also
// unproved, and reports the pre-filter clauses (the last genuine state)
// rather than a vacuous empty witness set. maxSteps, if positive, bounds the
// number of iterations; ctx, if it carries a deadline, is checked once per
// iteration. Both produce an AbortedError rather than a false verdict.
func Saturate(ctx context.Context, clauses []Node, maxSteps int) ([]ResolutionStep, []Node, bool, error) {
	c := Canonicalize(clauses)
	var steps []ResolutionStep
	attempts := 0

	for len(c) > 0 {
		select {
		case <-ctx.Done():
			return steps, c, false, &AbortedError{Reason: ctx.Err().Error()}
		default:
		}

		if maxSteps > 0 && attempts >= maxSteps {
			return steps, c, false, &AbortedError{Reason: fmt.Sprintf("resolution step ceiling (%d) reached", maxSteps)}
		}
		attempts++

		step, i, j, ok := tryOneResolutionOverSet(c)
		if !ok {
			return steps, c, false, nil
		}
		steps = append(steps, *step)
		if step.Result == nil {
			return steps, nil, true, nil
		}

		next := make([]Node, 0, len(c)-1)
		for k, cl := range c {
			if k == i || k == j {
				continue
			}
			next = append(next, cl)
		}
		next = append(next, step.Result)

		canon := Canonicalize(next)
		if len(canon) == 0 {
			// Every surviving clause canonicalized away as redundant (TRUE or
			// tautological) without the step itself deriving the empty
			// clause: the search has nothing left to resolve, but reporting
			// an empty residual would be a useless countermodel witness.
			// Report the pre-filter set instead.
			return steps, next, false, nil
		}
		c = canon
	}
	return steps, c, false, nil
}
