package logic

import (
	"sort"
)

// TransformationStep records one pass of the normalization pipeline: a
// human-readable label plus a snapshot of both sides as they stood after
// the pass completed. Pipeline.Run appends one per pass, matching the
// system's transformations() output surface.
type TransformationStep struct {
	Label  string
	LHS    Node
	NegRHS Node
}

// Pipeline drives a Sequent's lhs and negated rhs through the eight
// normalization passes, in order, recording a TransformationStep after each
// of the first seven; the eighth, clause extraction, produces the returned
// clause list and records no step. Each step's function is idempotent on its
// own output; the pipeline as a whole is deterministic given the nursery's
// state, which is why Run takes the nursery explicitly rather than reaching
// for a package-level one.
type Pipeline struct {
	Nursery *SymbolNursery
	Steps   []TransformationStep
}

// NewPipeline returns a Pipeline backed by the given nursery.
func NewPipeline(nursery *SymbolNursery) *Pipeline {
	return &Pipeline{Nursery: nursery}
}

// Run normalizes lhs and negRhs side by side and returns the combined,
// canonicalized clause list (see Canonicalize). It appends one
// TransformationStep per formula-rewriting pass (seven in all) to p.Steps.
func (p *Pipeline) Run(lhs, negRHS Node) []Node {
	record := func(label string, l, r Node) {
		p.Steps = append(p.Steps, TransformationStep{Label: label, LHS: l, NegRHS: r})
	}

	lhs = removeLogicalOps(lhs)
	negRHS = removeLogicalOps(negRHS)
	record("Apply equivalences to get rid of non-primitive logical operations", lhs, negRHS)

	lhs = narrowNegation(lhs)
	negRHS = narrowNegation(negRHS)
	record("Use De Morgan's laws to narrow negation to atomic formulas", lhs, negRHS)

	known := map[string]bool{}
	lhs = standardizeVarNames(lhs, p.Nursery, known)
	negRHS = standardizeVarNames(negRHS, p.Nursery, known)
	record("Rename bound variables so that every quantifier binds a distinct name", lhs, negRHS)

	lhs = skolemize(lhs, p.Nursery, nil)
	negRHS = skolemize(negRHS, p.Nursery, nil)
	record("Eliminate existential quantifiers (Skolem constants and functions)", lhs, negRHS)

	lhs = removeForalls(lhs)
	negRHS = removeForalls(negRHS)
	record("Drop universal quantifiers; their variables are implicitly universal", lhs, negRHS)

	lhs = toCNF(lhs)
	negRHS = toCNF(negRHS)
	record("Bring formula to conjunctive normal form", lhs, negRHS)

	lhs = removeRedundancy(lhs)
	negRHS = removeRedundancy(negRHS)
	record("Remove redundancy (tautologies, duplicate and contradictory operands)", lhs, negRHS)

	clauses := append(breakToClauses(lhs), breakToClauses(negRHS)...)
	return Canonicalize(clauses)
}

// --- step 1: connective reduction -------------------------------------------

// removeLogicalOps rewrites every connective other than And/Or/Not to its
// primitive definition, recursing into children once the node itself is
// primitive.
func removeLogicalOps(formula Node) Node {
	for {
		switch f := formula.(type) {
		case *Implication:
			formula = mustOr([]Node{NewNot(f.A), f.B})
			continue
		case *Equivalence:
			formula = mustAnd([]Node{NewImplication(f.A, f.B), NewImplication(f.B, f.A)})
			continue
		case *Xor:
			formula = NewNot(NewEquivalence(f.A, f.B))
			continue
		case *Nand:
			formula = NewNot(mustAnd(append([]Node(nil), f.Operands...)))
			continue
		case *Nor:
			formula = NewNot(mustOr(append([]Node(nil), f.Operands...)))
			continue
		}
		break
	}
	return TransformChildren(formula, removeLogicalOps)
}

// --- step 2: negation normal form --------------------------------------------

// narrowNegation pushes every Not inward by exhaustive application of
// quantifier duals, De Morgan's laws, and double-negation elimination, until
// every Not wraps an atomic formula.
func narrowNegation(formula Node) Node {
	for {
		notNode, ok := formula.(*Not)
		if !ok {
			break
		}
		narrowed, changed := narrowOneStep(notNode)
		if !changed {
			break
		}
		formula = narrowed
	}
	return TransformChildren(formula, narrowNegation)
}

func narrowOneStep(n *Not) (Node, bool) {
	switch operand := n.Operand.(type) {
	case *Forall:
		ex, _ := NewExists(operand.Var, NewNot(operand.Body))
		return ex, true
	case *Exists:
		fa, _ := NewForall(operand.Var, NewNot(operand.Body))
		return fa, true
	case *And:
		negated := make([]Node, len(operand.Operands))
		for i, op := range operand.Operands {
			negated[i] = NewNot(op)
		}
		return mustOr(negated), true
	case *Or:
		negated := make([]Node, len(operand.Operands))
		for i, op := range operand.Operands {
			negated[i] = NewNot(op)
		}
		return mustAnd(negated), true
	case *Not:
		return operand.Operand, true
	default:
		return n, false
	}
}

// --- step 3: variable standardization (alpha-conversion) --------------------

// standardizeVarNames traverses in document order with a growing set of
// names in scope. When a quantifier binds a name already seen, it mints a
// fresh name, substitutes it into the body for the old bound variable only
// (outer free occurrences of the same name are untouched because
// SubstituteFree stops at a quantifier rebinding the name), and records the
// fresh name as in-scope.
func standardizeVarNames(formula Node, nursery *SymbolNursery, known map[string]bool) Node {
	switch f := formula.(type) {
	case *Forall:
		name := f.Var.Name
		if known[name] {
			newName := nursery.FreshVariableName()
			for known[newName] {
				newName = nursery.FreshVariableName()
			}
			newVar := NewVariable(newName)
			newBody := SubstituteFree(f.Body, f.Var, newVar)
			known[newName] = true
			body := standardizeVarNames(newBody, nursery, known)
			return &Forall{Var: newVar, Body: body}
		}
		known[name] = true
		return &Forall{Var: f.Var, Body: standardizeVarNames(f.Body, nursery, known)}
	case *Exists:
		name := f.Var.Name
		if known[name] {
			newName := nursery.FreshVariableName()
			for known[newName] {
				newName = nursery.FreshVariableName()
			}
			newVar := NewVariable(newName)
			newBody := SubstituteFree(f.Body, f.Var, newVar)
			known[newName] = true
			body := standardizeVarNames(newBody, nursery, known)
			return &Exists{Var: newVar, Body: body}
		}
		known[name] = true
		return &Exists{Var: f.Var, Body: standardizeVarNames(f.Body, nursery, known)}
	case *Variable:
		known[f.Name] = true
		return f
	default:
		return TransformChildren(formula, func(c Node) Node {
			return standardizeVarNames(c, nursery, known)
		})
	}
}

// --- step 4: Skolemization ----------------------------------------------------

// skolemize traverses with the list of universally quantified variables
// currently in scope. On Forall it recurses with the variable added to
// scope, keeping the Forall. On Exists with no universals in scope it mints
// a fresh SkolemConstant; with universals u1..uk in scope it mints a fresh
// SkolemFunction(u1,...,uk). Either way the fresh term replaces the bound
// variable throughout the body and the Exists node disappears.
func skolemize(formula Node, nursery *SymbolNursery, universals []*Variable) Node {
	switch f := formula.(type) {
	case *Exists:
		var replacement Node
		if len(universals) == 0 {
			replacement = nursery.FreshSkolemConstant()
		} else {
			args := make([]Node, len(universals))
			for i, u := range universals {
				args[i] = u
			}
			replacement = nursery.FreshSkolemFunction(args)
		}
		newBody := SubstituteFree(f.Body, f.Var, replacement)
		return skolemize(newBody, nursery, universals)
	case *Forall:
		newUniversals := append(append([]*Variable(nil), universals...), f.Var)
		return &Forall{Var: f.Var, Body: skolemize(f.Body, nursery, newUniversals)}
	default:
		return TransformChildren(formula, func(c Node) Node {
			return skolemize(c, nursery, universals)
		})
	}
}

// --- step 5: universal elimination --------------------------------------------

// removeForalls drops every Forall, promoting its body. The variables that
// were universally bound become free in the result and are implicitly
// universally quantified over the whole formula.
func removeForalls(formula Node) Node {
	for {
		fa, ok := formula.(*Forall)
		if !ok {
			break
		}
		formula = fa.Body
	}
	return TransformChildren(formula, removeForalls)
}

// --- step 6: CNF conversion ---------------------------------------------------

// toCNF iterates merge (flatten nested And/Or of the same kind) and
// distribute (a ∨ (b ∧ c) ≡ (a ∨ b) ∧ (a ∨ c), applied to the first And
// operand of each Or) to a fixpoint.
func toCNF(formula Node) Node {
	for {
		next := mergeNary(formula)
		next = distribute(next)
		if nodesEqual(next, formula) {
			return next
		}
		formula = next
	}
}

func mergeNary(formula Node) Node {
	for {
		changed := false
		switch f := formula.(type) {
		case *And:
			var merged []Node
			merged, changed = mergeOnce(f.Operands, KindAnd)
			if changed {
				formula = mustAnd(merged)
			}
		case *Or:
			var merged []Node
			merged, changed = mergeOnce(f.Operands, KindOr)
			if changed {
				formula = mustOr(merged)
			}
		}
		if !changed {
			break
		}
	}
	return TransformChildren(formula, toCNF)
}

func mergeOnce(operands []Node, k Kind) ([]Node, bool) {
	changed := false
	merged := make([]Node, 0, len(operands))
	for _, op := range operands {
		switch o := op.(type) {
		case *And:
			if k == KindAnd {
				merged = append(merged, o.Operands...)
				changed = true
				continue
			}
		case *Or:
			if k == KindOr {
				merged = append(merged, o.Operands...)
				changed = true
				continue
			}
		}
		merged = append(merged, op)
	}
	return merged, changed
}

func distribute(formula Node) Node {
	if or, ok := formula.(*Or); ok {
		if distributed, changed := distributeOnce(or); changed {
			formula = distributed
		}
	}
	return TransformChildren(formula, distribute)
}

// distributeOnce applies a ∨ (b ∧ c) ≡ (a ∨ b) ∧ (a ∨ c) to the first And
// operand found among or.Operands.
func distributeOnce(or *Or) (Node, bool) {
	for i, op := range or.Operands {
		and, ok := op.(*And)
		if !ok {
			continue
		}
		newAndOps := make([]Node, len(and.Operands))
		for j, andOp := range and.Operands {
			newOrOps := append([]Node(nil), or.Operands...)
			newOrOps[i] = andOp
			newAndOps[j] = mustOr(newOrOps)
		}
		return mustAnd(newAndOps), true
	}
	return or, false
}

// --- step 7: redundancy removal -----------------------------------------------

// removeRedundancy iterates to a fixpoint, bottom-up then top-down (the
// traversal applies the node-level rewrite on the way down and the fixpoint
// loop repeats until nothing changes, so both orders are covered).
func removeRedundancy(formula Node) Node {
	for {
		next := removeRedundancyOnce(formula)
		if nodesEqual(next, formula) {
			return next
		}
		formula = next
	}
}

func removeRedundancyOnce(formula Node) Node {
	formula = removeRedundancyNode(formula)
	return TransformChildren(formula, removeRedundancyOnce)
}

func removeRedundancyNode(formula Node) Node {
	switch f := formula.(type) {
	case *Equals:
		if f.A.Equal(f.B) {
			return ConstantTrue
		}
		return f
	case *And:
		return simplifyAnd(f.Operands)
	case *Or:
		return simplifyOr(f.Operands)
	default:
		return f
	}
}

func simplifyAnd(operands []Node) Node {
	for _, op := range operands {
		if IsFalse(op) {
			return ConstantFalse
		}
	}
	kept := make([]Node, 0, len(operands))
	for _, op := range operands {
		if !IsTrue(op) {
			kept = append(kept, op)
		}
	}
	kept = dedupeNodes(kept)
	for _, op := range kept {
		if hasComplement(kept, op) {
			return ConstantFalse
		}
	}
	if len(kept) == 0 {
		return ConstantTrue
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return mustAnd(kept)
}

func simplifyOr(operands []Node) Node {
	for _, op := range operands {
		if IsTrue(op) {
			return ConstantTrue
		}
	}
	kept := make([]Node, 0, len(operands))
	for _, op := range operands {
		if !IsFalse(op) {
			kept = append(kept, op)
		}
	}
	kept = dedupeNodes(kept)
	for _, op := range kept {
		if hasComplement(kept, op) {
			return ConstantTrue
		}
	}
	if len(kept) == 0 {
		return ConstantFalse
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return mustOr(kept)
}

// hasComplement reports whether Not(op) occurs in operands, for op that is
// not itself a Not (so each complementary pair is only reported once).
func hasComplement(operands []Node, op Node) bool {
	if _, ok := op.(*Not); ok {
		return false
	}
	negated := NewNot(op)
	for _, other := range operands {
		if other.Equal(negated) {
			return true
		}
	}
	return false
}

func dedupeNodes(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		dup := false
		for _, existing := range out {
			if existing.Equal(n) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, n)
		}
	}
	return out
}

// --- step 8: clause extraction -----------------------------------------------

// breakToClauses flattens outer Ands and returns the list of clauses
// (assuming conjunctions are outermost, as guaranteed by toCNF).
func breakToClauses(formula Node) []Node {
	if and, ok := formula.(*And); ok {
		var clauses []Node
		for _, op := range and.Operands {
			clauses = append(clauses, breakToClauses(op)...)
		}
		return clauses
	}
	return []Node{formula}
}

// --- combine & canonicalize ----------------------------------------------------

// Canonicalize sorts each Or's children by debug repr, drops TRUE clauses
// and tautological clauses (one containing both a literal and its
// negation), deduplicates clauses by structural equality, and sorts the
// clause list by (literal count, debug repr) so that shorter clauses are
// tried first — a classic unit-preference bias that also makes the
// resulting order deterministic.
func Canonicalize(clauses []Node) []Node {
	sorted := make([]Node, 0, len(clauses))
	for _, c := range clauses {
		if IsTrue(c) || isTautologicalClause(c) {
			continue
		}
		sorted = append(sorted, sortClauseLiterals(c))
	}
	sorted = dedupeNodes(sorted)
	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := literalCount(sorted[i]), literalCount(sorted[j])
		if li != lj {
			return li < lj
		}
		return sorted[i].GoString() < sorted[j].GoString()
	})
	return sorted
}

// isTautologicalClause reports whether clause holds both some literal and
// its negation, making it vacuously true and useless as a resolution
// witness.
func isTautologicalClause(clause Node) bool {
	lits := literals(clause)
	for i, li := range lits {
		liAtom, liNeg := atom(li)
		for j, lj := range lits {
			if i == j {
				continue
			}
			ljAtom, ljNeg := atom(lj)
			if liNeg != ljNeg && liAtom.Equal(ljAtom) {
				return true
			}
		}
	}
	return false
}

func sortClauseLiterals(clause Node) Node {
	or, ok := clause.(*Or)
	if !ok {
		return clause
	}
	literals := append([]Node(nil), or.Operands...)
	sort.SliceStable(literals, func(i, j int) bool {
		return literals[i].GoString() < literals[j].GoString()
	})
	return mustOr(literals)
}

func literalCount(clause Node) int {
	if or, ok := clause.(*Or); ok {
		return len(or.Operands)
	}
	return 1
}

func nodesEqual(a, b Node) bool {
	return a.Equal(b)
}

func mustAnd(operands []Node) Node {
	n, err := NewAnd(operands)
	if err != nil {
		panic(err)
	}
	return n
}

func mustOr(operands []Node) Node {
	n, err := NewOr(operands)
	if err != nil {
		panic(err)
	}
	return n
}
