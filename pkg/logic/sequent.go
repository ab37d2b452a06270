package logic

// Sequent is the top-level obligation "lhs ⇒ rhs". Either side is a list of
// formulas, interpreted as a conjunction on the left and a disjunction on
// the right; an empty side defaults to TRUE on the left, FALSE on the right
// (see NewSequent).
type Sequent struct {
	LHS []Node
	RHS []Node
}

// NewSequent builds a Sequent from either side's formula list, stored as
// given. A nil or empty side stays empty in LHS/RHS; that side's identity
// (TRUE for LHS, FALSE for RHS) is supplied when the side is folded.
func NewSequent(lhs, rhs []Node) *Sequent {
	return &Sequent{LHS: lhs, RHS: rhs}
}

// lhsFormula folds LHS into a single conjunction (TRUE if empty).
func (s *Sequent) lhsFormula() Node {
	return foldSide(s.LHS, KindAnd, ConstantTrue)
}

// rhsFormula folds RHS into a single disjunction (FALSE if empty).
func (s *Sequent) rhsFormula() Node {
	return foldSide(s.RHS, KindOr, ConstantFalse)
}

func foldSide(nodes []Node, k Kind, identity Node) Node {
	switch len(nodes) {
	case 0:
		return identity
	case 1:
		return nodes[0]
	default:
		if k == KindAnd {
			n, _ := NewAnd(append([]Node(nil), nodes...))
			return n
		}
		n, _ := NewOr(append([]Node(nil), nodes...))
		return n
	}
}

// String renders the sequent as "lhs => rhs".
func (s *Sequent) String() string {
	return s.lhsFormula().String() + " => " + s.rhsFormula().String()
}
