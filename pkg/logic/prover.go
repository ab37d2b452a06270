package logic

import "context"

// Verdict classifies how a proof attempt ended.
type Verdict int

const (
	// Unproved means the resolution search saturated without deriving the
	// empty clause: no proof exists within naive resolution's reach.
	Unproved Verdict = iota
	// Proved means the empty clause was derived: the sequent holds.
	Proved
)

func (v Verdict) String() string {
	if v == Proved {
		return "proved"
	}
	return "unproved"
}

// Result is the full output of a proof attempt: the verdict, the
// normalization trace, the clause set the search started from, the
// sequence of resolution steps taken (empty if the search aborted before
// attempting any), and — on Unproved — the clauses the search saturated on,
// the countermodel witnesses named Unproved{clauses_left} in the output
// contract. ResidualClauses is always empty on Proved.
type Result struct {
	Verdict         Verdict
	Transformations []TransformationStep
	InitialClauses  []Node
	ResolutionSteps []ResolutionStep
	ResidualClauses []Node
}

// Prover drives one proof attempt: normalize the sequent to clauses, then
// search for the empty clause by resolution. Each Prover owns its own
// SymbolNursery, so concurrent Provers in the same process never collide on
// minted Skolem/variable names.
type Prover struct {
	Nursery  *SymbolNursery
	MaxSteps int
}

// NewProver returns a Prover with a fresh nursery and no step ceiling.
// Set MaxSteps on the returned value to bound the search.
func NewProver() *Prover {
	return &Prover{Nursery: NewSymbolNursery()}
}

// Prove attempts to establish seq: lhs ⇒ rhs. It proves by refutation, the
// standard resolution strategy: assume lhs holds and rhs fails (negate rhs),
// normalize both to clauses, and search for a contradiction (the empty
// clause). Finding one proves the sequent; saturating without finding one
// means it is Unproved within naive resolution. ctx, if it carries a
// deadline, can cut the search short, yielding an AbortedError instead of
// either verdict.
func (p *Prover) Prove(ctx context.Context, seq *Sequent) (*Result, error) {
	lhs := seq.lhsFormula()
	negRHS := NewNot(seq.rhsFormula())

	pipeline := NewPipeline(p.Nursery)
	clauses := pipeline.Run(lhs, negRHS)

	steps, residual, proved, err := Saturate(ctx, clauses, p.MaxSteps)
	result := &Result{
		Transformations: pipeline.Steps,
		InitialClauses:  clauses,
		ResolutionSteps: steps,
		ResidualClauses: residual,
	}
	if err != nil {
		return result, err
	}
	if proved {
		result.Verdict = Proved
	} else {
		result.Verdict = Unproved
	}
	return result, nil
}
