package logic

import "fmt"

// ConstructionError reports a contract violation at formula-construction
// time: a nil quantifier variable slot (NewForall, NewExists) or an And/Or
// built with a nil operand sequence (NewAnd, NewOr). The Sequent shape is
// enforced by the Go types and never produces this error. These are
// boundary failures, not search outcomes: the core fails
// fast and does not attempt recovery.
type ConstructionError struct {
	Node   Node
	Reason string
}

func (e *ConstructionError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("logic: malformed construction: %s (node: %s)", e.Reason, e.Node.GoString())
	}
	return fmt.Sprintf("logic: malformed construction: %s", e.Reason)
}

// AbortedError is returned by Prove when the caller's context is done
// (deadline or cancellation), or the Prover's MaxSteps ceiling is hit
// before the search terminates naturally. It is distinct from Unproved:
// Unproved means the search exhausted all resolvable pairs; Aborted means
// the search was cut short before it could.
type AbortedError struct {
	Reason string
}

func (e *AbortedError) Error() string {
	return fmt.Sprintf("logic: aborted: %s", e.Reason)
}
