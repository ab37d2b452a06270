package logic

import "fmt"

// SymbolNursery mints fresh variable names, Skolem constants, and Skolem
// functions from three monotonic counters. Counters are scoped to a single
// nursery instance rather than a package-level global, so that independent
// proof attempts (or independent provers embedded in the same process) get
// their own identifier space; call Reset between attempts for deterministic
// traces in tests.
type SymbolNursery struct {
	variableCounter       int
	skolemConstantCounter int
	skolemFunctionCounter int
}

// NewSymbolNursery returns a nursery with all counters at zero.
func NewSymbolNursery() *SymbolNursery {
	return &SymbolNursery{}
}

// FreshVariableName returns "tmpN" and advances the variable counter. Used
// by variable standardization (normalization step 3) to rename a bound
// variable that collides with one already in scope.
func (s *SymbolNursery) FreshVariableName() string {
	name := fmt.Sprintf("tmp%d", s.variableCounter)
	s.variableCounter++
	return name
}

// FreshSkolemConstant mints a SkolemConstant with a new globally unique ID.
// Used by Skolemization (step 4) when no universal is in scope.
func (s *SymbolNursery) FreshSkolemConstant() *SkolemConstant {
	c := &SkolemConstant{ID: s.skolemConstantCounter}
	s.skolemConstantCounter++
	return c
}

// FreshSkolemFunction mints a SkolemFunction over args with a new globally
// unique ID. Used by Skolemization (step 4) when universals u1..uk are in
// scope; args must be exactly those variables, in scope order.
func (s *SymbolNursery) FreshSkolemFunction(args []Node) *SkolemFunction {
	f := &SkolemFunction{ID: s.skolemFunctionCounter, Args: args}
	s.skolemFunctionCounter++
	return f
}

// Reset zeroes all three counters. Intended for test determinism: given
// reset counters, the same input produces the same trace.
func (s *SymbolNursery) Reset() {
	s.variableCounter = 0
	s.skolemConstantCounter = 0
	s.skolemFunctionCounter = 0
}
