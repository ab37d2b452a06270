// Package logic implements a first-order resolution theorem prover: a term
// algebra for formulas, a normalization pipeline that rewrites a formula
// into clause form, a unification engine, and a resolution search loop.
//
// The package is a pure, single-threaded library. It performs no I/O and
// starts no goroutines; callers drive the pipeline and the search loop
// directly, optionally threading a context.Context through Prove for
// cooperative cancellation.
package logic

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Kind tags the variant of a Node. Every Node answers Kind() so that
// normalization passes can switch on shape without type assertions.
type Kind int

const (
	KindVariable Kind = iota
	KindConstant
	KindSkolemConstant
	KindCustom
	KindEquals
	KindSkolemFunction
	KindForall
	KindExists
	KindNot
	KindAnd
	KindOr
	KindImplication
	KindEquivalence
	KindXor
	KindNand
	KindNor
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindConstant:
		return "Constant"
	case KindSkolemConstant:
		return "SkolemConstant"
	case KindCustom:
		return "Custom"
	case KindEquals:
		return "Equals"
	case KindSkolemFunction:
		return "SkolemFunction"
	case KindForall:
		return "Forall"
	case KindExists:
		return "Exists"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindImplication:
		return "Implication"
	case KindEquivalence:
		return "Equivalence"
	case KindXor:
		return "Xor"
	case KindNand:
		return "Nand"
	case KindNor:
		return "Nor"
	default:
		return "Unknown"
	}
}

// Node is a formula tree node, treated as an immutable value once
// constructed. ReplaceChild never mutates the receiver: it returns a new
// node of the same variant with the i-th child replaced.
type Node interface {
	Kind() Kind
	Children() []Node
	ReplaceChild(i int, n Node) Node
	Equal(other Node) bool
	Hash() uint64
	// String renders the node in unicode infix notation.
	String() string
	// GoString renders the node in ASCII prefix-tagged debug notation.
	GoString() string
}

func hashOf(n Node) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(n.GoString()))
	return h.Sum64()
}

// --- Variable --------------------------------------------------------------

// Variable is a named logical variable. Variables with equal names are equal.
type Variable struct {
	Name string
}

func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) Kind() Kind            { return KindVariable }
func (v *Variable) Children() []Node      { return nil }
func (v *Variable) ReplaceChild(i int, n Node) Node {
	panic(fmt.Sprintf("logic: Variable has no children, got index %d", i))
}
func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name
}
func (v *Variable) Hash() uint64   { return hashOf(v) }
func (v *Variable) String() string { return v.Name }
func (v *Variable) GoString() string {
	return fmt.Sprintf("v_%q", v.Name)
}

// --- Constant ----------------------------------------------------------------

// Constant carries an opaque domain value (bool, string, number). Two
// constants are equal iff their values are equal.
type Constant struct {
	Value any
}

func NewConstant(value any) *Constant { return &Constant{Value: value} }

// ConstantTrue and ConstantFalse are the distinguished truth values that
// participate in algebraic simplification (step 7 of the pipeline).
var (
	ConstantTrue  = NewConstant(true)
	ConstantFalse = NewConstant(false)
)

func (c *Constant) Kind() Kind       { return KindConstant }
func (c *Constant) Children() []Node { return nil }
func (c *Constant) ReplaceChild(i int, n Node) Node {
	panic(fmt.Sprintf("logic: Constant has no children, got index %d", i))
}
func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	return ok && c.Value == o.Value
}
func (c *Constant) Hash() uint64   { return hashOf(c) }
func (c *Constant) String() string { return fmt.Sprintf("%v", c.Value) }
func (c *Constant) GoString() string {
	return fmt.Sprintf("c_%#v", c.Value)
}

// IsTrue reports whether n is the distinguished TRUE constant.
func IsTrue(n Node) bool {
	c, ok := n.(*Constant)
	return ok && c.Value == true
}

// IsFalse reports whether n is the distinguished FALSE constant.
func IsFalse(n Node) bool {
	c, ok := n.(*Constant)
	return ok && c.Value == false
}

// --- SkolemConstant ----------------------------------------------------------

// SkolemConstant is a constant introduced by Skolemization of an existential
// not in the scope of any universal. Each has a globally unique identity,
// carried as a monotonic ID minted by a SymbolNursery.
type SkolemConstant struct {
	ID int
}

func (s *SkolemConstant) Kind() Kind       { return KindSkolemConstant }
func (s *SkolemConstant) Children() []Node { return nil }
func (s *SkolemConstant) ReplaceChild(i int, n Node) Node {
	panic(fmt.Sprintf("logic: SkolemConstant has no children, got index %d", i))
}
func (s *SkolemConstant) Equal(other Node) bool {
	o, ok := other.(*SkolemConstant)
	return ok && s.ID == o.ID
}
func (s *SkolemConstant) Hash() uint64   { return hashOf(s) }
func (s *SkolemConstant) String() string { return fmt.Sprintf("c%d", s.ID) }
func (s *SkolemConstant) GoString() string {
	return fmt.Sprintf("sc_%q", s.String())
}

// --- Custom (uninterpreted function/predicate symbol) ------------------------

// Custom is a user-introduced predicate or function symbol with no axioms.
type Custom struct {
	Name string
	Args []Node
}

func NewCustom(name string, args []Node) *Custom { return &Custom{Name: name, Args: args} }

func (c *Custom) Kind() Kind       { return KindCustom }
func (c *Custom) Children() []Node { return c.Args }
func (c *Custom) ReplaceChild(i int, n Node) Node {
	newArgs := append([]Node(nil), c.Args...)
	newArgs[i] = n
	return &Custom{Name: c.Name, Args: newArgs}
}
func (c *Custom) Equal(other Node) bool {
	o, ok := other.(*Custom)
	if !ok || c.Name != o.Name || len(c.Args) != len(o.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}
func (c *Custom) Hash() uint64 { return hashOf(c) }
func (c *Custom) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, joinString(c.Args))
}
func (c *Custom) GoString() string {
	return fmt.Sprintf("cfp_%s(%s)", c.Name, joinGoString(c.Args))
}

// --- Equals (distinguished predicate) ----------------------------------------

// Equals is the distinguished predicate that simplifies to TRUE when its
// two arguments are structurally identical (step 7 of the pipeline). No
// paramodulation is performed on it.
type Equals struct {
	A, B Node
}

func NewEquals(a, b Node) *Equals { return &Equals{A: a, B: b} }

func (e *Equals) Kind() Kind       { return KindEquals }
func (e *Equals) Children() []Node { return []Node{e.A, e.B} }
func (e *Equals) ReplaceChild(i int, n Node) Node {
	switch i {
	case 0:
		return &Equals{A: n, B: e.B}
	case 1:
		return &Equals{A: e.A, B: n}
	default:
		panic(fmt.Sprintf("logic: Equals has 2 children, got index %d", i))
	}
}
func (e *Equals) Equal(other Node) bool {
	o, ok := other.(*Equals)
	return ok && e.A.Equal(o.A) && e.B.Equal(o.B)
}
func (e *Equals) Hash() uint64 { return hashOf(e) }
func (e *Equals) String() string {
	return fmt.Sprintf("=(%s, %s)", e.A.String(), e.B.String())
}
func (e *Equals) GoString() string {
	return fmt.Sprintf("equals(%s, %s)", e.A.GoString(), e.B.GoString())
}

// --- SkolemFunction -----------------------------------------------------------

// SkolemFunction is an uninterpreted symbol introduced by Skolemization of an
// existential under universals u1..uk; Args holds exactly those universally
// quantified variables, in scope order.
type SkolemFunction struct {
	ID   int
	Args []Node
}

func (s *SkolemFunction) Kind() Kind       { return KindSkolemFunction }
func (s *SkolemFunction) Children() []Node { return s.Args }
func (s *SkolemFunction) ReplaceChild(i int, n Node) Node {
	newArgs := append([]Node(nil), s.Args...)
	newArgs[i] = n
	return &SkolemFunction{ID: s.ID, Args: newArgs}
}
func (s *SkolemFunction) Equal(other Node) bool {
	o, ok := other.(*SkolemFunction)
	if !ok || s.ID != o.ID || len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if !s.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}
func (s *SkolemFunction) Hash() uint64 { return hashOf(s) }
func (s *SkolemFunction) name() string { return fmt.Sprintf("f%d", s.ID) }
func (s *SkolemFunction) String() string {
	return fmt.Sprintf("%s(%s)", s.name(), joinString(s.Args))
}
func (s *SkolemFunction) GoString() string {
	return fmt.Sprintf("sf_%s(%s)", s.name(), joinGoString(s.Args))
}

// --- Forall / Exists ----------------------------------------------------------

// Forall is universal quantification: Var binds inside Body.
type Forall struct {
	Var  *Variable
	Body Node
}

func NewForall(v *Variable, body Node) (*Forall, error) {
	if v == nil {
		return nil, &ConstructionError{Reason: "Forall variable slot must be a Variable, got nil"}
	}
	return &Forall{Var: v, Body: body}, nil
}

func (f *Forall) Kind() Kind       { return KindForall }
func (f *Forall) Children() []Node { return []Node{f.Body} }
func (f *Forall) ReplaceChild(i int, n Node) Node {
	if i != 0 {
		panic(fmt.Sprintf("logic: Forall has 1 child, got index %d", i))
	}
	return &Forall{Var: f.Var, Body: n}
}
func (f *Forall) Equal(other Node) bool {
	o, ok := other.(*Forall)
	return ok && f.Var.Name == o.Var.Name && f.Body.Equal(o.Body)
}
func (f *Forall) Hash() uint64 { return hashOf(f) }
func (f *Forall) String() string {
	return fmt.Sprintf("∀%s (%s)", f.Var.Name, f.Body.String())
}
func (f *Forall) GoString() string {
	return fmt.Sprintf("forall v_%q (%s)", f.Var.Name, f.Body.GoString())
}

// Exists is existential quantification: Var binds inside Body.
type Exists struct {
	Var  *Variable
	Body Node
}

func NewExists(v *Variable, body Node) (*Exists, error) {
	if v == nil {
		return nil, &ConstructionError{Reason: "Exists variable slot must be a Variable, got nil"}
	}
	return &Exists{Var: v, Body: body}, nil
}

func (e *Exists) Kind() Kind       { return KindExists }
func (e *Exists) Children() []Node { return []Node{e.Body} }
func (e *Exists) ReplaceChild(i int, n Node) Node {
	if i != 0 {
		panic(fmt.Sprintf("logic: Exists has 1 child, got index %d", i))
	}
	return &Exists{Var: e.Var, Body: n}
}
func (e *Exists) Equal(other Node) bool {
	o, ok := other.(*Exists)
	return ok && e.Var.Name == o.Var.Name && e.Body.Equal(o.Body)
}
func (e *Exists) Hash() uint64 { return hashOf(e) }
func (e *Exists) String() string {
	return fmt.Sprintf("∃%s (%s)", e.Var.Name, e.Body.String())
}
func (e *Exists) GoString() string {
	return fmt.Sprintf("exists v_%q (%s)", e.Var.Name, e.Body.GoString())
}

// --- Not / And / Or -----------------------------------------------------------

// Not is logical negation, modeled as a 1-ary operator.
type Not struct {
	Operand Node
}

func NewNot(operand Node) *Not { return &Not{Operand: operand} }

func (n *Not) Kind() Kind       { return KindNot }
func (n *Not) Children() []Node { return []Node{n.Operand} }
func (n *Not) ReplaceChild(i int, c Node) Node {
	if i != 0 {
		panic(fmt.Sprintf("logic: Not has 1 child, got index %d", i))
	}
	return &Not{Operand: c}
}
func (n *Not) Equal(other Node) bool {
	o, ok := other.(*Not)
	return ok && n.Operand.Equal(o.Operand)
}
func (n *Not) Hash() uint64   { return hashOf(n) }
func (n *Not) String() string { return fmt.Sprintf("¬(%s)", n.Operand.String()) }
func (n *Not) GoString() string {
	return fmt.Sprintf("not(%s)", n.Operand.GoString())
}

// And is n-ary conjunction. Order is preserved until canonicalization.
type And struct {
	Operands []Node
}

func NewAnd(operands []Node) (*And, error) {
	if operands == nil {
		return nil, &ConstructionError{Reason: "And requires a non-nil operand sequence"}
	}
	return &And{Operands: operands}, nil
}

func (a *And) Kind() Kind       { return KindAnd }
func (a *And) Children() []Node { return a.Operands }
func (a *And) ReplaceChild(i int, n Node) Node {
	newOps := append([]Node(nil), a.Operands...)
	newOps[i] = n
	return &And{Operands: newOps}
}
func (a *And) Equal(other Node) bool { return equalNary(a.Operands, other, KindAnd) }
func (a *And) Hash() uint64          { return hashOf(a) }
func (a *And) String() string        { return infixString("∧", a.Operands) }
func (a *And) GoString() string      { return prefixGoString("and", a.Operands) }

// Or is n-ary disjunction. After normalization, an Or node is a clause: a
// disjunction of literals.
type Or struct {
	Operands []Node
}

func NewOr(operands []Node) (*Or, error) {
	if operands == nil {
		return nil, &ConstructionError{Reason: "Or requires a non-nil operand sequence"}
	}
	return &Or{Operands: operands}, nil
}

func (o *Or) Kind() Kind       { return KindOr }
func (o *Or) Children() []Node { return o.Operands }
func (o *Or) ReplaceChild(i int, n Node) Node {
	newOps := append([]Node(nil), o.Operands...)
	newOps[i] = n
	return &Or{Operands: newOps}
}
func (o *Or) Equal(other Node) bool { return equalNary(o.Operands, other, KindOr) }
func (o *Or) Hash() uint64          { return hashOf(o) }
func (o *Or) String() string        { return infixString("∨", o.Operands) }
func (o *Or) GoString() string      { return prefixGoString("or", o.Operands) }

func equalNary(ops []Node, other Node, k Kind) bool {
	var oOps []Node
	switch o := other.(type) {
	case *And:
		if k != KindAnd {
			return false
		}
		oOps = o.Operands
	case *Or:
		if k != KindOr {
			return false
		}
		oOps = o.Operands
	default:
		return false
	}
	if len(ops) != len(oOps) {
		return false
	}
	for i := range ops {
		if !ops[i].Equal(oOps[i]) {
			return false
		}
	}
	return true
}

// --- Derived binary connectives (rewritten away by normalization step 1) ----

// Implication constructs a → b, rewritten to ¬a ∨ b by connective reduction.
type Implication struct{ A, B Node }

func NewImplication(a, b Node) *Implication { return &Implication{A: a, B: b} }

func (x *Implication) Kind() Kind       { return KindImplication }
func (x *Implication) Children() []Node { return []Node{x.A, x.B} }
func (x *Implication) ReplaceChild(i int, n Node) Node {
	return replaceBinaryChild(x.A, x.B, i, n, func(a, b Node) Node { return &Implication{A: a, B: b} })
}
func (x *Implication) Equal(other Node) bool {
	o, ok := other.(*Implication)
	return ok && x.A.Equal(o.A) && x.B.Equal(o.B)
}
func (x *Implication) Hash() uint64   { return hashOf(x) }
func (x *Implication) String() string { return binaryString("→", x.A, x.B) }
func (x *Implication) GoString() string {
	return binaryGoString("implication", x.A, x.B)
}

// Equivalence constructs a ↔ b, rewritten to (a→b) ∧ (b→a).
type Equivalence struct{ A, B Node }

func NewEquivalence(a, b Node) *Equivalence { return &Equivalence{A: a, B: b} }

func (x *Equivalence) Kind() Kind       { return KindEquivalence }
func (x *Equivalence) Children() []Node { return []Node{x.A, x.B} }
func (x *Equivalence) ReplaceChild(i int, n Node) Node {
	return replaceBinaryChild(x.A, x.B, i, n, func(a, b Node) Node { return &Equivalence{A: a, B: b} })
}
func (x *Equivalence) Equal(other Node) bool {
	o, ok := other.(*Equivalence)
	return ok && x.A.Equal(o.A) && x.B.Equal(o.B)
}
func (x *Equivalence) Hash() uint64   { return hashOf(x) }
func (x *Equivalence) String() string { return binaryString("↔", x.A, x.B) }
func (x *Equivalence) GoString() string {
	return binaryGoString("equivalence", x.A, x.B)
}

// Xor constructs a ⊕ b, rewritten to ¬(a ↔ b).
type Xor struct{ A, B Node }

func NewXor(a, b Node) *Xor { return &Xor{A: a, B: b} }

func (x *Xor) Kind() Kind       { return KindXor }
func (x *Xor) Children() []Node { return []Node{x.A, x.B} }
func (x *Xor) ReplaceChild(i int, n Node) Node {
	return replaceBinaryChild(x.A, x.B, i, n, func(a, b Node) Node { return &Xor{A: a, B: b} })
}
func (x *Xor) Equal(other Node) bool {
	o, ok := other.(*Xor)
	return ok && x.A.Equal(o.A) && x.B.Equal(o.B)
}
func (x *Xor) Hash() uint64   { return hashOf(x) }
func (x *Xor) String() string { return binaryString("⊕", x.A, x.B) }
func (x *Xor) GoString() string {
	return binaryGoString("xor", x.A, x.B)
}

// Nand is n-ary NAND ("Sheffer stroke"), rewritten to ¬(op1 ∧ op2 ∧ ...).
type Nand struct{ Operands []Node }

func NewNand(operands []Node) *Nand { return &Nand{Operands: operands} }

func (x *Nand) Kind() Kind       { return KindNand }
func (x *Nand) Children() []Node { return x.Operands }
func (x *Nand) ReplaceChild(i int, n Node) Node {
	newOps := append([]Node(nil), x.Operands...)
	newOps[i] = n
	return &Nand{Operands: newOps}
}
func (x *Nand) Equal(other Node) bool {
	o, ok := other.(*Nand)
	if !ok || len(x.Operands) != len(o.Operands) {
		return false
	}
	for i := range x.Operands {
		if !x.Operands[i].Equal(o.Operands[i]) {
			return false
		}
	}
	return true
}
func (x *Nand) Hash() uint64   { return hashOf(x) }
func (x *Nand) String() string { return infixString("↑", x.Operands) }
func (x *Nand) GoString() string {
	return prefixGoString("nand", x.Operands)
}

// Nor is n-ary NOR ("Pierce arrow"), rewritten to ¬(op1 ∨ op2 ∨ ...).
type Nor struct{ Operands []Node }

func NewNor(operands []Node) *Nor { return &Nor{Operands: operands} }

func (x *Nor) Kind() Kind       { return KindNor }
func (x *Nor) Children() []Node { return x.Operands }
func (x *Nor) ReplaceChild(i int, n Node) Node {
	newOps := append([]Node(nil), x.Operands...)
	newOps[i] = n
	return &Nor{Operands: newOps}
}
func (x *Nor) Equal(other Node) bool {
	o, ok := other.(*Nor)
	if !ok || len(x.Operands) != len(o.Operands) {
		return false
	}
	for i := range x.Operands {
		if !x.Operands[i].Equal(o.Operands[i]) {
			return false
		}
	}
	return true
}
func (x *Nor) Hash() uint64   { return hashOf(x) }
func (x *Nor) String() string { return infixString("↓", x.Operands) }
func (x *Nor) GoString() string {
	return prefixGoString("nor", x.Operands)
}

func replaceBinaryChild(a, b Node, i int, n Node, make func(a, b Node) Node) Node {
	switch i {
	case 0:
		return make(n, b)
	case 1:
		return make(a, n)
	default:
		panic(fmt.Sprintf("logic: binary connective has 2 children, got index %d", i))
	}
}

// --- rendering helpers ---------------------------------------------------

func joinString(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func joinGoString(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.GoString()
	}
	return strings.Join(parts, ", ")
}

func infixString(symbol string, operands []Node) string {
	if len(operands) == 1 {
		return fmt.Sprintf("%s(%s)", symbol, operands[0].String())
	}
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = fmt.Sprintf("(%s)", op.String())
	}
	return strings.Join(parts, fmt.Sprintf(" %s ", symbol))
}

func prefixGoString(tag string, operands []Node) string {
	if len(operands) == 1 {
		return fmt.Sprintf("%s(%s)", tag, operands[0].GoString())
	}
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = fmt.Sprintf("(%s)", op.GoString())
	}
	return strings.Join(parts, fmt.Sprintf(" %s ", tag))
}

func binaryString(symbol string, a, b Node) string {
	return fmt.Sprintf("(%s) %s (%s)", a.String(), symbol, b.String())
}

func binaryGoString(tag string, a, b Node) string {
	return fmt.Sprintf("%s((%s), (%s))", tag, a.GoString(), b.GoString())
}
