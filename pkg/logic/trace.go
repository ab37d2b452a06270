package logic

import "fmt"

// Diagram renders a resolution step as a single proof-rule line:
//
//	(a) ∨ (b) , (¬(a)) ∨ (c) ⊢ (b) ∨ (c)
//
// using "□" for the empty clause, so a verbose trace reads as a linear
// derivation from the initial clause set to a refutation.
func (s ResolutionStep) Diagram() string {
	result := "□"
	if s.Result != nil {
		result = s.Result.String()
	}
	return fmt.Sprintf("%s , %s ⊢ %s", s.From1.String(), s.From2.String(), result)
}
