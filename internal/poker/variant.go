package poker

import "fmt"

// Variant selects which of the two simultaneous games a computation applies
// to. Both variants share the evaluator; they differ only in hole-card count
// and combination rules.
type Variant string

const (
	VariantHoldem Variant = "he"
	VariantOmaha  Variant = "plo"
)

// HoleSize returns the number of locked hole cards the variant plays.
func (v Variant) HoleSize() int {
	if v == VariantOmaha {
		return 4
	}
	return 2
}

// Evaluate ranks a seat's locked hole cards against the board under the
// variant's combination rules.
func (v Variant) Evaluate(hole []Card, board []Card) (HandRank, error) {
	switch v {
	case VariantHoldem:
		return EvaluateHoldem(hole, board)
	case VariantOmaha:
		return EvaluateOmaha(hole, board)
	default:
		return 0, fmt.Errorf("unknown variant: %q", string(v))
	}
}
