package poker

import (
	"fmt"
)

// EvaluateOmaha ranks the best Omaha hand for four hole cards against a board
// of 3-5 cards. Omaha hands must use exactly two hole cards and exactly three
// board cards, so unlike Evaluate this cannot collapse into a single mask
// evaluation: every 2-of-4 by 3-of-board combination is tried and the
// strongest rank kept.
func EvaluateOmaha(hole []Card, board []Card) (HandRank, error) {
	if len(hole) != 4 {
		return 0, fmt.Errorf("evaluate omaha: need exactly 4 hole cards, got %d", len(hole))
	}
	if len(board) < 3 || len(board) > 5 {
		return 0, fmt.Errorf("evaluate omaha: need 3-5 board cards, got %d", len(board))
	}

	best := HandRank(baseHighCard + highCardCount) // sentinel weaker than any hand
	for i := 0; i < len(hole); i++ {
		for j := i + 1; j < len(hole); j++ {
			holePair := Hand(hole[i]) | Hand(hole[j])
			for a := 0; a < len(board); a++ {
				for b := a + 1; b < len(board); b++ {
					for c := b + 1; c < len(board); c++ {
						five := holePair | Hand(board[a]) | Hand(board[b]) | Hand(board[c])
						if rank := evaluateUnchecked(five); rank < best {
							best = rank
						}
					}
				}
			}
		}
	}
	return best, nil
}

// EvaluateHoldem ranks two hole cards against a board of 3-5 cards. Hold'em
// allows any 5 of the combined cards, which the mask evaluator handles
// directly.
func EvaluateHoldem(hole []Card, board []Card) (HandRank, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("evaluate holdem: need exactly 2 hole cards, got %d", len(hole))
	}
	h := NewHand(hole...)
	for _, c := range board {
		h.AddCard(c)
	}
	return Evaluate(h)
}
