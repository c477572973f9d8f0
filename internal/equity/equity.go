// Package equity estimates live win/tie percentages per seat between streets
// and enumerates the exact outs one card before the next street. Neither
// operation mutates shared game state: both work on private copies of the
// undealt pool.
package equity

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

// Entrant pairs a seat identity with its locked hole cards for one variant
// (2 cards for Hold'em, 4 for Omaha).
type Entrant struct {
	SeatID string
	Hole   []poker.Card
}

// Result holds win/tie percentages for one seat. Win counts hands where the
// seat was the sole leader; Tie counts hands where it shared the lead.
type Result struct {
	Win float64 `json:"win"`
	Tie float64 `json:"tie"`
}

// IterationsFor returns the Monte Carlo sample count for a board size.
// Later streets have fewer unknown cards and need less variance reduction;
// the river is deterministic and not simulated at all.
func IterationsFor(boardLen int) int {
	switch {
	case boardLen == 0:
		return 600
	case boardLen == 3:
		return 400
	case boardLen == 4:
		return 300
	default:
		return 0
	}
}

// MonteCarlo estimates equity by repeatedly completing the board from the
// pool of unseen cards. pool must contain exactly the cards not visible in
// any hole or on the board; it is copied before shuffling.
func MonteCarlo(rng *rand.Rand, variant poker.Variant, entrants []Entrant, board []poker.Card, pool []poker.Card, iters int) (map[string]Result, error) {
	need := 5 - len(board)
	if need <= 0 {
		return nil, fmt.Errorf("monte carlo: board already complete")
	}
	if len(pool) < need {
		return nil, fmt.Errorf("monte carlo: pool has %d cards, need %d", len(pool), need)
	}
	if iters <= 0 {
		return nil, fmt.Errorf("monte carlo: iterations must be positive")
	}

	wins := make(map[string]int, len(entrants))
	ties := make(map[string]int, len(entrants))
	for _, e := range entrants {
		wins[e.SeatID] = 0
		ties[e.SeatID] = 0
	}

	scratch := make([]poker.Card, len(pool))
	simBoard := make([]poker.Card, 5)
	copy(simBoard, board)
	ranks := make([]poker.HandRank, len(entrants))
	leaders := make([]string, 0, len(entrants))

	for t := 0; t < iters; t++ {
		copy(scratch, pool)
		// Partial Fisher-Yates: only the first `need` positions matter.
		for i := 0; i < need; i++ {
			j := i + rng.IntN(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
			simBoard[len(board)+i] = scratch[i]
		}

		for i, e := range entrants {
			rank, err := variant.Evaluate(e.Hole, simBoard)
			if err != nil {
				return nil, err
			}
			ranks[i] = rank
		}

		leaders = leaders[:0]
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r < best {
				best = r
			}
		}
		for i, e := range entrants {
			if ranks[i] == best {
				leaders = append(leaders, e.SeatID)
			}
		}

		if len(leaders) == 1 {
			wins[leaders[0]]++
		} else {
			for _, id := range leaders {
				ties[id]++
			}
		}
	}

	results := make(map[string]Result, len(entrants))
	for _, e := range entrants {
		results[e.SeatID] = Result{
			Win: float64(wins[e.SeatID]) / float64(iters) * 100,
			Tie: float64(ties[e.SeatID]) / float64(iters) * 100,
		}
	}
	return results, nil
}

// OutsNext enumerates, for every seat, the exact next cards that would make
// it a sole or tied leader. Valid only one card before the next street
// (board length 3 or 4): the pool is small enough (<=46 cards) that
// exhaustive enumeration is cheap and exactness matters for display.
func OutsNext(variant poker.Variant, entrants []Entrant, board []poker.Card, pool []poker.Card) (map[string][]poker.Card, error) {
	if len(board) != 3 && len(board) != 4 {
		return nil, fmt.Errorf("outs: board must have 3 or 4 cards, got %d", len(board))
	}

	outs := make(map[string][]poker.Card, len(entrants))
	for _, e := range entrants {
		outs[e.SeatID] = nil
	}

	next := make([]poker.Card, len(board)+1)
	copy(next, board)
	ranks := make([]poker.HandRank, len(entrants))

	for _, card := range pool {
		next[len(board)] = card

		for i, e := range entrants {
			rank, err := variant.Evaluate(e.Hole, next)
			if err != nil {
				return nil, err
			}
			ranks[i] = rank
		}

		best := ranks[0]
		for _, r := range ranks[1:] {
			if r < best {
				best = r
			}
		}
		for i, e := range entrants {
			if ranks[i] == best {
				outs[e.SeatID] = append(outs[e.SeatID], card)
			}
		}
	}

	return outs, nil
}
