package equity

import (
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/randutil"
)

// Snapshot is the per-street equity picture the room publishes: equity for
// both variants, plus exact outs when exactly one card is pending.
type Snapshot struct {
	Holdem     map[string]Result
	Omaha      map[string]Result
	HoldemOuts map[string][]poker.Card
	OmahaOuts  map[string][]poker.Card
}

// Calculator computes snapshots. Each call derives private RNGs from the
// given seed so simulations are reproducible and never share random state.
type Calculator struct {
	logger *log.Logger
}

// NewCalculator creates a snapshot calculator.
func NewCalculator(logger *log.Logger) *Calculator {
	return &Calculator{logger: logger.WithPrefix("equity")}
}

// Compute builds a full snapshot for the current board. The two variants are
// independent and CPU-bound, so they run concurrently. A nil snapshot is
// never returned without an error.
func (c *Calculator) Compute(seed int64, holdem, omaha []Entrant, board []poker.Card, pool []poker.Card) (*Snapshot, error) {
	snap := &Snapshot{}
	iters := IterationsFor(len(board))
	withOuts := len(board) == 3 || len(board) == 4

	var g errgroup.Group

	g.Go(func() error {
		res, err := MonteCarlo(randutil.New(seed), poker.VariantHoldem, holdem, board, pool, iters)
		if err != nil {
			return err
		}
		snap.Holdem = res
		if withOuts {
			snap.HoldemOuts, err = OutsNext(poker.VariantHoldem, holdem, board, pool)
		}
		return err
	})

	g.Go(func() error {
		res, err := MonteCarlo(randutil.New(seed+1), poker.VariantOmaha, omaha, board, pool, iters)
		if err != nil {
			return err
		}
		snap.Omaha = res
		if withOuts {
			snap.OmahaOuts, err = OutsNext(poker.VariantOmaha, omaha, board, pool)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("computed equity snapshot",
		"board", len(board), "iterations", iters, "seats", len(holdem), "outs", withOuts)
	return snap, nil
}
