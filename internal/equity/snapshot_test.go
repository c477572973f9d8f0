package equity

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

func TestCalculatorComputeOnFlop(t *testing.T) {
	calc := NewCalculator(log.New(os.Stderr))

	heA := mustCards(t, "As", "Ah")
	heB := mustCards(t, "Ks", "Kh")
	ploA := mustCards(t, "Ad", "Ac", "7c", "6c")
	ploB := mustCards(t, "Kd", "Kc", "8d", "9d")
	board := mustCards(t, "2h", "7s", "Tc")

	var inPlay poker.Hand
	for _, cards := range [][]poker.Card{heA, heB, ploA, ploB, board} {
		for _, c := range cards {
			inPlay.AddCard(c)
		}
	}
	pool := poker.Remaining(inPlay)

	holdem := []Entrant{{SeatID: "a", Hole: heA}, {SeatID: "b", Hole: heB}}
	omaha := []Entrant{{SeatID: "a", Hole: ploA}, {SeatID: "b", Hole: ploB}}

	snap, err := calc.Compute(77, holdem, omaha, board, pool)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Len(t, snap.Holdem, 2)
	assert.Len(t, snap.Omaha, 2)
	assert.NotNil(t, snap.HoldemOuts, "flop snapshot includes outs")
	assert.NotNil(t, snap.OmahaOuts)

	again, err := calc.Compute(77, holdem, omaha, board, pool)
	require.NoError(t, err)
	assert.Equal(t, snap.Holdem, again.Holdem, "same seed must reproduce equity")
	assert.Equal(t, snap.Omaha, again.Omaha)
}

func TestCalculatorComputePreflopSkipsOuts(t *testing.T) {
	calc := NewCalculator(log.New(os.Stderr))

	heA := mustCards(t, "As", "Ah")
	heB := mustCards(t, "Ks", "Kh")
	ploA := mustCards(t, "Ad", "Ac", "7c", "6c")
	ploB := mustCards(t, "Kd", "Kc", "8d", "9d")

	var inPlay poker.Hand
	for _, cards := range [][]poker.Card{heA, heB, ploA, ploB} {
		for _, c := range cards {
			inPlay.AddCard(c)
		}
	}
	pool := poker.Remaining(inPlay)

	holdem := []Entrant{{SeatID: "a", Hole: heA}, {SeatID: "b", Hole: heB}}
	omaha := []Entrant{{SeatID: "a", Hole: ploA}, {SeatID: "b", Hole: ploB}}

	snap, err := calc.Compute(42, holdem, omaha, nil, pool)
	require.NoError(t, err)

	assert.Nil(t, snap.HoldemOuts, "preflop has no single-card outs")
	assert.Nil(t, snap.OmahaOuts)
	assert.Len(t, snap.Holdem, 2)
	assert.Len(t, snap.Omaha, 2)
}
