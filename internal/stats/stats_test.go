package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

func TestMemorySinkAccumulates(t *testing.T) {
	sink := NewMemorySink()

	sink.HandPlayed([]string{"a", "b"})
	sink.HandPlayed([]string{"a", "b"})
	sink.VariantWon(poker.VariantHoldem, []string{"a"})
	sink.VariantWon(poker.VariantOmaha, []string{"a", "b"})
	sink.Scooped("a")
	sink.NetDelta("a", 25)
	sink.NetDelta("a", -5)
	sink.NetDelta("b", -20)

	a := sink.Totals("a")
	assert.Equal(t, PlayerTotals{
		HandsPlayed: 2,
		HoldemWins:  1,
		OmahaWins:   1,
		Scoops:      1,
		Net:         20,
	}, a)

	b := sink.Totals("b")
	assert.Equal(t, 2, b.HandsPlayed)
	assert.Equal(t, 0, b.HoldemWins)
	assert.Equal(t, 1, b.OmahaWins)
	assert.Equal(t, -20, b.Net)
}

func TestMemorySinkUnknownPlayer(t *testing.T) {
	sink := NewMemorySink()
	assert.Equal(t, PlayerTotals{}, sink.Totals("nobody"))
}

func TestMemorySinkReset(t *testing.T) {
	sink := NewMemorySink()
	sink.HandPlayed([]string{"a"})
	sink.Reset()
	assert.Equal(t, PlayerTotals{}, sink.Totals("a"))
}

func TestNullSinkIsInert(t *testing.T) {
	var sink Sink = NullSink{}
	sink.HandPlayed([]string{"a"})
	sink.VariantWon(poker.VariantHoldem, []string{"a"})
	sink.Scooped("a")
	sink.NetDelta("a", 10)
}
