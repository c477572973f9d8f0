package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/stats"
)

func cards(t *testing.T, codes ...string) []poker.Card {
	t.Helper()
	parsed, err := poker.ParseCards(codes)
	require.NoError(t, err)
	return parsed
}

// riggedShowdown puts a room directly into the revealed state with a known
// board and locked selections, bypassing the shuffle. On the default board
// (Ad Kc Qc 2h 3d) seat A makes trip aces in Hold'em and the wheel in Omaha;
// seat B holds a pair of nines and trip deuces.
func riggedShowdown(t *testing.T, cfg Config) (*Room, *recordingEmitter, *Seat, *Seat) {
	t.Helper()
	r, emitter, _, _ := newTestRoom(t, cfg)

	seatA := &Seat{
		ID:         "seat-a",
		Name:       "Alice",
		PlayerID:   "pa",
		Balance:    -cfg.Ante,
		Present:    true,
		InHand:     true,
		Hole:       cards(t, "As", "Ah", "4c", "5c", "6s", "7s"),
		PickHoldem: cards(t, "As", "Ah"),
		PickOmaha:  cards(t, "4c", "5c", "6s", "7s"),
		Locked:     true,
	}
	seatB := &Seat{
		ID:         "seat-b",
		Name:       "Bob",
		PlayerID:   "pb",
		Balance:    -cfg.Ante,
		Present:    true,
		InHand:     true,
		Hole:       cards(t, "9h", "9s", "8d", "8c", "2c", "2d"),
		PickHoldem: cards(t, "9h", "9s"),
		PickOmaha:  cards(t, "8d", "8c", "2c", "2d"),
		Locked:     true,
	}

	r.mu.Lock()
	r.state = StateRevealed
	r.handNumber = 1
	r.seats = []*Seat{seatA, seatB}
	r.hostID = seatA.ID
	r.board = cards(t, "Ad", "Kc", "Qc", "2h", "3d")
	r.mu.Unlock()

	return r, emitter, seatA, seatB
}

func scoreRigged(t *testing.T, r *Room) {
	t.Helper()
	r.mu.Lock()
	err := r.scoreHand()
	r.mu.Unlock()
	require.NoError(t, err)
}

func TestScoreHandScoopWithBonus(t *testing.T) {
	cfg := Config{Ante: 10, ScoopBonus: 5}
	r, emitter, seatA, seatB := riggedShowdown(t, cfg)

	scoreRigged(t, r)
	require.Equal(t, StateResults, r.State())

	res := emitter.lastResults(t)
	assert.Equal(t, []string{seatA.ID}, res.HoldemWinners)
	assert.Equal(t, []string{seatA.ID}, res.OmahaWinners)
	assert.Equal(t, []string{seatA.ID}, res.Scoops)

	// Pot 20: the scooper takes both halves plus the bonus from one opponent
	assert.Equal(t, 15, seatA.Balance, "-10 ante +10 +10 shares +5 bonus")
	assert.Equal(t, -15, seatB.Balance, "-10 ante -5 bonus")
	assert.Equal(t, 0, seatA.Balance+seatB.Balance, "bonus is a transfer")

	// Settled equities are pinned, not simulated
	assert.Equal(t, 100.0, res.FinalEquities.Holdem[seatA.ID].Win)
	assert.Equal(t, 0.0, res.FinalEquities.Holdem[seatB.ID].Win)
	assert.Equal(t, 100.0, res.FinalEquities.Omaha[seatA.ID].Win)

	// Picks and hole cards are revealed at showdown
	require.Contains(t, res.Picks, seatB.ID)
	assert.Equal(t, []string{"9h", "9s"}, res.Picks[seatB.ID].Holdem)
}

func TestScoreHandRecordsStats(t *testing.T) {
	cfg := Config{Ante: 10, ScoopBonus: 5}
	r, _, _, _ := riggedShowdown(t, cfg)

	scoreRigged(t, r)

	sink := r.sink.(*stats.MemorySink)
	alice := sink.Totals("pa")
	assert.Equal(t, 1, alice.HandsPlayed)
	assert.Equal(t, 1, alice.HoldemWins)
	assert.Equal(t, 1, alice.OmahaWins)
	assert.Equal(t, 1, alice.Scoops)
	assert.Equal(t, 15, alice.Net)

	bob := sink.Totals("pb")
	assert.Equal(t, 1, bob.HandsPlayed)
	assert.Equal(t, 0, bob.HoldemWins)
	assert.Equal(t, 0, bob.OmahaWins)
	assert.Equal(t, 0, bob.Scoops)
	assert.Equal(t, -15, bob.Net)
}

func TestScoreHandSplitVariants(t *testing.T) {
	cfg := Config{Ante: 10, ScoopBonus: 5}
	r, emitter, seatA, seatB := riggedShowdown(t, cfg)

	// A paired board with two deuces gives B quad deuces in Omaha while A's
	// Hold'em aces improve to a full house: one half each way
	r.mu.Lock()
	r.board = cards(t, "Ad", "Kc", "Qc", "2h", "2s")
	r.mu.Unlock()

	scoreRigged(t, r)

	res := emitter.lastResults(t)
	assert.Equal(t, []string{seatA.ID}, res.HoldemWinners)
	assert.Equal(t, []string{seatB.ID}, res.OmahaWinners)
	assert.Empty(t, res.Scoops, "split hands never scoop")

	// Each wins one half of the 20-chip pot
	assert.Equal(t, 0, seatA.Balance)
	assert.Equal(t, 0, seatB.Balance)
}

func TestScoreHandNoBonusWhenDisabled(t *testing.T) {
	cfg := Config{Ante: 10}
	r, emitter, seatA, seatB := riggedShowdown(t, cfg)

	scoreRigged(t, r)

	res := emitter.lastResults(t)
	assert.Equal(t, []string{seatA.ID}, res.Scoops, "scoop is still reported")
	assert.Equal(t, 10, seatA.Balance, "no bonus chips move")
	assert.Equal(t, -10, seatB.Balance)
}
