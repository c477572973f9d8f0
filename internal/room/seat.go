package room

import (
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

// Seat is a persistent participant slot. It is created at join time and
// survives across hands (balance included); hole cards and selections are
// per-hand and wiped when the next hand starts.
type Seat struct {
	ID       string // opaque token, doubles as the reconnection key
	Name     string
	PlayerID string // opaque identity for the statistics sink; may be empty
	Balance  int
	SitOut   bool
	Present  bool

	// Per-hand state.
	InHand     bool
	Hole       []poker.Card // exactly 6 while in a hand
	PickHoldem []poker.Card // 2 once locked
	PickOmaha  []poker.Card // 4 once locked
	Locked     bool
}

// clearHand wipes the per-hand state, keeping identity and balance.
func (s *Seat) clearHand() {
	s.InHand = false
	s.Hole = nil
	s.PickHoldem = nil
	s.PickOmaha = nil
	s.Locked = false
}

// holeHand returns the seat's hole cards as a set.
func (s *Seat) holeHand() poker.Hand {
	return poker.NewHand(s.Hole...)
}

func (s *Seat) info(hostID string) SeatInfo {
	return SeatInfo{
		ID:      s.ID,
		Name:    s.Name,
		IsHost:  s.ID == hostID,
		Balance: s.Balance,
		Locked:  s.Locked,
		Present: s.Present,
		SitOut:  s.SitOut,
	}
}
