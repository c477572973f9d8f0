package room

import (
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/equity"
)

// SeatInfo is the public view of one seat.
type SeatInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsHost  bool   `json:"isHost"`
	Balance int    `json:"balance"`
	Locked  bool   `json:"locked"`
	Present bool   `json:"present"`
	SitOut  bool   `json:"sitOut"`
}

// Equities holds per-seat win/tie percentages for both variants.
type Equities struct {
	Holdem map[string]equity.Result `json:"he"`
	Omaha  map[string]equity.Result `json:"plo"`
}

// Outs holds per-seat improving next cards (two-character codes) for both
// variants.
type Outs struct {
	Holdem map[string][]string `json:"he"`
	Omaha  map[string][]string `json:"plo"`
}

// Snapshot is the public room state broadcast after every mutation. Hole
// cards never appear here; they travel through PrivateCards only.
type Snapshot struct {
	Code       string     `json:"code"`
	Stage      State      `json:"stage"`
	Seats      []SeatInfo `json:"seats"`
	Board      []string   `json:"board"`
	Ante       int        `json:"ante"`
	HandNumber int        `json:"handNumber"`
	Equities   Equities   `json:"equities"`
	Outs       Outs       `json:"outs"`
}

// StreetUpdate is published when the board changes or the initial equity
// snapshot becomes available after everyone locks.
type StreetUpdate struct {
	Stage    string   `json:"stage"` // preflop, flop, turn, river
	Board    []string `json:"board"`
	Equities Equities `json:"equities"`
	Outs     Outs     `json:"outs"`
}

// SeatPicks reveals one seat's hole cards and selections at showdown.
type SeatPicks struct {
	Name   string   `json:"name"`
	Hole   []string `json:"hole"`
	Holdem []string `json:"holdem"`
	Omaha  []string `json:"plo"`
}

// Results is published when a hand is scored.
type Results struct {
	HandNumber    int                  `json:"handNumber"`
	Board         []string             `json:"board"`
	HoldemWinners []string             `json:"holdemWinners"`
	OmahaWinners  []string             `json:"omahaWinners"`
	Scoops        []string             `json:"scoops"`
	Picks         map[string]SeatPicks `json:"picks"`
	// Final per-seat display equity: winners pinned to 100, others 0.
	FinalEquities Equities `json:"finalEquities"`
}

// Standing is one row of the final balance sheet.
type Standing struct {
	SeatID   string `json:"id"`
	Name     string `json:"name"`
	PlayerID string `json:"playerId,omitempty"`
	Balance  int    `json:"balance"`
}

// FinalStandings is published once when the owner terminates the room.
type FinalStandings struct {
	HandNumber int        `json:"handNumber"`
	Ante       int        `json:"ante"`
	Players    []Standing `json:"players"`
}

// ChatEntry is one chat or system line.
type ChatEntry struct {
	From   string `json:"from"`
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
	System bool   `json:"system,omitempty"`
}

// Emitter is the room's transport collaborator. The room computes state and
// hands it off; session addressing, queuing and delivery are the emitter's
// problem. Calls are made while the room lock is held, so implementations
// must not call back into the room.
type Emitter interface {
	RoomUpdate(snap Snapshot)
	PrivateCards(seatID string, cards []string)
	StreetUpdate(upd StreetUpdate)
	Results(res Results)
	FinalStandings(fin FinalStandings)
	Chat(msg ChatEntry)
	Terminated()
}

// NopEmitter discards all events. Useful in tests that only inspect state.
type NopEmitter struct{}

func (NopEmitter) RoomUpdate(Snapshot)           {}
func (NopEmitter) PrivateCards(string, []string) {}
func (NopEmitter) StreetUpdate(StreetUpdate)     {}
func (NopEmitter) Results(Results)               {}
func (NopEmitter) FinalStandings(FinalStandings) {}
func (NopEmitter) Chat(ChatEntry)                {}
func (NopEmitter) Terminated()                   {}
