// Package room owns one room's match lifecycle: seating, ante, dealing, the
// countdown-gated simultaneous selection phase, manual street reveals,
// scoring and pot distribution. Each room is a single-writer aggregate: all
// commands are serialized through the room mutex, and different rooms are
// fully independent.
package room

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/equity"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/randutil"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/seatid"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/stats"
)

// State enumerates the room lifecycle.
type State string

const (
	StateLobby      State = "lobby"
	StateSelecting  State = "selecting"
	StateRevealed   State = "revealed"
	StateResults    State = "results"
	StateTerminated State = "terminated"
)

const (
	holeSize    = 6
	maxChatLog  = 500
	maxChatLen  = 500
	chatReplay  = 100
	boardFull   = 5
	defaultSeat = "Player"
)

// Config holds the per-room settings adjustable from the lobby.
type Config struct {
	Ante          int
	SelectTimeout time.Duration
	ScoopBonus    int // transferred per opponent on a scoop; 0 disables
	MaxSeats      int
}

// Room is one table. All exported methods are safe for concurrent use; they
// serialize on the room mutex.
type Room struct {
	mu sync.Mutex

	code    string
	cfg     Config
	logger  *log.Logger
	clock   quartz.Clock
	seedFn  func() int64
	emitter Emitter
	sink    stats.Sink
	calc    *equity.Calculator
	tokens  *seatid.Generator

	state      State
	seats      []*Seat // join order
	hostID     string
	handNumber int

	// Per-hand state.
	deck      *poker.Deck
	board     []poker.Card
	rng       *rand.Rand
	handEpoch int
	countdown *quartz.Timer
	equities  Equities
	outs      Outs

	chat []ChatEntry
}

// New creates a room in the lobby state.
func New(code string, cfg Config, emitter Emitter, sink stats.Sink, clock quartz.Clock, seedFn func() int64, logger *log.Logger) *Room {
	if cfg.MaxSeats <= 0 || cfg.MaxSeats > 6 {
		cfg.MaxSeats = 6
	}
	if seedFn == nil {
		seedFn = func() int64 { return time.Now().UnixNano() }
	}
	if sink == nil {
		sink = stats.NullSink{}
	}
	roomLogger := logger.WithPrefix("room").With("code", code)
	return &Room{
		code:     code,
		cfg:      cfg,
		logger:   roomLogger,
		clock:    clock,
		seedFn:   seedFn,
		emitter:  emitter,
		sink:     sink,
		calc:     equity.NewCalculator(roomLogger),
		tokens:   seatid.NewGenerator(nil),
		state:    StateLobby,
		equities: emptyEquities(),
		outs:     emptyOuts(),
	}
}

func emptyEquities() Equities {
	return Equities{Holdem: map[string]equity.Result{}, Omaha: map[string]equity.Result{}}
}

func emptyOuts() Outs {
	return Outs{Holdem: map[string][]string{}, Omaha: map[string][]string{}}
}

// Code returns the room code.
func (r *Room) Code() string { return r.code }

// State returns the current lifecycle state.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Join seats a new player, or reattaches an existing seat when token matches
// one. Returns the seat token and whether the seat is the room host.
func (r *Room) Join(name, playerID, token string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateTerminated {
		return "", false, ErrWrongState
	}

	if token != "" {
		if seat := r.seatByID(token); seat != nil {
			seat.Present = true
			if playerID != "" {
				seat.PlayerID = playerID
			}
			r.systemChat(fmt.Sprintf("%s reconnected.", seat.Name))
			r.publish()
			if seat.InHand {
				r.emitter.PrivateCards(seat.ID, poker.Strings(seat.Hole))
			}
			return seat.ID, seat.ID == r.hostID, nil
		}
	}

	if len(r.seats) >= r.cfg.MaxSeats {
		return "", false, validationErr(ReasonRoomFull)
	}

	seat := &Seat{
		ID:       r.tokens.Generate(),
		Name:     r.dedupeName(name),
		PlayerID: playerID,
		Present:  true,
	}
	r.seats = append(r.seats, seat)
	if r.hostID == "" {
		r.hostID = seat.ID
	}

	r.systemChat(fmt.Sprintf("%s joined the table.", seat.Name))
	r.publish()
	return seat.ID, seat.ID == r.hostID, nil
}

func (r *Room) dedupeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultSeat
	}
	taken := make(map[string]bool, len(r.seats))
	for _, s := range r.seats {
		taken[s.Name] = true
	}
	candidate := name
	for i := 1; taken[candidate]; i++ {
		candidate = fmt.Sprintf("%s %d", name, i)
	}
	return candidate
}

// SetAnte changes the ante. Lobby only.
func (r *Room) SetAnte(seatID string, ante int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateLobby {
		return ErrWrongState
	}
	if r.seatByID(seatID) == nil {
		return validationErr(ReasonUnknownSeat)
	}
	if ante < 0 {
		ante = 0
	}
	r.cfg.Ante = ante
	r.systemChat(fmt.Sprintf("Ante set to %d.", ante))
	r.publish()
	return nil
}

// ToggleSitOut marks a seat active or sitting out. Lobby only.
func (r *Room) ToggleSitOut(seatID string, sitOut bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateLobby {
		return ErrWrongState
	}
	seat := r.seatByID(seatID)
	if seat == nil {
		return validationErr(ReasonUnknownSeat)
	}
	seat.SitOut = sitOut
	status := "active"
	if sitOut {
		status = "sitting out"
	}
	r.systemChat(fmt.Sprintf("%s is now %s.", seat.Name, status))
	r.publish()
	return nil
}

// StartHand deals a fresh hand: new shuffled deck, six unique cards per
// active seat, ante debited immediately, countdown armed.
func (r *Room) StartHand(seatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateLobby {
		return ErrWrongState
	}
	if r.seatByID(seatID) == nil {
		return validationErr(ReasonUnknownSeat)
	}

	active := r.activeSeats()
	if len(active) < 2 {
		return validationErr(ReasonNeedPlayers)
	}

	seed := r.seedFn()
	r.rng = randutil.New(seed)
	r.deck = poker.NewDeck(r.rng)
	r.board = nil
	r.handNumber++
	r.handEpoch++
	r.equities = emptyEquities()
	r.outs = emptyOuts()
	for _, s := range r.seats {
		s.clearHand()
	}

	for _, s := range active {
		hole := r.deck.Deal(holeSize)
		if hole == nil {
			return r.abortHand(integrityErr("deck exhausted dealing to %s", s.Name))
		}
		s.Hole = append([]poker.Card(nil), hole...)
		s.InHand = true
		s.Balance -= r.cfg.Ante
	}

	if err := r.checkIntegrity(); err != nil {
		return r.abortHand(err)
	}

	epoch := r.handEpoch
	r.countdown = r.clock.AfterFunc(r.cfg.SelectTimeout, func() {
		r.countdownExpired(epoch)
	})

	r.state = StateSelecting
	r.logger.Info("hand started", "hand", r.handNumber, "seats", len(active), "ante", r.cfg.Ante, "seed", seed)
	r.systemChat(fmt.Sprintf("Hand #%d started. Ante %d.", r.handNumber, r.cfg.Ante))

	for _, s := range active {
		r.emitter.PrivateCards(s.ID, poker.Strings(s.Hole))
	}
	r.publish()
	return nil
}

// LockSelections records a seat's irrevocable 2+4 split. The submission must
// name exactly two Hold'em cards and four Omaha cards, all from the seat's
// own six, with no card used twice.
func (r *Room) LockSelections(seatID string, holdemTwo, omahaFour []poker.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateSelecting {
		return ErrWrongState
	}
	seat := r.seatByID(seatID)
	if seat == nil || !seat.InHand {
		return validationErr(ReasonUnknownSeat)
	}
	if seat.Locked {
		return ErrWrongState
	}

	if len(holdemTwo) != 2 || len(omahaFour) != 4 {
		return validationErr(ReasonWrongCount)
	}
	hole := seat.holeHand()
	var used poker.Hand
	for _, c := range append(append([]poker.Card(nil), holdemTwo...), omahaFour...) {
		if !hole.HasCard(c) {
			return validationErr(ReasonCardNotOwned)
		}
		if used.HasCard(c) {
			return validationErr(ReasonCardReused)
		}
		used.AddCard(c)
	}

	seat.PickHoldem = append([]poker.Card(nil), holdemTwo...)
	seat.PickOmaha = append([]poker.Card(nil), omahaFour...)
	seat.Locked = true
	r.systemChat(fmt.Sprintf("%s locked in.", seat.Name))

	r.maybeFinishSelecting()
	r.publish()
	return nil
}

// Disconnected records a transport drop. During selection it acts exactly
// like a timeout for that seat alone; balance and identity persist for
// reconnection.
func (r *Room) Disconnected(seatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatByID(seatID)
	if seat == nil || r.state == StateTerminated {
		return
	}
	seat.Present = false

	if r.state == StateSelecting && seat.InHand && !seat.Locked {
		r.autoLock(seat)
		r.maybeFinishSelecting()
	}

	r.systemChat(fmt.Sprintf("%s left the table.", seat.Name))
	r.publish()
}

// countdownExpired is the countdown callback. The epoch guard discards
// firings that race a hand transition.
func (r *Room) countdownExpired(epoch int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateSelecting || epoch != r.handEpoch {
		return
	}

	r.logger.Info("selection countdown elapsed, auto-locking", "hand", r.handNumber)
	for _, s := range r.seats {
		if s.InHand && !s.Locked {
			r.autoLock(s)
		}
	}
	r.maybeFinishSelecting()
	r.publish()
}

// autoLock gives an unresponsive seat a random 2+4 split of its own hole.
// Disjointness holds by construction.
func (r *Room) autoLock(seat *Seat) {
	perm := r.rng.Perm(len(seat.Hole))
	picks := make([]poker.Card, len(seat.Hole))
	for i, p := range perm {
		picks[i] = seat.Hole[p]
	}
	seat.PickHoldem = picks[:2]
	seat.PickOmaha = picks[2:6]
	seat.Locked = true
	r.systemChat(fmt.Sprintf("%s was locked automatically.", seat.Name))
}

// maybeFinishSelecting transitions to revealed the instant every in-hand
// seat is locked, cancelling the countdown so it cannot fire against later
// state.
func (r *Room) maybeFinishSelecting() {
	for _, s := range r.seats {
		if s.InHand && !s.Locked {
			return
		}
	}
	r.stopCountdown()
	r.state = StateRevealed
	if err := r.recomputeEquity(); err != nil {
		r.logger.Error("preflop equity failed", "error", err)
	}
	r.emitStreet("preflop")
}

func (r *Room) stopCountdown() {
	if r.countdown != nil {
		r.countdown.Stop()
		r.countdown = nil
	}
	r.handEpoch++
}

// RevealNextStreet deals the next street: flop (3 cards), then turn, then
// river. The river immediately triggers scoring. Reveals in any other state,
// or past the river, are no-ops.
func (r *Room) RevealNextStreet(seatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRevealed {
		return ErrWrongState
	}
	if r.seatByID(seatID) == nil {
		return validationErr(ReasonUnknownSeat)
	}

	var stage string
	var dealN int
	switch len(r.board) {
	case 0:
		stage, dealN = "flop", 3
	case 3:
		stage, dealN = "turn", 1
	case 4:
		stage, dealN = "river", 1
	default:
		return ErrWrongState
	}

	cards := r.deck.Deal(dealN)
	if cards == nil {
		return r.abortHand(integrityErr("deck exhausted dealing %s", stage))
	}
	r.board = append(r.board, cards...)

	if err := r.checkIntegrity(); err != nil {
		return r.abortHand(err)
	}

	r.logger.Info("street revealed", "stage", stage, "board", poker.Strings(r.board))

	if len(r.board) == boardFull {
		r.equities = emptyEquities()
		r.outs = emptyOuts()
		if err := r.scoreHand(); err != nil {
			return r.abortHand(err)
		}
		r.emitter.StreetUpdate(StreetUpdate{
			Stage:    stage,
			Board:    poker.Strings(r.board),
			Equities: r.equities,
			Outs:     r.outs,
		})
		r.publish()
		return nil
	}

	if err := r.recomputeEquity(); err != nil {
		r.logger.Error("equity recompute failed", "stage", stage, "error", err)
	}
	r.emitStreet(stage)
	r.publish()
	return nil
}

// NextHand returns the room to the lobby, clearing all per-hand state while
// keeping balances.
func (r *Room) NextHand(seatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateResults {
		return ErrWrongState
	}
	if r.seatByID(seatID) == nil {
		return validationErr(ReasonUnknownSeat)
	}

	r.resetHandLocked()
	r.publish()
	return nil
}

// Terminate permanently ends the room. Host only. A final balance sheet is
// published first so the collaborator can display and persist it.
func (r *Room) Terminate(seatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateTerminated {
		return ErrWrongState
	}
	if seatID != r.hostID {
		return validationErr(ReasonNotHost)
	}

	r.stopCountdown()

	standings := make([]Standing, 0, len(r.seats))
	for _, s := range r.seats {
		standings = append(standings, Standing{
			SeatID:   s.ID,
			Name:     s.Name,
			PlayerID: s.PlayerID,
			Balance:  s.Balance,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Balance > standings[j].Balance
	})

	r.emitter.FinalStandings(FinalStandings{
		HandNumber: r.handNumber,
		Ante:       r.cfg.Ante,
		Players:    standings,
	})

	r.state = StateTerminated
	r.logger.Info("room terminated", "hands", r.handNumber)
	r.emitter.Terminated()
	return nil
}

// SendChat appends a chat line and fans it out. The backlog is capped.
func (r *Room) SendChat(seatID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateTerminated {
		return ErrWrongState
	}
	seat := r.seatByID(seatID)
	if seat == nil {
		return validationErr(ReasonUnknownSeat)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if runes := []rune(text); len(runes) > maxChatLen {
		text = string(runes[:maxChatLen])
	}
	r.appendChat(ChatEntry{From: seat.Name, Text: text, TS: r.clock.Now().UnixMilli()})
	return nil
}

// ChatBacklog returns the most recent chat lines for replay on join.
func (r *Room) ChatBacklog() []ChatEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.chat)
	if n > chatReplay {
		n = chatReplay
	}
	out := make([]ChatEntry, n)
	copy(out, r.chat[len(r.chat)-n:])
	return out
}

// SnapshotPublic returns the current public state.
func (r *Room) SnapshotPublic() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// SeatCount returns how many seats the room holds.
func (r *Room) SeatCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seats)
}

// HoleCards returns a seat's current hole cards, if it is in a hand.
func (r *Room) HoleCards(seatID string) []poker.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatByID(seatID)
	if seat == nil || !seat.InHand {
		return nil
	}
	return append([]poker.Card(nil), seat.Hole...)
}

// ----- internals (room lock held) -----

func (r *Room) seatByID(id string) *Seat {
	for _, s := range r.seats {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (r *Room) activeSeats() []*Seat {
	active := make([]*Seat, 0, len(r.seats))
	for _, s := range r.seats {
		if !s.SitOut {
			active = append(active, s)
		}
	}
	return active
}

func (r *Room) inHandSeats() []*Seat {
	in := make([]*Seat, 0, len(r.seats))
	for _, s := range r.seats {
		if s.InHand {
			in = append(in, s)
		}
	}
	return in
}

// checkIntegrity verifies the no-duplicates invariant: deck remainder, board
// and every hole together must cover exactly 52 distinct cards during a
// hand.
func (r *Room) checkIntegrity() error {
	var seen poker.Hand
	count := 0

	add := func(cards []poker.Card, where string) error {
		for _, c := range cards {
			if seen.HasCard(c) {
				return integrityErr("card %s duplicated in %s", c, where)
			}
			seen.AddCard(c)
			count++
		}
		return nil
	}

	if err := add(r.board, "board"); err != nil {
		return err
	}
	for _, s := range r.inHandSeats() {
		if err := add(s.Hole, "hole of "+s.Name); err != nil {
			return err
		}
	}
	if err := add(r.deck.Undealt(), "deck"); err != nil {
		return err
	}

	// Board, holes and deck must jointly cover the full 52.
	if count != 52 {
		return integrityErr("card universe has %d cards, expected 52", count)
	}
	return nil
}

// abortHand handles an IntegrityError: the hand is voided, antes refunded,
// and the room returned to the lobby. The room itself stays alive.
func (r *Room) abortHand(err error) error {
	r.logger.Error("hand aborted", "hand", r.handNumber, "error", err)
	for _, s := range r.inHandSeats() {
		s.Balance += r.cfg.Ante
	}
	r.resetHandLocked()
	r.systemChat("Hand aborted due to an internal error.")
	r.publish()
	return err
}

func (r *Room) resetHandLocked() {
	r.stopCountdown()
	r.state = StateLobby
	r.deck = nil
	r.board = nil
	r.equities = emptyEquities()
	r.outs = emptyOuts()
	for _, s := range r.seats {
		s.clearHand()
	}
}

// entrants builds the equity-engine view of the in-hand seats for one
// variant.
func (r *Room) entrants(variant poker.Variant) []equity.Entrant {
	seats := r.inHandSeats()
	out := make([]equity.Entrant, 0, len(seats))
	for _, s := range seats {
		hole := s.PickHoldem
		if variant == poker.VariantOmaha {
			hole = s.PickOmaha
		}
		out = append(out, equity.Entrant{SeatID: s.ID, Hole: hole})
	}
	return out
}

// unseenPool is the undealt pool from a spectator-of-everything view: all 52
// cards minus the board and every in-hand seat's six hole cards. The equity
// engine works on copies, never the live deck.
func (r *Room) unseenPool() []poker.Card {
	var inPlay poker.Hand
	for _, c := range r.board {
		inPlay.AddCard(c)
	}
	for _, s := range r.inHandSeats() {
		for _, c := range s.Hole {
			inPlay.AddCard(c)
		}
	}
	return poker.Remaining(inPlay)
}

func (r *Room) recomputeEquity() error {
	snap, err := r.calc.Compute(
		r.rng.Int64(),
		r.entrants(poker.VariantHoldem),
		r.entrants(poker.VariantOmaha),
		r.board,
		r.unseenPool(),
	)
	if err != nil {
		return err
	}

	r.equities = Equities{Holdem: snap.Holdem, Omaha: snap.Omaha}
	r.outs = emptyOuts()
	for id, cards := range snap.HoldemOuts {
		r.outs.Holdem[id] = poker.Strings(cards)
	}
	for id, cards := range snap.OmahaOuts {
		r.outs.Omaha[id] = poker.Strings(cards)
	}
	return nil
}

func (r *Room) emitStreet(stage string) {
	r.emitter.StreetUpdate(StreetUpdate{
		Stage:    stage,
		Board:    poker.Strings(r.board),
		Equities: r.equities,
		Outs:     r.outs,
	})
}

func (r *Room) snapshotLocked() Snapshot {
	seats := make([]SeatInfo, 0, len(r.seats))
	for _, s := range r.seats {
		seats = append(seats, s.info(r.hostID))
	}

	var board []string
	if r.state == StateRevealed || r.state == StateResults {
		board = poker.Strings(r.board)
	} else {
		board = []string{}
	}

	return Snapshot{
		Code:       r.code,
		Stage:      r.state,
		Seats:      seats,
		Board:      board,
		Ante:       r.cfg.Ante,
		HandNumber: r.handNumber,
		Equities:   r.equities,
		Outs:       r.outs,
	}
}

func (r *Room) publish() {
	r.emitter.RoomUpdate(r.snapshotLocked())
}

func (r *Room) systemChat(text string) {
	r.appendChat(ChatEntry{From: "system", Text: text, TS: r.clock.Now().UnixMilli(), System: true})
}

func (r *Room) appendChat(entry ChatEntry) {
	r.chat = append(r.chat, entry)
	if len(r.chat) > maxChatLog {
		r.chat = r.chat[len(r.chat)-maxChatLog:]
	}
	r.emitter.Chat(entry)
}
