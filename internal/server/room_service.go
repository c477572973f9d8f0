package server

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/room"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/seatid"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/stats"
)

// RoomService manages the set of live rooms and routes client commands to
// them. Rooms are created on first join and removed on termination.
type RoomService struct {
	mu     sync.RWMutex
	rooms  map[string]*room.Room
	server *Server
	logger *log.Logger
	clock  quartz.Clock
	sink   stats.Sink
	cfg    room.Config
	seedFn func() int64
}

// NewRoomService creates a room service. A zero fixedSeed means rooms seed
// from the wall clock; a non-zero value makes every deal reproducible, which
// is only useful for debugging.
func NewRoomService(server *Server, cfg room.Config, fixedSeed int64, clock quartz.Clock, sink stats.Sink, logger *log.Logger) *RoomService {
	seedFn := func() int64 { return time.Now().UnixNano() }
	if fixedSeed != 0 {
		seedFn = func() int64 { return fixedSeed }
	}
	if sink == nil {
		sink = stats.NewMemorySink()
	}
	return &RoomService{
		rooms:  make(map[string]*room.Room),
		server: server,
		logger: logger.WithPrefix("rooms"),
		clock:  clock,
		sink:   sink,
		cfg:    cfg,
		seedFn: seedFn,
	}
}

// JoinRoom seats the connection in the named room, creating the room if it
// does not exist yet.
func (rs *RoomService) JoinRoom(c *Connection, data JoinRoomData) {
	code := strings.ToUpper(strings.TrimSpace(data.RoomCode))
	if err := seatid.ValidateRoomCode(code); err != nil {
		c.sendError("invalid_room_code", err.Error())
		return
	}

	rm := rs.getOrCreate(code)

	seatID, isHost, err := rm.Join(data.Name, data.PlayerID, data.Token)
	if err != nil {
		rs.reportError(c, err)
		return
	}

	c.SetSeat(seatID)
	c.SetRoom(code)

	response, _ := NewMessage(MessageTypeJoined, JoinedData{
		RoomCode: code,
		SeatID:   seatID,
		IsHost:   isHost,
		Room:     rm.SnapshotPublic(),
		Chat:     rm.ChatBacklog(),
	})
	_ = c.SendMessage(response) // Ignore send errors
}

func (rs *RoomService) getOrCreate(code string) *room.Room {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rm, ok := rs.rooms[code]; ok {
		return rm
	}

	emitter := &roomBroadcaster{server: rs.server, code: code}
	rm := room.New(code, rs.cfg, emitter, rs.sink, rs.clock, rs.seedFn, rs.logger)
	rs.rooms[code] = rm
	rs.logger.Info("room created", "code", code)
	return rm
}

func (rs *RoomService) roomFor(c *Connection) *room.Room {
	code := c.GetRoom()
	if code == "" {
		return nil
	}
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.rooms[code]
}

// SetAnte handles an ante change request.
func (rs *RoomService) SetAnte(c *Connection, data SetAnteData) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.SetAnte(seatID, data.Ante)
	})
}

// SitOut handles a sit-out toggle.
func (rs *RoomService) SitOut(c *Connection, data SitOutData) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.ToggleSitOut(seatID, data.SitOut)
	})
}

// StartHand handles a deal request.
func (rs *RoomService) StartHand(c *Connection) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.StartHand(seatID)
	})
}

// LockSelections parses and submits a seat's 2+4 split.
func (rs *RoomService) LockSelections(c *Connection, data LockSelectionsData) {
	holdem, err := poker.ParseCards(data.Holdem)
	if err != nil {
		c.sendError("invalid_cards", err.Error())
		return
	}
	omaha, err := poker.ParseCards(data.Omaha)
	if err != nil {
		c.sendError("invalid_cards", err.Error())
		return
	}
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.LockSelections(seatID, holdem, omaha)
	})
}

// RevealStreet handles a manual street reveal.
func (rs *RoomService) RevealStreet(c *Connection) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.RevealNextStreet(seatID)
	})
}

// NextHand returns the room to the lobby after results.
func (rs *RoomService) NextHand(c *Connection) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.NextHand(seatID)
	})
}

// TerminateRoom permanently closes the connection's room.
func (rs *RoomService) TerminateRoom(c *Connection) {
	rm := rs.roomFor(c)
	if rm == nil {
		c.sendError("no_room", "Join a room first")
		return
	}

	if err := rm.Terminate(c.GetSeat()); err != nil {
		rs.reportError(c, err)
		return
	}

	rs.mu.Lock()
	delete(rs.rooms, rm.Code())
	rs.mu.Unlock()
	rs.logger.Info("room removed", "code", rm.Code())
}

// Chat relays a chat line.
func (rs *RoomService) Chat(c *Connection, data ChatData) {
	rs.dispatch(c, func(rm *room.Room, seatID string) error {
		return rm.SendChat(seatID, data.Text)
	})
}

// Disconnected informs the room that a connection dropped. The seat stays
// reserved for reconnection by token.
func (rs *RoomService) Disconnected(c *Connection) {
	rm := rs.roomFor(c)
	if rm == nil {
		return
	}
	rm.Disconnected(c.GetSeat())
}

func (rs *RoomService) dispatch(c *Connection, fn func(rm *room.Room, seatID string) error) {
	rm := rs.roomFor(c)
	if rm == nil {
		c.sendError("no_room", "Join a room first")
		return
	}
	if err := fn(rm, c.GetSeat()); err != nil {
		rs.reportError(c, err)
	}
}

// reportError translates room errors into the wire protocol. Wrong-state
// commands are dropped silently; validation failures go back to the sender;
// integrity failures already voided the hand and are surfaced so the client
// can explain the sudden lobby.
func (rs *RoomService) reportError(c *Connection, err error) {
	var vErr *room.ValidationError
	var iErr *room.IntegrityError
	switch {
	case errors.Is(err, room.ErrWrongState):
		rs.logger.Debug("command ignored in current state", "seat", c.GetSeat())
	case errors.As(err, &vErr):
		c.sendError("invalid_command", vErr.Reason)
	case errors.As(err, &iErr):
		c.sendError("hand_aborted", "The hand was voided due to an internal error; antes were refunded.")
	default:
		c.sendError("internal_error", err.Error())
	}
}

// roomBroadcaster adapts the server's connection registry to the room's
// Emitter interface. It only pushes onto buffered per-connection send
// queues, so it is safe to call with the room lock held.
type roomBroadcaster struct {
	server *Server
	code   string
}

func (b *roomBroadcaster) RoomUpdate(snap room.Snapshot) {
	b.broadcast(MessageTypeRoomUpdate, snap)
}

func (b *roomBroadcaster) PrivateCards(seatID string, cards []string) {
	msg, err := NewMessage(MessageTypeYourCards, YourCardsData{Cards: cards})
	if err != nil {
		return
	}
	_ = b.server.SendToSeat(seatID, msg)
}

func (b *roomBroadcaster) StreetUpdate(upd room.StreetUpdate) {
	b.broadcast(MessageTypeStreetUpdate, upd)
}

func (b *roomBroadcaster) Results(res room.Results) {
	b.broadcast(MessageTypeResults, res)
}

func (b *roomBroadcaster) FinalStandings(fin room.FinalStandings) {
	b.broadcast(MessageTypeFinalResults, fin)
}

func (b *roomBroadcaster) Chat(msg room.ChatEntry) {
	b.broadcast(MessageTypeChatMessage, msg)
}

func (b *roomBroadcaster) Terminated() {
	b.broadcast(MessageTypeRoomClosed, struct{}{})
}

func (b *roomBroadcaster) broadcast(mt MessageType, data interface{}) {
	msg, err := NewMessage(mt, data)
	if err != nil {
		return
	}
	b.server.BroadcastToRoom(b.code, msg)
}
