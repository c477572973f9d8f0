package server

import (
	"encoding/json"
	"time"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/room"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type JoinRoomData struct {
	RoomCode string `json:"roomCode"`
	Name     string `json:"name"`
	// Token reattaches a previous seat after a disconnect.
	Token    string `json:"token,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

type SetAnteData struct {
	Ante int `json:"ante"`
}

type SitOutData struct {
	SitOut bool `json:"sitOut"`
}

type LockSelectionsData struct {
	Holdem []string `json:"holdem"` // exactly 2 card codes
	Omaha  []string `json:"plo"`    // exactly 4 card codes
}

type ChatData struct {
	Text string `json:"text"`
}

// Server → Client Messages

type JoinedData struct {
	RoomCode string           `json:"roomCode"`
	SeatID   string           `json:"seatId"`
	IsHost   bool             `json:"isHost"`
	Room     room.Snapshot    `json:"room"`
	Chat     []room.ChatEntry `json:"chat,omitempty"`
}

type YourCardsData struct {
	Cards []string `json:"cards"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
