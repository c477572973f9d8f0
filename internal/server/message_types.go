package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants for the client-server protocol.
const (
	// Client to server messages
	MessageTypeJoinRoom       MessageType = "join_room"
	MessageTypeSetAnte        MessageType = "set_ante"
	MessageTypeSitOut         MessageType = "sit_out"
	MessageTypeStartHand      MessageType = "start_hand"
	MessageTypeLockSelections MessageType = "lock_selections"
	MessageTypeRevealStreet   MessageType = "reveal_street"
	MessageTypeNextHand       MessageType = "next_hand"
	MessageTypeTerminateRoom  MessageType = "terminate_room"
	MessageTypeChat           MessageType = "chat"

	// Server to client messages
	MessageTypeJoined       MessageType = "joined"
	MessageTypeRoomUpdate   MessageType = "room_update"
	MessageTypeYourCards    MessageType = "your_cards"
	MessageTypeStreetUpdate MessageType = "street_update"
	MessageTypeResults      MessageType = "results"
	MessageTypeFinalResults MessageType = "final_results"
	MessageTypeChatMessage  MessageType = "chat_message"
	MessageTypeRoomClosed   MessageType = "room_closed"
	MessageTypeError        MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
