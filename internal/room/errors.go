package room

import (
	"errors"
	"fmt"
)

// ErrWrongState marks commands issued in a lifecycle state that cannot
// accept them (revealing before everyone locked, locking after the hand
// moved on, and so on). These are idempotent no-ops at the transport layer,
// never fatal.
var ErrWrongState = errors.New("command not valid in current room state")

// Rejection reasons carried by ValidationError.
const (
	ReasonWrongCount   = "wrong count"
	ReasonCardNotOwned = "card not in hand"
	ReasonCardReused   = "card used twice"
	ReasonRoomFull     = "room full"
	ReasonNeedPlayers  = "need at least 2 active seats"
	ReasonNotHost      = "host only"
	ReasonUnknownSeat  = "unknown seat"
)

// ValidationError reports a malformed command. It is delivered to the
// submitting seat only; room state is unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// validationErr is a shorthand constructor.
func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// IntegrityError reports an impossible card state (deck exhaustion, a card
// in two places). It indicates a programming defect, aborts the hand and
// returns the room to the lobby.
type IntegrityError struct {
	Detail string
}

func (e *IntegrityError) Error() string {
	return "card integrity violated: " + e.Detail
}

func integrityErr(format string, args ...any) error {
	return &IntegrityError{Detail: fmt.Sprintf(format, args...)}
}
