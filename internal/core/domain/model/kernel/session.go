package kernel

import (
	"strconv"

	"printery/internal/pkg/errs"
)

// ErrSessionIDIsNotConstructed indicates that a SessionID was not created through
// NewSessionID. This error is returned when validating a zero-value SessionID.
var ErrSessionIDIsNotConstructed = errs.NewValueIsRequiredError("SessionID must be created via NewSessionID")

// SessionID is a value object identifying a single user's interaction scope
// with the chat transport. It is the key of the order store: at most one
// order exists per SessionID at any time, and all inbound events carrying the
// same SessionID are processed one at a time.
//
// The underlying value is the transport's chat identifier. Zero is not a
// valid chat identifier on any supported transport, so the zero value of
// SessionID is invalid and must be constructed via NewSessionID.
//
// SessionID is immutable and safe for concurrent use.
//
// Example usage:
//
//	session, err := kernel.NewSessionID(update.Message.Chat.ID)
//	if err != nil {
//	    // event without an addressable chat, drop it
//	}
//	order, err := store.Get(ctx, session)
type SessionID struct {
	id int64
}

// NewSessionID creates a SessionID from a transport chat identifier.
// Returns an error for the zero identifier, which no transport assigns.
func NewSessionID(id int64) (SessionID, error) {
	if id == 0 {
		return SessionID{}, ErrSessionIDIsNotConstructed
	}
	return SessionID{id: id}, nil
}

// Int64 returns the raw chat identifier for transport calls and store keys.
func (s SessionID) Int64() int64 {
	return s.id
}

// String returns the decimal representation, used in invoice payloads and logs.
func (s SessionID) String() string {
	return strconv.FormatInt(s.id, 10)
}

// IsEqual compares two session identifiers for equality.
func (s SessionID) IsEqual(other SessionID) bool {
	return s.id == other.id
}

// Validate checks that the SessionID was properly constructed.
// Returns ErrSessionIDIsNotConstructed for the zero value.
func (s SessionID) Validate() error {
	if s.id == 0 {
		return ErrSessionIDIsNotConstructed
	}
	return nil
}
