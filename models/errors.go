// models/errors.go - Typed error taxonomy shared by services and handlers
package models

import (
	"errors"
	"fmt"
)

// Category sentinels. Handlers match on these with errors.Is to pick a
// status code; the wrapped message carries the specific reason.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrStateConflict = errors.New("state conflict")
	ErrCapacity      = errors.New("capacity exceeded")
	ErrUnauthorized  = errors.New("not authorized")
)

var (
	ErrRoomNotFound      = fmt.Errorf("room %w", ErrNotFound)
	ErrSessionNotFound   = fmt.Errorf("game session %w", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrRoomFull          = fmt.Errorf("room is full: %w", ErrCapacity)
	ErrRoomNotJoinable   = fmt.Errorf("room is not accepting participants: %w", ErrStateConflict)
	ErrAlreadyJoined     = fmt.Errorf("already an active participant: %w", ErrStateConflict)
	ErrNotParticipant    = fmt.Errorf("not an active participant of this room: %w", ErrStateConflict)
	ErrRoomNotInProgress = fmt.Errorf("room game has not started yet: %w", ErrStateConflict)
	ErrSessionCompleted  = fmt.Errorf("session already completed: %w", ErrStateConflict)
	ErrInvalidTransition = fmt.Errorf("invalid room status transition: %w", ErrStateConflict)
	ErrNotHost           = fmt.Errorf("only the host can do this: %w", ErrUnauthorized)
)

// Invalid wraps a specific validation failure message.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
