// models/room.go - Room and lifecycle rules
package models

import (
	"time"
)

// GameMode selects the scoring ruleset and content type for a room.
type GameMode string

const (
	ModeQuiz          GameMode = "quiz"
	ModeTeamSelection GameMode = "team_selection"
	ModeStrategy      GameMode = "strategy"
	ModeScenario      GameMode = "scenario"
)

// Valid reports whether the mode is one of the four supported modes.
func (m GameMode) Valid() bool {
	switch m {
	case ModeQuiz, ModeTeamSelection, ModeStrategy, ModeScenario:
		return true
	}
	return false
}

// RoomStatus values. Transitions only move forward:
// waiting -> in_progress -> completed, with cancellation possible from
// waiting or in_progress. Terminal states are kept for history.
type RoomStatus string

const (
	RoomWaiting    RoomStatus = "waiting"
	RoomInProgress RoomStatus = "in_progress"
	RoomCompleted  RoomStatus = "completed"
	RoomCancelled  RoomStatus = "cancelled"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	EntryOpen       = "open"
	EntryInviteOnly = "invite_only"
)

// Room is a user-hosted container for one game-mode configuration and its
// participants. CurrentParticipants is denormalized and mutated only through
// guarded single-statement updates in the participant service.
type Room struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	HostID              uint       `json:"host_id" gorm:"not null;index"`
	Name                string     `json:"name" gorm:"not null;size:100"`
	Description         string     `json:"description" gorm:"type:text"`
	RoomCode            string     `json:"room_code" gorm:"uniqueIndex;not null;size:8"`
	GameMode            GameMode   `json:"game_mode" gorm:"not null;size:20"`
	MatchID             *uint      `json:"match_id" gorm:"index"`
	Visibility          string     `json:"visibility" gorm:"default:'public';size:10"`
	EntryType           string     `json:"entry_type" gorm:"default:'open';size:15"`
	Status              RoomStatus `json:"status" gorm:"default:'waiting';size:15;index"`
	MaxParticipants     int        `json:"max_participants" gorm:"default:10"`
	CurrentParticipants int        `json:"current_participants" gorm:"default:0"`
	Settings            string     `json:"settings" gorm:"type:text"` // mode-specific settings, JSON

	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Participants []RoomParticipant `json:"participants,omitempty" gorm:"-"`
}

func (Room) TableName() string {
	return "rooms"
}

// IsJoinable reports whether new participants may join.
func (r *Room) IsJoinable() bool {
	return r.Status == RoomWaiting && r.CurrentParticipants < r.MaxParticipants
}

// IsTerminal reports whether the room is in a final state.
func (r *Room) IsTerminal() bool {
	return r.Status == RoomCompleted || r.Status == RoomCancelled
}

// CanTransitionTo implements the forward-only status machine.
func (r *Room) CanTransitionTo(target RoomStatus) bool {
	switch target {
	case RoomInProgress:
		return r.Status == RoomWaiting
	case RoomCompleted:
		return r.Status == RoomInProgress
	case RoomCancelled:
		return r.Status == RoomWaiting || r.Status == RoomInProgress
	}
	return false
}

// Duration returns how long the game ran, zero until completed.
func (r *Room) Duration() time.Duration {
	if r.StartedAt == nil || r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(*r.StartedAt)
}
