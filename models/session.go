// models/session.go - One user's playthrough attempt within a room
package models

import (
	"time"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// GameSession records one playthrough. GameMode is copied from the room at
// creation so a session stays stable even if room settings change. At most
// one active session exists per (room, user); completed sessions are
// immutable.
type GameSession struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	RoomID   uint          `json:"room_id" gorm:"not null;index"`
	UserID   uint          `json:"user_id" gorm:"not null;index"`
	GameMode GameMode      `json:"game_mode" gorm:"not null;size:20"`
	Status   SessionStatus `json:"status" gorm:"default:'active';size:15;index"`
	Score    int           `json:"score" gorm:"default:0"`
	MaxScore int           `json:"max_score" gorm:"default:0"`

	// Mode-specific payload, recorded on completion as JSON.
	Answers         string `json:"answers,omitempty" gorm:"type:text"`
	TeamSelection   string `json:"team_selection,omitempty" gorm:"type:text"`
	StrategyChoices string `json:"strategy_choices,omitempty" gorm:"type:text"`

	TimeTakenSeconds int        `json:"time_taken_seconds" gorm:"default:0"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}
