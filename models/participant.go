// models/participant.go - Room membership with per-room score
package models

import (
	"time"
)

// RoomParticipant is a user's membership record within one room. A (room,
// user) pair has at most one row; leaving deactivates it and rejoining
// reactivates it, so join history survives.
type RoomParticipant struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	RoomID   uint       `json:"room_id" gorm:"not null;index;uniqueIndex:idx_room_user"`
	UserID   uint       `json:"user_id" gorm:"not null;index;uniqueIndex:idx_room_user"`
	JoinedAt time.Time  `json:"joined_at"`
	LeftAt   *time.Time `json:"left_at"`
	IsActive bool       `json:"is_active" gorm:"default:true;index"`
	Score    int        `json:"score" gorm:"default:0"`
	Rank     *int       `json:"rank"` // assigned once the room completes

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (RoomParticipant) TableName() string {
	return "room_participants"
}
