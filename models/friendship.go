// models/friendship.go - Social graph edge consumed by the friends leaderboard
package models

import (
	"time"
)

// Friendship is a directed edge; mutual friendship stores two rows. The
// request/accept flow lives outside this service; the leaderboard only reads
// friend ids.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_friend"`
	FriendID  uint      `json:"friend_id" gorm:"not null;uniqueIndex:idx_user_friend"`
	CreatedAt time.Time `json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}
