// models/user.go
package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email    *string `gorm:"uniqueIndex;size:320" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Avatar   string  `json:"avatar"`
	Bio      string  `gorm:"type:text" json:"bio"`
	Role     string  `gorm:"default:'user';size:10" json:"role"`
	IsGuest  bool    `gorm:"default:false" json:"is_guest"`

	// Denormalized stats, incremented on session completion.
	TotalGamesPlayed int `gorm:"default:0" json:"total_games_played"`
	TotalGamesWon    int `gorm:"default:0" json:"total_games_won"`
	TotalPoints      int `gorm:"default:0" json:"total_points"`
	SkillRating      int `gorm:"default:1000" json:"skill_rating"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
