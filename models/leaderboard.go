// models/leaderboard.go - Global leaderboard aggregates
package models

import (
	"time"
)

// LeaderboardEntry is a user's all-time aggregate standing, independent of
// any single room. One row per user, created lazily on the first completed
// session. Totals only ever increase.
type LeaderboardEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalPoints   int       `json:"total_points" gorm:"default:0;index"`
	GamesPlayed   int       `json:"games_played" gorm:"default:0"`
	GamesWon      int       `json:"games_won" gorm:"default:0"`
	SkillRating   int       `json:"skill_rating" gorm:"default:1000"`
	WeeklyPoints  int       `json:"weekly_points" gorm:"default:0"`
	MonthlyPoints int       `json:"monthly_points" gorm:"default:0"`
	UpdatedAt     time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}

// LeaderboardPeriod tracks which rolling week/month the weekly and monthly
// point columns currently accumulate. Single row, id = 1.
type LeaderboardPeriod struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WeekKey   string    `json:"week_key" gorm:"size:10"`  // e.g. 2026-W35
	MonthKey  string    `json:"month_key" gorm:"size:10"` // e.g. 2026-08
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeaderboardPeriod) TableName() string {
	return "leaderboard_periods"
}
