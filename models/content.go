// models/content.go - Read-only content used to compute scores
package models

import (
	"time"
)

// Cricket player roles for the team-selection mode.
const (
	RoleBatsman      = "batsman"
	RoleBowler       = "bowler"
	RoleAllrounder   = "allrounder"
	RoleWicketkeeper = "wicketkeeper"
)

// Form tiers. FormExcellent is the best tier and earns a per-player bonus.
const (
	FormExcellent = "excellent"
	FormGood      = "good"
	FormAverage   = "average"
	FormPoor      = "poor"
)

// QuizQuestion is admin-managed quiz content. CorrectOption and Explanation
// are withheld from client-facing reads.
type QuizQuestion struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Question      string    `json:"question" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"size:300;not null"`
	OptionB       string    `json:"option_b" gorm:"size:300;not null"`
	OptionC       string    `json:"option_c" gorm:"size:300;not null"`
	OptionD       string    `json:"option_d" gorm:"size:300;not null"`
	CorrectOption string    `json:"correct_option" gorm:"size:1;not null"` // A-D
	Explanation   string    `json:"explanation" gorm:"type:text"`
	Difficulty    string    `json:"difficulty" gorm:"default:'medium';size:10;index"`
	Category      string    `json:"category" gorm:"default:'history';size:20"`
	Points        int       `json:"points" gorm:"default:10"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// CricketPlayer is the admin-managed player pool for team selection.
type CricketPlayer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Country     string    `json:"country" gorm:"size:60;not null"`
	Role        string    `json:"role" gorm:"size:15;not null"`
	BattingAvg  float64   `json:"batting_avg" gorm:"default:0"`
	BowlingAvg  float64   `json:"bowling_avg" gorm:"default:0"`
	StrikeRate  float64   `json:"strike_rate" gorm:"default:0"`
	EconomyRate float64   `json:"economy_rate" gorm:"default:0"`
	RecentForm  string    `json:"recent_form" gorm:"default:'average';size:10"`
	CreditValue int       `json:"credit_value" gorm:"default:8;not null"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CricketPlayer) TableName() string {
	return "cricket_players"
}

// CricketMatch is optional reference context a room may link to.
type CricketMatch struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:200;not null"`
	Team1            string    `json:"team1" gorm:"size:80;not null"`
	Team2            string    `json:"team2" gorm:"size:80;not null"`
	Venue            string    `json:"venue" gorm:"size:150"`
	MatchType        string    `json:"match_type" gorm:"size:10"` // T20, ODI, Test
	MatchDate        time.Time `json:"match_date"`
	Status           string    `json:"status" gorm:"default:'upcoming';size:15"`
	PitchCondition   string    `json:"pitch_condition" gorm:"default:'balanced';size:10"`
	WeatherCondition string    `json:"weather_condition" gorm:"default:'sunny';size:10"`
	Result           string    `json:"result" gorm:"type:text"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (CricketMatch) TableName() string {
	return "cricket_matches"
}

// ScenarioOption is one choice in a strategy scenario.
type ScenarioOption struct {
	ID   string `json:"id"` // A-D
	Text string `json:"text"`
}

// StrategyScenario is a fixed match situation with one designated best
// option. The reference set lives in code, not the database.
type StrategyScenario struct {
	ID            uint             `json:"id"`
	Situation     string           `json:"situation"`
	Options       []ScenarioOption `json:"options"`
	CorrectOption string           `json:"correct_option,omitempty"` // withheld from clients
	Explanation   string           `json:"explanation,omitempty"`
	Points        int              `json:"points"`
}
