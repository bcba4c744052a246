// services/content_service.go - Content Provider: quiz questions, player pool, scenarios
package services

import (
	"crickarena/models"

	"gorm.io/gorm"
)

// strategyScenarios is the fixed reference set for strategy/scenario rooms.
// Admin-managed content lives in the database; these ship with the binary.
var strategyScenarios = []models.StrategyScenario{
	{
		ID:        1,
		Situation: "Your side needs 24 off the final 2 overs with 2 wickets in hand and your best hitter on strike.",
		Options: []models.ScenarioOption{
			{ID: "A", Text: "Swing for the boundary every ball"},
			{ID: "B", Text: "Rotate strike and pick the right balls to attack"},
			{ID: "C", Text: "Block out and protect the remaining wickets"},
			{ID: "D", Text: "Take a timeout to reset the plan"},
		},
		CorrectOption: "B",
		Explanation:   "Keeping the set hitter on strike while attacking selectively balances scoring rate against the thin batting left.",
		Points:        15,
	},
	{
		ID:        2,
		Situation: "Defending on a flat pitch in a T20. Both openers are set and your frontline spinner has 4 overs left.",
		Options: []models.ScenarioOption{
			{ID: "A", Text: "Bowl the spinner out immediately"},
			{ID: "B", Text: "Hold back 2 spinner overs for the death"},
			{ID: "C", Text: "Try a medium pacer to break the stand first"},
			{ID: "D", Text: "Attack with short bowling and a ring field"},
		},
		CorrectOption: "B",
		Explanation:   "Saving spin for the death keeps variety in hand when the batting side must force the pace.",
		Points:        15,
	},
	{
		ID:        3,
		Situation: "Chasing 180, you are 60/3 after 8 overs and the required rate has climbed past ten.",
		Options: []models.ScenarioOption{
			{ID: "A", Text: "Consolidate now and accelerate in the last five"},
			{ID: "B", Text: "Attack every delivery from here"},
			{ID: "C", Text: "Target the weakest bowler and take measured risks"},
			{ID: "D", Text: "Rely on quick singles and twos"},
		},
		CorrectOption: "C",
		Explanation:   "Picking off the weakest bowler lifts the rate without gifting wickets to the frontline attack.",
		Points:        15,
	},
	{
		ID:        4,
		Situation: "Your strike bowler has 3 wickets but is leaking 12 an over. Three overs of the innings remain.",
		Options: []models.ScenarioOption{
			{ID: "A", Text: "Keep him on, wickets win games"},
			{ID: "B", Text: "Replace him with your most economical option"},
			{ID: "C", Text: "Give him one more over and reassess"},
			{ID: "D", Text: "Throw the ball to a part-time spinner"},
		},
		CorrectOption: "C",
		Explanation:   "One more over is enough to judge his rhythm without committing the whole death phase either way.",
		Points:        15,
	},
	{
		ID:        5,
		Situation: "Setting an ODI target at 280/5 after 45 overs, with a set batter joined by the tail.",
		Options: []models.ScenarioOption{
			{ID: "A", Text: "Bat conservatively to avoid being bowled out"},
			{ID: "B", Text: "Tell the tail to swing at everything"},
			{ID: "C", Text: "The set batter farms the strike and scores freely"},
			{ID: "D", Text: "Rotate strike evenly between both batters"},
		},
		CorrectOption: "C",
		Explanation:   "Farming the strike keeps the in batter facing while shielding the tail from quality bowling.",
		Points:        15,
	},
}

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// GetQuizQuestions returns up to count active questions, optionally filtered
// by difficulty, in random order.
func (s *ContentService) GetQuizQuestions(difficulty string, count int) ([]models.QuizQuestion, error) {
	if count < 1 {
		count = 10
	}
	if count > 20 {
		count = 20
	}

	q := s.db.Where("is_active = ?", true)
	if difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}

	var questions []models.QuizQuestion
	err := q.Order("RANDOM()").Limit(count).Find(&questions).Error
	return questions, err
}

// QuestionsByID loads the reference map the scoring engine grades against.
func (s *ContentService) QuestionsByID(ids []uint) (map[uint]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := s.db.Where("id IN ? AND is_active = ?", ids, true).Find(&questions).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID, nil
}

// GetPlayerPool returns the active cricket player pool for team selection.
func (s *ContentService) GetPlayerPool() ([]models.CricketPlayer, error) {
	var players []models.CricketPlayer
	err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&players).Error
	return players, err
}

// PlayersByID loads the player pool keyed by id.
func (s *ContentService) PlayersByID() (map[uint]models.CricketPlayer, error) {
	players, err := s.GetPlayerPool()
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.CricketPlayer, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}

// GetStrategyScenarios returns a copy of the fixed scenario set.
func (s *ContentService) GetStrategyScenarios() []models.StrategyScenario {
	out := make([]models.StrategyScenario, len(strategyScenarios))
	copy(out, strategyScenarios)
	return out
}

// ScenariosByID returns the scenario reference map for scoring.
func (s *ContentService) ScenariosByID() map[uint]models.StrategyScenario {
	byID := make(map[uint]models.StrategyScenario, len(strategyScenarios))
	for _, sc := range strategyScenarios {
		byID[sc.ID] = sc
	}
	return byID
}

// SanitizedQuestion is the client-facing question shape with the correct
// option and explanation withheld.
type SanitizedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	OptionC    string `json:"option_c"`
	OptionD    string `json:"option_d"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Points     int    `json:"points"`
}

// SanitizeQuestions strips answers from quiz questions.
func SanitizeQuestions(questions []models.QuizQuestion) []SanitizedQuestion {
	out := make([]SanitizedQuestion, len(questions))
	for i, q := range questions {
		out[i] = SanitizedQuestion{
			ID:         q.ID,
			Question:   q.Question,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			Difficulty: q.Difficulty,
			Category:   q.Category,
			Points:     q.Points,
		}
	}
	return out
}

// SanitizeScenarios strips the designated best option from scenarios.
func SanitizeScenarios(scenarios []models.StrategyScenario) []models.StrategyScenario {
	out := make([]models.StrategyScenario, len(scenarios))
	for i, sc := range scenarios {
		sc.CorrectOption = ""
		sc.Explanation = ""
		out[i] = sc
	}
	return out
}
