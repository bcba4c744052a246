// scoring/strategy.go - Strategy/scenario ruleset
package scoring

import (
	"crickarena/models"
)

// StrategyAnswer is one submitted scenario choice.
type StrategyAnswer struct {
	ScenarioID     uint   `json:"scenario_id"`
	SelectedOption string `json:"selected_option"` // A-D
}

// StrategyPayload is a strategy or scenario submission.
type StrategyPayload struct {
	Answers []StrategyAnswer `json:"answers"`
}

func (StrategyPayload) Mode() models.GameMode { return models.ModeStrategy }

// GradedChoice is the per-scenario grading detail stored on the session.
type GradedChoice struct {
	ScenarioID     uint   `json:"scenario_id"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	PointsEarned   int    `json:"points_earned"`
	Explanation    string `json:"explanation,omitempty"`
}

// scoreStrategy awards each scenario's point value when the designated best
// option is chosen. Duplicate scenario ids count once (first occurrence
// wins); unknown ids reject the submission.
func scoreStrategy(p StrategyPayload, ref Reference) (Result, error) {
	if len(p.Answers) == 0 {
		return Result{}, models.Invalid("no answers submitted")
	}

	seen := make(map[uint]bool, len(p.Answers))
	graded := make([]GradedChoice, 0, len(p.Answers))
	score, maxScore := 0, 0

	for _, a := range p.Answers {
		if !validOption(a.SelectedOption) {
			return Result{}, models.Invalid("invalid option %q for scenario %d", a.SelectedOption, a.ScenarioID)
		}
		if seen[a.ScenarioID] {
			continue
		}
		seen[a.ScenarioID] = true

		s, ok := ref.Scenarios[a.ScenarioID]
		if !ok {
			return Result{}, models.Invalid("unknown scenario id %d", a.ScenarioID)
		}

		correct := s.CorrectOption == a.SelectedOption
		pts := 0
		if correct {
			pts = s.Points
		}
		score += pts
		maxScore += s.Points
		graded = append(graded, GradedChoice{
			ScenarioID:     a.ScenarioID,
			SelectedOption: a.SelectedOption,
			CorrectOption:  s.CorrectOption,
			IsCorrect:      correct,
			PointsEarned:   pts,
			Explanation:    s.Explanation,
		})
	}

	return Result{Score: score, MaxScore: maxScore, Won: Won(score, maxScore), Detail: graded}, nil
}
