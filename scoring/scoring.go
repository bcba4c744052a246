// scoring/scoring.go - Pure, deterministic scoring over reference content
package scoring

import (
	"crickarena/models"
)

// Reference carries the content-provider data a submission is graded
// against. Only the map relevant to the mode needs to be populated.
type Reference struct {
	Questions map[uint]models.QuizQuestion
	Players   map[uint]models.CricketPlayer
	Scenarios map[uint]models.StrategyScenario
}

// Payload is the tagged union of mode-specific submissions. Exactly one of
// QuizPayload, TeamPayload or StrategyPayload implements it.
type Payload interface {
	Mode() models.GameMode
}

// Result is the outcome of grading one submission.
type Result struct {
	Score    int         `json:"score"`
	MaxScore int         `json:"max_score"`
	Won      bool        `json:"won"`
	Detail   interface{} `json:"detail"` // graded answers or team breakdown
}

// Won applies the single shared winning policy: at least 70% of the maximum
// attainable score. Integer arithmetic avoids float comparison.
func Won(score, maxScore int) bool {
	return maxScore > 0 && score*10 >= maxScore*7
}

// Score grades a submission for the given mode. The payload variant must
// match the mode (strategy and scenario rooms share the strategy ruleset);
// a mismatch or malformed submission fails with a validation error.
func Score(mode models.GameMode, payload Payload, ref Reference) (Result, error) {
	switch p := payload.(type) {
	case QuizPayload:
		if mode != models.ModeQuiz {
			return Result{}, models.Invalid("quiz submission for %s room", mode)
		}
		return scoreQuiz(p, ref)
	case TeamPayload:
		if mode != models.ModeTeamSelection {
			return Result{}, models.Invalid("team selection submission for %s room", mode)
		}
		return scoreTeam(p, ref)
	case StrategyPayload:
		if mode != models.ModeStrategy && mode != models.ModeScenario {
			return Result{}, models.Invalid("strategy submission for %s room", mode)
		}
		return scoreStrategy(p, ref)
	}
	return Result{}, models.Invalid("unsupported submission payload")
}
