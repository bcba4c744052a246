package scoring

import (
	"errors"
	"testing"

	"crickarena/models"
)

func scenarioRef() Reference {
	return Reference{Scenarios: map[uint]models.StrategyScenario{
		1: {ID: 1, CorrectOption: "B", Points: 15},
		2: {ID: 2, CorrectOption: "C", Points: 15},
	}}
}

func TestStrategyScoring(t *testing.T) {
	payload := StrategyPayload{Answers: []StrategyAnswer{
		{ScenarioID: 1, SelectedOption: "B"},
		{ScenarioID: 2, SelectedOption: "A"},
	}}

	result, err := Score(models.ModeStrategy, payload, scenarioRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 15 || result.MaxScore != 30 {
		t.Fatalf("expected 15/30, got %d/%d", result.Score, result.MaxScore)
	}
	if result.Won {
		t.Fatalf("50%% is below the win threshold")
	}
}

func TestStrategyPayloadValidForScenarioMode(t *testing.T) {
	payload := StrategyPayload{Answers: []StrategyAnswer{
		{ScenarioID: 1, SelectedOption: "B"},
	}}

	result, err := Score(models.ModeScenario, payload, scenarioRef())
	if err != nil {
		t.Fatalf("scenario rooms share the strategy ruleset: %v", err)
	}
	if !result.Won {
		t.Fatalf("full marks should win")
	}
}

func TestStrategyDuplicateFirstWins(t *testing.T) {
	payload := StrategyPayload{Answers: []StrategyAnswer{
		{ScenarioID: 1, SelectedOption: "A"},
		{ScenarioID: 1, SelectedOption: "B"}, // ignored
	}}

	result, err := Score(models.ModeStrategy, payload, scenarioRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 0 || result.MaxScore != 15 {
		t.Fatalf("expected 0/15, got %d/%d", result.Score, result.MaxScore)
	}
}

func TestStrategyUnknownScenarioRejected(t *testing.T) {
	payload := StrategyPayload{Answers: []StrategyAnswer{
		{ScenarioID: 42, SelectedOption: "A"},
	}}

	_, err := Score(models.ModeStrategy, payload, scenarioRef())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWonThreshold(t *testing.T) {
	cases := []struct {
		score, max int
		want       bool
	}{
		{70, 100, true},
		{69, 100, false},
		{7, 10, true},
		{0, 0, false}, // empty max never wins
		{100, 100, true},
	}
	for _, tc := range cases {
		if got := Won(tc.score, tc.max); got != tc.want {
			t.Fatalf("Won(%d, %d) = %t, want %t", tc.score, tc.max, got, tc.want)
		}
	}
}
