package scoring

import (
	"errors"
	"testing"

	"crickarena/models"
)

// balancedPool builds a pool where ids 1-11 form a valid, on-budget side:
// 4 batsmen, 4 bowlers, 2 all-rounders and a wicketkeeper, all in excellent
// form at 9 credits each (99 total).
func balancedPool() map[uint]models.CricketPlayer {
	pool := make(map[uint]models.CricketPlayer)
	roles := []string{
		models.RoleBatsman, models.RoleBatsman, models.RoleBatsman, models.RoleBatsman,
		models.RoleBowler, models.RoleBowler, models.RoleBowler, models.RoleBowler,
		models.RoleAllrounder, models.RoleAllrounder,
		models.RoleWicketkeeper,
	}
	for i, role := range roles {
		id := uint(i + 1)
		pool[id] = models.CricketPlayer{
			ID:          id,
			Name:        "player",
			Role:        role,
			RecentForm:  models.FormExcellent,
			CreditValue: 9,
		}
	}
	// Extras for substitution tests.
	pool[20] = models.CricketPlayer{ID: 20, Name: "pricey", Role: models.RoleBatsman, RecentForm: models.FormPoor, CreditValue: 30}
	return pool
}

func ids(n int) []uint {
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(i + 1)
	}
	return out
}

func TestTeamFullBonusSweep(t *testing.T) {
	payload := TeamPayload{PlayerIDs: ids(11), CaptainID: 1, ViceCaptainID: 2}

	result, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != TeamMaxScore {
		t.Fatalf("expected the full %d, got %d", TeamMaxScore, result.Score)
	}
	if result.MaxScore != TeamMaxScore || !result.Won {
		t.Fatalf("expected max %d and a win, got max=%d won=%t", TeamMaxScore, result.MaxScore, result.Won)
	}

	breakdown, ok := result.Detail.(TeamBreakdown)
	if !ok {
		t.Fatalf("expected TeamBreakdown detail, got %T", result.Detail)
	}
	if breakdown.TotalCredits != 99 {
		t.Fatalf("expected 99 credits, got %d", breakdown.TotalCredits)
	}
	if breakdown.Bonuses["form"] != 11*formBonusPer {
		t.Fatalf("expected full form bonus, got %d", breakdown.Bonuses["form"])
	}
}

func TestTeamOverBudgetLosesBudgetBonus(t *testing.T) {
	// Swap a 9-credit batsman for the 30-credit one: 120 total.
	selection := ids(11)
	selection[0] = 20

	payload := TeamPayload{PlayerIDs: selection, CaptainID: 2, ViceCaptainID: 3}
	result, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	breakdown := result.Detail.(TeamBreakdown)
	if _, got := breakdown.Bonuses["budget"]; got {
		t.Fatalf("over-budget team must not earn the budget bonus")
	}
	// One excellent-form player replaced by a poor-form one.
	if breakdown.Bonuses["form"] != 10*formBonusPer {
		t.Fatalf("expected form bonus for 10 players, got %d", breakdown.Bonuses["form"])
	}
}

func TestTeamWrongSizeRejected(t *testing.T) {
	for _, n := range []int{0, 10, 12} {
		payload := TeamPayload{PlayerIDs: ids(n), CaptainID: 1, ViceCaptainID: 2}
		_, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
		if !errors.Is(err, models.ErrValidation) {
			t.Fatalf("size %d: expected validation error, got %v", n, err)
		}
	}
}

func TestTeamDuplicatePlayerRejected(t *testing.T) {
	selection := ids(11)
	selection[10] = selection[0]

	payload := TeamPayload{PlayerIDs: selection, CaptainID: 1, ViceCaptainID: 2}
	_, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTeamUnknownPlayerRejected(t *testing.T) {
	selection := ids(11)
	selection[5] = 999

	payload := TeamPayload{PlayerIDs: selection, CaptainID: 1, ViceCaptainID: 2}
	_, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTeamCaptainMustBeSelected(t *testing.T) {
	payload := TeamPayload{PlayerIDs: ids(11), CaptainID: 20, ViceCaptainID: 2}
	_, err := Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for outside captain, got %v", err)
	}

	payload = TeamPayload{PlayerIDs: ids(11), CaptainID: 1, ViceCaptainID: 20}
	_, err = Score(models.ModeTeamSelection, payload, Reference{Players: balancedPool()})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for outside vice-captain, got %v", err)
	}
}
