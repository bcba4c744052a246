// scoring/team.go - Team selection ruleset
package scoring

import (
	"crickarena/models"
)

const (
	TeamSize     = 11
	CreditBudget = 100

	budgetBonus       = 20
	wicketkeeperBonus = 10
	batsmanBandBonus  = 15
	bowlerBandBonus   = 15
	allrounderBonus   = 10
	formBonusPer      = 5

	// TeamMaxScore is the fixed sum of every attainable bonus: budget,
	// wicketkeeper, batsman band, bowler band, all-rounder, plus the form
	// bonus for all eleven players.
	TeamMaxScore = budgetBonus + wicketkeeperBonus + batsmanBandBonus + bowlerBandBonus + allrounderBonus + TeamSize*formBonusPer
)

// TeamPayload is a team-selection submission: exactly eleven distinct
// players plus captain and vice-captain picked from among them.
type TeamPayload struct {
	PlayerIDs     []uint `json:"player_ids"`
	CaptainID     uint   `json:"captain_id"`
	ViceCaptainID uint   `json:"vice_captain_id"`
}

func (TeamPayload) Mode() models.GameMode { return models.ModeTeamSelection }

// TeamBreakdown is the grading detail stored on the session.
type TeamBreakdown struct {
	PlayerIDs     []uint         `json:"player_ids"`
	CaptainID     uint           `json:"captain_id"`
	ViceCaptainID uint           `json:"vice_captain_id"`
	TotalCredits  int            `json:"total_credits"`
	RoleCounts    map[string]int `json:"role_counts"`
	Bonuses       map[string]int `json:"bonuses"`
}

// scoreTeam awards fixed bonuses for budget discipline, role balance and
// player form. Validation happens before any scoring so a malformed
// selection never produces a partial score.
func scoreTeam(p TeamPayload, ref Reference) (Result, error) {
	if len(p.PlayerIDs) != TeamSize {
		return Result{}, models.Invalid("team must have exactly %d players, got %d", TeamSize, len(p.PlayerIDs))
	}

	picked := make(map[uint]models.CricketPlayer, TeamSize)
	for _, id := range p.PlayerIDs {
		if _, dup := picked[id]; dup {
			return Result{}, models.Invalid("duplicate player id %d", id)
		}
		player, ok := ref.Players[id]
		if !ok {
			return Result{}, models.Invalid("unknown player id %d", id)
		}
		picked[id] = player
	}
	if _, ok := picked[p.CaptainID]; !ok {
		return Result{}, models.Invalid("captain must be one of the selected players")
	}
	if _, ok := picked[p.ViceCaptainID]; !ok {
		return Result{}, models.Invalid("vice-captain must be one of the selected players")
	}

	totalCredits := 0
	roles := map[string]int{}
	excellent := 0
	for _, player := range picked {
		totalCredits += player.CreditValue
		roles[player.Role]++
		if player.RecentForm == models.FormExcellent {
			excellent++
		}
	}

	bonuses := map[string]int{}
	score := 0
	if totalCredits <= CreditBudget {
		bonuses["budget"] = budgetBonus
		score += budgetBonus
	}
	if roles[models.RoleWicketkeeper] >= 1 {
		bonuses["wicketkeeper"] = wicketkeeperBonus
		score += wicketkeeperBonus
	}
	if n := roles[models.RoleBatsman]; n >= 3 && n <= 5 {
		bonuses["batsmen"] = batsmanBandBonus
		score += batsmanBandBonus
	}
	if n := roles[models.RoleBowler]; n >= 3 && n <= 5 {
		bonuses["bowlers"] = bowlerBandBonus
		score += bowlerBandBonus
	}
	if roles[models.RoleAllrounder] >= 1 {
		bonuses["allrounder"] = allrounderBonus
		score += allrounderBonus
	}
	if excellent > 0 {
		bonuses["form"] = excellent * formBonusPer
		score += excellent * formBonusPer
	}

	breakdown := TeamBreakdown{
		PlayerIDs:     p.PlayerIDs,
		CaptainID:     p.CaptainID,
		ViceCaptainID: p.ViceCaptainID,
		TotalCredits:  totalCredits,
		RoleCounts:    roles,
		Bonuses:       bonuses,
	}
	return Result{Score: score, MaxScore: TeamMaxScore, Won: Won(score, TeamMaxScore), Detail: breakdown}, nil
}
