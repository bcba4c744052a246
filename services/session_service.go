// services/session_service.go - Session Tracker: one playthrough per (room, user)
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crickarena/models"
	"crickarena/scoring"

	"gorm.io/gorm"
)

type SessionService struct {
	db           *gorm.DB
	content      *ContentService
	participants *ParticipantService
	leaderboard  *LeaderboardService
}

func NewSessionService(db *gorm.DB, content *ContentService, participants *ParticipantService, leaderboard *LeaderboardService) *SessionService {
	return &SessionService{
		db:           db,
		content:      content,
		participants: participants,
		leaderboard:  leaderboard,
	}
}

// Start begins a playthrough for a participant of an in-progress room. A
// second start for the same (room, user) returns the existing active
// session unchanged, so client retries cannot create duplicates.
func (s *SessionService) Start(roomID, userID uint) (*models.GameSession, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return nil, models.ErrRoomNotFound
	}
	if room.Status != models.RoomInProgress {
		return nil, models.ErrRoomNotInProgress
	}
	if !s.participants.IsActiveParticipant(roomID, userID) {
		return nil, models.ErrNotParticipant
	}

	var existing models.GameSession
	err := s.db.
		Where("room_id = ? AND user_id = ? AND status = ?", roomID, userID, models.SessionActive).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session := &models.GameSession{
		RoomID:   roomID,
		UserID:   userID,
		GameMode: room.GameMode, // copied so later room edits cannot change the ruleset mid-play
		Status:   models.SessionActive,
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Submit grades the payload and completes the session. Session completion,
// the participant score write, the leaderboard upsert and the user stat
// increments land in one transaction; a failure anywhere leaves the session
// active and resubmittable. The guarded status update makes completion
// exactly-once even under concurrent submits.
func (s *SessionService) Submit(sessionID, userID uint, payload scoring.Payload, timeTakenSeconds int) (*scoring.Result, error) {
	var session models.GameSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, models.ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session belongs to another user: %w", models.ErrUnauthorized)
	}
	if session.Status != models.SessionActive {
		return nil, models.ErrSessionCompleted
	}

	ref, err := s.referenceFor(session.GameMode, payload)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Score(session.GameMode, payload, ref)
	if err != nil {
		return nil, err
	}

	detailJSON, err := json.Marshal(result.Detail)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"status":             models.SessionCompleted,
			"score":              result.Score,
			"max_score":          result.MaxScore,
			"time_taken_seconds": timeTakenSeconds,
			"completed_at":       now,
		}
		switch session.GameMode {
		case models.ModeQuiz:
			updates["answers"] = string(detailJSON)
		case models.ModeTeamSelection:
			updates["team_selection"] = string(detailJSON)
		default:
			updates["strategy_choices"] = string(detailJSON)
		}

		res := tx.Model(&models.GameSession{}).
			Where("id = ? AND status = ?", session.ID, models.SessionActive).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrSessionCompleted
		}

		if err := s.participants.SetScore(tx, session.RoomID, session.UserID, result.Score); err != nil {
			return err
		}
		if err := s.leaderboard.Record(tx, session.UserID, result.Score, result.Won); err != nil {
			return err
		}

		wonInc := 0
		if result.Won {
			wonInc = 1
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", session.UserID).
			Updates(map[string]interface{}{
				"total_games_played": gorm.Expr("total_games_played + 1"),
				"total_games_won":    gorm.Expr("total_games_won + ?", wonInc),
				"total_points":       gorm.Expr("total_points + ?", result.Score),
			}).Error; err != nil {
			return err
		}

		return s.maybeCompleteRoom(tx, session.RoomID)
	})
	if err != nil {
		return nil, err
	}

	s.leaderboard.InvalidateGlobalCache()
	return &result, nil
}

// History returns a user's completed and active sessions, newest first.
func (s *SessionService) History(userID uint, limit int) ([]models.GameSession, error) {
	if limit < 1 || limit > 50 {
		limit = 50
	}

	var sessions []models.GameSession
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// referenceFor assembles the content the scoring engine needs for one
// submission. Only ids the client actually submitted are loaded for quiz
// mode; the scoring engine rejects any id the lookup did not resolve.
func (s *SessionService) referenceFor(mode models.GameMode, payload scoring.Payload) (scoring.Reference, error) {
	switch p := payload.(type) {
	case scoring.QuizPayload:
		ids := make([]uint, 0, len(p.Answers))
		for _, a := range p.Answers {
			ids = append(ids, a.QuestionID)
		}
		questions, err := s.content.QuestionsByID(ids)
		if err != nil {
			return scoring.Reference{}, err
		}
		return scoring.Reference{Questions: questions}, nil
	case scoring.TeamPayload:
		players, err := s.content.PlayersByID()
		if err != nil {
			return scoring.Reference{}, err
		}
		return scoring.Reference{Players: players}, nil
	case scoring.StrategyPayload:
		return scoring.Reference{Scenarios: s.content.ScenariosByID()}, nil
	}
	return scoring.Reference{}, models.Invalid("unsupported submission payload for %s session", mode)
}

// maybeCompleteRoom finishes the room once every active participant has a
// completed session, stamping completion time and final ranks.
func (s *SessionService) maybeCompleteRoom(tx *gorm.DB, roomID uint) error {
	var remaining int64
	err := tx.Raw(`
		SELECT COUNT(*) FROM room_participants p
		WHERE p.room_id = ? AND p.is_active = ?
		AND NOT EXISTS (
			SELECT 1 FROM game_sessions gs
			WHERE gs.room_id = p.room_id AND gs.user_id = p.user_id AND gs.status = ?
		)`, roomID, true, models.SessionCompleted).Scan(&remaining).Error
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	now := time.Now()
	res := tx.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, models.RoomInProgress).
		Updates(map[string]interface{}{
			"status":       models.RoomCompleted,
			"completed_at": now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Already terminal, nothing to rank.
		return nil
	}

	return s.participants.AssignRanks(tx, roomID)
}
