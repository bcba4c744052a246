// services/participant_service.go - Participant Ledger: room membership and per-room scores
package services

import (
	"errors"
	"time"

	"crickarena/models"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db *gorm.DB
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{db: db}
}

// Join adds a user to a room. The capacity check and counter increment are
// a single guarded UPDATE, so concurrent joins cannot overfill the room. A
// previously-left participant row is reactivated instead of duplicated; its
// score and original join time survive the rejoin.
func (s *ParticipantService) Join(roomID, userID uint) (*models.RoomParticipant, error) {
	var participant *models.RoomParticipant

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ? AND current_participants < max_participants", roomID, models.RoomWaiting).
			UpdateColumn("current_participants", gorm.Expr("current_participants + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Classify the refusal for the caller.
			var room models.Room
			if err := tx.First(&room, roomID).Error; err != nil {
				return models.ErrRoomNotFound
			}
			if room.Status != models.RoomWaiting {
				return models.ErrRoomNotJoinable
			}
			return models.ErrRoomFull
		}

		var existing models.RoomParticipant
		err := tx.Where("room_id = ? AND user_id = ?", roomID, userID).First(&existing).Error
		switch {
		case err == nil:
			if existing.IsActive {
				// Rolling back also undoes the counter increment.
				return models.ErrAlreadyJoined
			}
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"is_active": true,
				"left_at":   nil,
			}).Error; err != nil {
				return err
			}
			existing.IsActive = true
			existing.LeftAt = nil
			participant = &existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := &models.RoomParticipant{
				RoomID:   roomID,
				UserID:   userID,
				JoinedAt: time.Now(),
				IsActive: true,
				Score:    0,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			participant = row
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return participant, nil
}

// Leave deactivates a participant and decrements the room counter. Leaving
// a room the user is not an active member of is a no-op success.
func (s *ParticipantService) Leave(roomID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.RoomParticipant{}).
			Where("room_id = ? AND user_id = ? AND is_active = ?", roomID, userID, true).
			Updates(map[string]interface{}{
				"is_active": false,
				"left_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// Guarded so the counter can never go below zero.
		return tx.Model(&models.Room{}).
			Where("id = ? AND current_participants > 0", roomID).
			UpdateColumn("current_participants", gorm.Expr("current_participants - 1")).Error
	})
}

// ListActive returns the room leaderboard: active participants ordered by
// descending score, ties broken by join order.
func (s *ParticipantService) ListActive(roomID uint) ([]models.RoomParticipant, error) {
	var participants []models.RoomParticipant
	err := s.db.
		Where("room_id = ? AND is_active = ?", roomID, true).
		Preload("User").
		Order("score DESC, joined_at ASC, id ASC").
		Find(&participants).Error
	return participants, err
}

// SetScore writes a participant's room score. Called exactly once per
// participant by the session tracker inside its completion transaction.
func (s *ParticipantService) SetScore(tx *gorm.DB, roomID, userID uint, score int) error {
	res := tx.Model(&models.RoomParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Update("score", score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotParticipant
	}
	return nil
}

// IsActiveParticipant reports whether the user currently belongs to the room.
func (s *ParticipantService) IsActiveParticipant(roomID, userID uint) bool {
	var count int64
	s.db.Model(&models.RoomParticipant{}).
		Where("room_id = ? AND user_id = ? AND is_active = ?", roomID, userID, true).
		Count(&count)
	return count > 0
}

// AssignRanks stamps final ranks (1..N) on active participants once a room
// completes, in leaderboard order.
func (s *ParticipantService) AssignRanks(tx *gorm.DB, roomID uint) error {
	var participants []models.RoomParticipant
	if err := tx.
		Where("room_id = ? AND is_active = ?", roomID, true).
		Order("score DESC, joined_at ASC, id ASC").
		Find(&participants).Error; err != nil {
		return err
	}

	for i := range participants {
		rank := i + 1
		if err := tx.Model(&models.RoomParticipant{}).
			Where("id = ?", participants[i].ID).
			Update("rank", rank).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReconcileCount repairs the denormalized participant counter from the
// ledger rows and returns the true count. The counter is only ever moved by
// guarded atomic updates, so this exists to fix drift from manual
// intervention.
func (s *ParticipantService) ReconcileCount(roomID uint) (int, error) {
	var count int64
	if err := s.db.Model(&models.RoomParticipant{}).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}

	err := s.db.Model(&models.Room{}).
		Where("id = ?", roomID).
		UpdateColumn("current_participants", count).Error
	return int(count), err
}
