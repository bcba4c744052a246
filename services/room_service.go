// services/room_service.go - Room Registry: room lifecycle and visibility rules
package services

import (
	"fmt"
	"strings"
	"time"

	"crickarena/models"
	"crickarena/utils"

	"gorm.io/gorm"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// CreateRoomInput carries the host-supplied room configuration.
type CreateRoomInput struct {
	Name            string
	Description     string
	GameMode        models.GameMode
	Visibility      string
	EntryType       string
	MaxParticipants int
	MatchID         *uint
	Settings        string
}

// CreateRoom creates a room in waiting state and auto-enrolls the host as
// its first participant.
func (s *RoomService) CreateRoom(hostID uint, in CreateRoomInput) (*models.Room, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 100 {
		return nil, models.Invalid("room name must be 3-100 characters")
	}
	if len(in.Description) > 300 {
		return nil, models.Invalid("description must be at most 300 characters")
	}
	if !in.GameMode.Valid() {
		return nil, models.Invalid("unknown game mode %q", in.GameMode)
	}
	if in.MaxParticipants < 2 || in.MaxParticipants > 50 {
		return nil, models.Invalid("max participants must be between 2 and 50")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if visibility != models.VisibilityPublic && visibility != models.VisibilityPrivate {
		return nil, models.Invalid("unknown visibility %q", visibility)
	}
	entryType := in.EntryType
	if entryType == "" {
		entryType = models.EntryOpen
	}
	if entryType != models.EntryOpen && entryType != models.EntryInviteOnly {
		return nil, models.Invalid("unknown entry type %q", entryType)
	}

	room := &models.Room{
		HostID:              hostID,
		Name:                name,
		Description:         strings.TrimSpace(in.Description),
		RoomCode:            s.generateUniqueRoomCode(),
		GameMode:            in.GameMode,
		MatchID:             in.MatchID,
		Visibility:          visibility,
		EntryType:           entryType,
		Status:              models.RoomWaiting,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: 1,
		Settings:            in.Settings,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		host := &models.RoomParticipant{
			RoomID:   room.ID,
			UserID:   hostID,
			JoinedAt: time.Now(),
			IsActive: true,
			Score:    0,
		}
		return tx.Create(host).Error
	})
	if err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoomByCode looks a room up by its join code, case-insensitively.
func (s *RoomService) GetRoomByCode(code string) (*models.Room, error) {
	normalized := utils.NormalizeRoomCode(code)
	if !utils.ValidRoomCode(normalized) {
		return nil, models.Invalid("malformed room code %q", code)
	}

	var room models.Room
	if err := s.db.Where("room_code = ?", normalized).First(&room).Error; err != nil {
		return nil, models.ErrRoomNotFound
	}
	return &room, nil
}

// GetRoomByID retrieves a room by its numeric id.
func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return nil, models.ErrRoomNotFound
	}
	return &room, nil
}

// ListPublicRooms returns joinable public rooms, newest first.
func (s *RoomService) ListPublicRooms(limit, offset int) ([]models.Room, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rooms []models.Room
	err := s.db.
		Where("visibility = ? AND status = ?", models.VisibilityPublic, models.RoomWaiting).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rooms).Error
	return rooms, err
}

// ListHostedRooms returns rooms hosted by a user, newest first.
func (s *RoomService) ListHostedRooms(hostID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Where("host_id = ?", hostID).
		Order("created_at DESC").
		Limit(50).
		Find(&rooms).Error
	return rooms, err
}

// ListJoinedRooms returns rooms the user is an active participant of.
func (s *RoomService) ListJoinedRooms(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.
		Joins("JOIN room_participants ON room_participants.room_id = rooms.id").
		Where("room_participants.user_id = ? AND room_participants.is_active = ?", userID, true).
		Order("rooms.created_at DESC").
		Limit(50).
		Find(&rooms).Error
	return rooms, err
}

// TransitionStatus moves a room along the forward-only status machine.
// Only the host or an admin may request in_progress or cancelled; starting
// requires at least one active participant. The update is guarded on the
// observed status so concurrent transitions cannot double-apply.
func (s *RoomService) TransitionStatus(roomID uint, target models.RoomStatus, actorID uint, actorRole string) (*models.Room, error) {
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if room.HostID != actorID && actorRole != models.RoleAdmin {
		return nil, models.ErrNotHost
	}
	if !room.CanTransitionTo(target) {
		return nil, fmt.Errorf("cannot move room from %s to %s: %w", room.Status, target, models.ErrInvalidTransition)
	}
	if target == models.RoomInProgress && room.CurrentParticipants < 1 {
		return nil, fmt.Errorf("room has no active participants: %w", models.ErrStateConflict)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     target,
		"updated_at": now,
	}
	switch target {
	case models.RoomInProgress:
		updates["started_at"] = now
	case models.RoomCompleted, models.RoomCancelled:
		updates["completed_at"] = now
	}

	res := s.db.Model(&models.Room{}).
		Where("id = ? AND status = ?", room.ID, room.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("room status changed concurrently: %w", models.ErrInvalidTransition)
	}

	return s.GetRoomByID(roomID)
}

// generateUniqueRoomCode retries until an unused join code is found. The
// code space is large enough that a second round is already rare.
func (s *RoomService) generateUniqueRoomCode() string {
	for {
		code := utils.GenerateRoomCode()

		var count int64
		s.db.Model(&models.Room{}).Where("room_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
}
