// handlers/rooms.go - Room lifecycle HTTP endpoints
package handlers

import (
	"log"
	"strconv"

	"crickarena/database"
	"crickarena/middleware"
	"crickarena/models"
	"crickarena/services"

	"github.com/gofiber/fiber/v2"
)

var (
	roomService        *services.RoomService
	participantService *services.ParticipantService
)

// InitRoomHandlers initializes the room and participant services
func InitRoomHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitRoomHandlers")
	}
	roomService = services.NewRoomService(db)
	participantService = services.NewParticipantService(db)
}

type CreateRoomRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	GameMode        string `json:"game_mode"`
	Visibility      string `json:"visibility"`
	EntryType       string `json:"entry_type"`
	MaxParticipants int    `json:"max_participants"`
	MatchID         *uint  `json:"match_id,omitempty"`
	Settings        string `json:"settings,omitempty"`
}

// CreateRoom creates a new game room with the caller as host
// POST /api/rooms
func CreateRoom(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	room, err := roomService.CreateRoom(userID, services.CreateRoomInput{
		Name:            req.Name,
		Description:     req.Description,
		GameMode:        models.GameMode(req.GameMode),
		Visibility:      req.Visibility,
		EntryType:       req.EntryType,
		MaxParticipants: req.MaxParticipants,
		MatchID:         req.MatchID,
		Settings:        req.Settings,
	})
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("🏏 Room %s created by user %d (%s)", room.RoomCode, userID, room.GameMode)

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"room":    room,
	})
}

// ListPublicRooms lists joinable public rooms, newest first
// GET /api/rooms?limit=20&offset=0
func ListPublicRooms(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	rooms, err := roomService.ListPublicRooms(limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rooms":   rooms,
		"count":   len(rooms),
	})
}

// GetRoomByCode looks up a room by its shareable join code
// GET /api/rooms/code/:code
func GetRoomByCode(c *fiber.Ctx) error {
	room, err := roomService.GetRoomByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"room":    room,
	})
}

// GetRoom returns a room with its active participants
// GET /api/rooms/:id
func GetRoom(c *fiber.Ctx) error {
	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	room, err := roomService.GetRoomByID(roomID)
	if err != nil {
		return respondError(c, err)
	}

	participants, err := participantService.ListActive(roomID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"room":         room,
		"participants": participants,
	})
}

// JoinRoom adds the caller to a waiting room
// POST /api/rooms/:id/join
func JoinRoom(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	participant, err := participantService.Join(roomID, userID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("👥 User %d joined room %d", userID, roomID)
	lobbyBroadcast(roomID, lobbyEvent{Type: "participant_joined", RoomID: roomID, UserID: userID})

	return c.JSON(fiber.Map{
		"success":     true,
		"participant": participant,
	})
}

// LeaveRoom removes the caller from a room. Leaving twice is a no-op.
// POST /api/rooms/:id/leave
func LeaveRoom(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := participantService.Leave(roomID, userID); err != nil {
		return respondError(c, err)
	}

	lobbyBroadcast(roomID, lobbyEvent{Type: "participant_left", RoomID: roomID, UserID: userID})

	return c.JSON(fiber.Map{"success": true})
}

// StartRoom moves a waiting room to in_progress. Host only.
// POST /api/rooms/:id/start
func StartRoom(c *fiber.Ctx) error {
	return transitionRoom(c, models.RoomInProgress, "game_started")
}

// CancelRoom cancels a waiting or in-progress room. Host only.
// POST /api/rooms/:id/cancel
func CancelRoom(c *fiber.Ctx) error {
	return transitionRoom(c, models.RoomCancelled, "room_cancelled")
}

func transitionRoom(c *fiber.Ctx, target models.RoomStatus, eventType string) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	room, err := roomService.TransitionStatus(roomID, target, userID, middleware.GetUserRole(c))
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("🎮 Room %d -> %s by user %d", roomID, target, userID)
	lobbyBroadcast(roomID, lobbyEvent{Type: eventType, RoomID: roomID, UserID: userID})

	return c.JSON(fiber.Map{
		"success": true,
		"room":    room,
	})
}

// MyHostedRooms lists rooms the caller hosts
// GET /api/rooms/mine/hosted
func MyHostedRooms(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	rooms, err := roomService.ListHostedRooms(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rooms":   rooms,
	})
}

// MyJoinedRooms lists rooms the caller is an active participant of
// GET /api/rooms/mine/joined
func MyJoinedRooms(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	rooms, err := roomService.ListJoinedRooms(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rooms":   rooms,
	})
}

// ReconcileRoomCount repairs a room's participant counter from the ledger
// POST /api/admin/rooms/:id/reconcile
func ReconcileRoomCount(c *fiber.Ctx) error {
	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	count, err := participantService.ReconcileCount(roomID)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("🔧 Room %d participant count reconciled to %d", roomID, count)

	return c.JSON(fiber.Map{
		"success":              true,
		"current_participants": count,
	})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, models.Invalid("invalid %s parameter", name)
	}
	return uint(id), nil
}
