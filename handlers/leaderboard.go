// handlers/leaderboard.go - Global, friends and room standings plus the friend graph
package handlers

import (
	"strconv"

	"crickarena/database"
	"crickarena/middleware"
	"crickarena/models"
	"crickarena/services"

	"github.com/gofiber/fiber/v2"
)

var leaderboardService *services.LeaderboardService

// InitLeaderboardHandlers initializes the leaderboard service. Room handlers
// must be initialized first; room standings come from the participant ledger.
func InitLeaderboardHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitLeaderboardHandlers")
	}
	if participantService == nil {
		panic("Room handlers must be initialized before InitLeaderboardHandlers")
	}
	leaderboardService = services.NewLeaderboardService(db, database.GetRedis(), participantService)
}

// GlobalLeaderboard returns the top players by total points
// GET /api/leaderboard?limit=50
func GlobalLeaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	entries, err := leaderboardService.GlobalTop(limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
	})
}

// FriendsLeaderboard returns standings among the caller and their friends
// GET /api/leaderboard/friends?limit=50
func FriendsLeaderboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	entries, err := leaderboardService.FriendsTop(userID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"entries": entries,
	})
}

// RoomLeaderboard returns the live standings within a room
// GET /api/rooms/:id/leaderboard
func RoomLeaderboard(c *fiber.Ctx) error {
	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if _, err := roomService.GetRoomByID(roomID); err != nil {
		return respondError(c, err)
	}

	participants, err := leaderboardService.RoomTop(roomID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"standings": participants,
	})
}

type FriendRequest struct {
	FriendID uint `json:"friend_id"`
}

// AddFriend adds a directed friend edge for the caller
// POST /api/friends
func AddFriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req FriendRequest
	if err := c.BodyParser(&req); err != nil || req.FriendID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "friend_id required"})
	}
	if req.FriendID == userID {
		return respondError(c, models.Invalid("cannot befriend yourself"))
	}

	db := database.GetDB()

	var friend models.User
	if err := db.First(&friend, req.FriendID).Error; err != nil {
		return respondError(c, models.ErrUserNotFound)
	}

	edge := models.Friendship{UserID: userID, FriendID: req.FriendID}
	if err := db.Where(edge).FirstOrCreate(&edge).Error; err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true})
}

// RemoveFriend deletes the caller's friend edge. Removing a friend that was
// never added succeeds.
// DELETE /api/friends/:id
func RemoveFriend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	friendID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	db := database.GetDB()
	if err := db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friendship{}).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListFriends lists the caller's friends
// GET /api/friends
func ListFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	ids, err := leaderboardService.FriendIDs(userID)
	if err != nil {
		return respondError(c, err)
	}

	var friends []models.User
	if len(ids) > 0 {
		db := database.GetDB()
		if err := db.Where("id IN ?", ids).Find(&friends).Error; err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"friends": friends,
	})
}
