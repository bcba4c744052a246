// handlers/games.go - Game content, sessions and submissions
package handlers

import (
	"log"
	"strconv"

	"crickarena/database"
	"crickarena/middleware"
	"crickarena/models"
	"crickarena/scoring"
	"crickarena/services"

	"github.com/gofiber/fiber/v2"
)

var (
	contentService *services.ContentService
	sessionService *services.SessionService
)

// InitGameHandlers initializes the content and session services. Room and
// leaderboard handlers must be initialized first; the session tracker writes
// through both.
func InitGameHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitGameHandlers")
	}
	if participantService == nil || leaderboardService == nil {
		panic("Room and leaderboard handlers must be initialized before InitGameHandlers")
	}
	contentService = services.NewContentService(db)
	sessionService = services.NewSessionService(db, contentService, participantService, leaderboardService)
}

// GetQuizQuestions returns sanitized quiz questions for a room's game
// GET /api/games/quiz/questions?difficulty=easy&count=10
func GetQuizQuestions(c *fiber.Ctx) error {
	count, _ := strconv.Atoi(c.Query("count", "10"))

	questions, err := contentService.GetQuizQuestions(c.Query("difficulty"), count)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"questions": services.SanitizeQuestions(questions),
	})
}

// GetPlayerPool returns the cricket player pool for team selection
// GET /api/games/team/players
func GetPlayerPool(c *fiber.Ctx) error {
	players, err := contentService.GetPlayerPool()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"players": players,
	})
}

// GetScenarios returns sanitized strategy scenarios
// GET /api/games/strategy/scenarios
func GetScenarios(c *fiber.Ctx) error {
	scenarios := services.SanitizeScenarios(contentService.GetStrategyScenarios())

	return c.JSON(fiber.Map{
		"success":   true,
		"scenarios": scenarios,
	})
}

// StartSession begins (or resumes) the caller's playthrough in a room
// POST /api/rooms/:id/sessions
func StartSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	roomID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	session, err := sessionService.Start(roomID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"session": session,
	})
}

type SubmitQuizRequest struct {
	Answers          []scoring.QuizAnswer `json:"answers"`
	TimeTakenSeconds int                  `json:"time_taken_seconds"`
}

// SubmitQuiz grades and completes a quiz session
// POST /api/sessions/:id/submit/quiz
func SubmitQuiz(c *fiber.Ctx) error {
	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	return submitSession(c, scoring.QuizPayload{Answers: req.Answers}, req.TimeTakenSeconds)
}

type SubmitTeamRequest struct {
	PlayerIDs        []uint `json:"player_ids"`
	CaptainID        uint   `json:"captain_id"`
	ViceCaptainID    uint   `json:"vice_captain_id"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// SubmitTeam grades and completes a team-selection session
// POST /api/sessions/:id/submit/team
func SubmitTeam(c *fiber.Ctx) error {
	var req SubmitTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	payload := scoring.TeamPayload{
		PlayerIDs:     req.PlayerIDs,
		CaptainID:     req.CaptainID,
		ViceCaptainID: req.ViceCaptainID,
	}
	return submitSession(c, payload, req.TimeTakenSeconds)
}

type SubmitStrategyRequest struct {
	Answers          []scoring.StrategyAnswer `json:"answers"`
	TimeTakenSeconds int                      `json:"time_taken_seconds"`
}

// SubmitStrategy grades and completes a strategy or scenario session
// POST /api/sessions/:id/submit/strategy
func SubmitStrategy(c *fiber.Ctx) error {
	var req SubmitStrategyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	return submitSession(c, scoring.StrategyPayload{Answers: req.Answers}, req.TimeTakenSeconds)
}

func submitSession(c *fiber.Ctx, payload scoring.Payload, timeTakenSeconds int) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	sessionID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	result, err := sessionService.Submit(sessionID, userID, payload, timeTakenSeconds)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("🏆 Session %d completed by user %d: %d/%d (won=%t)",
		sessionID, userID, result.Score, result.MaxScore, result.Won)

	return c.JSON(fiber.Map{
		"success":   true,
		"score":     result.Score,
		"max_score": result.MaxScore,
		"won":       result.Won,
		"detail":    result.Detail,
	})
}

// SessionHistory lists the caller's sessions, newest first
// GET /api/sessions/history?limit=20
func SessionHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	sessions, err := sessionService.History(userID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
	})
}

// ValidateTeam dry-runs a team selection against the current player pool
// without a session, so clients can check picks while building.
// POST /api/games/team/validate
func ValidateTeam(c *fiber.Ctx) error {
	var req SubmitTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	players, err := contentService.PlayersByID()
	if err != nil {
		return respondError(c, err)
	}

	payload := scoring.TeamPayload{
		PlayerIDs:     req.PlayerIDs,
		CaptainID:     req.CaptainID,
		ViceCaptainID: req.ViceCaptainID,
	}
	result, err := scoring.Score(models.ModeTeamSelection, payload, scoring.Reference{Players: players})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"score":     result.Score,
		"max_score": result.MaxScore,
		"detail":    result.Detail,
	})
}
