package services

import (
	"fmt"
	"testing"

	"crickarena/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database. The single open
// connection keeps every query on the same memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.RoomParticipant{},
		&models.GameSession{},
		&models.LeaderboardEntry{},
		&models.LeaderboardPeriod{},
		&models.Friendship{},
		&models.QuizQuestion{},
		&models.CricketPlayer{},
		&models.CricketMatch{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:    username,
		Role:        models.RoleUser,
		SkillRating: 1000,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, hostID uint, mode models.GameMode, maxParticipants int) *models.Room {
	t.Helper()

	room, err := NewRoomService(db).CreateRoom(hostID, CreateRoomInput{
		Name:            "Friday Night Cricket",
		GameMode:        mode,
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func seedQuestions(t *testing.T, db *gorm.DB, n int) []models.QuizQuestion {
	t.Helper()

	questions := make([]models.QuizQuestion, n)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:      fmt.Sprintf("question %d", i+1),
			OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "A",
			Points:        10,
			IsActive:      true,
		}
	}
	if err := db.Create(&questions).Error; err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return questions
}
