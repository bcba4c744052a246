// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"crickarena/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

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
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes AutoMigrate's tags don't cover.
func createCoreIndexes() {
	db := GetDB()

	// Room discovery and leaderboard ordering
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_public_waiting ON rooms(visibility, status, created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participants_room_score ON room_participants(room_id, score DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_sessions_room_user ON game_sessions(room_id, user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_leaderboard_points ON leaderboard_entries(total_points DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_questions_difficulty ON quiz_questions(difficulty, is_active)")
}
