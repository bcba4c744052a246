// services/leaderboard_service.go - Leaderboard Aggregator: global, friends, room standings
package services

import (
	"context"
	"encoding/json"
	"time"

	"crickarena/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	globalCacheKey  = "leaderboard:global"
	globalCacheSize = 100
	globalCacheTTL  = 30 * time.Second
)

type LeaderboardService struct {
	db           *gorm.DB
	rdb          *redis.Client // nil disables caching
	participants *ParticipantService
}

func NewLeaderboardService(db *gorm.DB, rdb *redis.Client, participants *ParticipantService) *LeaderboardService {
	return &LeaderboardService{db: db, rdb: rdb, participants: participants}
}

// Record upserts a user's aggregate entry for one completed session. It
// joins the session tracker's transaction so a completion either lands in
// full or not at all. The increments are single-statement, so sequential
// completions by the same user and concurrent completions by different
// users both accumulate without lost updates.
func (s *LeaderboardService) Record(tx *gorm.DB, userID uint, pointsEarned int, won bool) error {
	wonInc := 0
	if won {
		wonInc = 1
	}

	entry := models.LeaderboardEntry{
		UserID:        userID,
		TotalPoints:   pointsEarned,
		GamesPlayed:   1,
		GamesWon:      wonInc,
		SkillRating:   1000,
		WeeklyPoints:  pointsEarned,
		MonthlyPoints: pointsEarned,
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_points":   gorm.Expr("total_points + ?", pointsEarned),
			"games_played":   gorm.Expr("games_played + 1"),
			"games_won":      gorm.Expr("games_won + ?", wonInc),
			"weekly_points":  gorm.Expr("weekly_points + ?", pointsEarned),
			"monthly_points": gorm.Expr("monthly_points + ?", pointsEarned),
			"updated_at":     time.Now(),
		}),
	}).Create(&entry).Error
}

// GlobalTop returns the top entries by total points. Reads go through a
// short-lived Redis cache of the top 100 when Redis is configured.
func (s *LeaderboardService) GlobalTop(limit int) ([]models.LeaderboardEntry, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > globalCacheSize {
		limit = globalCacheSize
	}

	if cached, ok := s.cachedGlobal(); ok {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	entries, err := s.queryGlobal(globalCacheSize)
	if err != nil {
		return nil, err
	}
	s.cacheGlobal(entries)

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// FriendsTop returns standings restricted to the user plus their friends.
func (s *LeaderboardService) FriendsTop(userID uint, limit int) ([]models.LeaderboardEntry, error) {
	if limit < 1 || limit > globalCacheSize {
		limit = 50
	}

	ids, err := s.FriendIDs(userID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, userID)

	var entries []models.LeaderboardEntry
	err = s.db.
		Where("user_id IN ?", ids).
		Preload("User").
		Order("total_points DESC, games_won DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// RoomTop is the room leaderboard; it delegates straight to the participant
// ledger's ordering, no separate storage.
func (s *LeaderboardService) RoomTop(roomID uint) ([]models.RoomParticipant, error) {
	return s.participants.ListActive(roomID)
}

// FriendIDs reads the social graph edge list for one user.
func (s *LeaderboardService) FriendIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	return ids, err
}

// InvalidateGlobalCache drops the cached global standings after a write.
func (s *LeaderboardService) InvalidateGlobalCache() {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(context.Background(), globalCacheKey).Err()
}

func (s *LeaderboardService) queryGlobal(limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.db.
		Preload("User").
		Order("total_points DESC, games_won DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *LeaderboardService) cachedGlobal() ([]models.LeaderboardEntry, bool) {
	if s.rdb == nil {
		return nil, false
	}

	raw, err := s.rdb.Get(context.Background(), globalCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) cacheGlobal(entries []models.LeaderboardEntry) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = s.rdb.Set(context.Background(), globalCacheKey, raw, globalCacheTTL).Err()
}
