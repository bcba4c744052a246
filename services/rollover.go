// services/rollover.go - Weekly/monthly leaderboard point rollover
package services

import (
	"fmt"
	"log"
	"time"

	"crickarena/models"

	"gorm.io/gorm"
)

// RolloverService zeroes the rolling weekly and monthly point columns when
// the calendar period changes. The current period keys live in a single
// leaderboard_periods row so restarts pick up where the last run left off.
type RolloverService struct {
	db   *gorm.DB
	stop chan struct{}
}

var rolloverService *RolloverService

// InitRolloverService initializes the singleton rollover service.
func InitRolloverService(db *gorm.DB) {
	rolloverService = &RolloverService{db: db, stop: make(chan struct{})}
}

// GetRolloverService returns the initialized rollover service.
func GetRolloverService() *RolloverService {
	return rolloverService
}

// Start runs one rollover check immediately and then hourly.
func (s *RolloverService) Start() {
	if err := s.RolloverIfDue(time.Now().UTC()); err != nil {
		log.Printf("Leaderboard rollover check failed: %v", err)
	}

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := s.RolloverIfDue(time.Now().UTC()); err != nil {
					log.Printf("Leaderboard rollover check failed: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop stops the background ticker.
func (s *RolloverService) Stop() {
	close(s.stop)
}

// RolloverIfDue resets weekly/monthly points when the ISO week or calendar
// month key has moved on since the last recorded period.
func (s *RolloverService) RolloverIfDue(now time.Time) error {
	weekKey := isoWeekKey(now)
	monthKey := now.Format("2006-01")

	return s.db.Transaction(func(tx *gorm.DB) error {
		var period models.LeaderboardPeriod
		err := tx.Where(models.LeaderboardPeriod{ID: 1}).
			Attrs(models.LeaderboardPeriod{WeekKey: weekKey, MonthKey: monthKey}).
			FirstOrCreate(&period).Error
		if err != nil {
			return err
		}

		changed := false
		if period.WeekKey != weekKey {
			if err := tx.Model(&models.LeaderboardEntry{}).
				Where("weekly_points <> 0").
				Update("weekly_points", 0).Error; err != nil {
				return err
			}
			period.WeekKey = weekKey
			changed = true
			log.Printf("🔄 Weekly leaderboard points reset for %s", weekKey)
		}
		if period.MonthKey != monthKey {
			if err := tx.Model(&models.LeaderboardEntry{}).
				Where("monthly_points <> 0").
				Update("monthly_points", 0).Error; err != nil {
				return err
			}
			period.MonthKey = monthKey
			changed = true
			log.Printf("🔄 Monthly leaderboard points reset for %s", monthKey)
		}

		if !changed {
			return nil
		}
		return tx.Save(&period).Error
	})
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
