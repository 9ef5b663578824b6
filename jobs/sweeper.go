package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"yelpcamp/models"
)

// Sweeper periodically removes reviews whose owning campground no longer
// resolves. Review writes and the campground cascade are transactional, so
// orphans should never appear; the sweeper is the compensating action in case
// a partial write ever slips through.
type Sweeper struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewSweeper(db *gorm.DB) *Sweeper {
	return &Sweeper{db: db, cron: cron.New()}
}

// Start schedules the sweep. The schedule uses cron syntax ("@hourly", "0 * * * *", ...).
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() {
		removed, err := s.SweepOrphanReviews()
		if err != nil {
			log.Printf("[REVIEW-SWEEPER] Sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("[REVIEW-SWEEPER] Removed %d orphaned reviews", removed)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[REVIEW-SWEEPER] Started with schedule %q", schedule)
	return nil
}

// Stop halts the scheduler. A sweep already running finishes.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// SweepOrphanReviews deletes every review whose campground id does not
// resolve and reports how many were removed.
func (s *Sweeper) SweepOrphanReviews() (int64, error) {
	result := s.db.
		Where("campground_id NOT IN (?)", s.db.Model(&models.Campground{}).Select("id")).
		Delete(&models.Review{})
	return result.RowsAffected, result.Error
}
