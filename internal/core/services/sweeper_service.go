package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// SweeperService runs the scheduled expiry check for transient
// notifications, so a stale message never outlives its TTL even when no
// request comes in to replace it.
type SweeperService struct {
	views *ViewService
	cron  *cron.Cron
}

// NewSweeperService creates a sweeper for the given view coordinator
func NewSweeperService(views *ViewService) *SweeperService {
	return &SweeperService{
		views: views,
		cron:  cron.New(cron.WithSeconds()),
	}
}

// Start schedules the sweep every second
func (s *SweeperService) Start() {
	if _, err := s.cron.AddFunc("* * * * * *", s.views.SweepExpired); err != nil {
		log.Printf("❌ Failed to schedule notification sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 Notification sweeper started")
}

// Stop stops the scheduler
func (s *SweeperService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Notification sweeper stopped")
}
