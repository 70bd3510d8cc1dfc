package CronJobs

import (
	"fmt"
	"log"

	"Sentinel/Importer"

	"github.com/robfig/cron/v3"
)

// ImportScheduler runs the legacy portal import on a fixed schedule
type ImportScheduler struct {
	cronScheduler  *cron.Cron
	importer       *Importer.Importer
	runImmediately bool
	jobID          cron.EntryID
}

func NewImportScheduler(importer *Importer.Importer, runImmediately bool) *ImportScheduler {
	return &ImportScheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		importer:       importer,
		runImmediately: runImmediately,
	}
}

// Start schedules the import every 15 minutes
func (s *ImportScheduler) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 */15 * * * *", func() {
		log.Println("Running scheduled legacy portal import")
		s.importer.ImportRecent()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	fmt.Println("Legacy import scheduler started - will run every 15 minutes")

	if s.runImmediately {
		fmt.Println("Running initial legacy import")
		s.importer.ImportRecent()
	}
	return nil
}

// Stop terminates the scheduler
func (s *ImportScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}
