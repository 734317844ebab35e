package jobs

import (
	"toolhire-pricing/internal/config"
	"toolhire-pricing/internal/credit"
	"toolhire-pricing/internal/domain"
	"toolhire-pricing/internal/logger"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	ledger      *credit.Ledger
	memberships []domain.MembershipRow
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(ledger *credit.Ledger, memberships []domain.MembershipRow, cfg *config.Config) *JobRunner {
	return &JobRunner{
		ledger:      ledger,
		memberships: memberships,
		config:      cfg,
	}
}

// Config returns the runner's configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
