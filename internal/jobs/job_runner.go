package jobs

import (
	"context"
	"time"

	"projectportal/internal/config"
	"projectportal/internal/logger"
	"projectportal/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	projectRepo repository.ProjectRepository
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(projectRepo repository.ProjectRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		projectRepo: projectRepo,
		config:      cfg,
	}
}

// Config exposes the configuration for schedule registration
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

// MarkCompletedProjects stamps the stored status of every project whose
// end date has passed, bringing it in line with the derived effective
// status.
func (jr *JobRunner) MarkCompletedProjects() {
	jr.runWithRecovery("MarkCompletedProjects", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cutoff := time.Now().UTC().Truncate(24 * time.Hour)
		updated, err := jr.projectRepo.MarkCompletedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to mark completed projects", "error", err)
			return
		}
		logger.Info("Marked completed projects", "updated", updated, "cutoff", cutoff.Format("2006-01-02"))
	})
}
