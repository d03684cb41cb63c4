package services

import (
	"context"
	"fmt"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/internal/repository"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
)

// ErrLogNotFound is returned when no log matches the given ID.
var ErrLogNotFound = fmt.Errorf("log not found")

// LogService encapsulates the business logic for progress logs.
type LogService struct {
	repo         *repository.LogRepository
	activityRepo *repository.ActivityRepository
}

// NewLogService creates a new instance of LogService.
func NewLogService(repo *repository.LogRepository, activityRepo *repository.ActivityRepository) *LogService {
	return &LogService{repo: repo, activityRepo: activityRepo}
}

// CreateLog validates and stores a new progress log. The referenced activity
// must exist.
func (s *LogService) CreateLog(ctx context.Context, log *models.Log) (*models.Log, error) {
	if log.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if log.Text == "" {
		return nil, fmt.Errorf("log text is required")
	}

	if _, err := s.activityRepo.GetActivityByID(ctx, log.ActivityID); err != nil {
		if repository.IsNotFound(err) {
			logger.Log.WithField("activity_id", log.ActivityID).Warn("Log creation for unknown activity")
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to verify activity: %w", err)
	}

	created, err := s.repo.CreateLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	return created, nil
}

// GetLog retrieves a log by its ID.
func (s *LogService) GetLog(ctx context.Context, id uint) (*models.Log, error) {
	log, err := s.repo.GetLogByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}
	return log, nil
}

// GetLogsByActivity retrieves logs for an activity, newest first.
func (s *LogService) GetLogsByActivity(ctx context.Context, activityID uint, limit int) ([]models.Log, error) {
	logs, err := s.repo.GetLogsByActivity(ctx, activityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	return logs, nil
}

// DeleteLog removes a log by its ID.
func (s *LogService) DeleteLog(ctx context.Context, id uint) error {
	if err := s.repo.DeleteLog(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrLogNotFound
		}
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}
