package services

import (
	"context"
	"fmt"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/internal/repository"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
)

// ErrActivityNotFound is returned when no activity matches the given ID.
var ErrActivityNotFound = fmt.Errorf("activity not found")

// ActivityService encapsulates the business logic for activities.
type ActivityService struct {
	repo *repository.ActivityRepository
}

// NewActivityService creates a new instance of ActivityService.
func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// CreateActivity validates and stores a new activity.
func (s *ActivityService) CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if activity.Name == "" {
		logger.Log.Warn("Activity name is empty during creation")
		return nil, fmt.Errorf("activity name is required")
	}

	created, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return created, nil
}

// GetActivity retrieves an activity by its ID.
func (s *ActivityService) GetActivity(ctx context.Context, id uint) (*models.Activity, error) {
	activity, err := s.repo.GetActivityByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

// UpdateActivity applies updated fields to an existing activity.
func (s *ActivityService) UpdateActivity(ctx context.Context, id uint, updated *models.Activity) (*models.Activity, error) {
	existing, err := s.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Specific = updated.Specific
	existing.Measurable = updated.Measurable
	existing.Achievable = updated.Achievable
	existing.Relevant = updated.Relevant
	existing.Timebound = updated.Timebound
	existing.BuddyEmail = updated.BuddyEmail
	existing.Completed = updated.Completed

	activity, err := s.repo.UpdateActivity(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return activity, nil
}

// CompleteActivity marks an activity as completed.
func (s *ActivityService) CompleteActivity(ctx context.Context, id uint) (*models.Activity, error) {
	activity, err := s.GetActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.Completed = true
	completed, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to complete activity: %w", err)
	}

	logger.Log.WithField("activity_id", id).Info("Activity marked as completed")
	return completed, nil
}

// DeleteActivity removes an activity and its logs.
func (s *ActivityService) DeleteActivity(ctx context.Context, id uint) error {
	if _, err := s.GetActivity(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteActivity(ctx, id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// GetAllActivities retrieves activities with an optional limit (0 = all).
func (s *ActivityService) GetAllActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	activities, err := s.repo.GetAllActivities(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	return activities, nil
}
