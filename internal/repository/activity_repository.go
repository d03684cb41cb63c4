package repository

import (
	"context"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations related to activities.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// CreateActivity inserts a new activity row.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to insert activity")
		return nil, err
	}

	logger.Log.WithField("activity_id", activity.ID).Info("Activity created successfully")
	return activity, nil
}

// GetActivityByID fetches an activity by its ID.
func (r *ActivityRepository) GetActivityByID(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity

	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// UpdateActivity saves an existing activity.
func (r *ActivityRepository) UpdateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if err := r.db.WithContext(ctx).Save(activity).Error; err != nil {
		logger.Log.WithError(err).WithField("activity_id", activity.ID).Error("Failed to update activity")
		return nil, err
	}

	logger.Log.WithField("activity_id", activity.ID).Info("Activity updated successfully")
	return activity, nil
}

// DeleteActivity removes an activity and its logs.
func (r *ActivityRepository) DeleteActivity(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", id).Delete(&models.Log{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Activity{}, id).Error
	})
	if err != nil {
		logger.Log.WithError(err).WithField("activity_id", id).Error("Failed to delete activity")
		return err
	}

	logger.Log.WithField("activity_id", id).Info("Activity deleted successfully")
	return nil
}

// GetAllActivities fetches activities ordered by creation time, newest first.
// A limit of 0 means no limit.
func (r *ActivityRepository) GetAllActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	var activities []models.Activity

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&activities).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to fetch activities")
		return nil, err
	}
	return activities, nil
}
