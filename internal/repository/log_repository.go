package repository

import (
	"context"
	"errors"
	"time"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"gorm.io/gorm"
)

// LogStats is the aggregate over all logs of one activity, used by the
// goal-completion notification.
type LogStats struct {
	TotalLogs   int64
	StartedAt   time.Time
	CompletedAt time.Time
}

// LogRepository handles database operations related to progress logs.
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new instance of LogRepository.
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// CreateLog inserts a new progress log row.
func (r *LogRepository) CreateLog(ctx context.Context, log *models.Log) (*models.Log, error) {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to insert log")
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"log_id":      log.ID,
		"activity_id": log.ActivityID,
	}).Info("Log created successfully")
	return log, nil
}

// GetLogByID fetches a single log by its ID.
func (r *LogRepository) GetLogByID(ctx context.Context, id uint) (*models.Log, error) {
	var log models.Log

	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// GetLogsByActivity fetches logs for an activity, newest first. A limit of 0
// means no limit.
func (r *LogRepository) GetLogsByActivity(ctx context.Context, activityID uint, limit int) ([]models.Log, error) {
	var logs []models.Log

	query := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		logger.Log.WithError(err).WithField("activity_id", activityID).Error("Failed to fetch logs")
		return nil, err
	}
	return logs, nil
}

// GetLogsSince fetches logs for an activity created at or after the given
// time, newest first.
func (r *LogRepository) GetLogsSince(ctx context.Context, activityID uint, since time.Time) ([]models.Log, error) {
	var logs []models.Log

	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND created_at >= ?", activityID, since).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		logger.Log.WithError(err).WithField("activity_id", activityID).Error("Failed to fetch logs for window")
		return nil, err
	}
	return logs, nil
}

// GetLogStats aggregates the total count plus earliest and latest log dates
// for an activity. Zero logs yields a zero-count stats value, not an error.
func (r *LogRepository) GetLogStats(ctx context.Context, activityID uint) (*LogStats, error) {
	stats := &LogStats{}

	err := r.db.WithContext(ctx).
		Model(&models.Log{}).
		Where("activity_id = ?", activityID).
		Count(&stats.TotalLogs).Error
	if err != nil {
		return nil, err
	}
	if stats.TotalLogs == 0 {
		return stats, nil
	}

	var first, last models.Log
	err = r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		First(&first).Error
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		First(&last).Error
	if err != nil {
		return nil, err
	}

	stats.StartedAt = first.CreatedAt
	stats.CompletedAt = last.CreatedAt
	return stats, nil
}

// DeleteLog removes a log by its ID.
func (r *LogRepository) DeleteLog(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Log{}, id)
	if result.Error != nil {
		logger.Log.WithError(result.Error).WithField("log_id", id).Error("Failed to delete log")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Log.WithField("log_id", id).Info("Log deleted successfully")
	return nil
}

// IsNotFound reports whether err is the database's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
