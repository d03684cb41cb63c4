package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Activity{}, &models.Log{}))
	return db
}

func createTestActivity(t *testing.T, db *gorm.DB) *models.Activity {
	t.Helper()
	activity := &models.Activity{
		Name:       "Run a marathon",
		Specific:   "Finish a full marathon",
		Measurable: "42.2 km",
		BuddyEmail: "buddy@example.com",
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

func insertLogAt(t *testing.T, db *gorm.DB, activityID uint, text string, createdAt time.Time) *models.Log {
	t.Helper()
	log := &models.Log{ActivityID: activityID, Text: text, CreatedAt: createdAt}
	require.NoError(t, db.Create(log).Error)
	return log
}

func TestGetLogsByActivity_LimitAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)
	activity := createTestActivity(t, db)

	now := time.Now()
	for i := 0; i < 7; i++ {
		insertLogAt(t, db, activity.ID, "entry", now.Add(-time.Duration(i)*time.Hour))
	}

	logs, err := repo.GetLogsByActivity(context.Background(), activity.ID, 5)
	require.NoError(t, err)
	require.Len(t, logs, 5)

	// Newest first
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].CreatedAt.After(logs[i-1].CreatedAt),
			"logs must be ordered most-recent-first")
	}
}

func TestGetLogsByActivity_FiltersByActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)
	first := createTestActivity(t, db)
	second := createTestActivity(t, db)

	now := time.Now()
	insertLogAt(t, db, first.ID, "mine", now)
	insertLogAt(t, db, second.ID, "theirs", now)

	logs, err := repo.GetLogsByActivity(context.Background(), first.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "mine", logs[0].Text)
}

func TestGetLogsSince_SevenDayWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)
	activity := createTestActivity(t, db)

	now := time.Now()
	insertLogAt(t, db, activity.ID, "today", now.Add(-time.Hour))
	insertLogAt(t, db, activity.ID, "six days ago", now.AddDate(0, 0, -6))
	insertLogAt(t, db, activity.ID, "ten days ago", now.AddDate(0, 0, -10))

	logs, err := repo.GetLogsSince(context.Background(), activity.ID, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "today", logs[0].Text)
	assert.Equal(t, "six days ago", logs[1].Text)
}

func TestGetLogStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)
	activity := createTestActivity(t, db)

	now := time.Now()
	earliest := now.AddDate(0, 0, -30)
	latest := now.Add(-time.Hour)
	insertLogAt(t, db, activity.ID, "first", earliest)
	insertLogAt(t, db, activity.ID, "middle", now.AddDate(0, 0, -15))
	insertLogAt(t, db, activity.ID, "last", latest)

	stats, err := repo.GetLogStats(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalLogs)
	assert.WithinDuration(t, earliest, stats.StartedAt, time.Second)
	assert.WithinDuration(t, latest, stats.CompletedAt, time.Second)
}

func TestGetLogStats_NoLogs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)
	activity := createTestActivity(t, db)

	stats, err := repo.GetLogStats(context.Background(), activity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalLogs)
	assert.True(t, stats.StartedAt.IsZero())
	assert.True(t, stats.CompletedAt.IsZero())
}

func TestDeleteLog_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)

	err := repo.DeleteLog(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestActivityRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	created, err := repo.CreateActivity(ctx, &models.Activity{
		Name:       "Read more",
		Specific:   "Read 12 books this year",
		BuddyEmail: "friend@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := repo.GetActivityByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read more", fetched.Name)

	fetched.Completed = true
	_, err = repo.UpdateActivity(ctx, fetched)
	require.NoError(t, err)

	again, err := repo.GetActivityByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)

	require.NoError(t, repo.DeleteActivity(ctx, created.ID))
	_, err = repo.GetActivityByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteActivity_RemovesLogs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	logRepo := NewLogRepository(db)
	activity := createTestActivity(t, db)
	insertLogAt(t, db, activity.ID, "progress", time.Now())

	require.NoError(t, repo.DeleteActivity(context.Background(), activity.ID))

	logs, err := logRepo.GetLogsByActivity(context.Background(), activity.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
