package services

import (
	"context"
	"fmt"
	"time"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/internal/repository"
	"github.com/progressbuddy/progress-buddy/pkg/email"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ErrNoBuddyEmail is returned when an activity has no accountability partner
// email, which gates every notification operation.
var ErrNoBuddyEmail = fmt.Errorf("no accountability partner email set for this activity")

const recentLogLimit = 5

// NotificationService composes and dispatches buddy emails. Each operation
// sends exactly one email per call; duplicate requests send duplicate emails.
type NotificationService struct {
	activityRepo *repository.ActivityRepository
	logRepo      *repository.LogRepository
	sender       email.Sender
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(activityRepo *repository.ActivityRepository, logRepo *repository.LogRepository, sender email.Sender) *NotificationService {
	return &NotificationService{
		activityRepo: activityRepo,
		logRepo:      logRepo,
		sender:       sender,
	}
}

// loadNotifiableActivity fetches the activity and checks the buddy email
// precondition shared by all notification operations.
func (s *NotificationService) loadNotifiableActivity(ctx context.Context, activityID uint) (*models.Activity, error) {
	activity, err := s.activityRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if activity.BuddyEmail == "" {
		logger.Log.WithField("activity_id", activityID).Warn("Notification requested for activity without buddy email")
		return nil, ErrNoBuddyEmail
	}
	return activity, nil
}

// SendAchievement emails the buddy an ad-hoc progress ping with the 5 most
// recent logs and an optional message. Returns the recipient address.
func (s *NotificationService) SendAchievement(ctx context.Context, activityID uint, message string) (string, error) {
	activity, err := s.loadNotifiableActivity(ctx, activityID)
	if err != nil {
		return "", err
	}

	recentLogs, err := s.logRepo.GetLogsByActivity(ctx, activityID, recentLogLimit)
	if err != nil {
		return "", fmt.Errorf("failed to fetch recent logs: %w", err)
	}

	body, err := renderAchievementEmail(activity, message, recentLogs)
	if err != nil {
		return "", err
	}

	if err := s.sender.Send(email.Message{
		To:      activity.BuddyEmail,
		Subject: fmt.Sprintf("Progress Update: %s", activity.Name),
		HTML:    body,
	}); err != nil {
		logger.Log.WithError(err).WithField("activity_id", activityID).Error("Failed to send achievement notification")
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"activity_id": activityID,
		"sent_to":     activity.BuddyEmail,
	}).Info("Achievement notification sent")
	return activity.BuddyEmail, nil
}

// SendGoalCompleted emails the buddy a goal-completion announcement with
// aggregate log stats. Returns the recipient address.
func (s *NotificationService) SendGoalCompleted(ctx context.Context, activityID uint) (string, error) {
	activity, err := s.loadNotifiableActivity(ctx, activityID)
	if err != nil {
		return "", err
	}

	stats, err := s.logRepo.GetLogStats(ctx, activityID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch log stats: %w", err)
	}

	body, err := renderGoalCompletedEmail(activity, logStatsView{
		TotalLogs:   stats.TotalLogs,
		StartedAt:   stats.StartedAt,
		CompletedAt: stats.CompletedAt,
	})
	if err != nil {
		return "", err
	}

	if err := s.sender.Send(email.Message{
		To:      activity.BuddyEmail,
		Subject: fmt.Sprintf("🎯 Goal Achieved: %s", activity.Name),
		HTML:    body,
	}); err != nil {
		logger.Log.WithError(err).WithField("activity_id", activityID).Error("Failed to send goal completion notification")
		return "", err
	}

	logger.Log.WithFields(logrus.Fields{
		"activity_id": activityID,
		"sent_to":     activity.BuddyEmail,
	}).Info("Goal completion notification sent")
	return activity.BuddyEmail, nil
}

// SendWeeklySummary emails the buddy the logs from the trailing 7 days, or an
// encouragement note when there are none. Returns the recipient address and
// the number of logs in the window.
func (s *NotificationService) SendWeeklySummary(ctx context.Context, activityID uint) (string, int, error) {
	activity, err := s.loadNotifiableActivity(ctx, activityID)
	if err != nil {
		return "", 0, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	weeklyLogs, err := s.logRepo.GetLogsSince(ctx, activityID, weekAgo)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch weekly logs: %w", err)
	}

	body, err := renderWeeklySummaryEmail(activity, weeklyLogs)
	if err != nil {
		return "", 0, err
	}

	if err := s.sender.Send(email.Message{
		To:      activity.BuddyEmail,
		Subject: fmt.Sprintf("Weekly Summary: %s", activity.Name),
		HTML:    body,
	}); err != nil {
		logger.Log.WithError(err).WithField("activity_id", activityID).Error("Failed to send weekly summary")
		return "", 0, err
	}

	logger.Log.WithFields(logrus.Fields{
		"activity_id":    activityID,
		"sent_to":        activity.BuddyEmail,
		"logs_this_week": len(weeklyLogs),
	}).Info("Weekly summary sent")
	return activity.BuddyEmail, len(weeklyLogs), nil
}
