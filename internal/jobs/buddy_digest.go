package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/progressbuddy/progress-buddy/internal/services"
	"github.com/sirupsen/logrus"
)

// BuddyDigest runs the scheduled buddy-notification scans. Per-activity send
// failures are logged and skipped so one bad address cannot stall the scan.
type BuddyDigest struct {
	ActivityService     *services.ActivityService
	NotificationService *services.NotificationService
}

// NewBuddyDigest creates a new instance of BuddyDigest.
func NewBuddyDigest(activityService *services.ActivityService, notificationService *services.NotificationService) *BuddyDigest {
	return &BuddyDigest{
		ActivityService:     activityService,
		NotificationService: notificationService,
	}
}

// RunWeeklyScan sends the weekly summary for every open activity that has a
// buddy email configured.
func (d *BuddyDigest) RunWeeklyScan(ctx context.Context) error {
	activities, err := d.ActivityService.GetAllActivities(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch activities: %w", err)
	}

	sent := 0
	for _, activity := range activities {
		if activity.Completed || activity.BuddyEmail == "" {
			continue
		}

		if _, _, err := d.NotificationService.SendWeeklySummary(ctx, activity.ID); err != nil {
			logrus.WithError(err).Warnf("Failed to send weekly summary for activity %d", activity.ID)
			continue
		}
		sent++
	}

	logrus.WithField("sent", sent).Info("Weekly digest scan completed")
	return nil
}

// RunDeadlineScan pings the buddy for every open activity whose target date
// falls within the next 24 hours.
func (d *BuddyDigest) RunDeadlineScan(ctx context.Context) error {
	activities, err := d.ActivityService.GetAllActivities(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch activities: %w", err)
	}

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	sent := 0
	for _, activity := range activities {
		if activity.Completed || activity.BuddyEmail == "" || activity.Timebound.IsZero() {
			continue
		}
		if !activity.Timebound.After(now) || !activity.Timebound.Before(tomorrow) {
			continue
		}

		message := fmt.Sprintf("Their deadline is %s — a little encouragement could go a long way!",
			activity.Timebound.Format("Jan 2"))
		if _, err := d.NotificationService.SendAchievement(ctx, activity.ID, message); err != nil {
			logrus.WithError(err).Warnf("Failed to send deadline reminder for activity %d", activity.ID)
			continue
		}
		sent++
	}

	logrus.WithField("sent", sent).Info("Deadline scan completed")
	return nil
}
