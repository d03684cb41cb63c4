package cron

import (
	"context"

	"github.com/progressbuddy/progress-buddy/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartNotificationCronJobs schedules the buddy digest scans and starts the
// cron runner. The returned cron can be stopped by the caller on shutdown.
func StartNotificationCronJobs(digest *jobs.BuddyDigest) *cron.Cron {
	c := cron.New()

	// Weekly summaries every Monday morning
	c.AddFunc("0 9 * * 1", func() {
		if err := digest.RunWeeklyScan(context.Background()); err != nil {
			logrus.WithError(err).Error("RunWeeklyScan failed")
		}
	})

	// Deadline reminders once a day
	c.AddFunc("0 8 * * *", func() {
		if err := digest.RunDeadlineScan(context.Background()); err != nil {
			logrus.WithError(err).Error("RunDeadlineScan failed")
		}
	})

	c.Start()
	return c
}
