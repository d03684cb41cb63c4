package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/progressbuddy/progress-buddy/internal/models"
)

const emailDateLayout = "Jan 2, 2006"

// logLine is one rendered progress entry in an email body.
type logLine struct {
	Date string
	Text string
}

func toLogLines(logs []models.Log) []logLine {
	lines := make([]logLine, 0, len(logs))
	for _, l := range logs {
		lines = append(lines, logLine{
			Date: l.CreatedAt.Format(emailDateLayout),
			Text: l.Text,
		})
	}
	return lines
}

type achievementView struct {
	ActivityName string
	Goal         string
	Message      string
	Logs         []logLine
}

type goalCompletedView struct {
	ActivityName  string
	Goal          string
	Target        string
	Deadline      string
	TotalLogs     int64
	StartedDate   string
	CompletedDate string
}

type weeklySummaryView struct {
	ActivityName string
	LogCount     int
	Logs         []logLine
}

var achievementTmpl = template.Must(template.New("achievement").Parse(`
<h2>🎉 Progress Update from your accountability partner!</h2>
<p><strong>Activity:</strong> {{.ActivityName}}</p>
<p><strong>Goal:</strong> {{.Goal}}</p>
{{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
<h3>Recent Progress:</h3>
<ul>
{{range .Logs}}  <li>{{.Date}}: {{.Text}}</li>
{{end}}</ul>
<p>Keep up the great work! 💪</p>
<small>This notification was sent from Progress Buddy</small>
`))

var goalCompletedTmpl = template.Must(template.New("goalCompleted").Parse(`
<h2>🎯 GOAL ACHIEVED! 🎉</h2>
<p>Your accountability partner has completed their goal!</p>
<div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>{{.ActivityName}}</h3>
  <p><strong>Goal:</strong> {{.Goal}}</p>
  <p><strong>Target:</strong> {{.Target}}</p>
  <p><strong>Deadline:</strong> {{.Deadline}}</p>
</div>
<h3>Achievement Stats:</h3>
<ul>
  <li><strong>Total Log Entries:</strong> {{.TotalLogs}}</li>
  <li><strong>Started:</strong> {{.StartedDate}}</li>
  <li><strong>Completed:</strong> {{.CompletedDate}}</li>
</ul>
<p>🎊 Congratulations to your accountability partner on this achievement! Consider sending them a congratulatory message!</p>
<small>This notification was sent from Progress Buddy</small>
`))

var weeklySummaryTmpl = template.Must(template.New("weeklySummary").Parse(`
<h2>📊 Weekly Progress Summary</h2>
<p>Here's how your accountability partner did this week:</p>
<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>{{.ActivityName}}</h3>
  <p><strong>This Week's Activity:</strong> {{.LogCount}} log entries</p>
</div>
{{if .Logs}}<h3>This Week's Progress:</h3>
<ul>
{{range .Logs}}  <li>{{.Date}}: {{.Text}}</li>
{{end}}</ul>
{{else}}<p>No activity logged this week. Maybe reach out and offer some encouragement! 💪</p>
{{end}}<small>This weekly summary was sent from Progress Buddy</small>
`))

func renderAchievementEmail(activity *models.Activity, message string, logs []models.Log) (string, error) {
	return render(achievementTmpl, achievementView{
		ActivityName: activity.Name,
		Goal:         activity.Specific,
		Message:      message,
		Logs:         toLogLines(logs),
	})
}

func renderGoalCompletedEmail(activity *models.Activity, stats logStatsView) (string, error) {
	return render(goalCompletedTmpl, goalCompletedView{
		ActivityName:  activity.Name,
		Goal:          activity.Specific,
		Target:        activity.Measurable,
		Deadline:      activity.Timebound.Format(emailDateLayout),
		TotalLogs:     stats.TotalLogs,
		StartedDate:   stats.StartedAt.Format(emailDateLayout),
		CompletedDate: stats.CompletedAt.Format(emailDateLayout),
	})
}

func renderWeeklySummaryEmail(activity *models.Activity, logs []models.Log) (string, error) {
	return render(weeklySummaryTmpl, weeklySummaryView{
		ActivityName: activity.Name,
		LogCount:     len(logs),
		Logs:         toLogLines(logs),
	})
}

// logStatsView mirrors repository.LogStats without importing it here, keeping
// template inputs free of persistence types.
type logStatsView struct {
	TotalLogs   int64
	StartedAt   time.Time
	CompletedAt time.Time
}

func render(tmpl *template.Template, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
