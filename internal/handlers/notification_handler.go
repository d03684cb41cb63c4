package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/progressbuddy/progress-buddy/internal/config"
	"github.com/progressbuddy/progress-buddy/internal/services"
	"github.com/sirupsen/logrus"
)

// NotificationHandler handles the buddy notification endpoints. All three
// share the same precondition checks and error mapping; only the email
// composition differs.
type NotificationHandler struct {
	Service *services.NotificationService
	cfg     *config.Config
}

// NewNotificationHandler creates a new instance of NotificationHandler.
func NewNotificationHandler(service *services.NotificationService, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{Service: service, cfg: cfg}
}

type notificationRequest struct {
	ActivityID uint   `json:"activity_id"`
	Message    string `json:"message"`
}

// decodeNotificationRequest parses the shared request body and enforces the
// required activity_id.
func (h *NotificationHandler) decodeNotificationRequest(w http.ResponseWriter, r *http.Request) (*notificationRequest, bool) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	defer r.Body.Close()

	if req.ActivityID == 0 {
		respondError(w, http.StatusBadRequest, "Activity ID is required")
		return nil, false
	}
	return &req, true
}

// respondNotificationError maps service errors to the endpoint's status codes.
func (h *NotificationHandler) respondNotificationError(w http.ResponseWriter, err error, failureMessage string) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		respondError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, services.ErrNoBuddyEmail):
		respondError(w, http.StatusBadRequest, "No accountability partner email set for this activity")
	default:
		logrus.WithError(err).Error(failureMessage)
		body := map[string]string{"error": failureMessage}
		if h.cfg.IsDevelopment() {
			body["details"] = err.Error()
		}
		respondJSON(w, http.StatusInternalServerError, body)
	}
}

// SendAchievementHandler handles POST /api/notifications/achievement.
func (h *NotificationHandler) SendAchievementHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotificationRequest(w, r)
	if !ok {
		return
	}

	sentTo, err := h.Service.SendAchievement(r.Context(), req.ActivityID, req.Message)
	if err != nil {
		h.respondNotificationError(w, err, "Failed to send notification")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Notification sent successfully",
		"sent_to": sentTo,
	})
}

// SendGoalCompletedHandler handles POST /api/notifications/goal-completed.
func (h *NotificationHandler) SendGoalCompletedHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotificationRequest(w, r)
	if !ok {
		return
	}

	sentTo, err := h.Service.SendGoalCompleted(r.Context(), req.ActivityID)
	if err != nil {
		h.respondNotificationError(w, err, "Failed to send notification")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Goal completion notification sent successfully",
		"sent_to": sentTo,
	})
}

// SendWeeklySummaryHandler handles POST /api/notifications/weekly-summary.
func (h *NotificationHandler) SendWeeklySummaryHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotificationRequest(w, r)
	if !ok {
		return
	}

	sentTo, logsThisWeek, err := h.Service.SendWeeklySummary(r.Context(), req.ActivityID)
	if err != nil {
		h.respondNotificationError(w, err, "Failed to send weekly summary")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Weekly summary sent successfully",
		"sent_to":        sentTo,
		"logs_this_week": logsThisWeek,
	})
}
