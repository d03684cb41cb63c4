package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/progressbuddy/progress-buddy/internal/services"
	"github.com/sirupsen/logrus"
)

// ActivityHandler handles HTTP requests related to activities.
type ActivityHandler struct {
	Service *services.ActivityService
}

// NewActivityHandler creates a new instance of ActivityHandler.
func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: service}
}

// CreateActivityHandler handles the creation of a new activity.
func (h *ActivityHandler) CreateActivityHandler(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during activity creation")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if activity.Name == "" {
		respondError(w, http.StatusBadRequest, "Activity name is required")
		return
	}

	created, err := h.Service.CreateActivity(r.Context(), &activity)
	if err != nil {
		logrus.WithError(err).Error("Failed to create activity")
		respondError(w, http.StatusInternalServerError, "Failed to create activity")
		return
	}

	logrus.WithField("activity_id", created.ID).Info("Activity successfully created")
	respondJSON(w, http.StatusCreated, created)
}

// GetActivityHandler handles fetching a single activity by its ID.
func (h *ActivityHandler) GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	activity, err := h.Service.GetActivity(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			respondError(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch activity")
		respondError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// GetActivitiesHandler handles fetching all activities, newest first.
func (h *ActivityHandler) GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	activities, err := h.Service.GetAllActivities(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch activities")
		respondError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

// UpdateActivityHandler handles replacing the fields of an existing activity.
func (h *ActivityHandler) UpdateActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	var updated models.Activity
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if updated.Name == "" {
		respondError(w, http.StatusBadRequest, "Activity name is required")
		return
	}

	activity, err := h.Service.UpdateActivity(r.Context(), id, &updated)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			respondError(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).Error("Failed to update activity")
		respondError(w, http.StatusInternalServerError, "Failed to update activity")
		return
	}

	logrus.WithField("activity_id", id).Info("Activity successfully updated")
	respondJSON(w, http.StatusOK, activity)
}

// CompleteActivityHandler marks an activity as completed.
func (h *ActivityHandler) CompleteActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	activity, err := h.Service.CompleteActivity(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			respondError(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).Error("Failed to complete activity")
		respondError(w, http.StatusInternalServerError, "Failed to complete activity")
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// DeleteActivityHandler removes an activity and its logs.
func (h *ActivityHandler) DeleteActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	if err := h.Service.DeleteActivity(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			respondError(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete activity")
		respondError(w, http.StatusInternalServerError, "Failed to delete activity")
		return
	}

	logrus.WithField("activity_id", id).Info("Activity successfully deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted"})
}
