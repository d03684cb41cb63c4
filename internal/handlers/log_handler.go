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

// LogHandler handles HTTP requests related to progress logs.
type LogHandler struct {
	Service *services.LogService
}

// NewLogHandler creates a new instance of LogHandler.
func NewLogHandler(service *services.LogService) *LogHandler {
	return &LogHandler{Service: service}
}

// CreateLogHandler handles the creation of a new progress log.
func (h *LogHandler) CreateLogHandler(w http.ResponseWriter, r *http.Request) {
	var log models.Log
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during log creation")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if log.ActivityID == 0 {
		respondError(w, http.StatusBadRequest, "Activity ID is required")
		return
	}
	if log.Text == "" {
		respondError(w, http.StatusBadRequest, "Log text is required")
		return
	}

	created, err := h.Service.CreateLog(r.Context(), &log)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			respondError(w, http.StatusNotFound, "Activity not found")
			return
		}
		logrus.WithError(err).Error("Failed to create log")
		respondError(w, http.StatusInternalServerError, "Failed to create log")
		return
	}

	logrus.WithFields(logrus.Fields{
		"log_id":      created.ID,
		"activity_id": created.ActivityID,
	}).Info("Log successfully created")
	respondJSON(w, http.StatusCreated, created)
}

// GetLogsHandler fetches logs for an activity, newest first.
func (h *LogHandler) GetLogsHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("activity_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "activity_id query parameter is required")
		return
	}
	activityID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid activity_id")
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.Service.GetLogsByActivity(r.Context(), uint(activityID), limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch logs")
		respondError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// GetLogHandler fetches a single log by its ID.
func (h *LogHandler) GetLogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	log, err := h.Service.GetLog(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			respondError(w, http.StatusNotFound, "Log not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch log")
		respondError(w, http.StatusInternalServerError, "Failed to fetch log")
		return
	}

	respondJSON(w, http.StatusOK, log)
}

// DeleteLogHandler removes a log by its ID.
func (h *LogHandler) DeleteLogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	if err := h.Service.DeleteLog(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			respondError(w, http.StatusNotFound, "Log not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete log")
		respondError(w, http.StatusInternalServerError, "Failed to delete log")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Log deleted"})
}
