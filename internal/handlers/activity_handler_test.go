package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/progressbuddy/progress-buddy/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCRUD_RoundTrip(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/activities", map[string]interface{}{
		"name":        "Ship the side project",
		"description": "Get v1 out the door",
		"specific":    "Deploy a public beta",
		"measurable":  "10 signups",
		"buddy_email": "buddy@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id := uint(created["id"].(float64))
	require.NotZero(t, id)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/activities/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ship the side project", decodeBody(t, rec)["name"])

	rec = f.do(t, http.MethodPut, fmt.Sprintf("/api/activities/%d", id), map[string]interface{}{
		"name":        "Ship the side project",
		"measurable":  "25 signups",
		"buddy_email": "buddy@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "25 signups", decodeBody(t, rec)["measurable"])

	rec = f.do(t, http.MethodPatch, fmt.Sprintf("/api/activities/%d/complete", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["completed"])

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/activities/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/activities/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateActivity_MissingName(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/activities", map[string]interface{}{
		"description": "nameless",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActivities_NewestFirst(t *testing.T) {
	f := newAPIFixture(t)
	f.createActivity(t, "")
	f.createActivity(t, "")

	rec := f.do(t, http.MethodGet, "/api/activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.False(t, list[1].CreatedAt.After(list[0].CreatedAt))
}

func TestLogEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	activity := f.createActivity(t, "")

	rec := f.do(t, http.MethodPost, "/api/logs", map[string]interface{}{
		"activity_id": activity.ID,
		"text":        "First session done",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	logID := uint(decodeBody(t, rec)["id"].(float64))

	// Unknown activity is rejected before anything is written
	rec = f.do(t, http.MethodPost, "/api/logs", map[string]interface{}{
		"activity_id": 9999,
		"text":        "orphan",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing text
	rec = f.do(t, http.MethodPost, "/api/logs", map[string]interface{}{
		"activity_id": activity.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/logs?activity_id=%d", activity.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Log
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "First session done", list[0].Text)

	rec = f.do(t, http.MethodGet, "/api/logs", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "activity_id query parameter is required")

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/logs/%d", logID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/logs/%d", logID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
