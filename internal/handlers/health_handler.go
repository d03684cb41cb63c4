package handlers

import "net/http"

// HealthHandler answers the liveness probe.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Progress Buddy API is running",
	})
}

// NotFoundHandler answers any unmatched route with a generic 404 body.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Route not found")
}
