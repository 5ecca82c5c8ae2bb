package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the service error taxonomy onto HTTP statuses. Everything
// unrecognized is a store failure and surfaces verbatim as a 500.
func writeError(w http.ResponseWriter, err error) {
	var blocked *services.ReassignmentRequiredError
	switch {
	case errors.As(err, &blocked):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":             "Team member has assigned tasks",
			"needsReassignment": true,
			"assignedTasks":     blocked.AssignedTasks,
			"teamMemberName":    blocked.MemberName,
		})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// clientIDOr returns the clientId query parameter, then the given body
// value, then the demo default.
func clientIDOr(r *http.Request, bodyValue string) string {
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		return clientID
	}
	if bodyValue != "" {
		return bodyValue
	}
	return models.DefaultClientID
}
