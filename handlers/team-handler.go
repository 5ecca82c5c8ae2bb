package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

type TeamHandler struct {
	service *services.TeamService
}

func NewTeamHandler(service *services.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListByClient(r.Context(), clientIDOr(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []models.TeamMember{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *TeamHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ClientID string `json:"clientId"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Org      string `json:"org"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	clientID := clientIDOr(r, request.ClientID)

	member, err := h.service.InviteMember(r.Context(), clientID, request.Username, request.Email, request.Org)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User added", "username": member.Username})
}

// DeactivateMember handles PATCH /api/team/{id}/not-working.
func (h *TeamHandler) DeactivateMember(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ReassignTo string `json:"reassign_to"`
	}
	// An empty body is allowed; the reassignment target then defaults.
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&request)
	}

	if err := h.service.DeactivateTeamMember(r.Context(), mux.Vars(r)["id"], request.ReassignTo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *TeamHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	clientID := clientIDOr(r, "")
	reassignTo := query.Get("reassignTo")
	performedBy := query.Get("performedBy")

	result, err := h.service.RemoveTeamMember(r.Context(), clientID, mux.Vars(r)["id"], reassignTo, performedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"reassignedTasks": result.ReassignedTasks,
		"reassignedTo":    result.ReassignedTo,
	})
}
