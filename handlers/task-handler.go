package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) GetPhases(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByClient(r.Context(), clientIDOr(r, ""))
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreatePhase(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	task.ClientID = clientIDOr(r, task.ClientID)

	created, err := h.service.Create(r.Context(), task)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": created.ID.Hex()})
}

func (h *TaskHandler) UpdatePhase(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": updated})
}

func (h *TaskHandler) DeletePhase(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDOr(r, "")
	performedBy := r.URL.Query().Get("performedBy")

	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"], clientID, performedBy); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *TaskHandler) ClearPhases(w http.ResponseWriter, r *http.Request) {
	clientID := clientIDOr(r, "")
	performedBy := r.URL.Query().Get("performedBy")

	deleted, err := h.service.Clear(r.Context(), clientID, performedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (h *TaskHandler) MassUpdate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ClientID    string      `json:"clientId"`
		Field       string      `json:"field"`
		Value       interface{} `json:"value"`
		TaskIDs     []string    `json:"taskIds"`
		PerformedBy string      `json:"performedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	clientID := clientIDOr(r, request.ClientID)

	modified, err := h.service.MassUpdate(r.Context(), clientID, request.Field, request.Value, request.TaskIDs, request.PerformedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "modified": modified})
}

func (h *TaskHandler) UnifiedMassUpdate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ClientID    string   `json:"clientId"`
		Stage       string   `json:"stage"`
		AssignedTo  string   `json:"assigned_to"`
		Need        string   `json:"need"`
		TaskIDs     []string `json:"taskIds"`
		PerformedBy string   `json:"performedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	clientID := clientIDOr(r, request.ClientID)
	fields := services.UnifiedFields{
		Stage:      request.Stage,
		AssignedTo: request.AssignedTo,
		Need:       request.Need,
	}

	modified, err := h.service.UnifiedMassUpdate(r.Context(), clientID, fields, request.TaskIDs, request.PerformedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "modified": modified})
}
