package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leewaller93/has-status-backend/services"
)

// BoardHandler serves the project-name and whiteboard singletons.
type BoardHandler struct {
	service *services.BoardService
}

func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	name, err := h.service.ProjectName(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *BoardHandler) SetProject(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.service.SetProjectName(r.Context(), request.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *BoardHandler) GetWhiteboard(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Whiteboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *BoardHandler) SetWhiteboard(w http.ResponseWriter, r *http.Request) {
	var state map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.service.SetWhiteboard(r.Context(), state); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
