package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListAuditTrail returns entries newest-first, optionally filtered by the
// clientId query parameter. No filter means all tenants.
func (h *AuditHandler) ListAuditTrail(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, r.URL.Query().Get("clientId"))
}

// ListAuditTrailByClient is the path-parameter variant.
func (h *AuditHandler) ListAuditTrailByClient(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, mux.Vars(r)["clientId"])
}

func (h *AuditHandler) list(w http.ResponseWriter, r *http.Request, clientID string) {
	entries, err := h.service.List(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
