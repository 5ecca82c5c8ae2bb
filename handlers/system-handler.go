package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leewaller93/has-status-backend/seed"
)

// SystemHandler serves liveness, store-connectivity and demo-reseed
// endpoints.
type SystemHandler struct {
	client *mongo.Client
	seeder *seed.Seeder
}

func NewSystemHandler(client *mongo.Client, seeder *seed.Seeder) *SystemHandler {
	return &SystemHandler{client: client, seeder: seeder}
}

// Health reports store connectivity: 1 when a ping succeeds, 0 otherwise.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	state := 1
	if err := h.client.Ping(ctx, nil); err != nil {
		state = 0
	}
	writeJSON(w, http.StatusOK, map[string]int{"mongoState": state})
}

// Healthz is plain liveness.
func (h *SystemHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Seed wipes and repopulates the demo data.
func (h *SystemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.seeder.Reset(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"seeded": true})
}
