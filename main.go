package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"

	"github.com/leewaller93/has-status-backend/db"
	"github.com/leewaller93/has-status-backend/handlers"
	"github.com/leewaller93/has-status-backend/logging"
	"github.com/leewaller93/has-status-backend/notify"
	"github.com/leewaller93/has-status-backend/seed"
	"github.com/leewaller93/has-status-backend/services"
	"github.com/leewaller93/has-status-backend/store"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting HAS status backend...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Infof("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}

	mongoURI := getenv("MONGO_URI", "mongodb://localhost:27017")
	mongoDBName := getenv("MONGO_DB_NAME", "has_status")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, mongoURI)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(context.Background())
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	database := client.Database(mongoDBName)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: Index bootstrap failed: %v", err)
	}

	seeder := seed.NewSeeder(database)
	if err := seeder.EnsureSeeded(ctx); err != nil {
		logging.Logger.Errorf("Event ID: SEED_FAILED, Description: Demo data seeding failed: %v", err)
	}

	inviteBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "InviteMailCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	taskStore := store.NewTaskStore(database)
	teamStore := store.NewTeamStore(database)
	clientStore := store.NewClientStore(database)
	auditStore := store.NewAuditStore(database)
	boardStore := store.NewBoardStore(database)

	auditService := services.NewAuditService(auditStore)
	taskService := services.NewTaskService(taskStore, auditService)
	teamService := services.NewTeamService(teamStore, taskStore, auditService, notify.NewMailerFromEnv(), inviteBreaker)
	clientService := services.NewClientService(clientStore, teamStore)
	boardService := services.NewBoardService(boardStore)

	taskHandler := handlers.NewTaskHandler(taskService)
	teamHandler := handlers.NewTeamHandler(teamService)
	clientHandler := handlers.NewClientHandler(clientService)
	auditHandler := handlers.NewAuditHandler(auditService)
	boardHandler := handlers.NewBoardHandler(boardService)
	systemHandler := handlers.NewSystemHandler(client, seeder)

	r := mux.NewRouter()

	r.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/healthz", systemHandler.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/api/seed", systemHandler.Seed).Methods(http.MethodPost)

	r.HandleFunc("/api/phases", taskHandler.GetPhases).Methods(http.MethodGet)
	r.HandleFunc("/api/phases", taskHandler.CreatePhase).Methods(http.MethodPost)
	r.HandleFunc("/api/phases", taskHandler.ClearPhases).Methods(http.MethodDelete)
	r.HandleFunc("/api/phases/mass-update", taskHandler.MassUpdate).Methods(http.MethodPost)
	r.HandleFunc("/api/phases/unified-mass-update", taskHandler.UnifiedMassUpdate).Methods(http.MethodPost)
	r.HandleFunc("/api/phases/{id}", taskHandler.UpdatePhase).Methods(http.MethodPut)
	r.HandleFunc("/api/phases/{id}", taskHandler.DeletePhase).Methods(http.MethodDelete)

	r.HandleFunc("/api/team", teamHandler.GetTeam).Methods(http.MethodGet)
	r.HandleFunc("/api/invite", teamHandler.InviteMember).Methods(http.MethodPost)
	r.HandleFunc("/api/team/{id}/not-working", teamHandler.DeactivateMember).Methods(http.MethodPatch)
	r.HandleFunc("/api/team/{id}", teamHandler.DeleteMember).Methods(http.MethodDelete)

	r.HandleFunc("/api/project", boardHandler.GetProject).Methods(http.MethodGet)
	r.HandleFunc("/api/project", boardHandler.SetProject).Methods(http.MethodPost)
	r.HandleFunc("/api/whiteboard", boardHandler.GetWhiteboard).Methods(http.MethodGet)
	r.HandleFunc("/api/whiteboard", boardHandler.SetWhiteboard).Methods(http.MethodPost)

	r.HandleFunc("/api/clients", clientHandler.CreateClient).Methods(http.MethodPost)
	r.HandleFunc("/api/clients", clientHandler.ListClients).Methods(http.MethodGet)
	r.HandleFunc("/api/clients/{facCode}", clientHandler.GetClient).Methods(http.MethodGet)
	r.HandleFunc("/api/clients/{facCode}", clientHandler.UpdateClient).Methods(http.MethodPut)
	r.HandleFunc("/api/clients/{facCode}", clientHandler.DeleteClient).Methods(http.MethodDelete)

	r.HandleFunc("/api/audit-trail", auditHandler.ListAuditTrail).Methods(http.MethodGet)
	r.HandleFunc("/api/audit-trail/{clientId}", auditHandler.ListAuditTrailByClient).Methods(http.MethodGet)

	corsRouter := enableCORS(r)

	serverPort := getenv("SERVER_PORT", "5000")
	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
