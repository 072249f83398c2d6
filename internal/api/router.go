package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/stopwatch/internal/api/handler"
	"github.com/mcoot/stopwatch/internal/api/middleware"
	"github.com/mcoot/stopwatch/internal/api/sse"
	"github.com/mcoot/stopwatch/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.HubManager)
	clockHandler := handler.NewClockHandler(cfg.SessionController)
	personHandler := handler.NewPersonHandler(cfg.SessionController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Session routes
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{code}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Clock routes
	sessions.HandleFunc("/{code}/clock/start", clockHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/clock/pause", clockHandler.Pause).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/clock/toggle", clockHandler.Toggle).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/clock/reset", clockHandler.Reset).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/clock/penalty", clockHandler.Penalty).Methods(http.MethodPut)

	// Roster routes; fixed paths are registered before /{id}
	sessions.HandleFunc("/{code}/people", personHandler.List).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/people", personHandler.Add).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/people/names", personHandler.Names).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/people/record", personHandler.Record).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/people/{id}", personHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/people/{id}", personHandler.Remove).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
