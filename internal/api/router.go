package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mattrk/trickhall/internal/api/handler"
	"github.com/mattrk/trickhall/internal/api/middleware"
	"github.com/mattrk/trickhall/internal/services/game"
	"github.com/mattrk/trickhall/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	ScoringService *scoring.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.ScoringService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{code}/join", gameHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/leave", gameHandler.Leave).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/actions", gameHandler.Action).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
