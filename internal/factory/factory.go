package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/stopwatch/internal/api/sse"
	"github.com/mcoot/stopwatch/internal/dependencies/clock"
	"github.com/mcoot/stopwatch/internal/dependencies/random"
	"github.com/mcoot/stopwatch/internal/services/session"
	"github.com/mcoot/stopwatch/internal/services/tick"
	"github.com/mcoot/stopwatch/internal/storage"
	"github.com/mcoot/stopwatch/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionController *session.Controller
	TickDriver        *tick.Driver

	// Events
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// TickInterval is how often running clocks advance (optional)
	// If zero, defaults to stopwatch.DefaultTickInterval
	TickInterval time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Sessions are held in process memory only
	store := memory.New()

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.TickInterval, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, tickInterval time.Duration, logger *slog.Logger) *App {
	sessionController := session.NewController(store, clk, rnd, logger)
	tickDriver := tick.NewDriver(sessionController, clk, tickInterval, logger)

	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	sessionController.SetNotifier(broadcaster)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		SessionController: sessionController,
		TickDriver:        tickDriver,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
	}
}
