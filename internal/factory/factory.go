package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/services/board"
	"github.com/mcoot/battleship-go/internal/services/bot"
	"github.com/mcoot/battleship-go/internal/services/density"
	"github.com/mcoot/battleship-go/internal/services/match"
	"github.com/mcoot/battleship-go/internal/services/simulation"
	"github.com/mcoot/battleship-go/internal/services/targeting"
	"github.com/mcoot/battleship-go/internal/storage"
	"github.com/mcoot/battleship-go/internal/storage/memory"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Configuration
	EngineConfig   targeting.Config
	AdaptiveConfig targeting.AdaptiveConfig

	// Services
	DensityModel      *density.Model
	BoardService      *board.Service
	BotService        *bot.Service
	MatchController   *match.Controller
	SimulationService *simulation.Service

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend; only "memory" is supported
	// If empty, defaults to "memory"
	StorageType string
	// EngineConfig parameterizes every targeting engine (optional)
	// If nil, defaults to targeting.DefaultConfig(); zero fields are used as given
	EngineConfig *targeting.Config
	// AdaptiveConfig parameterizes the adaptive strategy (optional)
	// If nil, defaults to targeting.DefaultAdaptiveConfig()
	AdaptiveConfig *targeting.AdaptiveConfig
	// MaxTurns bounds a single match; zero allows each side one shot per cell
	MaxTurns int
	// Seed seeds the shared random source; zero selects crypto/rand
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory'", storageType)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	engineCfg := targeting.DefaultConfig()
	if cfg.EngineConfig != nil {
		engineCfg = *cfg.EngineConfig
	}
	adaptiveCfg := targeting.DefaultAdaptiveConfig()
	if cfg.AdaptiveConfig != nil {
		adaptiveCfg = *cfg.AdaptiveConfig
	}

	return newWithDependencies(store, clk, rnd, engineCfg, adaptiveCfg, cfg.MaxTurns, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	engineCfg targeting.Config,
	adaptiveCfg targeting.AdaptiveConfig,
	maxTurns int,
	logger *slog.Logger,
) *App {
	// Create services
	densityModel := density.New(engineCfg.DensityConfig())
	boardService := board.New(rnd, logger)
	botService := bot.NewService(engineCfg, adaptiveCfg, logger)
	matchController := match.NewController(store, clk, maxTurns, logger)
	simulationService := simulation.New(boardService, botService, matchController, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		EngineConfig:      engineCfg,
		AdaptiveConfig:    adaptiveCfg,
		DensityModel:      densityModel,
		BoardService:      boardService,
		BotService:        botService,
		MatchController:   matchController,
		SimulationService: simulationService,
		Logger:            logger,
	}
}
