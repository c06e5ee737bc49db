package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Battleship targeting engine and AI match runner",
		Long: `battleship runs the probability-density targeting engine against
generated fleets.

It can simulate batches of AI-versus-AI matches, play out a single duel with
its full shot log, and print the density grid for a hand-built target view.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Verbose)
			if err != nil {
				return err
			}

			app, err = factory.New(factory.Config{
				Logger:       logger,
				EngineConfig: &cfg.Engine,
				MaxTurns:     cfg.MaxTurns,
				Seed:         cfg.Seed,
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BATTLESHIP_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base random seed (env: BATTLESHIP_SEED)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Turn limit per match, 0 for one shot per cell per side")

	// Engine tuning
	rootCmd.PersistentFlags().IntVar(&cfg.Engine.EndgameThreshold, "endgame-threshold", cfg.Engine.EndgameThreshold, "Opponent hitpoints at or below which damaged ships are finished first")
	rootCmd.PersistentFlags().IntVar(&cfg.Engine.AdjacencyBonus, "adjacency-bonus", cfg.Engine.AdjacencyBonus, "Density bonus next to unresolved hits")
	rootCmd.PersistentFlags().IntVar(&cfg.Engine.IsolationPenalty, "isolation-penalty", cfg.Engine.IsolationPenalty, "Density penalty for isolated cells")
	rootCmd.PersistentFlags().IntVar(&cfg.Engine.ParityClass, "parity-class", cfg.Engine.ParityClass, "Checkerboard class preferred while hunting (0 or 1)")

	// Add subcommands
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newDuelCmd())
	rootCmd.AddCommand(newDensityCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
