package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/simulation"
)

func newSimulateCmd() *cobra.Command {
	simCfg := simulation.DefaultConfig()
	simCfg.Games = getEnvIntOrDefault("BATTLESHIP_GAMES", simCfg.Games)
	var showResults bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of AI-versus-AI matches and report win rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg.Seed = cfg.Seed

			summary, err := app.SimulationService.Run(cmd.Context(), simCfg)
			if err != nil {
				return err
			}
			if !showResults {
				summary.Results = nil
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(summary)
			return nil
		},
	}

	cmd.Flags().IntVarP(&simCfg.Games, "games", "n", simCfg.Games, "Number of matches (env: BATTLESHIP_GAMES)")
	cmd.Flags().StringVar(&simCfg.StrategyA, "a", simCfg.StrategyA, "Strategy for side A: "+strategyList())
	cmd.Flags().StringVar(&simCfg.StrategyB, "b", simCfg.StrategyB, "Strategy for side B: "+strategyList())
	cmd.Flags().IntVar(&simCfg.Parallel, "parallel", simCfg.Parallel, "Matches run at once, 0 for one per CPU")
	cmd.Flags().IntVar(&simCfg.BoardSize, "board-size", simCfg.BoardSize, "Board side length")
	cmd.Flags().BoolVar(&simCfg.KeepMatches, "keep", false, "Keep finished matches in storage")
	cmd.Flags().BoolVar(&showResults, "results", false, "Include per-game results")

	return cmd
}

func strategyList() string {
	return joinStrings(model.ValidBotStrategies())
}
