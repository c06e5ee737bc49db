package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/services/simulation"
)

func newDuelCmd() *cobra.Command {
	simCfg := simulation.DefaultConfig()
	var index int
	var showShots bool

	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Play a single match and print its shot log",
		Long: `duel plays one match between two strategies on randomly placed fleets.

The --game index selects which match of a simulate batch with the same seed
to replay, so a surprising result from a batch can be inspected shot by shot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if index < 0 {
				return errors.New("--game must not be negative")
			}
			simCfg.Seed = cfg.Seed
			if err := simCfg.Validate(); err != nil {
				return err
			}

			m, err := app.SimulationService.PlayGame(cmd.Context(), simCfg, index)
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if m != nil {
				out.Print(newMatchResult(m, showShots))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&simCfg.StrategyA, "a", simCfg.StrategyA, "Strategy for side A: "+strategyList())
	cmd.Flags().StringVar(&simCfg.StrategyB, "b", simCfg.StrategyB, "Strategy for side B: "+strategyList())
	cmd.Flags().IntVar(&simCfg.BoardSize, "board-size", simCfg.BoardSize, "Board side length")
	cmd.Flags().IntVar(&index, "game", 0, "Index of the match within a seeded batch")
	cmd.Flags().BoolVar(&showShots, "shots", true, "Include the shot log")

	return cmd
}
