package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/model"
)

func newDensityCmd() *cobra.Command {
	var size int
	var misses, hits, sunk []string
	remaining := model.FleetLengths(model.DefaultFleet())

	cmd := &cobra.Command{
		Use:   "density",
		Short: "Score a target view with the probability density model",
		Example: `  battleship density --miss E5,F5 --hit C3
  battleship density --board-size 6 --remaining 3,2 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return model.ErrInvalidBoardSize
			}
			view := model.NewTargetView(size)
			for _, marks := range []struct {
				cells []string
				mark  model.Mark
			}{
				{misses, model.MarkMiss},
				{hits, model.MarkHit},
				{sunk, model.MarkSunk},
			} {
				for _, cell := range marks.cells {
					pos, err := model.ParsePosition(cell, size)
					if err != nil {
						return err
					}
					view.Set(pos, marks.mark)
				}
			}
			for _, length := range remaining {
				if length <= 0 || length > size {
					return fmt.Errorf("%w: %d", model.ErrInvalidShipLength, length)
				}
			}

			scores := app.DensityModel.Compute(view, remaining)
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(newDensityResult(scores, remaining))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "board-size", 10, "Board side length")
	cmd.Flags().StringSliceVar(&misses, "miss", nil, "Cells marked as misses (e.g. B5)")
	cmd.Flags().StringSliceVar(&hits, "hit", nil, "Cells marked as unresolved hits")
	cmd.Flags().StringSliceVar(&sunk, "sunk", nil, "Cells belonging to sunk ships")
	cmd.Flags().IntSliceVar(&remaining, "remaining", remaining, "Lengths of ships still afloat")

	return cmd
}

func joinStrings(values []string) string {
	return strings.Join(values, ", ")
}
