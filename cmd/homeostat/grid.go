package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homeostat/config"
	"github.com/katalvlaran/homeostat/gridgraph"
)

var (
	gridMaze bool
	gridSeed int64
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Run the feedback loop on a grid",
	Long: `Run the feedback loop on a grid. Without --config this is the open 10×10
8-connected grid from (0,0) to (9,9) with target norm 0.25. With --maze the
grid is replaced by a generated maze of the configured (odd) size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadConfig(config.Default())
		if err != nil {
			return err
		}
		if f.Grid == nil {
			return fmt.Errorf("%w: grid command needs a grid source", config.ErrInvalid)
		}
		if gridMaze {
			g := *f.Grid
			g.Maze, g.Seed = true, gridSeed
			if g.Width%2 == 0 {
				g.Width++
			}
			if g.Height%2 == 0 {
				g.Height++
			}
			f.Grid = &g
		}

		recs, sc, err := runFile(cmd.Context(), f)
		if err != nil {
			return err
		}
		gg := sc.Topology.(*gridgraph.GridGraph)
		out := cmd.OutOrStdout()
		header(out, fmt.Sprintf("Grid %dx%d %s", gg.Width, gg.Height, gg.Conn))
		printRecords(out, recs, nil)

		// A goal never reached is either cut off or beyond the search budget.
		for _, r := range recs {
			if r.Found {
				return nil
			}
		}
		if gg.Connected(sc.Start, sc.Goal) {
			fmt.Fprintf(out, "\n%s goal is connected; every search ran out of budget (max_expansions %d)\n",
				yellow("!"), f.Search.MaxExpansions)
			return nil
		}
		route, walls, err := gg.Breach(sc.Start, sc.Goal)
		if err != nil {
			logger.Warn("breach analysis failed", slog.String("error", err.Error()))
			return nil
		}
		fmt.Fprintf(out, "\n%s goal is walled off; removing %d wall(s) opens a %d-cell route\n",
			red("✗"), walls, len(route))
		return nil
	},
}

func init() {
	gridCmd.Flags().BoolVar(&gridMaze, "maze", false, "replace the grid with a generated maze")
	gridCmd.Flags().Int64Var(&gridSeed, "seed", 1, "maze seed")
	rootCmd.AddCommand(gridCmd)
}
