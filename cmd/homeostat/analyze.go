package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/homeostat/config"
	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare control strategies on one scenario",
	Long: `Run every strategy of the configuration on its own copy of the scenario
and print per-strategy averages of path length and measured norm. A
configuration without strategies is compared against a few built-in ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadConfig(config.Default())
		if err != nil {
			return err
		}
		strategies := f.ReportStrategies()
		if len(f.Strategies) == 0 {
			strategies = append(strategies, builtinStrategies(f)...)
		}

		opts := append(f.AgentOptions(), loop.WithLogger(logger))
		recs, err := report.Run(cmd.Context(), strategies, f.Cycles, f.Builder(), opts...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		header(out, "Strategy comparison")
		printSummaries(out, report.Aggregate(recs))
		return nil
	},
}

// builtinStrategies scales the controller gain of the file up and down and
// adds a baseline whose target never produces feedback.
func builtinStrategies(f config.File) []report.Strategy {
	base := f.ReportStrategies()[0]
	vary := func(name string, edit func(*control.Config)) report.Strategy {
		s := base
		s.Name = name
		edit(&s.Control)
		return s
	}

	return []report.Strategy{
		vary("baseline", func(c *control.Config) { c.TargetNorm = 1 }),
		vary("gentle", func(c *control.Config) { c.ProportionalGain /= 5 }),
		vary("aggressive", func(c *control.Config) { c.ProportionalGain *= 4 }),
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
