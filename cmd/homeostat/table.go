package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/report"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func disableColor() { color.NoColor = true }

// header prints a section title.
func header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n\n", cyan("=== "+title+" ==="))
}

// printRecords writes one line per cycle. describe, when non-nil, renders
// the found path in an extra column.
func printRecords(w io.Writer, recs []loop.Record, describe func([]core.NodeID) string) {
	fmt.Fprintln(w, yellow(fmt.Sprintf("%5s  %5s  %7s  %7s  %8s  %8s  %-11s", "cycle", "nodes", "norm", "target", "w_used", "w_next", "mode")))
	for _, r := range recs {
		if !r.Found {
			fmt.Fprintf(w, "%5d  %s  %8.4f  %8.4f  %s\n",
				r.Cycle, red(fmt.Sprintf("%5s  %7s  %7.4f", "-", "-", r.Target)), r.WeightUsed, r.Weight, gray("unreachable"))
			continue
		}
		norm := fmt.Sprintf("%7.4f", r.Norm)
		if r.Degenerate {
			norm = gray(norm)
		}
		fmt.Fprintf(w, "%5d  %5d  %s  %7.4f  %8.4f  %8.4f  %s",
			r.Cycle, r.PathLength, norm, r.Target, r.WeightUsed, r.Weight, modeText(r.Mode))
		if describe != nil {
			fmt.Fprintf(w, "  %s", describe(r.Path))
		}
		fmt.Fprintln(w)
	}
}

// modeText pads and colours a controller mode.
func modeText(m control.Mode) string {
	s := fmt.Sprintf("%-11s", m)
	if m == control.Stabilizing {
		return green(s)
	}
	return yellow(s)
}

// printSummaries writes one line per strategy.
func printSummaries(w io.Writer, sums []report.Summary) {
	fmt.Fprintln(w, yellow(fmt.Sprintf("%-16s  %6s  %6s  %8s  %8s  %8s", "strategy", "cycles", "found", "avg_len", "avg_norm", "weight")))
	for _, s := range sums {
		found := fmt.Sprintf("%6d", s.Found)
		if s.Found < s.Cycles {
			found = red(found)
		}
		fmt.Fprintf(w, "%-16s  %6d  %s  %8.2f  %8.4f  %8.4f\n",
			s.Name, s.Cycles, found, s.AvgPathLength, s.AvgNorm, s.FinalWeight)
	}
}

// labelPath joins node labels with arrows.
func labelPath(g *core.Graph) func([]core.NodeID) string {
	return func(nodes []core.NodeID) string {
		parts := make([]string, len(nodes))
		for i, id := range nodes {
			parts[i] = g.Label(id)
		}
		return strings.Join(parts, "→")
	}
}
