// Command homeostat runs the adaptive path-structure feedback loop on grids
// and networks and compares control strategies.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/homeostat/config"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/report"
)

var (
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string
	cycles      int
	noColor     bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "homeostat",
	Short: "Adaptive closed-loop path structure controller",
	Long: `homeostat searches a path, measures its regularity with the Gowers U² norm,
and feeds the measurement to a proportional controller that reweights the
next search. Run it on a grid, on a small network, or compare strategies.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l
		if noColor {
			disableColor()
		}
		if metricsAddr != "" {
			serveMetrics(metricsAddr)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.PersistentFlags().IntVarP(&cycles, "cycles", "n", 0, "override the configured cycle count")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newLogger builds a stderr slog logger.
func newLogger(level, format string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lv}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

// serveMetrics exposes the default Prometheus registry in the background.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.String("addr", addr), slog.String("error", err.Error()))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", addr))
}

// loadConfig reads --config or returns fallback, then applies --cycles.
func loadConfig(fallback config.File) (config.File, error) {
	f := fallback
	if configPath != "" {
		var err error
		if f, err = config.Load(configPath); err != nil {
			return config.File{}, err
		}
	}
	if cycles > 0 {
		f.Cycles = cycles
	}

	return f, f.Validate()
}

// runFile runs the file's first strategy and returns its records with the
// scenario it ran on.
func runFile(ctx context.Context, f config.File) ([]loop.Record, report.Scenario, error) {
	var sc report.Scenario
	build := func(report.Strategy) (report.Scenario, error) {
		var err error
		sc, err = f.Scenario()
		return sc, err
	}
	strategy := f.ReportStrategies()[:1]
	opts := append(f.AgentOptions(), loop.WithLogger(logger))
	recs, err := report.Run(ctx, strategy, f.Cycles, build, opts...)

	return recs, sc, err
}
