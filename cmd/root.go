package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsf-game/dsf/game"
	"github.com/dsf-game/dsf/game/config"
	"github.com/dsf-game/dsf/game/trace"
	"github.com/dsf-game/dsf/game/world"
	"github.com/dsf-game/dsf/internal/host"
)

var (
	configPath string // YAML configuration file (empty = built-in defaults)
	logLevel   string // Log verbosity level
	hz         int    // Frames per second
	maxFrames  uint64 // Stop after N frames (0 = until quit)
	headless   bool   // Run without a window
	unpaced    bool   // Headless: run frames back to back
	scriptPath string // Headless: YAML event script
	traceLevel string // Trace verbosity: none, transitions, all
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dsf",
	Short: "Frame-stepped simulation front-end with time-scale and pause control",
}

// runCmd runs the simulation using the configuration file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s (valid: none, transitions, all)", traceLevel)
		}
		if hz <= 0 {
			logrus.Fatalf("--hz must be positive, got %d", hz)
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var st *trace.SimulationTrace
		if traceLevel != "" && trace.TraceLevel(traceLevel) != trace.TraceLevelNone {
			st = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		}

		w := world.New()
		d := newDriver(cfg, w, st)

		logrus.Infof("Starting simulation at %d Hz, time_scale=%v, presets=%v",
			hz, d.TimeScale().Scale(), d.TimeScale().Presets())

		if headless {
			err = runHeadless(d)
		} else {
			err = host.RunWindow(d, host.WindowConfig{
				Title:    "dsf",
				Hz:       hz,
				Bindings: host.Bindings(cfg.Bindings),
				Status:   func() string { return status(d, w) },
			})
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			logrus.Fatalf("%v", err)
		}

		printSummary(cmd, d, w, st)
		logrus.Info("Simulation complete.")
	},
}

// loadConfig reads path, or returns the built-in defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		logrus.Infof("No --config given, using built-in defaults")
		return config.Default(), nil
	}
	return config.Load(path)
}

func newDriver(cfg *config.Config, sim game.Simulation, st *trace.SimulationTrace) *game.Driver {
	return game.NewDriver(sim, cfg.Debug.NewTimeScale(), game.Options{
		Step:               1.0 / float64(hz),
		DisplayDebugFrames: cfg.Debug.DisplayDebugFrames,
		Trace:              st,
	})
}

func runHeadless(d *game.Driver) error {
	var script *host.Script
	if scriptPath != "" {
		s, err := host.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		script = s
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return host.RunHeadless(ctx, d, host.HeadlessConfig{
		Hz:      hz,
		Frames:  maxFrames,
		Script:  script,
		Unpaced: unpaced,
	})
}

// status is the text the window draws each frame; while paused it blinks a PAUSED banner.
func status(d *game.Driver, w *world.World) string {
	top := "quit"
	banner := ""
	if s := d.Stack().Top(); s != nil {
		top = s.Kind.String()
		if s.Kind == game.StatePaused && s.OverlayVisible() {
			banner = "\n\n   PAUSED"
		}
	}
	return fmt.Sprintf("state: %s\nscale: x%v\nclock: %.2fs\nframe: %d%s", top, d.TimeScale().Scale(), w.Clock, d.Frames(), banner)
}

func printSummary(cmd *cobra.Command, d *game.Driver, w *world.World, st *trace.SimulationTrace) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Simulation Summary ===")
	fmt.Fprintf(out, "frames: %d\nticks: %d\nsimulated_seconds: %.4f\nfinal_time_scale: %v\nquit: %v\n",
		d.Frames(), d.Ticks(), w.Clock, d.TimeScale().Scale(), d.Done())
	if st == nil {
		return
	}
	summary := trace.Summarize(st)
	fmt.Fprintf(out, "transitions: %d (event=%d, update=%d)\n", summary.TotalTransitions, summary.EventSourced, summary.UpdateSourced)
	for _, kind := range []string{"push", "pop", "switch", "replace", "quit"} {
		if n := summary.KindCounts[kind]; n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", kind, n)
		}
	}
	if summary.ScaleSteps > 0 {
		fmt.Fprintf(out, "time_scale_steps: %d (saturated=%d, range=[%v, %v])\n",
			summary.ScaleSteps, summary.SaturatedSteps, summary.MinScale, summary.MaxScale)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML configuration file")

	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&hz, "hz", 60, "Frames per second")
	runCmd.Flags().Uint64Var(&maxFrames, "frames", 0, "Stop after N frames in headless mode (0 = run until quit)")
	runCmd.Flags().BoolVar(&headless, "headless", false, "Run without a window")
	runCmd.Flags().BoolVar(&unpaced, "unpaced", false, "Headless: run frames back to back instead of at --hz")
	runCmd.Flags().StringVar(&scriptPath, "script", "", "Headless: YAML file of events to inject at given frames")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, transitions, all)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
