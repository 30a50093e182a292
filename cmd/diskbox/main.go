package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/diskbox/internal/config"
	"github.com/san-kum/diskbox/internal/gui"
	"github.com/san-kum/diskbox/internal/metrics"
	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/sim"
	"github.com/san-kum/diskbox/internal/storage"
	"github.com/san-kum/diskbox/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	bodies     int
	seed       int64
	scenario   string
	speed      float64
	gravityY   float64
)

// main registers commands and flags; with no subcommand the interactive
// GUI sandbox starts. It exits with status 1 if command execution fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "diskbox",
		Short: "interactive 2d disk physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diskbox", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless scenario and record it",
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/60.0, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	runCmd.Flags().IntVar(&bodies, "bodies", 12, "number of disks")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&scenario, "scenario", "burst", "scenario (grid|burst)")
	runCmd.Flags().Float64Var(&speed, "speed", 200.0, "initial speed (burst)")
	runCmd.Flags().Float64Var(&gravityY, "gravity", 0.0, "vertical gravity override")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal sandbox view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name := range config.Presets {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the sandbox configuration: preset, then config
// file, then defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if preset != "" {
		cfg := config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Physics.GravityY = gravityY
	}

	world := physics.NewWorld(cfg.PhysicsConfig(), cfg.Bounds(), cfg.DiskRadius)

	switch scenario {
	case "grid":
		sim.SpawnGrid(world, bodies, cfg.DiskRadius)
	case "burst":
		sim.SpawnBurst(world, bodies, cfg.DiskRadius, speed, seed)
	default:
		return fmt.Errorf("unknown scenario: %s", scenario)
	}

	runner := sim.New(world)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentumDrift())
	runner.AddMetric(metrics.NewPeakPenetration())

	start := time.Now()
	result, err := runner.Run(context.Background(), sim.Config{Dt: dt, Duration: duration})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scenario, dt, duration, seed, bodies, result)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("steps: %d (%.2fms)\n", result.Steps, float64(elapsed.Microseconds())/1000.0)
	fmt.Printf("disks: %d spawned, %d removed out of bounds\n", bodies, result.Removed)
	for name, value := range result.Metrics {
		fmt.Printf("%s: %.4f\n", name, value)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tBODIES\tREMOVED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Bodies,
			run.Removed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, energy, momentum, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(times))

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{energy, "total kinetic energy"},
		{momentum, "total momentum magnitude"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
