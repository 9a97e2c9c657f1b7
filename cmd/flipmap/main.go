package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rayannott/flipmap/internal/config"
	"github.com/rayannott/flipmap/internal/export"
	"github.com/rayannott/flipmap/internal/flip"
	"github.com/rayannott/flipmap/internal/gridmap"
	"github.com/rayannott/flipmap/internal/pendulum"
	"github.com/rayannott/flipmap/internal/render"
	"github.com/rayannott/flipmap/internal/watch"
)

var (
	resolution int
	workers    int
	sequential bool
	tolerance  float64
	gravity    float64
	l1, l2     float64
	m1, m2     float64
	tFinal     float64
	theta1     float64
	theta2     float64
	configFile string
	preset     string
	outPath    string
	watchMode  bool
	verbose    bool
	plotTrace  bool
	profileRow int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flipmap",
		Short: "double pendulum flip-count maps",
		Long: "flipmap integrates the chaotic double pendulum over a dense grid of\n" +
			"initial angles and classifies each cell by how often the second arm\n" +
			"flips over, producing a sensitivity map of the system.",
	}

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "build a flip-count grid map",
		RunE:  runMap,
	}
	mapCmd.Flags().IntVar(&resolution, "n", config.DefaultResolution, "grid resolution N (map shape is N x 2N-1)")
	mapCmd.Flags().IntVar(&workers, "workers", gridmap.DefaultWorkers, "worker pool size")
	mapCmd.Flags().BoolVar(&sequential, "sequential", false, "build row by row without a worker pool")
	mapCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "solver tolerance")
	addConstantFlags(mapCmd)
	mapCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	mapCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	mapCmd.Flags().StringVar(&outPath, "out", "", "output file (.csv, .json, .xlsx or .svg)")
	mapCmd.Flags().BoolVar(&watchMode, "watch", false, "show live build progress")
	mapCmd.Flags().BoolVar(&verbose, "verbose", false, "print a mark per completed row")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "integrate a single trajectory and report its flips",
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&theta1, "theta1", 1.5, "initial angle of the first arm")
	traceCmd.Flags().Float64Var(&theta2, "theta2", 1.5, "initial angle of the second arm")
	addConstantFlags(traceCmd)
	traceCmd.Flags().BoolVar(&plotTrace, "plot", false, "plot theta2 over time")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "evaluate one grid cell",
		RunE:  runCount,
	}
	countCmd.Flags().Float64Var(&theta1, "theta1", 1.5, "initial angle of the first arm")
	countCmd.Flags().Float64Var(&theta2, "theta2", 1.5, "initial angle of the second arm")
	addConstantFlags(countCmd)

	renderCmd := &cobra.Command{
		Use:   "render [map.csv]",
		Short: "render a saved map as a terminal heatmap",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&profileRow, "row", -1, "also plot the flip profile of one row")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-14s N=%-4d workers=%d T=%g\n", name, cfg.N, cfg.Workers, cfg.Constants.TFinal)
			}
		},
	}

	rootCmd.AddCommand(mapCmd, traceCmd, countCmd, renderCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConstantFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gravity, "g", pendulum.DefaultGravity, "gravitational acceleration")
	cmd.Flags().Float64Var(&l1, "l1", pendulum.DefaultLength, "first rod length")
	cmd.Flags().Float64Var(&l2, "l2", pendulum.DefaultLength, "second rod length")
	cmd.Flags().Float64Var(&m1, "m1", pendulum.DefaultMass, "first bob mass")
	cmd.Flags().Float64Var(&m2, "m2", pendulum.DefaultMass, "second bob mass")
	cmd.Flags().Float64Var(&tFinal, "t-final", pendulum.DefaultDuration, "simulated duration")
}

func constantsFromFlags() pendulum.Constants {
	return pendulum.Constants{G: gravity, L1: l1, L2: l2, M1: m1, M2: m2, TFinal: tFinal}
}

// mapConfig resolves preset, config file and flags, in rising priority.
func mapConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("n") {
		cfg.N = resolution
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("sequential") {
		cfg.Sequential = sequential
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("g") {
		cfg.Constants.G = gravity
	}
	if cmd.Flags().Changed("l1") {
		cfg.Constants.L1 = l1
	}
	if cmd.Flags().Changed("l2") {
		cfg.Constants.L2 = l2
	}
	if cmd.Flags().Changed("m1") {
		cfg.Constants.M1 = m1
	}
	if cmd.Flags().Changed("m2") {
		cfg.Constants.M2 = m2
	}
	if cmd.Flags().Changed("t-final") {
		cfg.Constants.TFinal = tFinal
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = outPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := mapConfig(cmd)
	if err != nil {
		return err
	}

	builder := gridmap.NewBuilder()
	builder.Workers = cfg.Workers
	builder.Tol = cfg.Tolerance

	build := func(ctx context.Context) (*gridmap.Map, error) {
		if cfg.Sequential {
			return builder.BuildSequential(ctx, cfg.N, cfg.Constants)
		}
		return builder.Build(ctx, cfg.N, cfg.Constants)
	}

	fmt.Printf("shape: (%d, %d); %d cells; T_final=%g\n", cfg.N, 2*cfg.N-1, cfg.N*(2*cfg.N-1), cfg.Constants.TFinal)

	var m *gridmap.Map
	start := time.Now()

	if watchMode {
		m, err = buildWatched(build, builder, cfg.N)
	} else {
		if verbose {
			builder.Progress = func(i int) { fmt.Printf(".%d.", i+1) }
		}
		m, err = build(context.Background())
		if verbose {
			fmt.Println()
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v, max flips: %d\n", time.Since(start).Round(time.Millisecond), m.Max())

	if cfg.Output == "" {
		fmt.Print(render.Heatmap(m))
		return nil
	}
	return writeMap(cfg.Output, m, cfg.Constants)
}

// buildWatched runs the build under a live progress view; quitting the view
// cancels the build.
func buildWatched(build func(context.Context) (*gridmap.Map, error), builder *gridmap.Builder, n int) (*gridmap.Map, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(watch.New(n, cancel))
	builder.Progress = func(i int) { p.Send(watch.RowMsg(i)) }

	type buildResult struct {
		m   *gridmap.Map
		err error
	}
	done := make(chan buildResult, 1)

	go func() {
		m, err := build(ctx)
		done <- buildResult{m, err}
		p.Send(watch.DoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return nil, err
	}

	res := <-done
	return res.m, res.err
}

func writeMap(path string, m *gridmap.Map, cnst pendulum.Constants) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = export.WriteCSV(path, m)
	case ".json":
		err = export.WriteJSON(path, m, cnst)
	case ".xlsx":
		err = export.WriteXLSX(path, m, cnst)
	case ".svg":
		err = export.WriteSVG(path, m, 4)
	default:
		return fmt.Errorf("unsupported output format: %s", path)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cnst := constantsFromFlags()

	traj, err := pendulum.Solve(cnst, theta1, theta2)
	if err != nil {
		return err
	}

	theta2s := traj.Component(1)
	times, err := flip.Times(traj.Times, theta2s)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d over [0, %g]\n", traj.Len(), cnst.TFinal)
	fmt.Printf("flips: %d\n", len(times))
	for _, t := range times {
		fmt.Printf("  t=%.3f\n", t)
	}

	final := traj.Final()
	dp := pendulum.NewDouble(cnst)
	_, _, bx, by := dp.BobPositions(final[0], final[1])
	fmt.Printf("final bob position: (%.3f, %.3f), energy: %.4f\n", bx, by, dp.Energy(final))

	if plotTrace {
		fmt.Println(render.AnglePlot(theta2s, "theta2 over time"))
	}
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	cnst := constantsFromFlags()
	count, err := gridmap.Evaluate(theta1, theta2, cnst)
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	m, err := export.ReadCSV(args[0])
	if err != nil {
		return err
	}

	fmt.Print(render.Heatmap(m))

	if profileRow >= 0 {
		if profileRow >= m.Rows {
			return fmt.Errorf("row %d out of range (map has %d rows)", profileRow, m.Rows)
		}
		fmt.Println(render.RowProfile(m, profileRow))
	}
	return nil
}
