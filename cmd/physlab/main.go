package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/physlab/internal/analysis"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/export"
	"github.com/san-kum/physlab/internal/gui"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/optim"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/tui"
	"github.com/san-kum/physlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	theme      string

	ticks     int
	frameRate int
	angle     float64
	friction  float64
	preset    string
	duration  time.Duration

	xAxis int
	yAxis int
	field int

	sweepFriction float64
	sweepMin      float64
	sweepMax      float64
	sweepSteps    int
	sweepTicks    int
	snapshotTicks int
	fitTarget     int
	fitTicks      int
	fitWorkers    int

	outFile     string
	contentFile string

	// cfg is the resolved configuration for the running command.
	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "physlab",
		Short:             "interactive physics lab: free fall, pendulum and inclined plane",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{cfg.Scenario})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headlessly and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	scenarioFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run the lab in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	scenarioFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "colour theme")

	watchCmd := &cobra.Command{
		Use:   "watch [scenario]",
		Short: "play a scenario as plain terminal animation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	scenarioFlags(watchCmd)
	watchCmd.Flags().DurationVar(&duration, "time", 10*time.Second, "how long to play")

	guiCmd := &cobra.Command{
		Use:   "gui [scenario]",
		Short: "run the lab in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	axisFlags(phaseCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "period analysis of one state field",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&field, "field", 0, "state index to analyse")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the incline over a range of angles",
		RunE:  sweepIncline,
	}
	sweepCmd.Flags().Float64Var(&sweepFriction, "friction", 0.1, "friction coefficient")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "smallest angle in degrees")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 45, "largest angle in degrees")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of angles")
	sweepCmd.Flags().IntVar(&sweepTicks, "ticks", config.DefaultTicks, "ticks per run")

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "find incline settings that reach the wall at a target tick",
		RunE:  fitIncline,
	}
	fitCmd.Flags().IntVar(&fitTarget, "target", 200, "tick the block should reach the wall on")
	fitCmd.Flags().IntVar(&fitTicks, "ticks", config.DefaultTicks, "ticks per run")
	fitCmd.Flags().IntVar(&fitWorkers, "workers", 0, "concurrent runs (0 = all cpus)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [scenario|run_id]",
		Short: "export a scene snapshot or a run's phase path as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	scenarioFlags(exportSVGCmd)
	axisFlags(exportSVGCmd)
	exportSVGCmd.Flags().IntVar(&snapshotTicks, "ticks", 0, "ticks to step a scenario before the snapshot")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes for the terminal lab",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "physlab.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			log.Info("config written", "path", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, watchCmd, guiCmd, listCmd, plotCmd, phaseCmd, analyzeCmd,
		sweepCmd, fitCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, themesCmd, initCmd)
	rootCmd.AddCommand(contentCommands()...)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func scenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().Float64Var(&angle, "angle", kinematics.DefaultAngle, "incline angle in degrees")
	cmd.Flags().Float64Var(&friction, "friction", kinematics.DefaultFriction, "incline friction coefficient")
}

func axisFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	cmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")
}

// setup loads the config file, applies the global flags and installs the
// default logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "physlab",
		Level:  level,
	}))
	return nil
}

// resolve applies the scenario argument, the preset and the per-command
// flags on top of the loaded config. Flags win.
func resolve(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		cfg.Scenario = args[0]
	}
	if preset != "" {
		p := config.GetPreset(cfg.Scenario, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Scenario))
		}
		p.DataDir, p.LogLevel, p.Theme = cfg.DataDir, cfg.LogLevel, cfg.Theme
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("angle") {
		cfg.Incline.Angle = angle
	}
	if flags.Changed("friction") {
		cfg.Incline.Friction = friction
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	return cfg.Validate()
}

// quiet keeps info logs from tearing a full-screen view.
func quiet() {
	if log.GetLevel() < log.WarnLevel {
		log.SetLevel(log.WarnLevel)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runScenario(cmd *cobra.Command, args []string) error {
	if err := resolve(cmd, args); err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	expCfg := cfg.Experiment()
	exp := experiment.New(expCfg)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	log.Info("running", "scenario", cfg.Scenario, "ticks", cfg.Ticks)
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(expCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.States))
	fmt.Printf("final: %s\n", formatState(result.Fields, result.Final()))
	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if err := resolve(cmd, args); err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	quiet()

	m, err := viz.NewModel(cfg.Scenario, cfg.Incline.Params(), cfg.FPS)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := resolve(cmd, args); err != nil {
		return err
	}
	s, err := experiment.NewRegistry().Open(cfg.Scenario, cfg.Incline.Params(), nil)
	if err != nil {
		return err
	}

	quiet()

	ctx, cancel := signalContext()
	defer cancel()
	ctx, cancelTime := context.WithTimeout(ctx, duration)
	defer cancelTime()

	return tui.Watch(ctx, os.Stdout, s, cfg.FPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	if err := resolve(cmd, args); err != nil {
		return err
	}
	return gui.Run(cfg.Scenario, gui.OpenPrefs("physlab"))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tTICKS\tDURATION\tPARAMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fs\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Duration(),
			formatParams(run.Params),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.States) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(result.States))

	for i, name := range result.Fields {
		graph := asciigraph.Plot(result.Column(i),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs tick", name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	portrait, err := analysis.NewPortrait(result.States, xAxis, yAxis)
	if err != nil {
		return fmt.Errorf("axes %d,%d: %w", xAxis, yAxis, err)
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", result.Fields[xAxis], result.Fields[yAxis])
	fmt.Println(portrait.ASCII(70, 20))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if field < 0 || field >= len(result.Fields) {
		return fmt.Errorf("field %d out of range (have %v)", field, result.Fields)
	}
	data := result.Column(field)
	if len(data) < 16 {
		return fmt.Errorf("not enough samples to analyse: %d", len(data))
	}

	fmt.Printf("period analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s  field: %s\n\n", meta.Scenario, result.Fields[field])

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	ps := analysis.PowerSpectrum(padded)

	graph := asciigraph.Plot(ps[1:len(ps)/4],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", result.Fields[field])),
	)
	fmt.Println(graph)
	fmt.Println()

	printPeriod := func(label string, ticks float64) {
		if ticks <= 0 {
			fmt.Printf("%s: none\n", label)
			return
		}
		fmt.Printf("%s: %.1f ticks (%.3f s)\n", label, ticks, ticks/float64(meta.FPS))
	}
	printPeriod("dominant period", analysis.DominantPeriod(data))
	printPeriod("crossing period", analysis.CrossingPeriod(data, 0))
	return nil
}

func sweepIncline(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	points, err := analysis.SweepIncline(ctx, sweepFriction, sweepMin, sweepMax, sweepSteps, sweepTicks)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tACCEL\tHALT\tDISTANCE")
	dist := make([]float64, len(points))
	for i, p := range points {
		halt := "-"
		if p.HaltTick > 0 {
			halt = fmt.Sprint(p.HaltTick)
		}
		fmt.Fprintf(w, "%.1f°\t%.3f\t%s\t%.1f\n", p.Angle, p.Acceleration, halt, p.Distance)
		dist[i] = p.Distance
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(dist,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("distance vs angle (friction %.2f)", sweepFriction)),
	))
	return nil
}

func fitIncline(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	angles := optim.Range(0, 45, 1)
	frictions := optim.Range(0.1, 1.0, 0.05)
	log.Info("fitting incline", "target", fitTarget, "points", len(angles)*len(frictions))

	g := optim.NewGridSearch([]string{"angle", "friction"}, [][]float64{angles, frictions})
	g.Workers = fitWorkers
	best, err := optim.FitIncline(ctx, g, fitTarget, fitTicks)
	if err != nil {
		return err
	}
	if best.Result.Metrics["halt_tick"] == 0 {
		return fmt.Errorf("no setting reaches the wall within %d ticks", fitTicks)
	}

	p := kinematics.InclineParams{AngleDeg: best.Params["angle"], Friction: best.Params["friction"]}
	fmt.Printf("angle     %.0f°\n", p.AngleDeg)
	fmt.Printf("friction  %.2f\n", p.Friction)
	fmt.Printf("accel     %.3f\n", kinematics.InclineAcceleration(p))
	fmt.Printf("halt      tick %.0f (target %d)\n", best.Result.Metrics["halt_tick"], fitTarget)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	_, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.States) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(os.Stdout, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, result)
}

// exportSVG snapshots a scenario when the argument names one, and
// otherwise draws a recorded run's phase path.
func exportSVG(cmd *cobra.Command, args []string) error {
	var svg string

	reg := experiment.NewRegistry()
	if slices.Contains(reg.List(), args[0]) {
		if err := resolve(cmd, args); err != nil {
			return err
		}
		s, err := reg.Open(cfg.Scenario, cfg.Incline.Params(), nil)
		if err != nil {
			return err
		}
		for i := 0; i < snapshotTicks; i++ {
			s.Runner.Tick()
		}
		svg = export.Snapshot(s.Runner)
	} else {
		_, result, err := storage.New(cfg.DataDir).LoadResult(args[0])
		if err != nil {
			return err
		}
		if xAxis >= len(result.Fields) || yAxis >= len(result.Fields) {
			return fmt.Errorf("state dimension too small for selected axes")
		}
		svg = export.TrajectoryToSVG(result.Column(xAxis), result.Column(yAxis), 600, 400, "#9f7aea")
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info("svg written", "path", outFile)
	return nil
}

func formatState(fields []string, x []float64) string {
	parts := make([]string, 0, len(x))
	for i, v := range x {
		name := fmt.Sprintf("x%d", i)
		if i < len(fields) {
			name = fields[i]
		}
		parts = append(parts, fmt.Sprintf("%s=%.3f", name, v))
	}
	return strings.Join(parts, " ")
}

func formatParams(p map[string]float64) string {
	if len(p) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(p))
	for _, k := range sortedKeys(p) {
		parts = append(parts, fmt.Sprintf("%s=%g", k, p[k]))
	}
	return strings.Join(parts, " ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
