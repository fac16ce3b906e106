package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballsim/internal/analysis"
	"github.com/san-kum/ballsim/internal/automation"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/experiment"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/gui"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/storage"
	"github.com/san-kum/ballsim/internal/tui"
	"github.com/san-kum/ballsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string

	seed         int64
	numBalls     int
	friction     string
	dt           float64
	duration     float64
	initialSpeed float64

	theme    string
	outPath  string
	trials   int
	minBalls int
	maxBalls int
	steps    int
	bins     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ballsim",
		Short:         "2D elastic ball collision sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".ballsim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed (0 = time based)")
	pf.IntVar(&numBalls, "balls", config.DefaultBalls, "number of balls")
	pf.StringVar(&friction, "friction", "drag", "friction mode (none, drag, collision)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep for headless runs")
	pf.Float64Var(&duration, "time", config.DefaultDuration, "duration of headless runs")
	pf.Float64Var(&initialSpeed, "initial-speed", 0, "upper bound of the random spawn speed")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the raylib window",
		RunE:  runGUI,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the sandbox in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick and tune a preset, then run it in the terminal",
		RunE:  runLauncher,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the series",
		RunE:  runSimulation,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot kinetic energy and contacts of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the time series as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export metadata and time series as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the kinetic energy curve as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.svg)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "energy decay and contact rhythm of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	speedsCmd := &cobra.Command{
		Use:   "speeds",
		Short: "run a world and print its speed distribution",
		RunE:  speedDistribution,
	}
	speedsCmd.Flags().IntVar(&bins, "bins", 12, "histogram bins")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "spawn a world, optionally run it, and write it as svg",
		RunE:  snapshotWorld,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default world.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBALLS\tRADIUS\tFRICTION\tLAUNCH")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.0f-%.0f\t%s\t%.0f\n",
					name, p.Balls.Count, p.Balls.MinRadius, p.Balls.MaxRadius, p.Friction, p.Launch.Speed)
			}
			w.Flush()
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure tick time across ball counts",
		RunE:  benchBalls,
	}
	benchCmd.Flags().IntVar(&minBalls, "min", 50, "smallest ball count")
	benchCmd.Flags().IntVar(&maxBalls, "max", 400, "largest ball count")
	benchCmd.Flags().IntVar(&steps, "steps", 8, "number of ball counts to try")

	monteCarloCmd := &cobra.Command{
		Use:   "monte-carlo",
		Short: "run seeded trials in parallel and summarize them",
		RunE:  runMonteCarlo,
	}
	monteCarloCmd.Flags().IntVar(&trials, "trials", 16, "number of trials")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "replay a scripted interaction scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the final world as svg")

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, tuiCmd, runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportSVGCmd, analyzeCmd, speedsCmd, snapshotCmd, presetsCmd, benchCmd, monteCarloCmd,
		scenarioCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: preset or config file
// first, then any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("balls") {
		cfg.Balls.Count = numBalls
	}
	if flags.Changed("friction") {
		cfg.Friction = friction
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("initial-speed") {
		cfg.Balls.InitialSpeed = initialSpeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the logger for a command. Interactive frontends own the
// terminal or window, so they only log when --log-file is given.
func newLogger(cfg *config.Config, interactive bool) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if logFile != "" {
		return logging.OpenFile(logFile, level)
	}
	if interactive {
		return logging.Discard(), nopWriteCloser{io.Discard}, nil
	}
	return logging.New(os.Stderr, level), nopWriteCloser{io.Discard}, nil
}

func setup(cmd *cobra.Command, interactive bool) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer, err := newLogger(cfg, interactive)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, func() { closer.Close() }, nil
}

func newInteraction(cfg *config.Config) *control.Interaction {
	ctrl := control.NewInteraction()
	ctrl.SetParam("max_speed", cfg.Launch.MaxSpeed)
	ctrl.SetParam("scroll_step", cfg.Launch.ScrollStep)
	ctrl.SetSpeed(cfg.Launch.Speed)
	return ctrl
}

func interactiveSimulator(cfg *config.Config, logger *slog.Logger) (*sim.Simulator, *control.Interaction, error) {
	ctrl := newInteraction(cfg)
	exp := experiment.New(cfg)
	exp.SetLogger(logger)
	if err := exp.Setup(ctrl); err != nil {
		return nil, nil, err
	}
	return exp.Simulator(), ctrl, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer done()

	s, ctrl, err := interactiveSimulator(cfg, logger)
	if err != nil {
		return err
	}
	gui.Run(cfg, s, ctrl, logger)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return live(cfg)
}

func runLauncher(cmd *cobra.Command, args []string) error {
	cfg, err := tui.Pick()
	if err != nil || cfg == nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return live(cfg)
}

func live(cfg *config.Config) error {
	logger, closer, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	s, ctrl, err := interactiveSimulator(cfg, logger)
	if err != nil {
		return err
	}
	viz.SetTheme(theme)

	stamp := time.Now().Format("20060102_150405")
	return viz.Run(s, ctrl, viz.Options{
		LineThickness: cfg.Render.LineThickness,
		Logger:        logger,
		SnapshotPath:  fmt.Sprintf("ballsim_%s.svg", stamp),
		RecordPath:    fmt.Sprintf("ballsim_%s.gif", stamp),
	})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runMeta(cfg *config.Config) storage.RunMetadata {
	return storage.RunMetadata{
		Preset:   preset,
		Seed:     cfg.Seed,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Friction: cfg.Friction,
		Balls:    cfg.Balls.Count,
		Width:    cfg.Screen.Width,
		Height:   cfg.Screen.Height,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	exp.SetLogger(logger)
	if err := exp.Setup(nil); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %d balls for %.2fs...\n", cfg.Balls.Count, cfg.Duration)
	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(runMeta(cfg), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("contacts: %d\n", result.Contacts)
	if result.Degenerate > 0 {
		fmt.Printf("coincident pairs skipped: %d\n", result.Degenerate)
	}
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
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
	fmt.Fprintln(w, "ID\tTIME\tBALLS\tFRICTION\tDURATION\tDT\tCONTACTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Balls,
			run.Friction,
			run.Duration,
			run.Dt,
			run.Contacts,
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
	samples, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("balls: %d  friction: %s\n", meta.Balls, meta.Friction)
	fmt.Printf("samples: %d\n\n", len(samples))

	energy := make([]float64, len(samples))
	contacts := make([]float64, len(samples))
	for i, s := range samples {
		energy[i] = s.KineticEnergy
		contacts[i] = float64(s.Contacts)
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{energy, "kinetic energy"},
		{contacts, "contacts per sample"},
	} {
		fmt.Println(asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return writeJSON(os.Stdout, meta)
}

// output opens outPath, or stdout when it is empty.
func output() (io.WriteCloser, error) {
	if outPath == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(outPath)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	if err := storage.WriteSeries(out, samples); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported %d samples to %s\n", len(samples), outPath)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	out, err := output()
	if err != nil {
		return err
	}
	defer out.Close()

	result := &sim.Result{
		Samples:    samples,
		Metrics:    meta.Metrics,
		StepsTaken: meta.Steps,
		Contacts:   meta.Contacts,
		Degenerate: meta.Degenerate,
	}
	return storage.ExportJSON(out, *meta, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(export.EnergyToSVG(samples, 800, 300, "#00e430")), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%d balls, %s)\n\n", meta.ID, meta.Balls, meta.Friction)

	if fit, ok := analysis.FitDecay(samples); ok {
		fmt.Printf("energy decay rate: %.4f /s\n", fit.Rate)
		fmt.Printf("half-life:         %.3fs\n", fit.HalfLife())
		fmt.Printf("fitted initial KE: %.1f (%d samples)\n", fit.Initial, fit.Points)
	} else {
		fmt.Println("energy decay: not enough moving samples")
	}

	if t, ok := analysis.TimeToRest(samples); ok {
		fmt.Printf("all at rest:       %.3fs\n", t)
	} else {
		fmt.Println("all at rest:       never")
	}

	if p, ok := analysis.DominantPeriod(samples); ok {
		fmt.Printf("contact period:    %.3fs\n", p)
	}
	return nil
}

func speedDistribution(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	exp := experiment.New(cfg)
	exp.SetLogger(logger)
	if err := exp.Setup(nil); err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	if _, err := exp.Run(ctx); err != nil {
		return err
	}

	speeds := analysis.Speeds(exp.Simulator().World().Balls)
	mean, std := analysis.MeanStd(speeds)
	fmt.Printf("speeds after %.2fs (%d balls, %s)\n", cfg.Duration, len(speeds), cfg.Friction)
	fmt.Printf("mean %.2f  std %.2f\n\n", mean, std)
	fmt.Print(analysis.NewHistogram(speeds, bins).ASCII(50))
	return nil
}

func snapshotWorld(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	exp := experiment.New(cfg)
	exp.SetLogger(logger)
	if err := exp.Setup(nil); err != nil {
		return err
	}
	// Only advance the world when a duration was asked for.
	if cmd.Flags().Changed("time") {
		ctx, cancel := signalContext()
		defer cancel()
		if _, err := exp.Run(ctx); err != nil {
			return err
		}
	}

	path := outPath
	if path == "" {
		path = "world.svg"
	}
	svg := export.WorldToSVG(exp.Simulator().World(), cfg.Render.LineThickness, nil)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func benchBalls(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := signalContext()
	defer cancel()

	sweep := &automation.ParameterSweep{Base: cfg, MinBalls: minBalls, MaxBalls: maxBalls, NumSteps: steps}
	results, err := automation.RunSweep(ctx, sweep, logger)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %.2fs at dt=%.4f\n\n", cfg.Duration, cfg.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BALLS\tCONTACTS\tFINAL KE\tTICK\tTICKS/SEC")
	for _, r := range results {
		perSec := 0.0
		if r.StepTime > 0 {
			perSec = float64(time.Second) / float64(r.StepTime)
		}
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%v\t%.0f\n", r.Balls, r.Contacts, r.FinalEnergy, r.StepTime, perSec)
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, logger, done, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	if trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunMonteCarlo(ctx, cfg, trials, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tCONTACTS\tDEGENERATE\tFINAL KE\tSTABLE")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.1f\t%v\n", r.Seed, r.Contacts, r.Degenerate, r.FinalEnergy, r.Stable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stable, unstable := automation.MonteCarloStats(results)
	fmt.Printf("\nstable: %d  unstable: %d\n", stable, unstable)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)
	if logFile != "" {
		l, closer, err := logging.OpenFile(logFile, level)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = l
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := automation.RunScenario(ctx, scenario, logger)
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", report.Scenario)
	fmt.Printf("events fired: %d/%d\n", report.Fired, len(scenario.Events))
	fmt.Printf("steps: %d  contacts: %d\n", report.Result.StepsTaken, report.Result.Contacts)
	for name, val := range report.Result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if outPath != "" {
		svg := export.WorldToSVG(report.World, report.Config.Render.LineThickness, nil)
		if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "ballsim.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
