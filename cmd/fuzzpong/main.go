package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/fuzzpong/internal/analysis"
	"github.com/san-kum/fuzzpong/internal/automation"
	"github.com/san-kum/fuzzpong/internal/config"
	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/experiment"
	"github.com/san-kum/fuzzpong/internal/optim"
	"github.com/san-kum/fuzzpong/internal/pong"
	"github.com/san-kum/fuzzpong/internal/sim"
	"github.com/san-kum/fuzzpong/internal/storage"
	"github.com/san-kum/fuzzpong/internal/viz"
)

var (
	dataDir  string
	logLevel string
	logJSON  bool
	theme    string

	// match selection
	configFile string
	preset     string
	player     string
	opponent   string
	ticks      int
	fps        float64
	ballSpeed  float64

	// fuzzy tuning
	deadZone     float64
	cutoff       float64
	boostGain    float64
	boostEpsilon float64
	edgeFactor   float64

	noSave     bool
	quiet      bool
	untilMiss  bool
	side       string
	showFrames bool
	outFile    string

	surfaceSteps int
	surfaceDys   []float64
	membership   bool

	metricName string
	grid       []string

	sweepSteps int
	trials     int
	seed       int64
	jitter     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fuzzpong",
		Short:         "fuzzy-logic pong paddle lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			viz.SetTheme(theme)
			return setupLogging(logLevel, logJSON)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fuzzpong", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "report theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "play a match and save it",
		Args:  cobra.NoArgs,
		RunE:  runMatch,
	}
	addMatchFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "play a match writing frames as CSV while it runs",
		Args:  cobra.NoArgs,
		RunE:  streamMatch,
	}
	addMatchFlags(streamCmd)
	streamCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	streamCmd.Flags().BoolVar(&untilMiss, "until-miss", false, "stop after the first miss")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot ball and paddle traces of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&side, "side", "bottom", "paddle to plot (top, bottom)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().BoolVar(&showFrames, "frames", false, "include every frame")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	explainCmd := &cobra.Command{
		Use:   "explain [dx] [dy]",
		Short: "trace one controller decision",
		Args:  cobra.ExactArgs(2),
		RunE:  explainDecision,
	}
	addTuningFlags(explainCmd)
	explainCmd.Flags().BoolVar(&membership, "membership", false, "draw the membership functions")

	surfaceCmd := &cobra.Command{
		Use:   "surface",
		Short: "plot the controller response over dx",
		Args:  cobra.NoArgs,
		RunE:  plotSurface,
	}
	addTuningFlags(surfaceCmd)
	surfaceCmd.Flags().IntVar(&surfaceSteps, "steps", 161, "dx samples")
	surfaceCmd.Flags().Float64SliceVar(&surfaceDys, "dy", []float64{20, 150, 280, 380}, "|dy| rows")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "velocity spectrum and tracking statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&side, "side", "bottom", "paddle to analyze (top, bottom)")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search over fuzzy tuning",
		Args:  cobra.NoArgs,
		RunE:  tuneMatch,
	}
	addMatchFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&metricName, "metric", "misses_bottom", "metric to minimize")
	tuneCmd.Flags().StringArrayVar(&grid, "grid", []string{"dead_zone=0.5,1.2,2.5", "boost_gain=1,1.1,1.3"}, "param=v1,v2,... (repeatable)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param] [min] [max]",
		Short: "replay a match across one tuning parameter",
		Args:  cobra.ExactArgs(3),
		RunE:  sweepParam,
	}
	addMatchFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")

	robustCmd := &cobra.Command{
		Use:   "robustness",
		Short: "monte carlo over perturbed ball speed and power factor",
		Args:  cobra.NoArgs,
		RunE:  robustness,
	}
	addMatchFlags(robustCmd)
	robustCmd.Flags().IntVar(&trials, "trials", 20, "number of trials")
	robustCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (time based when unset)")
	robustCmd.Flags().Float64Var(&jitter, "jitter", 1, "max ball speed perturbation")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of matches",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [strategy1] [strategy2] ...",
		Short: "compare player strategies on the same match",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareStrategies,
	}
	addMatchFlags(compareCmd)

	rootCmd.AddCommand(runCmd, streamCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, explainCmd, surfaceCmd,
		analyzeCmd, tuneCmd, sweepCmd, robustCmd, scenarioCmd, presetsCmd, compareCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string, asJSON bool) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if asJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&deadZone, "dead-zone", control.DefaultDeadZone, "|dx| below which the paddle holds still")
	cmd.Flags().Float64Var(&cutoff, "cutoff", control.DefaultCutoffFraction, "fraction of max speed snapped to zero")
	cmd.Flags().Float64Var(&boostGain, "boost-gain", control.DefaultBoostGain, "velocity gain while the ball approaches")
	cmd.Flags().Float64Var(&boostEpsilon, "boost-epsilon", control.DefaultBoostEpsilon, "minimum |dy| decrease counted as approaching")
	cmd.Flags().Float64Var(&edgeFactor, "edge-factor", control.DefaultEdgeFactor, "share of paddle width used for edge aiming")
}

func addMatchFlags(cmd *cobra.Command) {
	addTuningFlags(cmd)
	cmd.Flags().StringVar(&player, "player", config.DefaultPlayer, "bottom paddle strategy")
	cmd.Flags().StringVar(&opponent, "opponent", config.DefaultOpponent, "top paddle strategy")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "match length in ticks")
	cmd.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "ticks per second")
	cmd.Flags().Float64Var(&ballSpeed, "ball-speed", pong.DefaultBallSpeed, "ball speed per axis")
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("player") {
		cfg.Player = player
	}
	if flags.Changed("opponent") {
		cfg.Opponent = opponent
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("ball-speed") {
		cfg.Game.BallSpeed = ballSpeed
	}
	if flags.Changed("dead-zone") {
		cfg.Fuzzy.DeadZone = deadZone
	}
	if flags.Changed("cutoff") {
		cfg.Fuzzy.CutoffFraction = cutoff
	}
	if flags.Changed("boost-gain") {
		cfg.Fuzzy.BoostGain = boostGain
	}
	if flags.Changed("boost-epsilon") {
		cfg.Fuzzy.BoostEpsilon = boostEpsilon
	}
	if flags.Changed("edge-factor") {
		cfg.Fuzzy.EdgeFactor = edgeFactor
	}

	return cfg, cfg.Validate()
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("%s (bottom) vs %s (top), %d ticks\n", cfg.Player, cfg.Opponent, cfg.Ticks)
	start := time.Now()

	e := experiment.New(cfg)
	if err := e.Setup(experiment.NewRegistry(), experiment.DefaultMetrics(cfg.GameConfig())); err != nil {
		return err
	}
	if !quiet {
		e.GetSimulator().AddObserver(newProgress(os.Stderr, cfg.Ticks))
	}

	result, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(viz.RenderSummary("metrics", result.Metrics))
	fmt.Printf("completed %d ticks in %v\n", result.TicksTaken, elapsed)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

// progress redraws a bar on w about fifty times per match.
type progress struct {
	w     io.Writer
	total int
	every int
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{w: w, total: total, every: max(1, total/50)}
}

func (p *progress) OnTick(f pong.Frame, _ pong.Events) {
	if f.Tick%p.every != 0 && f.Tick != p.total {
		return
	}
	fmt.Fprintf(p.w, "\r%s %d/%d", viz.ProgressBar(float64(f.Tick)/float64(p.total), 30), f.Tick, p.total)
	if f.Tick == p.total {
		fmt.Fprintln(p.w)
	}
}

func streamMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	e := experiment.New(cfg)
	if err := e.Setup(experiment.NewRegistry(), nil); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	fs := storage.NewFrameStream(w)
	var total pong.Events
	err = e.Stream(cmd.Context(), func(f pong.Frame, ev pong.Events) bool {
		total.Add(ev)
		if fs.Write(f) != nil {
			return false
		}
		return !untilMiss || ev.Misses[pong.Top]+ev.Misses[pong.Bottom] == 0
	})
	if err != nil {
		return err
	}
	if err := fs.Err(); err != nil {
		return err
	}

	slog.Info("stream done",
		"frames", fs.Written(),
		"misses_bottom", total.Misses[pong.Bottom],
		"misses_top", total.Misses[pong.Top],
	)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Player,
			run.Opponent,
			strconv.Itoa(run.Ticks),
			fmt.Sprintf("%d / %d", run.Events.Misses[pong.Bottom], run.Events.Misses[pong.Top]),
		})
	}
	fmt.Println(viz.RenderTable([]string{"ID", "TIME", "PLAYER", "OPPONENT", "TICKS", "MISSES (P/O)"}, rows))
	return nil
}

func loadRun(runID string) (*storage.RunMetadata, []pong.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	s, err := pong.ParseSide(side)
	if err != nil {
		return err
	}
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	ballX := make([]float64, len(frames))
	paddleX := make([]float64, len(frames))
	command := make([]float64, len(frames))
	half := meta.Config.Game.PaddleWidth / 2
	for i, f := range frames {
		ballX[i] = f.BallX + meta.Config.Game.BallSize/2
		paddleX[i] = f.Paddle(s).X + half
		command[i] = f.Paddle(s).Command
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("%s paddle: %s\n", s, strategyOn(meta, s))
	fmt.Printf("frames: %d\n\n", len(frames))

	fmt.Println(viz.PlotMany([][]float64{ballX, paddleX}, "ball center x (red) and paddle center x (green)"))
	fmt.Println()
	fmt.Println(viz.PlotSeries(command, "requested move per tick"))
	fmt.Println()
	fmt.Println(viz.Sparkline(command, 80))
	return nil
}

func strategyOn(meta *storage.RunMetadata, s pong.Side) string {
	if s == pong.Top {
		return meta.Opponent
	}
	return meta.Player
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	var frames []pong.Frame
	if showFrames {
		if frames, err = st.LoadFrames(args[0]); err != nil {
			return err
		}
	}
	return storage.ExportJSON(os.Stdout, meta, frames)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	frames, err := storage.New(dataDir).LoadFrames(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.WriteFramesCSV(os.Stdout, frames)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := storage.WriteFramesCSV(f, frames); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %d frames to %s\n", len(frames), outFile)
	return nil
}

func newFuzzy(cmd *cobra.Command) (*control.Fuzzy, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	f, err := control.NewFuzzy(cfg.GameConfig().Geometry(), cfg.Tuning())
	return f, cfg, err
}

func explainDecision(cmd *cobra.Command, args []string) error {
	dx, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("dx: %w", err)
	}
	dy, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("dy: %w", err)
	}

	f, _, err := newFuzzy(cmd)
	if err != nil {
		return err
	}

	tr := f.Explain(dx, math.Abs(dy))

	fmt.Println(viz.RenderSummary("decision", map[string]float64{
		"dx":         tr.Dx,
		"|dy|":       tr.DyAbs,
		"edge_shift": tr.Shift,
		"corrected":  tr.Corrected,
		"raw":        tr.Raw,
		"velocity":   tr.Velocity,
		"tick":       f.Velocity(dx, dy),
	}))

	degreeRows := func(d map[string]float64, labels []string) [][]string {
		rows := make([][]string, 0, len(labels))
		for _, l := range labels {
			rows = append(rows, []string{l, strconv.FormatFloat(d[l], 'f', 4, 64)})
		}
		return rows
	}
	fmt.Println(viz.RenderTable([]string{"HORIZONTAL", "DEGREE"}, degreeRows(tr.X, f.HorizontalSet().Labels())))
	fmt.Println(viz.RenderTable([]string{"VERTICAL", "DEGREE"}, degreeRows(tr.Y, f.VerticalSet().Labels())))

	rules := make([][]string, 0, len(tr.Rules))
	for _, r := range tr.Rules {
		y := r.Y
		if y == "" {
			y = "any"
		}
		rules = append(rules, []string{
			r.X, y, r.Then.String(),
			strconv.FormatFloat(r.Strength, 'f', 4, 64),
			strconv.FormatFloat(r.Output, 'f', 2, 64),
		})
	}
	fmt.Println(viz.RenderTable([]string{"DX IS", "|DY| IS", "THEN", "STRENGTH", "OUTPUT"}, rules))

	if membership {
		fmt.Println(viz.RenderMembership(f.HorizontalSet(), 60, 2))
		fmt.Println(viz.RenderMembership(f.VerticalSet(), 60, 2))
	}
	return nil
}

func plotSurface(cmd *cobra.Command, args []string) error {
	f, cfg, err := newFuzzy(cmd)
	if err != nil {
		return err
	}
	if surfaceSteps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", surfaceSteps)
	}

	span := cfg.Game.BoardWidth / 2
	g, err := analysis.Surface(f.Geometry(), f.Tuning(), analysis.Linspace(-span, span, surfaceSteps), surfaceDys)
	if err != nil {
		return err
	}
	fmt.Println(viz.PlotSurface(g))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	s, err := pong.ParseSide(side)
	if err != nil {
		return err
	}
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	velocity := make([]float64, len(frames))
	tracking := make([]float64, len(frames))
	for i, f := range frames {
		velocity[i] = f.Paddle(s).Command
		tracking[i] = math.Abs(f.Paddle(s).Dx)
	}

	fmt.Printf("analysis: %s (%s paddle, %s)\n\n", meta.ID, s, strategyOn(meta, s))

	ps := analysis.Spectrum(velocity)
	fmt.Println(viz.PlotSeries(ps[1:], "velocity power spectrum"))
	fmt.Println()

	freq, power, err := analysis.DominantFrequency(velocity, meta.Config.FPS)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.3f hz (power %.3g)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	fmt.Println()

	stats := func(name string, sm analysis.Summary) []string {
		f := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
		return []string{name, strconv.Itoa(sm.N), f(sm.Mean), f(sm.StdDev), f(sm.Min), f(sm.Max)}
	}
	fmt.Println(viz.RenderTable(
		[]string{"SERIES", "N", "MEAN", "STDDEV", "MIN", "MAX"},
		[][]string{
			stats("velocity", analysis.Summarize(velocity)),
			stats("|dx|", analysis.Summarize(tracking)),
		},
	))

	fmt.Println("\ndx vs requested move:")
	fmt.Print(analysis.Scatter(analysis.Portrait(frames, s), 70, 18))
	return nil
}

// parseGrid turns "name=v1,v2" entries into parallel name and value lists.
func parseGrid(entries []string) ([]string, [][]float64, error) {
	names := make([]string, 0, len(entries))
	ranges := make([][]float64, 0, len(entries))
	for _, entry := range entries {
		name, list, ok := strings.Cut(entry, "=")
		if !ok || list == "" {
			return nil, nil, fmt.Errorf("bad grid %q, want name=v1,v2", entry)
		}
		var vals []float64
		for _, s := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("grid %s: %w", name, err)
			}
			vals = append(vals, v)
		}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}

func tuneMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	names, ranges, err := parseGrid(grid)
	if err != nil {
		return err
	}

	total := 1
	for _, r := range ranges {
		total *= len(r)
	}
	slog.Info("grid search", "combinations", total, "metric", metricName)

	gs := optim.NewGridSearch(names, ranges)
	best, score, err := gs.Search(cmd.Context(), optim.TuningBuilder(cfg, experiment.NewRegistry()), metricName)
	if err != nil {
		return err
	}

	best[metricName] = score
	fmt.Println(viz.RenderSummary("best tuning", best))
	return nil
}

func sweepParam(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lo, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("min: %w", err)
	}
	hi, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("max: %w", err)
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Base:      cfg,
		ParamName: args[0],
		ParamMin:  lo,
		ParamMax:  hi,
		NumSteps:  sweepSteps,
	}, experiment.NewRegistry())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			strconv.FormatFloat(r.ParamValue, 'g', 5, 64),
			strconv.Itoa(r.Events.Misses[pong.Bottom]),
			strconv.Itoa(r.Events.Hits[pong.Bottom]),
			strconv.FormatFloat(r.Metrics["tracking_error_bottom"], 'f', 2, 64),
			strconv.FormatFloat(r.Metrics["jitter_bottom"], 'f', 3, 64),
		})
	}
	fmt.Println(viz.RenderTable([]string{strings.ToUpper(args[0]), "MISSES", "HITS", "TRACKING", "JITTER"}, rows))
	return nil
}

func robustness(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	fmt.Printf("seed %d\n", seed)

	results, err := automation.RunMonteCarlo(cmd.Context(), &automation.MonteCarloConfig{
		Base:        cfg,
		SpeedJitter: jitter,
		PowerJitter: 0.1,
		NumTrials:   trials,
		Seed:        seed,
	}, experiment.NewRegistry())
	if err != nil {
		return err
	}

	hits, misses := automation.MonteCarloStats(results)
	rate := 0.0
	if hits+misses > 0 {
		rate = float64(hits) / float64(hits+misses)
	}
	fmt.Printf("%d trials: %d hits, %d misses\n", len(results), hits, misses)
	fmt.Printf("return rate %s %.1f%%\n", viz.ProgressBar(rate, 30), 100*rate)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}

	results, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry())
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if !noSave {
		if err := st.Init(); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		runID := "-"
		if !noSave {
			if runID, err = st.Save(r.Config, r.Result); err != nil {
				return err
			}
		}
		rows = append(rows, []string{
			r.Name,
			r.Config.Player,
			r.Config.Opponent,
			strconv.Itoa(r.Result.Events.Misses[pong.Bottom]),
			strconv.Itoa(r.Result.Events.Misses[pong.Top]),
			runID,
		})
	}
	fmt.Println(viz.RenderTable([]string{"MATCH", "PLAYER", "OPPONENT", "P MISSES", "O MISSES", "RUN"}, rows))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0)
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%gx%g", p.Game.BoardWidth, p.Game.BoardHeight),
			strconv.FormatFloat(p.Game.BallSpeed, 'g', 4, 64),
			strconv.Itoa(p.Ticks),
			fmt.Sprintf("dz=%g boost=%g cutoff=%g", p.Fuzzy.DeadZone, p.Fuzzy.BoostGain, p.Fuzzy.CutoffFraction),
		})
	}
	fmt.Println(viz.RenderTable([]string{"PRESET", "BOARD", "BALL", "TICKS", "FUZZY"}, rows))
	return nil
}

func compareStrategies(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reg := experiment.NewRegistry()
	ens := sim.NewEnsemble(func(i int) (*sim.Simulator, error) {
		cfg := *base
		cfg.Player = args[i]
		e := experiment.New(&cfg)
		if err := e.Setup(reg, experiment.DefaultMetrics(cfg.GameConfig())); err != nil {
			return nil, err
		}
		return e.GetSimulator(), nil
	}, len(args))

	fmt.Printf("comparing %s against %s (%d ticks)\n\n", strings.Join(args, ", "), base.Opponent, base.Ticks)
	results, err := ens.Run(cmd.Context(), sim.Config{Ticks: base.Ticks, ValidateFrames: true})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			args[i],
			strconv.Itoa(r.Events.Hits[pong.Bottom]),
			strconv.Itoa(r.Events.Misses[pong.Bottom]),
			strconv.FormatFloat(r.Metrics["tracking_error_bottom"], 'f', 2, 64),
			strconv.FormatFloat(r.Metrics["control_effort_bottom"], 'f', 2, 64),
			strconv.FormatFloat(r.Metrics["jitter_bottom"], 'f', 3, 64),
		})
	}
	fmt.Println(viz.RenderTable([]string{"STRATEGY", "HITS", "MISSES", "TRACKING", "EFFORT", "JITTER"}, rows))
	return nil
}
