package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/termsaver/internal/bench"
	"github.com/san-kum/termsaver/internal/config"
	"github.com/san-kum/termsaver/internal/pattern"
	"github.com/san-kum/termsaver/internal/render"
	"github.com/san-kum/termsaver/internal/term"
	"github.com/san-kum/termsaver/internal/tui"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Width(12)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
)

type options struct {
	configFile  string
	preset      string
	fps         float64
	interactive bool
	bench       int
	logFile     string
	logLevel    string
}

type app struct {
	opts     options
	registry *pattern.Registry
	stdout   io.Writer
	stderr   io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		registry: pattern.NewRegistry(),
		stdout:   stdout,
		stderr:   stderr,
	}
}

// main runs the screensaver. Usage errors exit 1 without any output; the
// render loop itself only ends on SIGINT or SIGTERM.
func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newApp(stdout, stderr).command()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "termsaver [flags] <pattern>",
		Short:         "animated terminal screensaver",
		Long:          a.patternList(),
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     a.registry.Names(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVar(&a.opts.configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&a.opts.preset, "preset", "", "cadence preset ("+strings.Join(config.ListPresets(), "|")+")")
	flags.Float64Var(&a.opts.fps, "fps", config.DefaultFPS, "frame rate")
	flags.BoolVar(&a.opts.interactive, "interactive", false, "interactive viewer with key bindings")
	flags.IntVar(&a.opts.bench, "bench", config.DefaultBenchFrames, "render N frames off screen and report timings")
	flags.StringVar(&a.opts.logFile, "log-file", "", "append logs to this file")
	flags.StringVar(&a.opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")

	return cmd
}

func (a *app) patternList() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("termsaver"))
	sb.WriteString(" draws a full-screen animated pattern until interrupted.\n\npatterns:\n")
	for _, name := range a.registry.Names() {
		p, _ := a.registry.Get(name)
		sb.WriteString("  " + nameStyle.Render(name) + descStyle.Render(p.Description()) + "\n")
	}
	return sb.String()
}

// loadConfig layers preset, config file and explicitly set flags, in that
// order of precedence.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.opts.preset != "" {
		p, err := config.GetPreset(a.opts.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if a.opts.configFile != "" {
		c, err := config.LoadOver(a.opts.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = a.opts.fps
	}
	if flags.Changed("interactive") {
		cfg.Interactive = a.opts.interactive
	}
	if flags.Changed("bench") {
		cfg.Bench.Frames = a.opts.bench
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the runtime logger. Writes to stderr while the alternate
// screen is up would land on the animation, so the default level is warn and
// the loop only logs at debug.
func newLogger(cfg *config.Config, stderr io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return nil, nil, err
	}

	w, closeFn := stderr, func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "termsaver",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	diag := log.NewWithOptions(a.stderr, log.Options{Prefix: "termsaver"})

	if err := a.start(cmd, args[0]); err != nil {
		diag.Error("stopped", "err", err)
		return err
	}
	return nil
}

func (a *app) start(cmd *cobra.Command, name string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, a.stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	p, err := a.registry.Get(name)
	if err != nil {
		return err
	}

	switch {
	case cmd.Flags().Changed("bench"):
		return a.runBench(p, cfg)
	case cfg.Interactive:
		logger.Debug("starting interactive viewer", "pattern", name)
		return tui.Run(a.registry, name, cfg.Interval())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := render.New(term.New(os.Stdout), p, cfg.Interval(), logger)
	return loop.Session(ctx)
}

func (a *app) runBench(p pattern.Pattern, cfg *config.Config) error {
	res := bench.Run(p, cfg.Bench.Frames, cfg.Bench.Width, cfg.Bench.Height)

	fmt.Fprintf(a.stdout, "benchmarking %s at %dx%d\n\n", res.Pattern, res.Width, res.Height)
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tMEAN\tMAX\tBYTES/FRAME\tIN BUDGET")
	fmt.Fprintf(w, "%d\t%v\t%v\t%d\t%.1f%%\n",
		len(res.Samples),
		res.Mean(),
		res.Max(),
		res.Bytes/int64(len(res.Samples)),
		res.Budget(cfg.Interval())*100,
	)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, res.Plot())
	return nil
}
