package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/san-kum/sketchdeck/internal/config"
	"github.com/san-kum/sketchdeck/internal/export"
	"github.com/san-kum/sketchdeck/internal/gui"
	"github.com/san-kum/sketchdeck/internal/logging"
	"github.com/san-kum/sketchdeck/internal/session"
	"github.com/san-kum/sketchdeck/internal/sketch"
	"github.com/san-kum/sketchdeck/internal/sketches"
	"github.com/san-kum/sketchdeck/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Config file and preset
	configFile string
	preset     string
	// Session overrides
	animation string
	light     bool
	noTopbar  bool
	frameRate int
	// Logging
	logFile  string
	logLevel string
	// Terminal recording
	gifPath string
	// Window host
	fontPath string
	// Snapshot
	outPath  string
	width    int
	height   int
	ticks    int
	braille  bool
	dotScale float64
	// Bench
	frames  int
	saveDir string
	runsDir string
	// Config init
	force bool
)

// main registers commands and flags and runs the terminal session when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sketchdeck",
		Short:         "a deck of animated sketches for the terminal and desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTerminal,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.StringVar(&animation, "animation", config.DefaultAnimation, "start-up animation")
	flags.BoolVar(&light, "light", false, "start in the light theme")
	flags.BoolVar(&noTopbar, "no-topbar", false, "start with the topbar hidden")
	flags.IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&gifPath, "gif", "sketchdeck.gif", "where the g key saves recordings")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the deck in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	windowCmd.Flags().StringVar(&fontPath, "font", "", "ttf font for the window chrome (default raylib's built-in font)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list animations",
		Args:  cobra.NoArgs,
		RunE:  listAnimations,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [animation]",
		Short: "render one frame to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default <animation>.svg)")
	snapshotCmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels (default from config)")
	snapshotCmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels (default from config)")
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 60, "frames to advance looping animations first")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal Braille rendering")
	snapshotCmd.Flags().Float64Var(&dotScale, "dot-scale", 4, "braille dot spacing in SVG units")

	benchCmd := &cobra.Command{
		Use:   "bench [animation]",
		Short: "benchmark render time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames per animation")
	benchCmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels (default from config)")
	benchCmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels (default from config)")
	benchCmd.Flags().StringVar(&saveDir, "save", "", "store results under this directory")

	runsCmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "list saved bench runs or plot one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&runsDir, "dir", "runs", "run directory")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  configInit,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(windowCmd, listCmd, snapshotCmd, benchCmd, runsCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file, then
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("animation") {
		cfg.Animation = animation
	}
	if changed("light") {
		cfg.Dark = !light
	}
	if changed("no-topbar") {
		cfg.Topbar = !noTopbar
	}
	if changed("fps") {
		cfg.FrameRate = frameRate
	}
	if changed("log-file") {
		cfg.Log.File = logFile
	}
	if changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if changed("font") {
		cfg.Window.Font = fontPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sessionOptions(cfg *config.Config, logger *slog.Logger) session.Options {
	opts := session.Options{
		Animation:      cfg.Animation,
		Light:          !cfg.Dark,
		HideTopbar:     !cfg.Topbar,
		InfoPanelDelay: cfg.PanelDelay(),
		Logger:         logger,
	}
	if cfg.Readout {
		opts.Decorate = sketches.WithReadout
	}
	return opts
}

func registry() (*sketch.Registry, error) {
	reg, err := sketches.Default()
	if err != nil {
		return nil, fmt.Errorf("loading sketches: %w", err)
	}
	return reg, nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	reg, err := registry()
	if err != nil {
		return err
	}
	return viz.Run(reg, viz.Options{
		Session:   sessionOptions(cfg, logger),
		FrameRate: cfg.FrameRate,
		GIFPath:   gifPath,
		Logger:    logger,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := windowLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	reg, err := registry()
	if err != nil {
		return err
	}
	return gui.Run(reg, gui.Options{
		Session:   sessionOptions(cfg, logger),
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		FrameRate: cfg.FrameRate,
		FontPath:  cfg.Window.Font,
		Logger:    logger,
	})
}

// windowLogger logs to the terminal unless a file was requested; the
// window host leaves stderr free.
func windowLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.Log.File != "" {
		return logging.Setup(cfg.Log.File, cfg.Log.Level)
	}
	logger, err := logging.Stderr(cfg.Log.Level)
	return logger, func() error { return nil }, err
}

func listAnimations(cmd *cobra.Command, args []string) error {
	reg, err := registry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTITLE\tMODE\tDESCRIPTION")
	for i, d := range reg.List() {
		mode := session.Static
		if d.RequiresLoop {
			mode = session.Looping
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, d.ID, d.Title, mode, d.Description)
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	id := cfg.Animation
	if len(args) > 0 {
		id = args[0]
	}
	reg, err := registry()
	if err != nil {
		return err
	}

	opts := export.Options{
		Width:  firstPositive(width, cfg.Window.Width),
		Height: firstPositive(height, cfg.Window.Height),
		Light:  !cfg.Dark,
		Ticks:  ticks,
	}
	if cfg.Readout {
		opts.Decorate = sketches.WithReadout
	}

	var data []byte
	if braille {
		doc, err := export.BrailleSnapshot(reg, id, opts, dotScale)
		if err != nil {
			return err
		}
		data = []byte(doc)
	} else {
		data, err = export.Snapshot(reg, id, opts)
		if err != nil {
			return err
		}
	}

	path := outPath
	if path == "" {
		path = id + ".svg"
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", path, opts.Width, opts.Height)
	return nil
}

func configInit(cmd *cobra.Command, args []string) error {
	path := "sketchdeck.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tANIMATION\tTHEME\tTOPBAR\tFPS\tPANEL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		theme := "dark"
		if !p.Dark {
			theme = "light"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%d\t%dms\n", name, p.Animation, theme, p.Topbar, p.FrameRate, p.InfoPanelDelay)
	}
	return w.Flush()
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
