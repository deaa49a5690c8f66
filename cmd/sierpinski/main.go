package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gogpu/gg"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sierpinski/internal/config"
	"github.com/san-kum/sierpinski/internal/engine"
	"github.com/san-kum/sierpinski/internal/export"
	"github.com/san-kum/sierpinski/internal/fractal"
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
	"github.com/san-kum/sierpinski/internal/tui"
	"github.com/san-kum/sierpinski/internal/window"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	fps        float64
	width      int
	height     int
	scale      float64
	background string
	foreground string
	verbose    bool

	theme   string
	outFile string
	hold    time.Duration
	force   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sierpinski",
		Short: "animated sierpinski triangle",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				l := logging.NewText(os.Stderr, slog.LevelDebug)
				logging.SetLogger(l)
				gg.SetLogger(l.With("component", "gg"))
			}
		},
		SilenceUsage: true,
		RunE:         runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&fps, "fps", config.DefaultFPS, "generations per second")
	pf.IntVar(&width, "width", config.DefaultWidth, "logical width")
	pf.IntVar(&height, "height", config.DefaultHeight, "logical height")
	pf.Float64Var(&scale, "scale", config.DefaultScale, "device pixel ratio")
	pf.StringVar(&background, "background", render.Background.Name, "root triangle color")
	pf.StringVar(&foreground, "foreground", render.Foreground.Name, "center triangle color")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}
	addThemeFlag(rootCmd, liveCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a native window",
		RunE:  runWindow,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the complete fractal to png or svg",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "sierpinski.png", "output file (.png or .svg)")

	gifCmd := &cobra.Command{
		Use:   "export-gif",
		Short: "export the construction as an animated gif",
		RunE:  runExportGIF,
	}
	gifCmd.Flags().StringVarP(&outFile, "out", "o", "sierpinski.gif", "output file")
	gifCmd.Flags().DurationVar(&hold, "hold", 2*time.Second, "delay on the last frame")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "print generation statistics",
		RunE:  runStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFPS\tSIZE\tSCALE\tBACKGROUND\tFOREGROUND")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%dx%d\t%g\t%s\t%s\n",
					name, p.FPS, p.Width, p.Height, p.Scale, p.Background, p.Foreground)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(liveCmd, windowCmd, renderCmd, gifCmd, statsCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, preset, config file and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var o config.Overrides
	if flags.Changed("fps") {
		o.FPS = &fps
	}
	if flags.Changed("width") {
		o.Width = &width
	}
	if flags.Changed("height") {
		o.Height = &height
	}
	if flags.Changed("scale") {
		o.Scale = &scale
	}
	if flags.Changed("background") {
		o.Background = &background
	}
	if flags.Changed("foreground") {
		o.Foreground = &foreground
	}

	cfg, err := config.Resolve(preset, configFile, o)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("config resolved", "fps", cfg.FPS, "width", cfg.Width, "height", cfg.Height,
		"scale", cfg.Scale, "background", cfg.Background, "foreground", cfg.Foreground)
	return cfg, nil
}

// addThemeFlag registers --theme on every command that opens the live view.
func addThemeFlag(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.Flags().StringVar(&theme, "theme", tui.ThemeSlate.Name, "status panel theme")
	}
}

func sessionConfig(cmd *cobra.Command) (*config.Config, fractal.Options, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fractal.Options{}, err
	}
	opts, err := cfg.SessionOptions()
	return cfg, opts, err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, opts, err := sessionConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{Session: opts, Refresh: cfg.Refresh, Theme: theme})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, opts, err := sessionConfig(cmd)
	if err != nil {
		return err
	}
	return window.Run(window.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Session:   opts,
		TargetFPS: int(math.Round(float64(time.Second) / float64(cfg.Refresh))),
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, opts, err := sessionConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	var n int
	switch strings.ToLower(filepath.Ext(outFile)) {
	case ".svg":
		n, err = export.WriteSVG(f, cfg.Width, cfg.Height, cfg.Scale, opts)
	default:
		n, err = export.WritePNG(f, cfg.Width, cfg.Height, cfg.Scale, opts)
	}
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d triangles)\n", outFile, n)
	return nil
}

func runExportGIF(cmd *cobra.Command, args []string) error {
	cfg, opts, err := sessionConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	frames, err := export.WriteGIF(f, cfg.Width, cfg.Height, cfg.Scale, opts, hold)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", outFile, frames)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, opts, err := sessionConfig(cmd)
	if err != nil {
		return err
	}

	rec := render.NewRecorder(
		int(math.Round(float64(cfg.Width)*cfg.Scale)),
		int(math.Round(float64(cfg.Height)*cfg.Scale)),
		cfg.Scale)
	root := fractal.RootTriangle(fractal.RealDimensions(rec))
	e := engine.New(rec)

	fmt.Printf("root: (%.1f, %.1f) (%.1f, %.1f) (%.1f, %.1f)  threshold %.3g\n\n",
		root[0].X, root[0].Y, root[1].X, root[1].Y, root[2].X, root[2].Y, geom.Threshold(cfg.Scale))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tCENTERS\tTOTAL\tFRONTIER\tSPAN")

	var sizes []float64
	total := 0
	var frontier []geom.Triangle
	if d, ok := e.DrawCenter(root, opts.Foreground); ok {
		frontier = d.Children[:]
	}
	for gen := 1; len(frontier) > 0; gen++ {
		centers := rec.FillsWith(opts.Foreground)
		total += centers
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.3f\n", gen, centers, total, len(frontier), geom.Span(frontier[0]))
		sizes = append(sizes, math.Log(float64(len(frontier)))/math.Log(3))

		rec.Reset()
		frontier = e.AdvanceGeneration(frontier, opts.Foreground)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(sizes) > 1 {
		graph := asciigraph.Plot(sizes,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("log3 frontier size per generation"),
		)
		fmt.Printf("\n%s\n", graph)
	}
	fmt.Printf("\n%d generations, %d center triangles\n", len(sizes), total)
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "sierpinski.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
