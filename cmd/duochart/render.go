package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/duochart/duochart/internal/config"
	"github.com/duochart/duochart/internal/dataset"
	"github.com/duochart/duochart/internal/layout"
	"github.com/duochart/duochart/internal/log"
	"github.com/duochart/duochart/internal/model"
	"github.com/duochart/duochart/internal/palette"
	"github.com/duochart/duochart/internal/render"
	"github.com/duochart/duochart/internal/report"
	"github.com/duochart/duochart/internal/store"
)

// defaultSVGName is the output written when no output flag is given.
const defaultSVGName = "chart.svg"

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [csv-file]",
		Short: "Render two side-by-side bubble charts from a CSV dataset",
		Long: `Render imports a CSV dataset (category, metric1, metric2) and draws one
circle-packed bubble chart per metric, side by side on a shared canvas.

The CSV header names the two metrics; rows with a missing category or an
unparseable metric are dropped silently. Percent signs in values are
ignored. Pass "-" to read the dataset from standard input.

Examples:
  # Render data.csv to chart.svg
  duochart render data.csv

  # Render both SVG and PNG outputs concurrently
  duochart render data.csv -o charts.svg -o charts.png

  # Timestamped PNG export on a dark canvas
  duochart render data.csv --png --dark

  # Load a saved profile, replace its dataset, and save it back
  duochart render fresh.csv --profile quarterly --save

  # Print a Markdown insights report instead of rendering
  duochart render data.csv --markdown

  # Apply a preset from the .duochart config file
  duochart render data.csv --preset slides`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRenderCmd,
	}

	// Chart appearance flags
	cmd.Flags().String("title1", "", "Override the first metric's label")
	cmd.Flags().String("title2", "", "Override the second metric's label")
	cmd.Flags().String("color1", "", "Base hex color for the left chart (e.g. #4f5870)")
	cmd.Flags().String("color2", "", "Base hex color for the right chart")
	cmd.Flags().BoolP("dark", "d", false, "Render on a dark canvas")
	cmd.Flags().Float64P("width", "W", config.DefaultChartWidth, "Per-panel width in pixels")
	cmd.Flags().Float64P("height", "H", config.DefaultChartHeight, "Per-panel height in pixels")
	cmd.Flags().Float64("padding", config.DefaultPadding, "Gap between bubbles in pixels")
	cmd.Flags().Int("steps", config.DefaultPaletteSteps, "Number of palette shades per chart")
	cmd.Flags().String("suffix", config.DefaultValueSuffix, "Suffix appended to bubble values")

	// Annotation flags
	cmd.Flags().String("note", "", "Shared annotation under both chart titles")
	cmd.Flags().String("note1", "", "Annotation under the first chart title")
	cmd.Flags().String("note2", "", "Annotation under the second chart title")
	cmd.Flags().String("note-mode", "", `Annotation mode: "shared" or "separate"`)

	// Output flags
	cmd.Flags().StringSliceP("output", "o", nil,
		"Output path; extension selects the format (.svg or .png), repeatable")
	cmd.Flags().Bool("png", false,
		"Write a timestamped PNG export (chart-export-<unix-ms>.png)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON insights report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown insights report (mutually exclusive with --json)")
	cmd.Flags().String("report-file", "",
		"Also write the insights report to this file")

	// Profile flags
	cmd.Flags().StringP("profile", "p", "", "Named profile to load before rendering")
	cmd.Flags().BoolP("save", "s", false, "Save the resulting state under --profile (or the default profile)")
	cmd.Flags().String("db-dir", "", "Profile database directory (default: XDG data dir)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .duochart in current or home directory)")
	cmd.Flags().String("preset", "", "Named preset from the configuration file")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runRender(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags. Precedence, low
// to high: built-in defaults, the config file's defaults section, the
// named preset, explicit flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load presets from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty presets if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Presets, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Presets = &config.File{
			Presets: make(map[string]config.Preset),
		}
	}

	cfg.PresetName, err = cmd.Flags().GetString("preset")
	if err != nil {
		return nil, err
	}
	if cfg.PresetName != "" {
		if _, ok := cfg.Presets.Presets[cfg.PresetName]; !ok {
			return nil, fmt.Errorf("preset not found in %s: %s", configPath, cfg.PresetName)
		}
	}
	cfg.Presets.GetPreset(cfg.PresetName).Apply(cfg)

	if err := bindRenderFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := bindOutputFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindRenderFlags overlays appearance and annotation flags onto the
// config. String flags apply when non-empty; numeric and boolean flags
// only when explicitly set, so preset values survive untouched flags.
func bindRenderFlags(cmd *cobra.Command, cfg *config.Config) error {
	stringFlags := map[string]*string{
		"title1":    &cfg.Title1,
		"title2":    &cfg.Title2,
		"color1":    &cfg.Color1,
		"color2":    &cfg.Color2,
		"note":      &cfg.SharedNote,
		"note1":     &cfg.Note1,
		"note2":     &cfg.Note2,
		"note-mode": &cfg.NoteMode,
	}
	for name, dst := range stringFlags {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
	}

	var err error
	if cmd.Flags().Changed("dark") {
		cfg.DarkMode, err = cmd.Flags().GetBool("dark")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.ChartWidth, err = cmd.Flags().GetFloat64("width")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("height") {
		cfg.ChartHeight, err = cmd.Flags().GetFloat64("height")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("padding") {
		cfg.Padding, err = cmd.Flags().GetFloat64("padding")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("steps") {
		cfg.PaletteSteps, err = cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("suffix") {
		cfg.ValueSuffix, err = cmd.Flags().GetString("suffix")
		if err != nil {
			return err
		}
	}

	return nil
}

// bindOutputFlags resolves output, report, and profile flags. With no
// output or report requested, a single SVG is written to chart.svg.
func bindOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	outputs, err := cmd.Flags().GetStringSlice("output")
	if err != nil {
		return err
	}
	for _, out := range outputs {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".svg":
			cfg.SVGFile = out
		case ".png":
			cfg.PNGFile = out
		default:
			return fmt.Errorf("unsupported output format %q: use a .svg or .png path", out)
		}
	}

	pngAuto, err := cmd.Flags().GetBool("png")
	if err != nil {
		return err
	}
	if pngAuto && cfg.PNGFile == "" {
		cfg.PNGFile = render.DefaultExportName("png")
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("report-file")
	if err != nil {
		return err
	}

	cfg.Profile, err = cmd.Flags().GetString("profile")
	if err != nil {
		return err
	}
	cfg.SaveProfile, err = cmd.Flags().GetBool("save")
	if err != nil {
		return err
	}
	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	// Saving without a name targets the default profile slot.
	if cfg.SaveProfile && cfg.Profile == "" {
		cfg.Profile = store.DefaultProfile
	}

	if cfg.SVGFile == "" && cfg.PNGFile == "" && !cfg.JSONReport && !cfg.MarkdownReport {
		cfg.SVGFile = defaultSVGName
	}

	return nil
}

// storeDir returns the profile database directory.
func storeDir(cfg *config.Config) string {
	if cfg.DBDir != "" {
		return cfg.DBDir
	}
	return config.XDGDataDir()
}

// runRender executes the render: resolve the snapshot, build the canvas,
// export, report, and save.
func runRender(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	snap := model.NewSnapshot()

	var st *store.Store
	if cfg.Profile != "" || cfg.SaveProfile {
		var err error
		st, err = store.Open(storeDir(cfg), store.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open profile store: %w", err)
		}
		defer func() { _ = st.Close() }()
	}

	if cfg.Profile != "" {
		loaded, err := st.Load(ctx, cfg.Profile)
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			// Fine when a CSV provides the dataset and --save creates
			// the profile; fatal when the profile was the only source.
			if cfg.InputPath == "" {
				return err
			}
			logger.Debug("profile not found, starting fresh", "name", cfg.Profile)
		case errors.Is(err, store.ErrCorruptProfile):
			logger.Warn("stored profile no longer decodes, using defaults", "name", cfg.Profile)
		case err != nil:
			return err
		default:
			snap = loaded
			logger.Debug("profile loaded", "name", cfg.Profile, "rows", len(snap.Data))
		}
	}

	if cfg.InputPath != "" {
		cd, err := readDataset(cfg.InputPath)
		if err != nil {
			return err
		}
		snap.ApplyData(cd)
		logger.Debug("dataset imported",
			"path", cfg.InputPath,
			"rows", len(cd.Data),
			"title1", cd.Title1,
			"title2", cd.Title2,
		)
	}

	applyOverrides(cfg, snap)

	if len(snap.Data) == 0 {
		return errors.New("dataset is empty: no rows survived import")
	}

	if cfg.SVGFile != "" || cfg.PNGFile != "" {
		canvas, err := buildCanvas(cfg, snap)
		if err != nil {
			return err
		}
		if err := exportCanvas(cfg, canvas, logger); err != nil {
			return err
		}
	}

	if cfg.JSONReport || cfg.MarkdownReport {
		if err := outputReport(cfg, snap); err != nil {
			return fmt.Errorf("failed to write insights report: %w", err)
		}
	}

	if cfg.SaveProfile {
		if err := st.Save(ctx, cfg.Profile, snap); err != nil {
			return fmt.Errorf("failed to save profile %q: %w", cfg.Profile, err)
		}
		logger.Debug("profile saved", "name", cfg.Profile)
	}

	return nil
}

// readDataset imports the CSV at path, with "-" meaning standard input.
func readDataset(path string) (model.ChartData, error) {
	if path == "-" {
		return dataset.ParseReader(os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return model.ChartData{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cd, err := dataset.ParseReader(f)
	if err != nil {
		return model.ChartData{}, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return cd, nil
}

// applyOverrides copies the config's set appearance fields onto the
// snapshot, after any profile load and CSV import.
func applyOverrides(cfg *config.Config, snap *model.Snapshot) {
	if cfg.Title1 != "" {
		snap.Title1 = cfg.Title1
	}
	if cfg.Title2 != "" {
		snap.Title2 = cfg.Title2
	}
	if cfg.Color1 != "" {
		snap.Color1 = cfg.Color1
	}
	if cfg.Color2 != "" {
		snap.Color2 = cfg.Color2
	}
	if cfg.DarkMode {
		snap.DarkMode = true
	}
	if cfg.NoteMode != "" {
		snap.NoteMode = model.NoteMode(cfg.NoteMode)
	}
	if cfg.SharedNote != "" {
		snap.SharedNote = cfg.SharedNote
		if cfg.NoteMode == "" {
			snap.NoteMode = model.NoteModeShared
		}
	}
	if cfg.Note1 != "" || cfg.Note2 != "" {
		if cfg.Note1 != "" {
			snap.Note1 = cfg.Note1
		}
		if cfg.Note2 != "" {
			snap.Note2 = cfg.Note2
		}
		if cfg.NoteMode == "" && cfg.SharedNote == "" {
			snap.NoteMode = model.NoteModeSeparate
		}
	}
}

// buildCanvas packs both metrics, fits labels, and composes the
// side-by-side canvas.
func buildCanvas(cfg *config.Config, snap *model.Snapshot) (*render.Canvas, error) {
	rows1 := make([]layout.Datum, 0, len(snap.Data))
	rows2 := make([]layout.Datum, 0, len(snap.Data))
	for _, dp := range snap.Data {
		rows1 = append(rows1, layout.Datum{Name: dp.Category, Value: dp.Metric1})
		rows2 = append(rows2, layout.Datum{Name: dp.Category, Value: dp.Metric2})
	}

	// Real font metrics when rasterizing; the approximate rune measurer
	// suffices for SVG, where the viewer's font decides anyway.
	var m layout.Measurer = layout.RuneMeasurer{}
	if cfg.PNGFile != "" {
		fm, err := render.NewFontMeasurer()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded font: %w", err)
		}
		m = fm
	}

	left := render.BuildScene(
		layout.Pack(rows1, cfg.ChartWidth, cfg.ChartHeight, cfg.Padding),
		palette.Scale(snap.Color1, cfg.PaletteSteps),
		m,
		render.SceneOptions{
			Width:       cfg.ChartWidth,
			Height:      cfg.ChartHeight,
			Title:       snap.Title1,
			Note:        snap.NoteFor(0),
			ValueSuffix: cfg.ValueSuffix,
		},
	)
	// The right ramp runs dark to medium, mirroring the left chart so
	// the two ramps read symmetrically across the canvas.
	right := render.BuildScene(
		layout.Pack(rows2, cfg.ChartWidth, cfg.ChartHeight, cfg.Padding),
		palette.Reverse(palette.Scale(snap.Color2, cfg.PaletteSteps)),
		m,
		render.SceneOptions{
			Width:       cfg.ChartWidth,
			Height:      cfg.ChartHeight,
			Title:       snap.Title2,
			Note:        snap.NoteFor(1),
			ValueSuffix: cfg.ValueSuffix,
		},
	)

	return render.Compose(left, right, render.CanvasOptions{DarkMode: snap.DarkMode}), nil
}

// exportCanvas writes the requested output files concurrently.
func exportCanvas(cfg *config.Config, canvas *render.Canvas, logger *slog.Logger) error {
	var g errgroup.Group

	if cfg.SVGFile != "" {
		g.Go(func() error {
			if err := writeExport(cfg.SVGFile, func(w io.Writer) error {
				return render.WriteSVG(w, canvas)
			}); err != nil {
				return fmt.Errorf("svg export: %w", err)
			}
			logger.Debug("wrote chart", "format", "svg", "path", cfg.SVGFile)
			return nil
		})
	}

	if cfg.PNGFile != "" {
		g.Go(func() error {
			if err := writeExport(cfg.PNGFile, func(w io.Writer) error {
				return render.WritePNG(w, canvas)
			}); err != nil {
				return fmt.Errorf("png export: %w", err)
			}
			logger.Debug("wrote chart", "format", "png", "path", cfg.PNGFile)
			return nil
		})
	}

	return g.Wait()
}

// writeExport creates the output file (and parent directories) and hands
// it to the back-end.
func writeExport(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// outputReport writes the insights report to stdout, and to the report
// file as well when one is configured.
func outputReport(cfg *config.Config, snap *model.Snapshot) error {
	ins := model.NewInsights(model.ChartData{
		Title1: snap.Title1,
		Title2: snap.Title2,
		Data:   snap.Data,
	})

	newWriter := func(w io.Writer) report.Writer {
		if cfg.JSONReport {
			return report.NewJSONWriter(w)
		}
		return report.NewMarkdownWriter(w)
	}

	var rw report.Writer = newWriter(os.Stdout)

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() { _ = f.Close() }()

		rw = report.NewMultiWriter(rw, newWriter(f))
	}

	_, err := rw.Write(ins)
	return err
}
