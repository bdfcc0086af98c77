package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/willbeason/newton-fractal/pkg/config"
	"github.com/willbeason/newton-fractal/pkg/output"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
	"github.com/willbeason/newton-fractal/pkg/raster"
	"github.com/willbeason/newton-fractal/pkg/report"
)

const (
	flagConfig   = "config"
	flagPPU      = "ppu"
	flagWidth    = "width"
	flagHeight   = "height"
	flagSteps    = "steps"
	flagRoot     = "root"
	flagColor    = "color"
	flagOut      = "out"
	flagFormat   = "format"
	flagWorkers  = "workers"
	flagReport   = "report"
	flagLogLevel = "log-level"
	flagGops     = "gops"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Render the Newton fractal of a polynomial with the given roots",
		Long: `Renders the basins of attraction of Newton's method for the polynomial whose roots
are given. Each pixel is colored by the root that Newton's method reaches from it.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.String(flagConfig, "", "JSON, YAML or TOML file with render settings")
	flags.Int(flagPPU, defaults.PixelsPerUnit, "pixels per unit length of the complex plane")
	flags.Int(flagWidth, defaults.Width, "image width in pixels")
	flags.Int(flagHeight, defaults.Height, "image height in pixels")
	flags.Int(flagSteps, defaults.MaxSteps, "maximum Newton steps per pixel")
	flags.Var(&rootsFlag{}, flagRoot, "polynomial root in Go complex syntax, repeatable")
	flags.Var(&colorsFlag{}, flagColor, "basin color as hex, repeatable, one per root")
	flags.StringP(flagOut, "o", defaults.Output, "output image path")
	flags.String(flagFormat, "", "output format: ppm, png, bmp or tiff (default from --out)")
	flags.Int(flagWorkers, defaults.Workers, "rows rendered concurrently")
	flags.String(flagReport, "", "write a JSON render report to this path")
	flags.Var(&levelFlag{level: slog.LevelInfo}, flagLogLevel, "log level: debug, info, warn or error")
	flags.Bool(flagGops, false, "start a gops diagnostics agent while rendering")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	level := cmd.Flags().Lookup(flagLogLevel).Value.(*levelFlag).level
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	raster.SetLogger(log)
	defer raster.SetLogger(nil)

	if gops, _ := cmd.Flags().GetBool(flagGops); gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("starting gops agent: %w", err)
		}
		defer agent.Close()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	format := output.FormatFromPath(cfg.Output)
	if cfg.Format != "" {
		format, err = output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
	}

	p := polynomial.FromRoots(cfg.Roots)
	dp := p.Derivative()
	fmt.Fprintf(cmd.OutOrStdout(), "Pol: %s\n", p)
	fmt.Fprintf(cmd.OutOrStdout(), "Der: %s\n", dp)

	start := time.Now()
	frame, err := raster.Render(ctx, raster.Scene{
		Polynomial:    p,
		Derivative:    dp,
		Roots:         cfg.Roots,
		Palette:       cfg.Palette,
		Width:         cfg.Width,
		Height:        cfg.Height,
		PixelsPerUnit: cfg.PixelsPerUnit,
		MaxSteps:      cfg.MaxSteps,
	}, cfg.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err = output.WriteFile(cfg.Output, frame.Canvas, format); err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	log.InfoContext(ctx, "wrote image",
		"path", cfg.Output,
		"format", string(format),
		"pixels", printer.Sprintf("%d", len(frame.Basins)),
		"elapsed", elapsed.Round(time.Millisecond))

	if cfg.Report != "" {
		r := report.New(cfg, p, dp, frame, elapsed)
		if err = report.WriteFile(cfg.Report, r); err != nil {
			return err
		}
		log.InfoContext(ctx, "wrote report", "path", cfg.Report)
	}

	return nil
}

// loadConfig layers the config file, then any explicitly set flags, over the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()

	var file config.File
	if path, _ := flags.GetString(flagConfig); path != "" {
		var err error
		file, err = config.ReadFile(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg, err = file.Apply(cfg)
		if err != nil {
			return config.Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	// --ppu only rescales the dimensions the file left unset.
	if flags.Changed(flagPPU) {
		cfg.PixelsPerUnit, _ = flags.GetInt(flagPPU)
		if file.Width == 0 {
			cfg.Width = config.DefaultUnitsWide * cfg.PixelsPerUnit
		}
		if file.Height == 0 {
			cfg.Height = config.DefaultUnitsHigh * cfg.PixelsPerUnit
		}
	}
	if flags.Changed(flagWidth) {
		cfg.Width, _ = flags.GetInt(flagWidth)
	}
	if flags.Changed(flagHeight) {
		cfg.Height, _ = flags.GetInt(flagHeight)
	}
	if flags.Changed(flagSteps) {
		cfg.MaxSteps, _ = flags.GetInt(flagSteps)
	}
	if flags.Changed(flagRoot) {
		cfg.Roots = flags.Lookup(flagRoot).Value.(*rootsFlag).roots
	}
	if flags.Changed(flagColor) {
		cfg.Palette = flags.Lookup(flagColor).Value.(*colorsFlag).colors
	}
	if flags.Changed(flagOut) {
		cfg.Output, _ = flags.GetString(flagOut)
	}
	if flags.Changed(flagFormat) {
		cfg.Format, _ = flags.GetString(flagFormat)
	}
	if flags.Changed(flagWorkers) {
		cfg.Workers, _ = flags.GetInt(flagWorkers)
	}
	if flags.Changed(flagReport) {
		cfg.Report, _ = flags.GetString(flagReport)
	}

	return cfg, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
