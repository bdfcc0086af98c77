package config

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"

	"github.com/willbeason/newton-fractal/pkg/palette"
)

// Root is a complex root as written in a config file.
type Root struct {
	Re float64 `json:"re,optional"`
	Im float64 `json:"im,optional"`
}

// File is the on-disk form of Config. Absent keys keep their previous values, as do zero
// values for every key but maxSteps.
type File struct {
	PixelsPerUnit int      `json:"pixelsPerUnit,optional"`
	Width         int      `json:"width,optional"`
	Height        int      `json:"height,optional"`
	MaxSteps      *int     `json:"maxSteps,optional"`
	Roots         []Root   `json:"roots,optional"`
	Colors        []string `json:"colors,optional"`
	Output        string   `json:"output,optional"`
	Format        string   `json:"format,optional"`
	Workers       int      `json:"workers,optional"`
	Report        string   `json:"report,optional"`
}

// ReadFile reads a JSON, YAML or TOML file, chosen by extension.
func ReadFile(path string) (File, error) {
	var f File
	if err := conf.Load(path, &f); err != nil {
		return File{}, fmt.Errorf("loading %s: %w", path, err)
	}

	return f, nil
}

// Load reads the file at path and applies it on top of base.
func Load(path string, base Config) (Config, error) {
	f, err := ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	c, err := f.Apply(base)
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}

	return c, nil
}

// Apply overrides the fields of base that f sets.
//
// Setting pixelsPerUnit without a width or height rescales the missing dimensions to the
// default 8x6 units.
func (f File) Apply(base Config) (Config, error) {
	c := base

	if f.PixelsPerUnit != 0 {
		c.PixelsPerUnit = f.PixelsPerUnit
		c.Width = DefaultUnitsWide * f.PixelsPerUnit
		c.Height = DefaultUnitsHigh * f.PixelsPerUnit
	}
	if f.Width != 0 {
		c.Width = f.Width
	}
	if f.Height != 0 {
		c.Height = f.Height
	}
	if f.MaxSteps != nil {
		c.MaxSteps = *f.MaxSteps
	}

	if len(f.Roots) > 0 {
		c.Roots = make([]complex128, len(f.Roots))
		for i, r := range f.Roots {
			c.Roots[i] = complex(r.Re, r.Im)
		}
	}
	if len(f.Colors) > 0 {
		colors, err := palette.ParseAll(f.Colors)
		if err != nil {
			return Config{}, err
		}
		c.Palette = colors
	}

	if f.Output != "" {
		c.Output = f.Output
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Workers != 0 {
		c.Workers = f.Workers
	}
	if f.Report != "" {
		c.Report = f.Report
	}

	return c, nil
}
