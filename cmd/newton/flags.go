package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/willbeason/newton-fractal/pkg/palette"
)

// rootsFlag collects complex roots from repeated --root flags, e.g. --root -1 --root 0.5+0.5i.
type rootsFlag struct {
	roots []complex128
}

func (f *rootsFlag) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		r, err := strconv.ParseComplex(strings.TrimSpace(part), 128)
		if err != nil {
			return fmt.Errorf("parsing root %q: %w", part, err)
		}
		f.roots = append(f.roots, r)
	}

	return nil
}

func (f *rootsFlag) String() string {
	parts := make([]string, len(f.roots))
	for i, r := range f.roots {
		parts[i] = strconv.FormatComplex(r, 'g', -1, 128)
	}

	return strings.Join(parts, ",")
}

func (f *rootsFlag) Type() string {
	return "complex"
}

// colorsFlag collects hex colors from repeated --color flags.
type colorsFlag struct {
	colors []palette.Color
}

func (f *colorsFlag) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		c, err := palette.Parse(part)
		if err != nil {
			return err
		}
		f.colors = append(f.colors, c)
	}

	return nil
}

func (f *colorsFlag) String() string {
	parts := make([]string, len(f.colors))
	for i, c := range f.colors {
		parts[i] = c.String()
	}

	return strings.Join(parts, ",")
}

func (f *colorsFlag) Type() string {
	return "color"
}

// levelFlag is a log level such as "debug" or "warn".
type levelFlag struct {
	level slog.Level
}

func (f *levelFlag) Set(s string) error {
	return f.level.UnmarshalText([]byte(s))
}

func (f *levelFlag) String() string {
	return strings.ToLower(f.level.String())
}

func (f *levelFlag) Type() string {
	return "level"
}

var (
	_ pflag.Value = (*rootsFlag)(nil)
	_ pflag.Value = (*colorsFlag)(nil)
	_ pflag.Value = (*levelFlag)(nil)
)
