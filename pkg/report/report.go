// Package report summarizes a render as JSON.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/willbeason/newton-fractal/pkg/config"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
	"github.com/willbeason/newton-fractal/pkg/raster"
)

// Root describes one basin of attraction.
type Root struct {
	Index  int     `json:"index"`
	Re     float64 `json:"re"`
	Im     float64 `json:"im"`
	Color  string  `json:"color"`
	Pixels int     `json:"pixels"`
	// Share is the fraction of the image colored by this root.
	Share float64 `json:"share"`
}

type Report struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	PixelsPerUnit int    `json:"pixelsPerUnit"`
	MaxSteps      int    `json:"maxSteps"`
	Workers       int    `json:"workers"`
	Polynomial    string `json:"polynomial"`
	Derivative    string `json:"derivative"`
	Roots         []Root `json:"roots"`
	ElapsedMillis int64  `json:"elapsedMillis"`
}

// New builds the report for frame, rendered from c in elapsed time.
func New(c config.Config, p, dp polynomial.Polynomial, frame *raster.Frame, elapsed time.Duration) Report {
	r := Report{
		Width:         c.Width,
		Height:        c.Height,
		PixelsPerUnit: c.PixelsPerUnit,
		MaxSteps:      c.MaxSteps,
		Workers:       max(c.Workers, 1),
		Polynomial:    p.String(),
		Derivative:    dp.String(),
		Roots:         make([]Root, len(c.Roots)),
		ElapsedMillis: elapsed.Milliseconds(),
	}

	total := float64(len(frame.Basins))
	for i, root := range c.Roots {
		r.Roots[i] = Root{
			Index:  i,
			Re:     real(root),
			Im:     imag(root),
			Color:  c.Palette[i].String(),
			Pixels: frame.Counts[i],
		}
		if total > 0 {
			r.Roots[i].Share = float64(frame.Counts[i]) / total
		}
	}

	return r
}

// Encode writes r to w as indented JSON followed by a newline.
func Encode(w io.Writer, r Report) error {
	out, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(out, '\n'))
	return err
}

// WriteFile writes r to a new file at path.
func WriteFile(path string, r Report) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}

	err = Encode(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
