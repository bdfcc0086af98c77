package raster

import (
	"context"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/newton-fractal/pkg/basin"
	"github.com/willbeason/newton-fractal/pkg/palette"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
)

// A Scene is everything needed to render one Newton fractal. It is read-only while rendering.
type Scene struct {
	Polynomial polynomial.Polynomial
	Derivative polynomial.Polynomial
	Roots      []complex128
	Palette    []palette.Color

	Width, Height int
	// PixelsPerUnit is the number of pixels per unit length of the complex plane.
	PixelsPerUnit int
	// MaxSteps caps the Newton iterations per pixel.
	MaxSteps int
}

// A Frame is a rendered Scene.
type Frame struct {
	Canvas *Canvas
	// Basins holds the root index of every pixel, row-major.
	Basins []int
	// Counts is the number of pixels that went to each root.
	Counts []int
}

// Pixels yields every (x, y) of a width by height raster, row by row.
func Pixels(width, height int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// SamplePoint maps pixel (x, y) to the complex plane, with the origin at pixel
// (width/2, height/2). The center uses integer division, so odd dimensions put the
// origin half a pixel off the middle.
func SamplePoint(x, y, width, height, pixelsPerUnit int) complex128 {
	ppu := float64(pixelsPerUnit)
	return complex(float64(x-width/2)/ppu, float64(y-height/2)/ppu)
}

// Render classifies every pixel of s and colors it by its root.
//
// With workers <= 1 pixels are processed in row-major order on the calling goroutine.
// Otherwise rows are rendered concurrently by up to workers goroutines. Every pixel is
// independent so the result is identical either way.
func Render(ctx context.Context, s Scene, workers int) (*Frame, error) {
	log := Logger()
	start := time.Now()
	log.InfoContext(ctx, "rendering",
		"width", s.Width, "height", s.Height,
		"degree", s.Polynomial.Degree(), "workers", max(workers, 1))

	frame := &Frame{
		Canvas: NewCanvas(s.Width, s.Height),
		Basins: make([]int, s.Width*s.Height),
		Counts: make([]int, len(s.Roots)),
	}

	classifier := basin.Classifier{
		Polynomial: s.Polynomial,
		Derivative: s.Derivative,
		Roots:      s.Roots,
		MaxSteps:   s.MaxSteps,
	}

	var err error
	if workers <= 1 {
		err = renderSequential(ctx, s, classifier, frame)
	} else {
		err = renderParallel(ctx, s, classifier, frame, workers)
	}
	if err != nil {
		return nil, err
	}

	for _, i := range frame.Basins {
		frame.Counts[i]++
	}

	log.InfoContext(ctx, "rendered", "pixels", len(frame.Basins), "elapsed", time.Since(start))
	return frame, nil
}

func renderSequential(ctx context.Context, s Scene, c basin.Classifier, frame *Frame) error {
	for x, y := range Pixels(s.Width, s.Height) {
		if x == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		renderPixel(s, c, frame, x, y)
		if x == s.Width-1 {
			Logger().DebugContext(ctx, "row done", "y", y)
		}
	}

	return nil
}

func renderParallel(ctx context.Context, s Scene, c basin.Classifier, frame *Frame, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < s.Height; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < s.Width; x++ {
				renderPixel(s, c, frame, x, y)
			}
			Logger().DebugContext(ctx, "row done", "y", y)
			return nil
		})
	}

	return g.Wait()
}

// renderPixel writes only to the pixel's own slots of frame.
func renderPixel(s Scene, c basin.Classifier, frame *Frame, x, y int) {
	i := c.Classify(SamplePoint(x, y, s.Width, s.Height, s.PixelsPerUnit))

	o := frame.Canvas.Offset(x, y)
	frame.Canvas.Pix[o] = s.Palette[i]
	frame.Basins[o] = i
}
