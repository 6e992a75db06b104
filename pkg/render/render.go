// Package render draws Newton fractals onto a Canvas.
package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/newton-fractal/pkg/geometry"
	"github.com/willbeason/newton-fractal/pkg/polynomial"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

// A Canvas is a drawing surface with a fixed pixel size.
//
// SetPixel is called concurrently, but never twice for the same pixel during
// one render.
type Canvas interface {
	Size() (width, height int)
	SetPixel(x, y int, c color.Color)
}

// An InputSource supplies the text of the polynomial to draw.
type InputSource interface {
	PolynomialText() string
}

// TextSource is an InputSource holding fixed text.
type TextSource string

func (s TextSource) PolynomialText() string {
	return string(s)
}

const (
	DefaultPlaneScale = 4.0
	DefaultVariable   = "z"
)

// Config holds the tunable constants of a render.
type Config struct {
	// MaxIterations is the number of Newton steps attempted per pixel before
	// it is considered not to converge.
	MaxIterations int

	// Tolerance bounds both the derivative magnitude and the step size.
	Tolerance float64

	// PlaneScale is the width of the region of the plane mapped onto the canvas.
	PlaneScale float64

	// Center is the point of the plane at the middle of the canvas.
	Center geometry.Complex

	// Parallelism is the number of rows rendered at once.
	Parallelism int

	// Variable is the free variable of the polynomial text.
	Variable string

	// Strict rejects polynomial text containing anything other than terms.
	Strict bool

	// Palette colors each pixel. Nil means HuePalette.
	Palette Palette
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: transforms.DefaultMaxIterations,
		Tolerance:     transforms.DefaultTolerance,
		PlaneScale:    DefaultPlaneScale,
		Parallelism:   runtime.NumCPU(),
		Variable:      DefaultVariable,
		Palette:       HuePalette,
	}
}

var ErrInvalidConfig = errors.New("invalid render config")

func (cfg Config) Validate() error {
	switch {
	case cfg.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations must not be negative, got %d", ErrInvalidConfig, cfg.MaxIterations)
	case !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 1):
		return fmt.Errorf("%w: tolerance must be positive and finite, got %g", ErrInvalidConfig, cfg.Tolerance)
	case !(cfg.PlaneScale > 0) || math.IsInf(cfg.PlaneScale, 1):
		return fmt.Errorf("%w: plane scale must be positive and finite, got %g", ErrInvalidConfig, cfg.PlaneScale)
	case cfg.Center.IsBad():
		return fmt.Errorf("%w: center must be finite, got %v", ErrInvalidConfig, cfg.Center)
	}

	return nil
}

// Parse reads text as a polynomial in cfg.Variable.
func (cfg Config) Parse(text string) (polynomial.Polynomial, error) {
	variable := cfg.Variable
	if variable == "" {
		variable = DefaultVariable
	}

	if cfg.Strict {
		return polynomial.ParseStrict(text, variable)
	}

	return polynomial.Parse(text, variable), nil
}

// Render colors every pixel of canvas by running Newton's method for p from
// the point of the plane the pixel maps to.
//
// Rows are rendered by cfg.Parallelism workers. If ctx is cancelled, Render
// stops after the rows in progress and returns the context's error; pixels
// already written are left in place.
func Render(ctx context.Context, canvas Canvas, p polynomial.Polynomial, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	width, height := canvas.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas must have positive size, got %dx%d", width, height)
	}

	newton := transforms.Newton{
		Polynomial:    p,
		Derivative:    p.Derivative(),
		MaxIterations: cfg.MaxIterations,
		Tolerance:     cfg.Tolerance,
	}

	plane := transforms.PixelToPlane(width, height, cfg.PlaneScale)
	plane.Center = cfg.Center

	palette := cfg.Palette
	if palette == nil {
		palette = HuePalette
	}

	parallel := cfg.Parallelism
	if parallel < 1 {
		parallel = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	yChannel := make(chan int)
	g.Go(func() error {
		defer close(yChannel)

		for y := 0; y < height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for i := 0; i < parallel; i++ {
		g.Go(func() error {
			for y := range yChannel {
				if err := ctx.Err(); err != nil {
					return err
				}

				for x := 0; x < width; x++ {
					outcome := newton.Iterate(plane.At(x, y))
					canvas.SetPixel(x, y, palette(outcome))
				}
			}

			return nil
		})
	}

	return g.Wait()
}
