package render

import (
	"errors"
	"fmt"

	"github.com/willbeason/fractl/pkg/geometry"
	"github.com/willbeason/fractl/pkg/transforms"
)

// ErrInvalidConfig wraps every error Render reports before starting work.
var ErrInvalidConfig = errors.New("invalid render config")

// RGB is an 8-bit color without alpha.
type RGB struct {
	R, G, B uint8
}

// A ColorMap maps a normalized iteration count in [0, 1] to a color.
// 1 means the point never escaped.
type ColorMap func(normalized float64) RGB

// Config is everything Render needs. It is not modified by Render.
type Config struct {
	Width, Height int

	// Constant is the Julia c parameter. Mandelbrot ignores it.
	Constant geometry.XY
	// Zoom divides seeds, and for Mandelbrot the per-pixel constant.
	Zoom float64
	// Pan moves the view center and is scaled by Zoom. The zero value is the origin.
	Pan geometry.XY

	MaxIterations int
	Variant       transforms.Variant
	ColorMap      ColorMap

	// Workers is the number of goroutines filling rows. Zero means one per CPU.
	Workers int
}

func (c Config) validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ColorMap == nil {
		return fmt.Errorf("%w: no color map", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
