package transforms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willbeason/fractl/pkg/geometry"
)

// ErrUnsupportedVariant is returned for a Variant with no recurrence.
var ErrUnsupportedVariant = errors.New("unsupported fractal variant")

// Variant selects the recurrence and seeding rule of a fractal.
type Variant int

const (
	Julia Variant = iota
	JuliaCubed
	Mandelbrot
)

var variantNames = map[Variant]string{
	Julia:      "julia",
	JuliaCubed: "julia_cubed",
	Mandelbrot: "mandelbrot",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts a variant name, ignoring case and surrounding space.
// "julia3" and "juliacubed" are accepted for JuliaCubed.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "julia":
		return Julia, nil
	case "julia_cubed", "juliacubed", "julia3":
		return JuliaCubed, nil
	case "mandelbrot":
		return Mandelbrot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}

// A Step computes the next iterate of z for constant c.
type Step func(z, c geometry.XY) geometry.XY

// StepFor returns the recurrence for v. zoom is only used by Mandelbrot.
func StepFor(v Variant, zoom float64) (Step, error) {
	switch v {
	case Julia:
		return Julia2, nil
	case JuliaCubed:
		return Julia3, nil
	case Mandelbrot:
		return MandelbrotStep{Zoom: zoom}.Next, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedVariant, v)
}

// Next computes one recurrence step of v. It panics if v is not a known Variant.
func Next(v Variant, current, constant geometry.XY, zoom float64) geometry.XY {
	step, err := StepFor(v, zoom)
	if err != nil {
		panic(err)
	}
	return step(current, constant)
}
