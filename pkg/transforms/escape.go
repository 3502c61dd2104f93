package transforms

import "github.com/willbeason/fractl/pkg/geometry"

// EscapeRadiusSquared is the squared modulus at which a point has escaped.
const EscapeRadiusSquared = 4.0

// ModulusSquared returns |z|².
func ModulusSquared(z geometry.XY) float64 {
	return z.X*z.X + z.Y*z.Y
}

// An Escaper counts escape iterations for one fixed variant, constant and zoom.
// It is safe for concurrent use.
type Escaper struct {
	step          Step
	constant      geometry.XY
	zoom          float64
	maxIterations int

	// pointIsConstant swaps the roles of seed and constant, as the Mandelbrot
	// set does: the sampled point becomes c and z starts at the origin.
	pointIsConstant bool
}

func NewEscaper(v Variant, constant geometry.XY, zoom float64, maxIterations int) (*Escaper, error) {
	step, err := StepFor(v, zoom)
	if err != nil {
		return nil, err
	}

	return &Escaper{
		step:            step,
		constant:        constant,
		zoom:            zoom,
		maxIterations:   maxIterations,
		pointIsConstant: v == Mandelbrot,
	}, nil
}

// Iterations returns the first iteration count at which p's orbit has
// |z|² ≥ EscapeRadiusSquared, or the iteration cap if it never does.
func (e *Escaper) Iterations(p geometry.XY) int {
	z, c := p.Div(e.zoom), e.constant
	if e.pointIsConstant {
		z, c = geometry.XY{}, p
	}

	iterations := 0
	for iterations < e.maxIterations && ModulusSquared(z) < EscapeRadiusSquared {
		z = e.step(z, c)
		iterations++
	}

	return iterations
}

// EscapeIterations is Iterations for a single point.
func EscapeIterations(initial, constant geometry.XY, zoom float64, v Variant, maxIterations int) (int, error) {
	e, err := NewEscaper(v, constant, zoom, maxIterations)
	if err != nil {
		return 0, err
	}
	return e.Iterations(initial), nil
}
