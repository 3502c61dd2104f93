package transforms

import "github.com/willbeason/fractl/pkg/geometry"

// MandelbrotStep is the quadratic step with the constant divided by Zoom.
//
// Dividing inside the step rather than only when mapping pixels keeps output
// identical to images rendered by earlier versions; do not simplify it into
// the textbook z² + c.
type MandelbrotStep struct {
	Zoom float64
}

func (m MandelbrotStep) Next(z, c geometry.XY) geometry.XY {
	return Julia2(z, c.Div(m.Zoom))
}
