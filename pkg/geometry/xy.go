package geometry

// XY is a point on the complex plane, X being the real part and Y the imaginary part.
//
// Coordinates may become infinite or NaN while a point diverges; callers test
// escape by magnitude rather than checking for either.
type XY struct {
	X, Y float64
}

// Add returns the component-wise sum of xy and o.
func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

// Scale multiplies both coordinates by s.
func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Div divides both coordinates by d.
func (xy XY) Div(d float64) XY {
	return XY{X: xy.X / d, Y: xy.Y / d}
}
