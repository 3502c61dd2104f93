package transforms

import "github.com/willbeason/fractl/pkg/geometry"

// Linear maps pixel coordinates onto the complex plane.
type Linear struct {
	Scale  float64
	Offset geometry.XY
}

// Viewport returns the mapping for a width×height image.
//
// The scale is 2/height for both axes, so the vertical extent is always [-1, 1)
// and non-square images stretch horizontally. Pan is multiplied by zoom.
func Viewport(width, height int, zoom float64, pan geometry.XY) Linear {
	scale := 2.0 / float64(height)

	return Linear{
		Scale: scale,
		Offset: geometry.XY{
			X: -float64(width)/2*scale + pan.X*zoom,
			Y: -float64(height)/2*scale + pan.Y*zoom,
		},
	}
}

// Apply returns the plane point for pixel (x, y).
func (l Linear) Apply(x, y int) geometry.XY {
	return geometry.XY{
		X: float64(x)*l.Scale + l.Offset.X,
		Y: float64(y)*l.Scale + l.Offset.Y,
	}
}
