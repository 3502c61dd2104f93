package transforms

import "github.com/willbeason/fractl/pkg/geometry"

// Julia2 is the quadratic step z² + c.
func Julia2(z, c geometry.XY) geometry.XY {
	return geometry.XY{
		X: z.X*z.X - z.Y*z.Y + c.X,
		Y: 2*z.X*z.Y + c.Y,
	}
}

// Julia3 is the cubic step z³ + c.
func Julia3(z, c geometry.XY) geometry.XY {
	x2 := z.X * z.X
	y2 := z.Y * z.Y

	return geometry.XY{
		X: z.X*x2 - 3*z.X*y2 + c.X,
		Y: 3*x2*z.Y - z.Y*y2 + c.Y,
	}
}
