package render

import (
	"image"
	"image/color"
)

// Buffer holds one color per pixel in row-major order.
type Buffer struct {
	Width, Height int
	Pix           []RGB
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// Row returns row y as a slice sharing Pix. Rows never overlap, so distinct
// rows may be written from different goroutines.
func (b *Buffer) Row(y int) []RGB {
	return b.Pix[y*b.Width : (y+1)*b.Width : (y+1)*b.Width]
}

func (b *Buffer) At(x, y int) RGB {
	return b.Pix[x+y*b.Width]
}

// Image copies the buffer into an opaque RGBA image for encoding.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, c := range b.Pix {
		img.SetRGBA(i%b.Width, i/b.Width, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	}
	return img
}
