// Package encode writes rendered buffers to image files.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/willbeason/fractl/pkg/render"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func lookup(name string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(name))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return enc, nil
}

// Supported reports whether name has an extension Write can encode.
func Supported(name string) error {
	_, err := lookup(name)
	return err
}

// Encode writes buf to w in the format implied by name's extension.
func Encode(w io.Writer, name string, buf *render.Buffer) error {
	enc, err := lookup(name)
	if err != nil {
		return err
	}
	return enc(w, buf.Image())
}

// Write creates the file at path, creating parent directories as needed.
func Write(path string, buf *render.Buffer) error {
	enc, err := lookup(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = enc(f, buf.Image())
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

// FrameName returns the file name of frame i of an animation written to base,
// e.g. "out.png" becomes "out_0003.png".
func FrameName(base string, i int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(base, ext), i, ext)
}
