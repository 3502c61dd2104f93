// Package palette provides the named gradients fractl colors images with.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"
	"github.com/willbeason/fractl/pkg/render"
)

var ErrUnknownPalette = errors.New("unknown palette")

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var gradients = map[string]func() (colorgrad.Gradient, error){
	"grayscale": func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().Colors(black, white).Build()
	},
	"inverted_grayscale": func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().Colors(white, black).Build()
	},
	"rainbow": preset(colorgrad.Rainbow),
	"inferno": preset(colorgrad.Inferno),
	"viridis": preset(colorgrad.Viridis),
}

func preset(f func() colorgrad.Gradient) func() (colorgrad.Gradient, error) {
	return func() (colorgrad.Gradient, error) {
		return f(), nil
	}
}

// Names lists the known palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (func() (colorgrad.Gradient, error), error) {
	build, ok := gradients[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q, choose one of: %s", ErrUnknownPalette, name, strings.Join(Names(), ", "))
	}
	return build, nil
}

// Check reports whether name is a known palette without building it.
func Check(name string) error {
	_, err := lookup(name)
	return err
}

// Named returns the color map for a palette name, ignoring case and
// surrounding space.
func Named(name string) (render.ColorMap, error) {
	build, err := lookup(name)
	if err != nil {
		return nil, err
	}

	grad, err := build()
	if err != nil {
		return nil, fmt.Errorf("building palette %q: %w", name, err)
	}

	return func(normalized float64) render.RGB {
		r, g, b := grad.At(normalized).Clamped().RGB255()
		return render.RGB{R: r, G: g, B: b}
	}, nil
}
