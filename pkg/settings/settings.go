// Package settings resolves user-facing options into a render.Config.
//
// It is the only place that knows option names, defaults and palette names;
// the renderer only ever sees the resolved Config.
package settings

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/willbeason/fractl/pkg/encode"
	"github.com/willbeason/fractl/pkg/geometry"
	"github.com/willbeason/fractl/pkg/palette"
	"github.com/willbeason/fractl/pkg/render"
	"github.com/willbeason/fractl/pkg/transforms"
)

var ErrInvalid = errors.New("invalid settings")

const (
	OutputImage  = "image"
	OutputFrames = "frames"
)

// Settings mirrors the command line and the TOML config file.
type Settings struct {
	Fractal    string `toml:"fractal"`
	Iterations int    `toml:"iterations"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`

	Output     string `toml:"output"`
	OutputType string `toml:"output_type"`
	Gradient   string `toml:"gradient"`

	ConstantX float64 `toml:"constant_x"`
	ConstantY float64 `toml:"constant_y"`
	Zoom      float64 `toml:"zoom"`
	PanX      float64 `toml:"pan_x"`
	PanY      float64 `toml:"pan_y"`

	// Frames and ZoomFactor only apply to OutputFrames: frame i is rendered
	// at Zoom * ZoomFactor^i.
	Frames     int     `toml:"frames"`
	ZoomFactor float64 `toml:"zoom_factor"`

	Workers int `toml:"workers"`
}

func Default() Settings {
	return Settings{
		Fractal:    "julia",
		Iterations: 500,
		Width:      1920,
		Height:     1080,
		Output:     "output.png",
		OutputType: OutputImage,
		Gradient:   "grayscale",
		ConstantX:  -0.8,
		ConstantY:  0.156,
		Zoom:       1.0,
		Frames:     60,
		ZoomFactor: 1.05,
	}
}

// Load reads a TOML file over the defaults. Keys not in Settings are an error.
func Load(path string) (Settings, error) {
	s := Default()

	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	err = toml.NewDecoder(f).DisallowUnknownFields().Decode(&s)
	if err != nil {
		return s, fmt.Errorf("reading %s: %w", path, err)
	}

	return s, nil
}

// Validate checks everything Resolve depends on, reporting all problems at once.
func (s Settings) Validate() error {
	var errs []error

	if _, err := transforms.ParseVariant(s.Fractal); err != nil {
		errs = append(errs, err)
	}
	if err := palette.Check(s.Gradient); err != nil {
		errs = append(errs, err)
	}
	if err := encode.Supported(s.Output); err != nil {
		errs = append(errs, fmt.Errorf("output %q: %w", s.Output, err))
	}
	if s.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", s.Iterations))
	}
	if s.Width < 1 || s.Height < 1 {
		errs = append(errs, fmt.Errorf("image size must be at least 1x1, got %dx%d", s.Width, s.Height))
	}
	if !(s.Zoom > 0) || math.IsInf(s.Zoom, 1) {
		errs = append(errs, fmt.Errorf("zoom must be positive and finite, got %v", s.Zoom))
	}
	if s.Workers < 0 {
		errs = append(errs, fmt.Errorf("negative worker count %d", s.Workers))
	}

	switch strings.ToLower(strings.TrimSpace(s.OutputType)) {
	case OutputImage:
	case OutputFrames:
		if s.Frames < 1 {
			errs = append(errs, fmt.Errorf("frames must be at least 1, got %d", s.Frames))
		}
		if !(s.ZoomFactor > 0) {
			errs = append(errs, fmt.Errorf("zoom factor must be positive, got %v", s.ZoomFactor))
		}
	default:
		errs = append(errs, fmt.Errorf("output type %q, choose either %q or %q", s.OutputType, OutputImage, OutputFrames))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Resolve validates s and builds the render configuration.
func (s Settings) Resolve() (render.Config, error) {
	err := s.Validate()
	if err != nil {
		return render.Config{}, err
	}

	variant, err := transforms.ParseVariant(s.Fractal)
	if err != nil {
		return render.Config{}, err
	}

	colorMap, err := palette.Named(s.Gradient)
	if err != nil {
		return render.Config{}, err
	}

	return render.Config{
		Width:         s.Width,
		Height:        s.Height,
		Constant:      geometry.XY{X: s.ConstantX, Y: s.ConstantY},
		Zoom:          s.Zoom,
		Pan:           geometry.XY{X: s.PanX, Y: s.PanY},
		MaxIterations: s.Iterations,
		Variant:       variant,
		ColorMap:      colorMap,
		Workers:       s.Workers,
	}, nil
}

// Frame is one image of a zoom animation.
type Frame struct {
	Path   string
	Config render.Config
}

// FrameConfigs resolves the images to render. OutputImage yields a single frame
// written to Output; OutputFrames yields Frames numbered files with the zoom
// multiplied by ZoomFactor each step.
func (s Settings) FrameConfigs() ([]Frame, error) {
	cfg, err := s.Resolve()
	if err != nil {
		return nil, err
	}

	if strings.ToLower(strings.TrimSpace(s.OutputType)) == OutputImage {
		return []Frame{{Path: s.Output, Config: cfg}}, nil
	}

	frames := make([]Frame, s.Frames)
	for i := range frames {
		frameCfg := cfg
		frameCfg.Zoom = s.Zoom * math.Pow(s.ZoomFactor, float64(i))
		frames[i] = Frame{Path: encode.FrameName(s.Output, i), Config: frameCfg}
	}

	return frames, nil
}
