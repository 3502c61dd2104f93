package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/willbeason/fractl/pkg/encode"
	"github.com/willbeason/fractl/pkg/palette"
	"github.com/willbeason/fractl/pkg/render"
	"github.com/willbeason/fractl/pkg/settings"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	configFlag  = "config"
	verboseFlag = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fractl",
		Short:   "A small fractal renderer",
		Version: "0.1.0",
		Args:    cobra.ExactArgs(0),
		RunE:    runCmd,
	}

	d := settings.Default()
	flags := cmd.Flags()

	flags.StringP("fractal", "f", d.Fractal, "Fractal type (julia, julia_cubed, mandelbrot)")
	flags.IntP("iterations", "i", d.Iterations, "Amount of iterations")
	flags.IntP("width", "w", d.Width, "Width of output image")
	flags.IntP("height", "v", d.Height, "Height of output image")
	flags.StringP("output-name", "o", d.Output, "Name of output image (.png, .jpg, .bmp, .tiff)")
	flags.String("output-type", d.OutputType, "Type of output (image or frames)")
	flags.StringP("gradient", "g", d.Gradient, "Gradient to use for the output ("+strings.Join(palette.Names(), ", ")+")")
	flags.Float64P("x-constant", "x", d.ConstantX, "Real part of the complex constant")
	flags.Float64P("y-constant", "y", d.ConstantY, "Imaginary part of the complex constant")
	flags.Float64P("zoom", "z", d.Zoom, "Zoom/magnification to render at")
	flags.Float64("pan-x", d.PanX, "Horizontal offset of the view center")
	flags.Float64("pan-y", d.PanY, "Vertical offset of the view center")
	flags.Int("frames", d.Frames, "Number of frames for --output-type=frames")
	flags.Float64("zoom-factor", d.ZoomFactor, "Zoom multiplier between frames")
	flags.Int("workers", d.Workers, "Rendering goroutines, 0 for one per CPU")
	flags.String(configFlag, "", "TOML file with default settings; explicit flags override it")
	flags.Bool(verboseFlag, false, "Log debug output")

	return cmd
}

// resolveSettings starts from the config file, if any, and applies every flag
// the user set explicitly.
func resolveSettings(flags *pflag.FlagSet) (settings.Settings, error) {
	s := settings.Default()

	path, err := flags.GetString(configFlag)
	if err != nil {
		return s, err
	}
	if path != "" {
		s, err = settings.Load(path)
		if err != nil {
			return s, err
		}
	}

	strs := map[string]*string{
		"fractal":     &s.Fractal,
		"output-name": &s.Output,
		"output-type": &s.OutputType,
		"gradient":    &s.Gradient,
	}
	ints := map[string]*int{
		"iterations": &s.Iterations,
		"width":      &s.Width,
		"height":     &s.Height,
		"frames":     &s.Frames,
		"workers":    &s.Workers,
	}
	floats := map[string]*float64{
		"x-constant":  &s.ConstantX,
		"y-constant":  &s.ConstantY,
		"zoom":        &s.Zoom,
		"pan-x":       &s.PanX,
		"pan-y":       &s.PanY,
		"zoom-factor": &s.ZoomFactor,
	}

	for name, dst := range strs {
		if flags.Changed(name) {
			*dst, err = flags.GetString(name)
			if err != nil {
				return s, err
			}
		}
	}
	for name, dst := range ints {
		if flags.Changed(name) {
			*dst, err = flags.GetInt(name)
			if err != nil {
				return s, err
			}
		}
	}
	for name, dst := range floats {
		if flags.Changed(name) {
			*dst, err = flags.GetFloat64(name)
			if err != nil {
				return s, err
			}
		}
	}

	return s, nil
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	s, err := resolveSettings(cmd.Flags())
	if err != nil {
		return err
	}

	frames, err := s.FrameConfigs()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	start := time.Now()
	for _, frame := range frames {
		buf, err := render.Render(frame.Config)
		if err != nil {
			return err
		}

		err = encode.Write(frame.Path, buf)
		if err != nil {
			return err
		}
		logger.Debug("wrote image", "path", frame.Path, "zoom", frame.Config.Zoom)
	}

	logger.Info("calculation finished",
		"images", len(frames),
		"duration_ms", time.Since(start).Milliseconds())

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
