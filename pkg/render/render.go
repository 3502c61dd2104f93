package render

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/willbeason/fractl/pkg/transforms"
)

// Render computes every pixel of cfg and returns the filled buffer.
//
// Rows are handed out to cfg.Workers goroutines; each pixel is written once,
// by the worker owning its row, so the result does not depend on scheduling.
// Configuration errors are returned before any pixel is computed.
func Render(cfg Config) (*Buffer, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	escaper, err := transforms.NewEscaper(cfg.Variant, cfg.Constant, cfg.Zoom, cfg.MaxIterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	buf := NewBuffer(cfg.Width, cfg.Height)
	if cfg.Width == 0 || cfg.Height == 0 {
		return buf, nil
	}

	parallel := cfg.Workers
	if parallel == 0 {
		parallel = runtime.NumCPU()
	}
	parallel = min(parallel, cfg.Height)

	log := Logger()
	log.Debug("render started",
		"variant", cfg.Variant,
		"width", cfg.Width,
		"height", cfg.Height,
		"max_iterations", cfg.MaxIterations,
		"workers", parallel)
	start := time.Now()

	view := transforms.Viewport(cfg.Width, cfg.Height, cfg.Zoom, cfg.Pan)
	maxIterations := float64(cfg.MaxIterations)

	yChannel := make(chan int)

	go func() {
		for y := 0; y < cfg.Height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()
			for y := range yChannel {
				row := buf.Row(y)
				for x := range row {
					iterations := escaper.Iterations(view.Apply(x, y))
					row[x] = cfg.ColorMap(float64(iterations) / maxIterations)
				}
			}
		}()
	}
	ywg.Wait()

	log.Info("render finished",
		"variant", cfg.Variant,
		"pixels", len(buf.Pix),
		"duration", time.Since(start))

	return buf, nil
}
