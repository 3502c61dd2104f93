package main

import (
	"bytes"
	"context"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractl/pkg/settings"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestResolveSettings_Defaults(t *testing.T) {
	cmd := mainCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	s, err := resolveSettings(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestResolveSettings_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 10\nheight = 20\ngradient = \"viridis\"\n"), 0o600))

	cmd := mainCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-w", "30", "-z", "2.5", "-f", "mandelbrot"}))

	s, err := resolveSettings(cmd.Flags())
	require.NoError(t, err)

	assert.Equal(t, 30, s.Width)
	assert.Equal(t, 20, s.Height)
	assert.Equal(t, "viridis", s.Gradient)
	assert.Equal(t, 2.5, s.Zoom)
	assert.Equal(t, "mandelbrot", s.Fractal)
}

func TestRun_Image(t *testing.T) {
	out := filepath.Join(t.TempDir(), "julia.png")

	logs, err := execute(t, "-w", "12", "-v", "8", "-i", "50", "-g", "inferno", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "calculation finished")

	w, h := decodeSize(t, out)
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)
}

func TestRun_Frames(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "-f", "mandelbrot", "-w", "6", "-v", "4", "-i", "20",
		"--output-type", "frames", "--frames", "3", "--zoom-factor", "2",
		"-o", filepath.Join(dir, "zoom.png"))
	require.NoError(t, err)

	for _, name := range []string{"zoom_0000.png", "zoom_0001.png", "zoom_0002.png"} {
		w, h := decodeSize(t, filepath.Join(dir, name))
		assert.Equal(t, 6, w)
		assert.Equal(t, 4, h)
	}
}

func TestRun_InvalidSettings(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")

	_, err := execute(t, "-i", "0", "-o", out)
	assert.ErrorIs(t, err, settings.ErrInvalid)

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_ZeroSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "z.png")

	_, err := execute(t, "-w", "0", "-v", "0", "-o", out)
	assert.ErrorIs(t, err, settings.ErrInvalid)

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}
