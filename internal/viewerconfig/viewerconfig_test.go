package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-viewer/internal/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, logger.DefaultPath, cfg.LogPath)
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "viewer.yaml", `
window:
  title: Inspect
gate_hz: 30
camera:
  speed: 2.5
models:
  - models/cube.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Window.Title = "Inspect"
	want.GateHz = 30
	want.Camera.Speed = 2.5
	want.Models = []string{"models/cube.yaml"}
	assert.Equal(t, want, cfg)
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "viewer.toml", `
watch = true
background = [0.0, 0.0, 0.0, 1.0]

[ranges.scale]
min = 0.01
max = 5.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Watch = true
	want.Background = [4]float32{0, 0, 0, 1}
	want.Ranges.Scale = Range{Min: 0.01, Max: 5}
	assert.Equal(t, want, cfg)
}

func TestLoadMalformedReturnsDefaultAndError(t *testing.T) {
	path := writeFile(t, "viewer.yaml", "window: [oops\n")
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeFile(t, "viewer.yaml", "ranges:\n  rotation:\n    min: 360\n    max: 0\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "rotation")

	path = writeFile(t, "viewer.yaml", "window:\n  width: 0\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "window size")
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := Load("viewer.json")
	assert.Error(t, err)
	assert.Error(t, Save(filepath.Join(t.TempDir(), "viewer.ini"), Default()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"viewer.yaml", "viewer.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Window.Title = "Round Trip"
			cfg.Models = []string{"a.obj", "b.yaml"}
			cfg.LightColor = [4]float32{0.5, 0.25, 1, 1}
			require.NoError(t, Save(path, cfg))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}
