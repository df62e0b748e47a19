package viewerconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"model-viewer/internal/logger"
)

// DefaultPath is the config file used when -config is not given, relative to the working directory.
const DefaultPath = "config/viewer.yaml"

// Range is an inclusive [Min, Max] slider range.
type Range struct {
	Min float32 `yaml:"min" toml:"min"`
	Max float32 `yaml:"max" toml:"max"`
}

// Window holds window creation settings.
type Window struct {
	Width     int    `yaml:"width" toml:"width"`
	Height    int    `yaml:"height" toml:"height"`
	Title     string `yaml:"title" toml:"title"`
	TargetFPS int    `yaml:"target_fps" toml:"target_fps"` // 0 = uncapped
}

// Camera holds the initial camera placement and speed.
type Camera struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Speed    float32    `yaml:"speed" toml:"speed"`
}

// Ranges are the overlay slider limits.
type Ranges struct {
	Position    Range `yaml:"position" toml:"position"`
	Rotation    Range `yaml:"rotation" toml:"rotation"`
	Scale       Range `yaml:"scale" toml:"scale"`
	CameraSpeed Range `yaml:"camera_speed" toml:"camera_speed"`
}

// Config is the viewer's persisted configuration. A file only needs the keys it
// changes; everything else keeps the Default() value.
type Config struct {
	Window     Window     `yaml:"window" toml:"window"`
	GateHz     float64    `yaml:"gate_hz" toml:"gate_hz"`
	Background [4]float32 `yaml:"background" toml:"background"`
	LightColor [4]float32 `yaml:"light_color" toml:"light_color"`
	Camera     Camera     `yaml:"camera" toml:"camera"`
	Ranges     Ranges     `yaml:"ranges" toml:"ranges"`
	Models     []string   `yaml:"models,omitempty" toml:"models,omitempty"`
	Watch      bool       `yaml:"watch" toml:"watch"`
	LogPath    string     `yaml:"log_path" toml:"log_path"`
}

// Default returns the stock configuration: 1280x720 window, 60 Hz gate, dark
// blue-grey background, white light.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Model Viewer",
			TargetFPS: 0,
		},
		GateHz:     60,
		Background: [4]float32{0.07, 0.13, 0.17, 1},
		LightColor: [4]float32{1, 1, 1, 1},
		Camera: Camera{
			Position: [3]float32{0, 0, 2},
			Speed:    1,
		},
		Ranges: Ranges{
			Position:    Range{Min: -100, Max: 100},
			Rotation:    Range{Min: 0, Max: 360},
			Scale:       Range{Min: 0.001, Max: 1},
			CameraSpeed: Range{Min: 0, Max: 4},
		},
		Watch:   false,
		LogPath: logger.DefaultPath,
	}
}

type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, fmt.Errorf("config: unsupported extension %q (use .yaml, .yml or .toml)", filepath.Ext(path))
}

// Load reads the config at path (YAML or TOML by extension) over Default().
// A missing file is not an error: Default() is returned. A malformed file returns
// Default() together with the error so the caller can report it and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := formatOf(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format implied by its extension, creating the
// parent directory if needed.
func Save(path string, cfg Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(cfg)
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewer cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.GateHz <= 0 {
		return fmt.Errorf("gate_hz must be positive, got %v", c.GateHz)
	}
	for name, r := range map[string]Range{
		"position":     c.Ranges.Position,
		"rotation":     c.Ranges.Rotation,
		"scale":        c.Ranges.Scale,
		"camera_speed": c.Ranges.CameraSpeed,
	} {
		if r.Min >= r.Max {
			return fmt.Errorf("range %s: min %v must be below max %v", name, r.Min, r.Max)
		}
	}
	return nil
}
