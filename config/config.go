package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Screens ScreensConfig `yaml:"screens"`
	Debug   bool          `yaml:"debug"`

	// dir is the directory of the loaded file; relative paths resolve
	// against it.
	dir string
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Background is a hex color such as "#181820".
	Background string `yaml:"background"`
}

// BackgroundColor parses Background, falling back to black when it is not a
// valid hex color.
func (w WindowConfig) BackgroundColor() color.Color {
	c, err := colorful.Hex(w.Background)
	if err != nil {
		return color.Black
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

type AssetsConfig struct {
	Root             string `yaml:"root"`
	Watch            bool   `yaml:"watch"`
	EmbeddedFallback bool   `yaml:"embedded_fallback"`
}

type ScreensConfig struct {
	Menu ScreenConfig `yaml:"menu"`
	Game ScreenConfig `yaml:"game"`
}

type ScreenConfig struct {
	Bindings []BindingConfig `yaml:"bindings"`
}

// BindingConfig describes one animated element of a screen.
type BindingConfig struct {
	Marker       string  `yaml:"marker"`
	Sequence     string  `yaml:"sequence"`
	Policy       string  `yaml:"policy"`
	Script       string  `yaml:"script"`
	Interval     float64 `yaml:"interval"`
	InitialFrame int     `yaml:"initial_frame"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Scale        float64 `yaml:"scale"`
	FadeIn       float64 `yaml:"fade_in"`
	FadeEase     string  `yaml:"fade_ease"`
}

// Default mirrors the shipped flipbook.yaml.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "connection app", Width: 1000, Height: 600, Background: "#181820"},
		Assets: AssetsConfig{Root: "assets/images", EmbeddedFallback: true},
		Screens: ScreensConfig{
			Menu: ScreenConfig{Bindings: []BindingConfig{{
				Marker:   "idle_screen",
				Sequence: "idle",
				Policy:   "sequential",
				Interval: 0.2,
				X:        500,
				Y:        90,
			}}},
			Game: ScreenConfig{Bindings: []BindingConfig{{
				Marker:       "load_screen",
				Sequence:     "load",
				Policy:       "random",
				Interval:     0.5,
				InitialFrame: 1,
				X:            500,
				Y:            300,
				FadeIn:       0.4,
			}}},
		},
	}
}

// Load reads and validates a YAML config file. Fields missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once, each wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := colorful.Hex(c.Window.Background); err != nil {
		bad("window.background %q: %v", c.Window.Background, err)
	}
	if c.Assets.Root == "" {
		bad("assets.root is empty")
	}
	for screen, sc := range map[string]ScreenConfig{"menu": c.Screens.Menu, "game": c.Screens.Game} {
		seen := map[string]bool{}
		for i, b := range sc.Bindings {
			where := fmt.Sprintf("screens.%s.bindings[%d]", screen, i)
			switch {
			case b.Marker == "":
				bad("%s: marker is empty", where)
			case seen[b.Marker]:
				bad("%s: marker %q bound twice", where, b.Marker)
			}
			seen[b.Marker] = true
			if b.Sequence == "" {
				bad("%s: sequence is empty", where)
			}
			if b.Interval <= 0 {
				bad("%s: interval %v must be positive", where, b.Interval)
			}
			if b.InitialFrame < 0 {
				bad("%s: initial_frame %d is negative", where, b.InitialFrame)
			}
			if b.Policy == "script" && b.Script == "" {
				bad("%s: policy script needs a script path", where)
			}
		}
	}
	return errors.Join(errs...)
}

// Resolve makes a config-relative path usable from the working directory.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
