package internal

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"the.quetzal.community/orrery/scene"
)

// Config describes a whole scene: the window, the camera tuning, the
// star and the list of orbiting bodies. It is read once at startup
// from a TOML file, or taken from DefaultConfig when no file is given.
type Config struct {
	Title  string       `toml:"title"`
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Star   StarConfig   `toml:"star"`
	Bodies []BodyConfig `toml:"body"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CameraConfig tunes the orbital camera. Zero values fall back to the
// defaults from scene.DefaultCamera.
type CameraConfig struct {
	Mode            string  `toml:"mode"`
	Sensitivity     float64 `toml:"sensitivity"`
	ZoomSensitivity float64 `toml:"zoom_sensitivity"`
	MinPitch        float64 `toml:"min_pitch"`
	MaxPitch        float64 `toml:"max_pitch"`
	MinRadius       float64 `toml:"min_radius"`
	MaxRadius       float64 `toml:"max_radius"`
	TopDownHeight   float64 `toml:"topdown_height"`
}

type StarConfig struct {
	SpinRate float64 `toml:"spin_rate"`
	Size     float64 `toml:"size"`
	Color    string  `toml:"color"`
	Mesh     string  `toml:"mesh"`
}

type BodyConfig struct {
	Name        string  `toml:"name"`
	Mesh        string  `toml:"mesh"`
	Color       string  `toml:"color"`
	OrbitRadius float64 `toml:"orbit_radius"`
	OrbitSpeed  float64 `toml:"orbit_speed"`
	SpinSpeed   float64 `toml:"spin_speed"`
	Size        float64 `toml:"size"`
}

// DefaultConfig is the built-in scene: a slowly spinning star and
// three planets.
func DefaultConfig() *Config {
	return &Config{
		Title:  "orrery",
		Window: WindowConfig{Width: 1280, Height: 720},
		Star:   StarConfig{SpinRate: 0.1, Size: 3, Color: "#ffcf70"},
		Bodies: []BodyConfig{
			{Name: "ash", Color: "#b8643c", OrbitRadius: 5, OrbitSpeed: 1, SpinSpeed: 3, Size: 0.6},
			{Name: "reed", Color: "#5c9e6c", OrbitRadius: 8, OrbitSpeed: 1.5, SpinSpeed: 4, Size: 0.9},
			{Name: "slate", Color: "#6f84c4", OrbitRadius: 11, OrbitSpeed: 2, SpinSpeed: 5, Size: 0.7},
		},
	}
}

// LoadConfig reads and validates a TOML scene file. Any problem here
// is fatal to startup, the scene is never half-constructed.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	if cfg.Title == "" {
		cfg.Title = "orrery"
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the renderer or the orbit system
// could not make sense of.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Star.Size < 0 {
		return fmt.Errorf("star size %v is negative", cfg.Star.Size)
	}
	if cfg.Star.Color != "" {
		if _, err := parseColor(cfg.Star.Color); err != nil {
			return fmt.Errorf("star: %w", err)
		}
	}
	if cam := cfg.Camera; cam.MinPitch != 0 && cam.MaxPitch != 0 && cam.MinPitch > cam.MaxPitch {
		return fmt.Errorf("camera pitch bounds [%v, %v] are inverted", cam.MinPitch, cam.MaxPitch)
	}
	if cam := cfg.Camera; cam.MinRadius != 0 && cam.MaxRadius != 0 && cam.MinRadius > cam.MaxRadius {
		return fmt.Errorf("camera radius bounds [%v, %v] are inverted", cam.MinRadius, cam.MaxRadius)
	}
	for i, body := range cfg.Bodies {
		name := body.Name
		if name == "" {
			name = fmt.Sprintf("body %d", i+1)
		}
		if body.OrbitRadius <= 0 {
			return fmt.Errorf("%s: orbit radius %v is not positive", name, body.OrbitRadius)
		}
		if body.Size < 0 {
			return fmt.Errorf("%s: size %v is negative", name, body.Size)
		}
		if body.Color != "" {
			if _, err := parseColor(body.Color); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// camera builds the scene camera from the configuration, leaving
// untouched fields at their defaults. An unknown mode name is a
// recoverable input problem: logged, ignored, the default mode stays.
func (cfg *Config) camera() scene.Camera {
	cam := scene.DefaultCamera()
	c := cfg.Camera
	if c.Sensitivity != 0 {
		cam.Sensitivity = c.Sensitivity
	}
	if c.ZoomSensitivity != 0 {
		cam.ZoomSensitivity = c.ZoomSensitivity
	}
	if c.MinPitch != 0 {
		cam.MinPitch = c.MinPitch
	}
	if c.MaxPitch != 0 {
		cam.MaxPitch = c.MaxPitch
	}
	if c.MinRadius != 0 {
		cam.MinRadius = c.MinRadius
	}
	if c.MaxRadius != 0 {
		cam.MaxRadius = c.MaxRadius
	}
	if c.TopDownHeight != 0 {
		cam.TopDownHeight = c.TopDownHeight
	}
	if c.Mode != "" {
		mode, ok := scene.ParseCameraMode(c.Mode)
		if !ok {
			slog.Warn("unknown camera mode, keeping current", "mode", c.Mode)
		} else {
			cam.SetMode(mode)
		}
	}
	return cam
}

// parseColor turns a "#rrggbb" hex string into the RGBA the color
// uniform wants. Alpha is always 1, the scene has no translucency.
func parseColor(hex string) (mgl32.Vec4, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}
