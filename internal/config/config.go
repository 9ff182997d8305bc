package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raytrace"
)

// Config holds all render and window settings.
type Config struct {
	// Frame
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxDepth int    `json:"max_depth"`
	Scene    string `json:"scene"`
	Camera   Pose   `json:"camera"`

	// Output
	Output    string `json:"output"`
	OutputDir string `json:"output_dir"`
	Scale     int    `json:"scale"`
	Filter    string `json:"filter"`
	Workers   int    `json:"workers"`

	// Window
	Title string `json:"title"`
	TPS   int    `json:"tps"`
}

// Pose is the starting position and heading of the camera.
type Pose struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	YawDeg float64 `json:"yaw_deg"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = raytrace.DefaultDepth
	}
	if c.Scene == "" {
		c.Scene = "default"
	}
	if c.Output == "" {
		c.Output = "frame.png"
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Filter == "" {
		c.Filter = "nearest"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Title == "" {
		c.Title = "raytracing_basic v1.0.0, 2022"
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	MaxDepth  int
	Scene     string
	Output    string
	OutputDir string
	Scale     int
	Filter    string
	Workers   int
}

// RenderOptions returns the primary-ray options for this config.
func (c *Config) RenderOptions() raytrace.Options {
	opts := raytrace.DefaultOptions()
	opts.Depth = c.MaxDepth
	return opts
}

// NewCamera returns a camera placed at the configured pose.
func (c *Config) NewCamera() *camera.Camera {
	cam := camera.New()
	cam.Position = mathutil.V3(c.Camera.X, 0, c.Camera.Z)
	if c.Camera.YawDeg != 0 {
		cam.Turn(mathutil.Deg2Rad(c.Camera.YawDeg))
	}
	return cam
}
