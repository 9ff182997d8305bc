package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/imageio"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raytrace"
	"sphere-raytracer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 640)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 480)")
	depth := flag.Int("depth", 0, "Reflection depth (default: 3)")
	sceneName := flag.String("scene", "", fmt.Sprintf("Scene preset %v (default: default)", scene.PresetNames()))
	output := flag.String("output", "", "Output image, .png/.webp/.tga (default: frame.png)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	filter := flag.String("filter", "", "Upscale filter: nearest or catmullrom (default: nearest)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:    *width,
		Height:   *height,
		MaxDepth: *depth,
		Scene:    *sceneName,
		Output:   *output,
		Scale:    *scale,
		Filter:   *filter,
	})

	sc, err := scene.Preset(cfg.Scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cam := cfg.NewCamera()
	fmt.Printf("Scene: %s (%d spheres, %d lights)\n", cfg.Scene, len(sc.Spheres), len(sc.Lights))
	fmt.Printf("Canvas: %dx%d, depth %d, camera (%.2f, %.2f) yaw %.1f°\n",
		cfg.Width, cfg.Height, cfg.MaxDepth, cam.Position[0], cam.Position[2], cfg.Camera.YawDeg)

	start := time.Now()
	fb := raytrace.Render(cam, sc, cfg.Width, cfg.Height, cfg.RenderOptions())
	elapsed := time.Since(start)

	img, err := postprocess.Upscale(fb.Image(), cfg.Scale, cfg.Filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := imageio.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered in %.3fs → %s\n", elapsed.Seconds(), cfg.Output)
}
