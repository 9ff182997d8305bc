package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sphere-raytracer/internal/batch"
	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/flight"
	"sphere-raytracer/internal/scene"
)

const defaultScript = "forward:60,left:45,forward:30,right:90,back:45"

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	script := flag.String("script", defaultScript, "Flight script: control:ticks pairs (forward, back, left, right, wait)")
	every := flag.Int("every", 5, "Write a frame every N ticks")
	width := flag.Int("width", 0, "Canvas width in pixels (default: 640)")
	height := flag.Int("height", 0, "Canvas height in pixels (default: 480)")
	depth := flag.Int("depth", 0, "Reflection depth (default: 3)")
	sceneName := flag.String("scene", "", "Scene preset (default: default)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", ".png", "Frame format: .png, .webp or .tga")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

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
		Width:     *width,
		Height:    *height,
		MaxDepth:  *depth,
		Scene:     *sceneName,
		OutputDir: *outputDir,
		Scale:     *scale,
		Workers:   *workers,
	})

	sc, err := scene.Preset(cfg.Scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	steps, err := flight.Parse(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	poses := flight.Replay(cfg.NewCamera(), steps, 1/float64(cfg.TPS), *every)

	fmt.Printf("Flight: %d ticks at %d TPS, %d frames\n", flight.Ticks(steps), cfg.TPS, len(poses))
	fmt.Printf("Canvas: %dx%d x%d, Workers: %d\n", cfg.Width, cfg.Height, cfg.Scale, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Scene:     sc,
		Options:   cfg.RenderOptions(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Scale:     cfg.Scale,
		Filter:    cfg.Filter,
		OutputDir: cfg.OutputDir,
		Ext:       *format,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	}, poses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, f := range failed[:limit] {
			fmt.Printf("  %s: %s\n", f.Image, f.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, poses, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
