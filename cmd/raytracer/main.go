package main

import (
	"flag"
	"log"

	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/host"
	"sphere-raytracer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Initial window width (default: 640)")
	height := flag.Int("height", 0, "Initial window height (default: 480)")
	depth := flag.Int("depth", 0, "Reflection depth (default: 3)")
	sceneName := flag.String("scene", "", "Scene preset (default: default)")
	noFPS := flag.Bool("nofps", false, "Hide the FPS counter")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	cfg.Resolve(config.Flags{
		Width:    *width,
		Height:   *height,
		MaxDepth: *depth,
		Scene:    *sceneName,
	})

	sc, err := scene.Preset(cfg.Scene)
	if err != nil {
		log.Fatal(err)
	}

	err = host.RunWindow(cfg.NewCamera(), sc, host.Options{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		TPS:     cfg.TPS,
		Render:  cfg.RenderOptions(),
		ShowFPS: !*noFPS,
	})
	if err != nil {
		log.Fatal(err)
	}
}
