package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/flight"
	"sphere-raytracer/internal/imageio"
	"sphere-raytracer/internal/raytrace"
	"sphere-raytracer/internal/scene"
)

func testPoses(t *testing.T) []camera.Camera {
	t.Helper()
	steps, err := flight.Parse("forward:4,left:4")
	if err != nil {
		t.Fatal(err)
	}
	return flight.Replay(camera.New(), steps, 1.0/60, 2)
}

func TestRunWritesEveryFrame(t *testing.T) {
	dir := t.TempDir()
	poses := testPoses(t)
	cfg := Config{
		Scene:     scene.Default(),
		Options:   raytrace.DefaultOptions(),
		Width:     12,
		Height:    9,
		Scale:     2,
		Filter:    "nearest",
		OutputDir: dir,
		Ext:       ".png",
		Workers:   3,
	}

	results := Run(cfg, poses)
	if len(results) != len(poses) {
		t.Fatalf("got %d results, want %d", len(results), len(poses))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Frame != i || r.Image != FrameName(i, ".png") {
			t.Errorf("result %d = %+v", i, r)
		}
		img, err := imageio.Load(filepath.Join(dir, r.Image))
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 18 {
			t.Errorf("frame %d bounds = %v", i, img.Bounds())
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	cfg := Config{
		Scene:     scene.Default(),
		Options:   raytrace.DefaultOptions(),
		Width:     4,
		Height:    4,
		Scale:     1,
		OutputDir: t.TempDir(),
		Ext:       ".bmp",
		Workers:   2,
	}
	results := Run(cfg, []camera.Camera{*camera.New()})
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("expected failure, got %+v", results[0])
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	poses := testPoses(t)
	if err := WriteManifest(path, poses, ".webp"); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(poses) {
		t.Fatalf("got %d entries, want %d", len(entries), len(poses))
	}
	if entries[1].Image != "frame_00001.webp" || entries[1].Action != "move-forward" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
	if entries[len(entries)-1].YawDeg <= 0 {
		t.Errorf("last entry did not turn: %+v", entries[len(entries)-1])
	}
}
