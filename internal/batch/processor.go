package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/imageio"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raytrace"
	"sphere-raytracer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene     *scene.Scene // shared read-only
	Options   raytrace.Options
	Width     int
	Height    int
	Scale     int
	Filter    string
	OutputDir string
	Ext       string // ".png", ".webp" or ".tga"
	Workers   int
	Progress  time.Duration // 0 disables progress output
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string
	Success bool
	Error   string
}

// FrameName is the file name of frame i.
func FrameName(i int, ext string) string {
	return fmt.Sprintf("frame_%05d%s", i, ext)
}

// Run renders every pose to its own file using a worker pool. Each frame is
// rendered by one goroutine from its own camera copy.
func Run(cfg Config, poses []camera.Camera) []Result {
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx, &poses[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range poses {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, idx int, cam *camera.Camera) Result {
	name := FrameName(idx, cfg.Ext)
	res := Result{Frame: idx, Image: name}

	fb := raytrace.Render(cam, cfg.Scene, cfg.Width, cfg.Height, cfg.Options)

	img, err := postprocess.Upscale(fb.Image(), cfg.Scale, cfg.Filter)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if err := imageio.Save(filepath.Join(cfg.OutputDir, name), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
