// Package host runs the renderer in a desktop window: arrow keys steer the
// camera, the camera ticks at a fixed rate, and every drawn frame is traced
// at the current window size.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/raytrace"
	"sphere-raytracer/internal/scene"
)

// Options configures the window.
type Options struct {
	Title   string
	Width   int
	Height  int
	TPS     int
	Render  raytrace.Options
	ShowFPS bool
}

// RunWindow opens a resizable window and blocks until it is closed or
// Escape is pressed.
func RunWindow(cam *camera.Camera, sc *scene.Scene, opts Options) error {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	g := &game{
		cam:    cam,
		sc:     sc,
		render: opts.Render,
		dt:     1 / float64(opts.TPS),
		fps:    opts.ShowFPS,
		width:  opts.Width,
		height: opts.Height,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

// keyControls maps the arrow keys to camera controls.
var keyControls = []struct {
	key ebiten.Key
	ctl camera.Control
}{
	{ebiten.KeyArrowUp, camera.MoveForward},
	{ebiten.KeyArrowDown, camera.MoveBackward},
	{ebiten.KeyArrowLeft, camera.LookLeft},
	{ebiten.KeyArrowRight, camera.LookRight},
}

type game struct {
	cam    *camera.Camera
	sc     *scene.Scene
	render raytrace.Options
	dt     float64
	fps    bool

	width  int
	height int
	frame  *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range keyControls {
		if inpututil.IsKeyJustPressed(k.key) {
			g.cam.HandleInput(k.ctl, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.cam.HandleInput(k.ctl, false)
		}
	}
	g.cam.Update(g.dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != g.width || g.frame.Bounds().Dy() != g.height {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(g.width, g.height)
	}

	fb := raytrace.Render(g.cam, g.sc, g.width, g.height, g.render)
	g.frame.WritePixels(fb.Color)
	screen.DrawImage(g.frame, nil)

	if g.fps {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
	}
}

// Layout renders at the window's own resolution, so resizing the window
// resizes the traced frame.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
