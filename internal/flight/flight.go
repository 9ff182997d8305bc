// Package flight replays a scripted sequence of held controls through the
// camera's input and tick protocol, producing one camera pose per frame.
//
// A script is a comma separated list of control:ticks pairs, e.g.
//
//	forward:60,left:30,wait:10,back:20
package flight

import (
	"fmt"
	"strconv"
	"strings"

	"sphere-raytracer/internal/camera"
)

// Step holds one control down for a number of ticks.
type Step struct {
	Control camera.Control // camera.None waits in place
	Ticks   int
}

var controlNames = map[string]camera.Control{
	"wait":     camera.None,
	"forward":  camera.MoveForward,
	"back":     camera.MoveBackward,
	"backward": camera.MoveBackward,
	"left":     camera.LookLeft,
	"right":    camera.LookRight,
}

// Parse reads a flight script.
func Parse(script string) ([]Step, error) {
	var steps []Step
	for _, field := range strings.Split(script, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, count, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("flight: step %q: want control:ticks", field)
		}
		ctl, known := controlNames[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			return nil, fmt.Errorf("flight: step %q: unknown control %q", field, name)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("flight: step %q: ticks must be a positive integer", field)
		}
		steps = append(steps, Step{Control: ctl, Ticks: n})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("flight: empty script")
	}
	return steps, nil
}

// Ticks is the total length of a flight.
func Ticks(steps []Step) int {
	n := 0
	for _, s := range steps {
		n += s.Ticks
	}
	return n
}

// Replay drives cam through steps with a tick of dt seconds and returns a
// copy of the camera after every `every` ticks, starting with the initial
// pose. cam is left in its final state.
func Replay(cam *camera.Camera, steps []Step, dt float64, every int) []camera.Camera {
	if every < 1 {
		every = 1
	}
	poses := []camera.Camera{*cam}
	tick := 0
	for _, s := range steps {
		cam.HandleInput(s.Control, true)
		for i := 0; i < s.Ticks; i++ {
			cam.Update(dt)
			tick++
			if tick%every == 0 {
				poses = append(poses, *cam)
			}
		}
		cam.HandleInput(s.Control, false)
	}
	return poses
}
