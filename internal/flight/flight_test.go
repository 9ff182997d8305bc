package flight

import (
	"math"
	"testing"

	"sphere-raytracer/internal/camera"
)

func TestParse(t *testing.T) {
	steps, err := Parse("forward:60, LEFT:30,wait:5,back:2,right:1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Step{
		{camera.MoveForward, 60},
		{camera.LookLeft, 30},
		{camera.None, 5},
		{camera.MoveBackward, 2},
		{camera.LookRight, 1},
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
	if Ticks(steps) != 98 {
		t.Errorf("Ticks = %d, want 98", Ticks(steps))
	}
}

func TestParseErrors(t *testing.T) {
	for _, script := range []string{"", " , ", "forward", "jump:3", "left:0", "left:-2", "left:x"} {
		if _, err := Parse(script); err == nil {
			t.Errorf("Parse(%q) accepted", script)
		}
	}
}

func TestReplay(t *testing.T) {
	steps := []Step{
		{camera.MoveForward, 30},
		{camera.None, 10},
		{camera.LookLeft, 60},
	}
	cam := camera.New()
	poses := Replay(cam, steps, 1.0/60, 10)

	// initial pose + one every 10 ticks
	if len(poses) != 1+10 {
		t.Fatalf("got %d poses, want 11", len(poses))
	}
	if poses[0].Position[2] != 0 {
		t.Errorf("first pose moved: %v", poses[0].Position)
	}
	if z := poses[3].Position[2]; math.Abs(z-1) > 1e-9 {
		t.Errorf("after 30 forward ticks z = %v, want 1", z)
	}
	if poses[4].Position != poses[3].Position {
		t.Errorf("wait step moved the camera")
	}
	if math.Abs(cam.Yaw-1) > 1e-9 {
		t.Errorf("final yaw = %v, want 1", cam.Yaw)
	}
	if cam.Action != camera.None {
		t.Errorf("control still held after replay: %v", cam.Action)
	}

	// Snapshots are copies, not aliases of the live camera.
	if poses[len(poses)-1].Yaw != cam.Yaw || poses[0].Yaw != 0 {
		t.Errorf("snapshot yaw mismatch")
	}
}
