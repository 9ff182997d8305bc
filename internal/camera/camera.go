// Package camera models the movable viewpoint: a position and facing on the
// horizontal plane, a 1×1 viewport one unit ahead (~53° field of view), and
// the single movement or rotation action currently held by the player.
package camera

import "sphere-raytracer/internal/mathutil"

const (
	MoveSpeed = 2.0 // world units per second
	TurnSpeed = 1.0 // radians per second
)

// Action is the movement applied on every tick while it is latched.
type Action int

const (
	None Action = iota
	LookLeft
	LookRight
	MoveForward
	MoveBackward
)

func (a Action) String() string {
	switch a {
	case LookLeft:
		return "look-left"
	case LookRight:
		return "look-right"
	case MoveForward:
		return "move-forward"
	case MoveBackward:
		return "move-backward"
	}
	return "none"
}

// Control is a logical player input. Each control latches the action of the
// same name.
type Control = Action

// Camera is the viewpoint. Facing and Yaw describe the same rotation and are
// always updated together: Facing drives translation, Yaw rotates the
// per-pixel viewport rays.
type Camera struct {
	Position mathutil.Vec3
	Facing   mathutil.Vec3
	Yaw      float64

	ViewportWidth      float64
	ViewportHeight     float64
	ProjectionDistance float64

	Action Action
}

// New returns a camera at the origin looking down +Z.
func New() *Camera {
	return &Camera{
		Facing:             mathutil.V3(0, 0, 1),
		ViewportWidth:      1,
		ViewportHeight:     1,
		ProjectionDistance: 1,
	}
}

// CanvasToViewport maps pixel (px, py) of a canvasW×canvasH canvas (origin
// top-left, y down) to a point on the viewport plane.
func (c *Camera) CanvasToViewport(px, py, canvasW, canvasH float64) mathutil.Vec3 {
	return mathutil.Vec3{
		(px - canvasW/2) * c.ViewportWidth / canvasW,
		(canvasH/2 - py) * c.ViewportHeight / canvasH,
		c.ProjectionDistance,
	}
}

// RotateViewport turns a viewport point around the vertical axis by Yaw.
func (c *Camera) RotateViewport(p mathutil.Vec3) mathutil.Vec3 {
	return mathutil.RotateY(p, c.Yaw)
}

// Turn rotates Facing and Yaw together by delta radians (positive is left).
func (c *Camera) Turn(delta float64) {
	c.Facing = mathutil.RotateY(c.Facing, delta)
	c.Yaw += delta
}

// HandleInput applies a press or release of control. A press latches only
// while nothing else is held; releasing the latched control clears it.
// Releases of any other control are ignored.
func (c *Camera) HandleInput(control Control, pressed bool) {
	if control == None {
		return
	}
	if pressed {
		if c.Action == None {
			c.Action = control
		}
		return
	}
	if c.Action == control {
		c.Action = None
	}
}

// Update advances the camera by one tick of dt seconds.
func (c *Camera) Update(dt float64) {
	move := MoveSpeed * dt
	turn := TurnSpeed * dt

	switch c.Action {
	case MoveForward:
		c.Position[0] += c.Facing[0] * move
		c.Position[2] += c.Facing[2] * move
	case MoveBackward:
		c.Position[0] -= c.Facing[0] * move
		c.Position[2] -= c.Facing[2] * move
	case LookLeft:
		c.Turn(turn)
	case LookRight:
		c.Turn(-turn)
	default:
		c.Action = None
	}
}
