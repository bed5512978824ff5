package kinematics

import "math"

const (
	FreefallWidth  = 400.0
	FreefallHeight = 300.0
	GroundHeight   = 20.0

	// Ground is the y coordinate of the ground line.
	Ground = FreefallHeight - GroundHeight

	FreefallGravity = 0.2
	Bounce          = -0.7
	RestThreshold   = 1.0

	freefallStartY = 20.0
	freefallRadius = 15.0
	pixelsPerMeter = 10.0
	earthGravity   = 9.8
)

type FreefallState struct {
	Y      float64
	VY     float64
	Radius float64
}

func NewFreefall() FreefallState {
	return FreefallState{Y: freefallStartY, VY: 0, Radius: freefallRadius}
}

// StepFreefall applies one tick of gravity and resolves the ground collision.
func StepFreefall(s FreefallState) FreefallState {
	s.VY += FreefallGravity
	s.Y += s.VY

	if s.Y+s.Radius > Ground {
		s.Y = Ground - s.Radius
		s.VY *= Bounce
		if math.Abs(s.VY) < RestThreshold {
			s.VY = 0
		}
	}
	return s
}

// OnGround reports whether the ball touches the ground line.
func (s FreefallState) OnGround() bool {
	return s.Y+s.Radius >= Ground
}

// AtRest reports the terminal state: on the ground with no velocity.
func (s FreefallState) AtRest() bool {
	return s.OnGround() && s.VY == 0
}

// FreefallReadout is the real-unit read-out shown next to the animation.
type FreefallReadout struct {
	Time     float64 // s
	Velocity float64 // m/s
	Height   float64 // m
}

// Readout converts the pixel position into textbook free-fall figures using
// 10 px per metre and g = 9.8 m/s². Time and velocity are rounded to two
// decimals before use, the same way they are displayed.
func (s FreefallState) Readout() FreefallReadout {
	t := math.Sqrt(2 * (s.Y / pixelsPerMeter) / earthGravity)
	t = math.Round(t*100) / 100
	return FreefallReadout{
		Time:     t,
		Velocity: math.Round(earthGravity*t*100) / 100,
		Height:   math.Round(Ground/pixelsPerMeter*10) / 10,
	}
}
