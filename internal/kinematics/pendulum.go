package kinematics

import "math"

const (
	PendulumWidth  = 400.0
	PendulumHeight = 250.0
	PivotX         = PendulumWidth / 2
	PivotY         = 20.0

	PendulumGravity = 0.1
	Damping         = 0.995

	pendulumLength = 120.0
)

type PendulumState struct {
	Angle           float64
	AngularVelocity float64
	Length          float64
}

func NewPendulum() PendulumState {
	return PendulumState{Angle: math.Pi / 4, AngularVelocity: 0, Length: pendulumLength}
}

// StepPendulum integrates the nonlinear pendulum equation with explicit
// Euler and bleeds angular velocity by Damping every tick.
func StepPendulum(s PendulumState) PendulumState {
	acc := -(PendulumGravity / s.Length) * math.Sin(s.Angle)
	s.AngularVelocity += acc
	s.Angle += s.AngularVelocity
	s.AngularVelocity *= Damping
	return s
}

// Energy is the mechanical energy per unit mass in pixel/tick units, with the
// zero of potential energy at the lowest point of the swing.
func (s PendulumState) Energy() float64 {
	v := s.Length * s.AngularVelocity
	return 0.5*v*v + PendulumGravity*s.Length*(1-math.Cos(s.Angle))
}

// AtRest reports whether both angle and angular velocity are within eps of
// zero. The stepper never snaps to rest; callers pick their own epsilon.
func (s PendulumState) AtRest(eps float64) bool {
	return math.Abs(s.Angle) < eps && math.Abs(s.AngularVelocity) < eps
}

// PendulumPeriod is the small-angle period T = 2π√(L/g), in ticks when
// given pixel/tick units.
func PendulumPeriod(length, gravity float64) float64 {
	return 2 * math.Pi * math.Sqrt(length/gravity)
}
