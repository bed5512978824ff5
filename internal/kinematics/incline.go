package kinematics

import "math"

const (
	InclineWidth  = 400.0
	InclineHeight = 250.0

	// WedgeTop is where the upper edge of the incline meets the left border.
	WedgeTop       = 50.0
	WedgeThickness = 50.0

	InclineGravity = 9.8
	SubStep        = 0.1

	inclineStartS = 20.0
	blockWidth    = 30.0
	blockHeight   = 20.0
)

// Slider bounds for InclineParams.
const (
	MinAngle     = 0.0
	MaxAngle     = 45.0
	AngleStep    = 1.0
	MinFriction  = 0.1
	MaxFriction  = 1.0
	FrictionStep = 0.05

	DefaultAngle    = 20.0
	DefaultFriction = 0.3
)

type InclineState struct {
	S      float64 // position along the slope
	V      float64 // velocity along the slope
	Width  float64
	Height float64
}

type InclineParams struct {
	AngleDeg float64
	Friction float64
}

func NewIncline() InclineState {
	return InclineState{S: inclineStartS, V: 0, Width: blockWidth, Height: blockHeight}
}

func DefaultInclineParams() InclineParams {
	return InclineParams{AngleDeg: DefaultAngle, Friction: DefaultFriction}
}

func (p InclineParams) Radians() float64 {
	return p.AngleDeg * math.Pi / 180
}

// Forces returns the along-slope component of gravity, the normal force and
// the kinetic friction force, all per unit mass.
func (p InclineParams) Forces() (parallel, normal, friction float64) {
	a := p.Radians()
	parallel = InclineGravity * math.Sin(a)
	normal = InclineGravity * math.Cos(a)
	friction = p.Friction * normal
	return parallel, normal, friction
}

// InclineAcceleration is the net along-slope acceleration. It is zero when
// friction holds the block.
func InclineAcceleration(p InclineParams) float64 {
	parallel, _, friction := p.Forces()
	if parallel > friction {
		return parallel - friction
	}
	return 0
}

// Sliding reports whether the parameters let the block move at all.
func (p InclineParams) Sliding() bool {
	return InclineAcceleration(p) > 0
}

// StepIncline advances the block by one sub-stepped tick and stops it at the
// far edge of the visible slope.
func StepIncline(s InclineState, p InclineParams) InclineState {
	acc := InclineAcceleration(p)

	s.V += acc * SubStep
	s.S += s.V * SubStep

	if s.S*math.Cos(p.Radians()) >= InclineWidth-s.Width {
		s.V = 0
	}
	return s
}

// AtWall reports whether the block has reached the far edge of the slope.
func (s InclineState) AtWall(p InclineParams) bool {
	return s.S*math.Cos(p.Radians()) >= InclineWidth-s.Width
}
