package controls

import "github.com/san-kum/physlab/internal/kinematics"

// Resetter is anything whose trajectory becomes meaningless when a
// parameter jumps, typically a frame driver.
type Resetter interface {
	Reset()
}

// Incline exposes the two sliders of the inclined-plane scenario.
type Incline struct {
	Angle    *Slider
	Friction *Slider
}

func NewIncline(p kinematics.InclineParams) *Incline {
	return &Incline{
		Angle:    NewSlider("angle", kinematics.MinAngle, kinematics.MaxAngle, kinematics.AngleStep, p.AngleDeg),
		Friction: NewSlider("friction", kinematics.MinFriction, kinematics.MaxFriction, kinematics.FrictionStep, p.Friction),
	}
}

func (c *Incline) Params() kinematics.InclineParams {
	return kinematics.InclineParams{
		AngleDeg: c.Angle.Value(),
		Friction: c.Friction.Value(),
	}
}

// Set moves both sliders, firing listeners for whichever one changed.
func (c *Incline) Set(p kinematics.InclineParams) {
	c.Angle.Set(p.AngleDeg)
	c.Friction.Set(p.Friction)
}

// Bind resets r whenever either slider changes.
func (c *Incline) Bind(r Resetter) {
	reset := func(float64) { r.Reset() }
	c.Angle.OnChange(reset)
	c.Friction.OnChange(reset)
}

func (c *Incline) Sliders() []*Slider {
	return []*Slider{c.Angle, c.Friction}
}
