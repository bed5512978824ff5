package experiment

import (
	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/render"
)

// NoParams is the parameter type of scenarios without controls.
type NoParams struct{}

func noParams() NoParams { return NoParams{} }

func FreefallScenario() driver.Scenario[kinematics.FreefallState, NoParams] {
	return driver.Scenario[kinematics.FreefallState, NoParams]{
		Name:    "freefall",
		Width:   kinematics.FreefallWidth,
		Height:  kinematics.FreefallHeight,
		Fields:  []string{"y", "vy"},
		Initial: kinematics.NewFreefall,
		Step: func(s kinematics.FreefallState, _ NoParams) kinematics.FreefallState {
			return kinematics.StepFreefall(s)
		},
		Render: func(surface render.Surface, s kinematics.FreefallState, _ NoParams) {
			render.DrawFreefall(surface, s)
		},
		Vector: func(s kinematics.FreefallState) []float64 { return []float64{s.Y, s.VY} },
	}
}

func PendulumScenario() driver.Scenario[kinematics.PendulumState, NoParams] {
	return driver.Scenario[kinematics.PendulumState, NoParams]{
		Name:    "pendulum",
		Width:   kinematics.PendulumWidth,
		Height:  kinematics.PendulumHeight,
		Fields:  []string{"angle", "omega"},
		Initial: kinematics.NewPendulum,
		Step: func(s kinematics.PendulumState, _ NoParams) kinematics.PendulumState {
			return kinematics.StepPendulum(s)
		},
		Render: func(surface render.Surface, s kinematics.PendulumState, _ NoParams) {
			render.DrawPendulum(surface, s)
		},
		Vector: func(s kinematics.PendulumState) []float64 { return []float64{s.Angle, s.AngularVelocity} },
	}
}

func InclineScenario() driver.Scenario[kinematics.InclineState, kinematics.InclineParams] {
	return driver.Scenario[kinematics.InclineState, kinematics.InclineParams]{
		Name:    "incline",
		Width:   kinematics.InclineWidth,
		Height:  kinematics.InclineHeight,
		Fields:  []string{"s", "v"},
		Initial: kinematics.NewIncline,
		Step:    kinematics.StepIncline,
		Render:  render.DrawIncline,
		Vector:  func(s kinematics.InclineState) []float64 { return []float64{s.S, s.V} },
	}
}
