package analysis

import (
	"context"

	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
)

// SweepPoint is the outcome of one incline run at a fixed angle.
type SweepPoint struct {
	Angle        float64
	Acceleration float64
	HaltTick     int // tick the block stopped at the wall, 0 if it never did
	Distance     float64
}

// SweepIncline runs the incline headlessly at steps evenly spaced angles
// between minAngle and maxAngle with a fixed friction coefficient.
func SweepIncline(ctx context.Context, friction, minAngle, maxAngle float64, steps, ticks int) ([]SweepPoint, error) {
	if steps <= 1 {
		steps = 2
	}
	angleStep := (maxAngle - minAngle) / float64(steps-1)

	reg := experiment.NewRegistry()
	results := make([]SweepPoint, 0, steps)

	for i := 0; i < steps; i++ {
		p := kinematics.InclineParams{AngleDeg: minAngle + float64(i)*angleStep, Friction: friction}

		exp := experiment.New(experiment.Config{Scenario: "incline", Ticks: ticks, Incline: p})
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		res, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepPoint{
			Angle:        p.AngleDeg,
			Acceleration: kinematics.InclineAcceleration(p),
			HaltTick:     int(res.Metrics["halt_tick"]),
			Distance:     res.Metrics["distance"],
		})
	}

	return results, nil
}
