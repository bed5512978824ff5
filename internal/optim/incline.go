package optim

import (
	"context"
	"math"

	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
)

// FitIncline searches g, whose parameters are named "angle" and "friction",
// for the block that reaches the wall closest to targetTick. Runs that never
// reach the wall score +Inf.
func FitIncline(ctx context.Context, g *GridSearch, targetTick, ticks int) (*Candidate, error) {
	build := func(p map[string]float64) (experiment.Config, error) {
		return experiment.Config{
			Scenario: "incline",
			Ticks:    ticks,
			Incline:  kinematics.InclineParams{AngleDeg: p["angle"], Friction: p["friction"]},
		}, nil
	}
	score := func(r *experiment.Result) float64 {
		halt := r.Metrics["halt_tick"]
		if halt == 0 {
			return math.Inf(1)
		}
		return math.Abs(halt - float64(targetTick))
	}
	return g.Search(ctx, build, score)
}
