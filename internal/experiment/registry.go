package experiment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/physlab/internal/controls"
	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/render"
)

var ErrUnknownScenario = errors.New("experiment: unknown scenario")

// Session is one activation of a scenario: a fresh driver, the controls
// bound to it (incline only) and the metrics observing it.
type Session struct {
	Runner   driver.Runner
	Controls *controls.Incline
	Metrics  []metrics.Metric
}

// Readout is the text shown next to a running scenario.
func (s *Session) Readout() []string {
	switch d := s.Runner.(type) {
	case *driver.Driver[kinematics.FreefallState, NoParams]:
		r := d.State().Readout()
		return []string{
			fmt.Sprintf("time: %.2f s", r.Time),
			fmt.Sprintf("velocity: %.2f m/s", r.Velocity),
			fmt.Sprintf("height: %.0f m", r.Height),
		}
	case *driver.Driver[kinematics.PendulumState, NoParams]:
		st := d.State()
		return []string{
			fmt.Sprintf("angle: %.1f°", st.Angle*180/math.Pi),
			fmt.Sprintf("energy: %.3f", st.Energy()),
			fmt.Sprintf("period: %.1f ticks", kinematics.PendulumPeriod(st.Length, kinematics.PendulumGravity)),
		}
	case *driver.Driver[kinematics.InclineState, kinematics.InclineParams]:
		st, p := d.State(), d.Params()
		return []string{
			fmt.Sprintf("angle: %s°  friction: %s", s.Controls.Angle.Format(), s.Controls.Friction.Format()),
			fmt.Sprintf("velocity: %.2f m/s", st.V),
			fmt.Sprintf("acceleration: %.2f m/s²", kinematics.InclineAcceleration(p)),
		}
	}
	return nil
}

// Close stops the driver if it is running.
func (s *Session) Close() {
	s.Runner.Stop()
}

type factory func(p kinematics.InclineParams, surface render.Surface) *Session

type Registry struct {
	scenarios map[string]factory
}

func NewRegistry() *Registry {
	r := &Registry{
		scenarios: make(map[string]factory),
	}

	r.scenarios["freefall"] = func(_ kinematics.InclineParams, surface render.Surface) *Session {
		return &Session{Runner: driver.New(FreefallScenario(), noParams, surface)}
	}
	r.scenarios["pendulum"] = func(_ kinematics.InclineParams, surface render.Surface) *Session {
		return &Session{Runner: driver.New(PendulumScenario(), noParams, surface)}
	}
	r.scenarios["incline"] = func(p kinematics.InclineParams, surface render.Surface) *Session {
		ctl := controls.NewIncline(p)
		d := driver.New(InclineScenario(), ctl.Params, surface)
		ctl.Bind(d)
		return &Session{Runner: d, Controls: ctl}
	}

	return r
}

// Open creates an idle session for the named scenario with its default
// metrics attached. p only applies to the incline. surface may be nil.
func (r *Registry) Open(name string, p kinematics.InclineParams, surface render.Surface) (*Session, error) {
	fn, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	s := fn(p, surface)
	s.Metrics = r.DefaultMetrics(name)
	for _, m := range s.Metrics {
		s.Runner.AddObserver(m)
	}
	return s, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(scenario string) []metrics.Metric {
	switch scenario {
	case "freefall":
		return []metrics.Metric{
			metrics.NewBounces(1),
			metrics.NewHalt(1),
			metrics.NewSettle(0),
		}
	case "pendulum":
		length := kinematics.NewPendulum().Length
		return []metrics.Metric{
			metrics.NewEnergy(length, kinematics.PendulumGravity),
			metrics.NewEnergyLoss(length, kinematics.PendulumGravity),
			metrics.NewSettle(1e-4),
		}
	case "incline":
		return []metrics.Metric{
			metrics.NewTravel(0),
			metrics.NewHalt(1),
		}
	}
	return nil
}
