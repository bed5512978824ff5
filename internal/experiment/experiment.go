package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/metrics"
)

var ErrNotSetup = errors.New("experiment: not setup")

type Config struct {
	Scenario string
	Ticks    int
	FPS      int
	Incline  kinematics.InclineParams
}

// Result holds one sample per tick, starting with the initial state at tick
// 0. Times are in seconds at the configured frame rate.
type Result struct {
	Fields  []string
	Ticks   []int
	Times   []float64
	States  [][]float64
	Metrics map[string]float64
}

// Final returns the last recorded state vector.
func (r *Result) Final() []float64 {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}

// Column returns component i of every sample.
func (r *Result) Column(i int) []float64 {
	out := make([]float64, 0, len(r.States))
	for _, x := range r.States {
		if i < len(x) {
			out = append(out, x[i])
		}
	}
	return out
}

// recorder is the driver observer that fills a Result.
type recorder struct {
	res    *Result
	fps    int
	runner driver.Runner
}

func (r *recorder) OnTick(tick int, x []float64) {
	r.add(tick, x)
}

func (r *recorder) OnReset() {
	r.res.Ticks = r.res.Ticks[:0]
	r.res.Times = r.res.Times[:0]
	r.res.States = r.res.States[:0]
	r.add(0, r.runner.Sample())
}

func (r *recorder) add(tick int, x []float64) {
	r.res.Ticks = append(r.res.Ticks, tick)
	r.res.Times = append(r.res.Times, float64(tick)/float64(r.fps))
	r.res.States = append(r.res.States, append([]float64(nil), x...))
}

// Experiment drives one scenario headlessly for a fixed number of ticks.
type Experiment struct {
	cfg     Config
	session *Session
}

func New(cfg Config) *Experiment {
	if cfg.FPS <= 0 {
		cfg.FPS = driver.DefaultFPS
	}
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(reg *Registry) error {
	s, err := reg.Open(e.cfg.Scenario, e.cfg.Incline, nil)
	if err != nil {
		return err
	}
	e.session = s
	return nil
}

// Session returns the session opened by Setup, for adding observers.
func (e *Experiment) Session() *Session {
	return e.session
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.session == nil {
		return nil, ErrNotSetup
	}
	runner := e.session.Runner

	res := &Result{Fields: runner.Fields()}
	rec := &recorder{res: res, fps: e.cfg.FPS, runner: runner}
	rec.add(runner.Ticks(), runner.Sample())
	runner.AddObserver(rec)

	sched := driver.NewManualScheduler(e.cfg.FPS)
	h := runner.Start(sched)
	defer h.Stop()

	log.Debug("experiment started", "scenario", e.cfg.Scenario, "ticks", e.cfg.Ticks)
	for i := 0; i < e.cfg.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("experiment: stopped at tick %d: %w", runner.Ticks(), err)
		}
		sched.Advance()
	}

	res.Metrics = metrics.Snapshot(e.session.Metrics)
	return res, nil
}
