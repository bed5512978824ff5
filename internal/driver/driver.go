package driver

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/physlab/internal/render"
)

// Scenario is one stepper+renderer pair. S is the physical state, P the
// parameters read on every tick.
type Scenario[S, P any] struct {
	Name          string
	Width, Height float64
	Fields        []string

	Initial func() S
	Step    func(S, P) S
	Render  func(render.Surface, S, P)
	Vector  func(S) []float64
}

// Observer sees the state vector after every tick.
type Observer interface {
	OnTick(tick int, x []float64)
}

// ResetObserver is notified when the driver goes back to the initial state.
type ResetObserver interface {
	OnReset()
}

// Driver steps and renders one scenario at the scheduler's cadence.
type Driver[S, P any] struct {
	scenario  Scenario[S, P]
	params    func() P
	surface   render.Surface
	state     S
	ticks     int
	observers []Observer

	sched   Scheduler
	pending FrameID
	handle  *Handle
}

// New creates an idle driver in the scenario's initial state. params is
// called on every tick; surface may be nil, in which case the driver draws
// into a recording frame of the scenario's size.
func New[S, P any](sc Scenario[S, P], params func() P, surface render.Surface) *Driver[S, P] {
	if surface == nil {
		surface = render.NewFrame(sc.Width, sc.Height)
	}
	d := &Driver[S, P]{
		scenario: sc,
		params:   params,
		surface:  surface,
		state:    sc.Initial(),
	}
	d.Draw()
	return d
}

func (d *Driver[S, P]) Name() string             { return d.scenario.Name }
func (d *Driver[S, P]) Fields() []string         { return d.scenario.Fields }
func (d *Driver[S, P]) Size() (float64, float64) { return d.scenario.Width, d.scenario.Height }
func (d *Driver[S, P]) Surface() render.Surface  { return d.surface }
func (d *Driver[S, P]) State() S                 { return d.state }
func (d *Driver[S, P]) Params() P                { return d.params() }
func (d *Driver[S, P]) Ticks() int               { return d.ticks }
func (d *Driver[S, P]) Running() bool            { return d.handle != nil }
func (d *Driver[S, P]) AddObserver(o Observer)   { d.observers = append(d.observers, o) }
func (d *Driver[S, P]) Sample() []float64        { return d.scenario.Vector(d.state) }
func (d *Driver[S, P]) Scenario() Scenario[S, P] { return d.scenario }

// SetSurface redirects rendering, for example to a window backend.
func (d *Driver[S, P]) SetSurface(surface render.Surface) {
	d.surface = surface
	d.Draw()
}

// Start moves the driver to Running and requests the first frame. Starting a
// running driver returns the handle it already has.
func (d *Driver[S, P]) Start(s Scheduler) *Handle {
	if d.handle != nil {
		return d.handle
	}
	d.sched = s
	d.handle = &Handle{stop: d.stop}
	d.request()
	log.Debug("driver started", "scenario", d.scenario.Name, "tick", d.ticks)
	return d.handle
}

// Stop stops the driver if it is running.
func (d *Driver[S, P]) Stop() {
	if d.handle != nil {
		d.handle.Stop()
	}
}

// Reset puts the scenario back to its initial state and redraws it. The
// lifecycle state is unchanged.
func (d *Driver[S, P]) Reset() {
	d.state = d.scenario.Initial()
	d.ticks = 0
	for _, o := range d.observers {
		if r, ok := o.(ResetObserver); ok {
			r.OnReset()
		}
	}
	d.Draw()
}

// Draw renders the current state without stepping it.
func (d *Driver[S, P]) Draw() {
	if f, ok := d.surface.(*render.Frame); ok {
		f.Reset()
	}
	d.scenario.Render(d.surface, d.state, d.params())
}

func (d *Driver[S, P]) stop(h *Handle) {
	if d.handle != h {
		return
	}
	if d.pending != 0 {
		d.sched.CancelFrame(d.pending)
		d.pending = 0
	}
	d.handle = nil
	log.Debug("driver stopped", "scenario", d.scenario.Name, "tick", d.ticks)
}

func (d *Driver[S, P]) request() {
	d.pending = d.sched.RequestFrame(d.frame)
}

func (d *Driver[S, P]) frame(time.Time) {
	d.pending = 0
	if d.handle == nil {
		return
	}
	d.Tick()
	if d.handle != nil {
		d.request()
	}
}

// Tick advances the scenario by one step, renders the new state and then
// notifies observers. Schedulers call it through the frame callback; it can
// also be called directly to step an idle driver.
func (d *Driver[S, P]) Tick() {
	p := d.params()
	d.state = d.scenario.Step(d.state, p)
	d.ticks++

	if f, ok := d.surface.(*render.Frame); ok {
		f.Reset()
	}
	d.scenario.Render(d.surface, d.state, p)

	if len(d.observers) == 0 {
		return
	}
	x := d.scenario.Vector(d.state)
	for _, o := range d.observers {
		o.OnTick(d.ticks, x)
	}
}

// Handle is the release side of Start. Stop cancels the pending frame and
// returns the driver to Idle; calling it again, or after the driver was
// restarted with a new handle, does nothing.
type Handle struct {
	stop    func(*Handle)
	stopped bool
}

func (h *Handle) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	h.stop(h)
}

// Runner is the scenario-independent view of a Driver, so callers can treat
// all scenarios alike.
type Runner interface {
	Name() string
	Fields() []string
	Size() (w, h float64)
	Surface() render.Surface
	SetSurface(render.Surface)
	Start(Scheduler) *Handle
	Stop()
	Reset()
	Running() bool
	Ticks() int
	Draw()
	Tick()
	Sample() []float64
	AddObserver(Observer)
}

var _ Runner = (*Driver[struct{}, struct{}])(nil)
