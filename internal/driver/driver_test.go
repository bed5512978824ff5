package driver_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/controls"
	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/render"
)

type noParams struct{}

func freefallScenario(calls *[]string) driver.Scenario[kinematics.FreefallState, noParams] {
	return driver.Scenario[kinematics.FreefallState, noParams]{
		Name:    "freefall",
		Width:   kinematics.FreefallWidth,
		Height:  kinematics.FreefallHeight,
		Fields:  []string{"y", "vy"},
		Initial: kinematics.NewFreefall,
		Step: func(s kinematics.FreefallState, _ noParams) kinematics.FreefallState {
			*calls = append(*calls, "step")
			return kinematics.StepFreefall(s)
		},
		Render: func(surface render.Surface, s kinematics.FreefallState, _ noParams) {
			*calls = append(*calls, "render")
			render.DrawFreefall(surface, s)
		},
		Vector: func(s kinematics.FreefallState) []float64 { return []float64{s.Y, s.VY} },
	}
}

func inclineScenario() driver.Scenario[kinematics.InclineState, kinematics.InclineParams] {
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

type tickRecorder struct {
	ticks  []int
	resets int
}

func (r *tickRecorder) OnTick(tick int, x []float64) { r.ticks = append(r.ticks, tick) }
func (r *tickRecorder) OnReset()                     { r.resets++ }

var _ = Describe("Driver", func() {
	var (
		calls []string
		sched *driver.ManualScheduler
		d     *driver.Driver[kinematics.FreefallState, noParams]
	)

	BeforeEach(func() {
		calls = nil
		sched = driver.NewManualScheduler(60)
		d = driver.New(freefallScenario(&calls), func() noParams { return noParams{} }, nil)
		calls = nil
	})

	It("starts idle in the initial state", func() {
		Expect(d.Running()).To(BeFalse())
		Expect(d.State()).To(Equal(kinematics.NewFreefall()))
		Expect(sched.Pending()).To(Equal(0))
	})

	It("steps once per refresh while running", func() {
		h := d.Start(sched)
		defer h.Stop()

		Expect(d.Running()).To(BeTrue())
		Expect(sched.AdvanceN(10)).To(Equal(10))
		Expect(d.Ticks()).To(Equal(10))

		expected := kinematics.NewFreefall()
		for i := 0; i < 10; i++ {
			expected = kinematics.StepFreefall(expected)
		}
		Expect(d.State()).To(Equal(expected))
	})

	It("steps before rendering and keeps a single pending frame", func() {
		h := d.Start(sched)
		defer h.Stop()

		for i := 0; i < 5; i++ {
			Expect(sched.Pending()).To(Equal(1))
			sched.Advance()
		}
		Expect(calls).To(Equal([]string{
			"step", "render", "step", "render", "step", "render", "step", "render", "step", "render",
		}))
	})

	It("renders the stepped state", func() {
		h := d.Start(sched)
		defer h.Stop()
		sched.Advance()

		frame, ok := d.Surface().(*render.Frame)
		Expect(ok).To(BeTrue())
		Expect(frame.Commands).To(HaveLen(3))
		Expect(frame.Commands[2].Args[1]).To(Equal(d.State().Y))
	})

	It("returns the same handle when started twice", func() {
		h1 := d.Start(sched)
		h2 := d.Start(sched)
		Expect(h2).To(BeIdenticalTo(h1))
		Expect(sched.Pending()).To(Equal(1))
		h1.Stop()
	})

	It("cancels the pending frame on stop", func() {
		h := d.Start(sched)
		sched.AdvanceN(3)
		h.Stop()

		Expect(d.Running()).To(BeFalse())
		Expect(sched.Pending()).To(Equal(0))
		Expect(sched.AdvanceN(20)).To(Equal(0))
		Expect(d.Ticks()).To(Equal(3))
	})

	It("tolerates repeated and idle stops", func() {
		d.Stop()
		h := d.Start(sched)
		h.Stop()
		h.Stop()
		d.Stop()
		sched.CancelFrame(12345)
		Expect(d.Running()).To(BeFalse())
	})

	It("ignores a stale handle after a restart", func() {
		old := d.Start(sched)
		old.Stop()
		fresh := d.Start(sched)
		old.Stop()

		Expect(d.Running()).To(BeTrue())
		Expect(sched.Advance()).To(Equal(1))
		fresh.Stop()
	})

	It("does not apply background ticks across deactivation", func() {
		h := d.Start(sched)
		sched.AdvanceN(25)
		h.Stop()
		atStop := d.State()

		sched.AdvanceN(100)
		h = d.Start(sched)
		defer h.Stop()

		Expect(d.State()).To(Equal(atStop))
		Expect(d.Ticks()).To(Equal(25))
	})

	It("resets from either lifecycle state without changing it", func() {
		d.Reset()
		Expect(d.Running()).To(BeFalse())

		h := d.Start(sched)
		defer h.Stop()
		sched.AdvanceN(40)
		d.Reset()

		Expect(d.Running()).To(BeTrue())
		Expect(d.State()).To(Equal(kinematics.NewFreefall()))
		Expect(d.Ticks()).To(Equal(0))

		sched.Advance()
		Expect(d.State()).To(Equal(kinematics.StepFreefall(kinematics.NewFreefall())))
	})

	It("notifies observers on every tick and on reset", func() {
		rec := &tickRecorder{}
		d.AddObserver(rec)
		h := d.Start(sched)
		defer h.Stop()

		sched.AdvanceN(4)
		d.Reset()
		sched.Advance()

		Expect(rec.ticks).To(Equal([]int{1, 2, 3, 4, 1}))
		Expect(rec.resets).To(Equal(1))
	})

	It("satisfies Runner", func() {
		var r driver.Runner = d
		w, h := r.Size()
		Expect(w).To(Equal(kinematics.FreefallWidth))
		Expect(h).To(Equal(kinematics.FreefallHeight))
		Expect(r.Sample()).To(Equal([]float64{20, 0}))
	})
})

var _ = Describe("Driver with parameter controls", func() {
	var (
		sched *driver.ManualScheduler
		ctl   *controls.Incline
		d     *driver.Driver[kinematics.InclineState, kinematics.InclineParams]
	)

	BeforeEach(func() {
		sched = driver.NewManualScheduler(60)
		ctl = controls.NewIncline(kinematics.InclineParams{AngleDeg: 30, Friction: 0.1})
		d = driver.New(inclineScenario(), ctl.Params, nil)
		ctl.Bind(d)
	})

	It("resets the state on the next tick boundary after a change", func() {
		h := d.Start(sched)
		defer h.Stop()
		sched.AdvanceN(30)
		Expect(d.State().S).To(BeNumerically(">", 20))

		ctl.Angle.Set(10)
		Expect(d.State()).To(Equal(kinematics.NewIncline()))

		sched.Advance()
		Expect(d.State()).To(Equal(kinematics.StepIncline(kinematics.NewIncline(), ctl.Params())))
	})

	It("reads the parameters on every tick", func() {
		ctl.Set(kinematics.InclineParams{AngleDeg: 10, Friction: 1.0})
		h := d.Start(sched)
		defer h.Stop()

		sched.AdvanceN(100)
		Expect(d.State()).To(Equal(kinematics.NewIncline()))
	})

	It("does not reset when a slider is set to its current value", func() {
		h := d.Start(sched)
		defer h.Stop()
		sched.AdvanceN(5)
		before := d.State()

		ctl.Angle.Set(30)
		Expect(d.State()).To(Equal(before))
	})
})

var _ = Describe("LoopScheduler", func() {
	It("runs frames in real time until the context ends", func() {
		sched := driver.NewLoopScheduler(200)
		var calls []string
		d := driver.New(freefallScenario(&calls), func() noParams { return noParams{} }, nil)
		h := d.Start(sched)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		err := sched.Run(ctx)
		h.Stop()

		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(d.Ticks()).To(BeNumerically(">", 0))
		Expect(d.Running()).To(BeFalse())
	})

	It("skips cancelled frames", func() {
		sched := driver.NewLoopScheduler(200)
		ran := false
		id := sched.RequestFrame(func(time.Time) { ran = true })
		sched.CancelFrame(id)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		_ = sched.Run(ctx)
		Expect(ran).To(BeFalse())
	})
})
