package metrics

import (
	"testing"

	"github.com/san-kum/physlab/internal/kinematics"
)

func freefallMetrics(ticks int, ms ...Metric) kinematics.FreefallState {
	s := kinematics.NewFreefall()
	for i := 1; i <= ticks; i++ {
		s = kinematics.StepFreefall(s)
		for _, m := range ms {
			m.OnTick(i, []float64{s.Y, s.VY})
		}
	}
	return s
}

func TestFreefallRunMetrics(t *testing.T) {
	bounces := NewBounces(1)
	settle := NewSettle(0)
	halt := NewHalt(1)

	final := freefallMetrics(600, bounces, settle, halt)
	if !final.AtRest() {
		t.Fatalf("expected the ball at rest, got %+v", final)
	}

	tests := []struct {
		m    Metric
		want float64
	}{
		{bounces, 5},
		{settle, 231},
		{halt, 231},
	}
	for _, tt := range tests {
		if got := tt.m.Value(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.m.Name(), tt.want, got)
		}
	}
}

func TestInclineHaltsAtWall(t *testing.T) {
	p := kinematics.InclineParams{AngleDeg: 30, Friction: 0.1}
	halt := NewHalt(1)
	travel := NewTravel(0)

	s := kinematics.NewIncline()
	for i := 1; i <= 300; i++ {
		s = kinematics.StepIncline(s, p)
		halt.OnTick(i, []float64{s.S, s.V})
		travel.OnTick(i, []float64{s.S, s.V})
	}

	if halt.Value() != 142 {
		t.Errorf("expected halt on tick 142, got %v", halt.Value())
	}
	if travel.Value() <= 400 {
		t.Errorf("expected the block to travel past 400px, got %f", travel.Value())
	}
}

func TestStaticInclineNeverMoves(t *testing.T) {
	p := kinematics.InclineParams{AngleDeg: 10, Friction: 1.0}
	halt := NewHalt(1)
	travel := NewTravel(0)
	settle := NewSettle(0)

	s := kinematics.NewIncline()
	for i := 1; i <= 100; i++ {
		s = kinematics.StepIncline(s, p)
		x := []float64{s.S, s.V}
		halt.OnTick(i, x)
		travel.OnTick(i, x)
		settle.OnTick(i, x)
	}

	if halt.Value() != 0 || travel.Value() != 0 || settle.Value() != 1 {
		t.Errorf("unexpected metrics: halt=%v travel=%v settle=%v", halt.Value(), travel.Value(), settle.Value())
	}
}

func TestMetricsReset(t *testing.T) {
	ms := []Metric{NewBounces(1), NewSettle(0), NewHalt(1), NewTravel(0)}
	freefallMetrics(300, ms...)
	for _, m := range ms {
		m.OnReset()
	}

	for name, v := range Snapshot(ms) {
		if v != 0 {
			t.Errorf("%s: expected 0 after reset, got %v", name, v)
		}
	}
}

func TestSnapshotKeys(t *testing.T) {
	ms := []Metric{NewEnergy(1, 1), NewEnergyLoss(1, 1), NewBounces(0), NewSettle(0), NewHalt(0), NewTravel(0)}
	snap := Snapshot(ms)
	for _, name := range []string{"energy", "energy_loss", "bounces", "settle_tick", "halt_tick", "distance"} {
		if _, ok := snap[name]; !ok {
			t.Errorf("missing %s in %v", name, snap)
		}
	}
}
