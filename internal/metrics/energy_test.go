package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/physlab/internal/kinematics"
)

func TestEnergyAtRestAngle(t *testing.T) {
	m := NewEnergy(120, kinematics.PendulumGravity)

	theta := math.Pi / 4
	m.OnTick(1, []float64{theta, 0})

	expected := kinematics.PendulumGravity * 120 * (1 - math.Cos(theta))
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected energy %f, got %f", expected, m.Value())
	}

	m.OnReset()
	m.OnTick(1, []float64{theta, 0})
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected energy %f after reset, got %f", expected, m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(120, kinematics.PendulumGravity)

	m.OnTick(1, []float64{1.0, 0.01})
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.OnReset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyIgnoresShortVectors(t *testing.T) {
	m := NewEnergy(120, kinematics.PendulumGravity)
	m.OnTick(1, []float64{1.0})
	if m.Value() != 0 {
		t.Errorf("expected 0, got %f", m.Value())
	}
}

func TestEnergyLossGrowsWithDamping(t *testing.T) {
	m := NewEnergyLoss(120, kinematics.PendulumGravity)

	s := kinematics.NewPendulum()
	losses := make([]float64, 0, 10)
	for i := 1; i <= 1000; i++ {
		s = kinematics.StepPendulum(s)
		m.OnTick(i, []float64{s.Angle, s.AngularVelocity})
		if i%100 == 0 {
			losses = append(losses, m.Value())
		}
	}

	for i := 1; i < len(losses); i++ {
		if losses[i] <= losses[i-1] {
			t.Fatalf("loss did not grow at window %d: %f <= %f", i, losses[i], losses[i-1])
		}
	}
	if losses[len(losses)-1] < 0.99 {
		t.Errorf("expected more than 99%% of the energy gone after 1000 ticks, got %f", losses[len(losses)-1])
	}
}
