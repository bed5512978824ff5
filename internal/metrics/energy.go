package metrics

import "math"

// pendulumEnergy is the mechanical energy per unit mass of a pendulum in
// tick units, for a state vector of angle and angular velocity.
func pendulumEnergy(x []float64, length, gravity float64) float64 {
	theta, omega := x[0], x[1]
	ke := 0.5 * length * length * omega * omega
	pe := gravity * length * (1 - math.Cos(theta))
	return ke + pe
}

// Energy is the mean mechanical energy over the run.
type Energy struct {
	name        string
	length      float64
	gravity     float64
	samples     int
	totalEnergy float64
}

func NewEnergy(length, gravity float64) *Energy {
	return &Energy{
		name:    "energy",
		length:  length,
		gravity: gravity,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) OnTick(tick int, x []float64) {
	if len(x) < 2 {
		return
	}
	e.totalEnergy += pendulumEnergy(x, e.length, e.gravity)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) OnReset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyLoss is the fraction of the first observed energy that damping has
// removed by the latest tick.
type EnergyLoss struct {
	name          string
	length        float64
	gravity       float64
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss(length, gravity float64) *EnergyLoss {
	return &EnergyLoss{
		name:    "energy_loss",
		length:  length,
		gravity: gravity,
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) OnTick(tick int, x []float64) {
	if len(x) < 2 {
		return
	}
	energy := pendulumEnergy(x, e.length, e.gravity)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return 1 - e.currentEnergy/e.initialEnergy
}

func (e *EnergyLoss) OnReset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}
