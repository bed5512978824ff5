package metrics

import "github.com/san-kum/physlab/internal/driver"

// Metric summarises a run from the state vectors a driver reports after each
// tick. Reset is called when the driver goes back to its initial state.
type Metric interface {
	Name() string
	Value() float64
	driver.Observer
	driver.ResetObserver
}

// Snapshot reads every metric into a map keyed by name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
