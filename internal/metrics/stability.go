package metrics

import "math"

// Settle reports the last tick on which any state component moved by more
// than the threshold. For a scenario that comes to rest this is the tick it
// settled on.
type Settle struct {
	name      string
	threshold float64
	last      []float64
	tick      int
}

func NewSettle(threshold float64) *Settle {
	return &Settle{
		name:      "settle_tick",
		threshold: threshold,
	}
}

func (s *Settle) Name() string {
	return s.name
}

func (s *Settle) OnTick(tick int, x []float64) {
	if s.last == nil || moved(s.last, x, s.threshold) {
		s.tick = tick
	}
	s.last = append(s.last[:0], x...)
}

func (s *Settle) Value() float64 {
	return float64(s.tick)
}

func (s *Settle) OnReset() {
	s.last = nil
	s.tick = 0
}

func moved(a, b []float64, threshold float64) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > threshold {
			return true
		}
	}
	return false
}
