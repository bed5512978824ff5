package metrics

import "math"

// Bounces counts reversals of a velocity component from moving down
// (positive) to moving up (negative).
type Bounces struct {
	name  string
	index int
	prev  float64
	count int
}

func NewBounces(index int) *Bounces {
	return &Bounces{name: "bounces", index: index}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) OnTick(tick int, x []float64) {
	if b.index >= len(x) {
		return
	}
	v := x[b.index]
	if b.prev > 0 && v < 0 {
		b.count++
	}
	b.prev = v
}

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) OnReset() {
	b.prev = 0
	b.count = 0
}

// Travel sums the absolute change of one state component between ticks.
type Travel struct {
	name  string
	index int
	prev  float64
	seen  bool
	sum   float64
}

func NewTravel(index int) *Travel {
	return &Travel{name: "distance", index: index}
}

func (t *Travel) Name() string { return t.name }

func (t *Travel) OnTick(tick int, x []float64) {
	if t.index >= len(x) {
		return
	}
	v := x[t.index]
	if t.seen {
		t.sum += math.Abs(v - t.prev)
	}
	t.prev = v
	t.seen = true
}

func (t *Travel) Value() float64 { return t.sum }

func (t *Travel) OnReset() {
	t.prev = 0
	t.seen = false
	t.sum = 0
}

// Halt records the first tick on which a velocity component dropped to zero
// after having been non-zero. Zero means it never halted.
type Halt struct {
	name   string
	index  int
	moving bool
	tick   int
}

func NewHalt(index int) *Halt {
	return &Halt{name: "halt_tick", index: index}
}

func (h *Halt) Name() string { return h.name }

func (h *Halt) OnTick(tick int, x []float64) {
	if h.tick != 0 || h.index >= len(x) {
		return
	}
	switch {
	case x[h.index] != 0:
		h.moving = true
	case h.moving:
		h.tick = tick
	}
}

func (h *Halt) Value() float64 { return float64(h.tick) }

func (h *Halt) OnReset() {
	h.moving = false
	h.tick = 0
}
