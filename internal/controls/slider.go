// Package controls holds the bounded numeric inputs a scenario reads each tick.
//
// A [Slider] can only ever hold a value inside its range, snapped to its
// step, so callers never see out-of-range input. Listeners registered with
// [Slider.OnChange] run whenever the value actually changes.
package controls

import (
	"fmt"
	"math"
)

type Slider struct {
	Name  string
	Min   float64
	Max   float64
	Step  float64
	value float64

	listeners []func(float64)
}

func NewSlider(name string, min, max, step, initial float64) *Slider {
	s := &Slider{Name: name, Min: min, Max: max, Step: step}
	s.value = s.snap(initial)
	return s
}

func (s *Slider) Value() float64 { return s.value }

// Set moves the slider to the nearest allowed position to v and reports
// whether the value changed.
func (s *Slider) Set(v float64) bool {
	next := s.snap(v)
	if next == s.value {
		return false
	}
	s.value = next
	for _, fn := range s.listeners {
		fn(next)
	}
	return true
}

// Nudge moves the slider by n steps.
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.value + float64(n)*s.Step)
}

// Fraction is the position of the value within the range, in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) OnChange(fn func(float64)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Slider) String() string {
	return fmt.Sprintf("%s=%s", s.Name, s.Format())
}

// Format renders the value with as many decimals as the step needs.
func (s *Slider) Format() string {
	return fmt.Sprintf("%.*f", s.decimals(), s.value)
}

func (s *Slider) snap(v float64) float64 {
	if math.IsNaN(v) {
		return s.value
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		n := math.Round((v - s.Min) / s.Step)
		v = s.Min + n*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	// strip float noise from the step arithmetic
	p := math.Pow(10, float64(s.decimals()))
	return math.Round(v*p) / p
}

func (s *Slider) decimals() int {
	d := 0
	for step := s.Step; d < 6 && step > 0 && math.Abs(step-math.Round(step)) > 1e-9; step *= 10 {
		d++
	}
	return d
}
