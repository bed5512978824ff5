package kinematics

import (
	"math"
	"testing"
)

func TestInclineInitialState(t *testing.T) {
	s := NewIncline()
	if s.S != 20 || s.V != 0 || s.Width != 30 || s.Height != 20 {
		t.Errorf("unexpected initial state: %+v", s)
	}
}

func TestInclineAcceleration(t *testing.T) {
	tests := []struct {
		name     string
		params   InclineParams
		expected float64
	}{
		{"flat", InclineParams{AngleDeg: 0, Friction: 0.5}, 0},
		{"static", InclineParams{AngleDeg: 10, Friction: 1.0}, 0},
		{"default", InclineParams{AngleDeg: 20, Friction: 0.3}, 9.8*math.Sin(20*math.Pi/180) - 0.3*9.8*math.Cos(20*math.Pi/180)},
		{"slide", InclineParams{AngleDeg: 30, Friction: 0.1}, 9.8*0.5 - 0.1*9.8*math.Cos(math.Pi/6)},
		{"steep rough", InclineParams{AngleDeg: 45, Friction: 1.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InclineAcceleration(tt.params)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.expected, got)
			}
			if got < 0 {
				t.Errorf("acceleration must never be negative, got %f", got)
			}
		})
	}
}

func TestInclineStaticNeverMoves(t *testing.T) {
	p := InclineParams{AngleDeg: 10, Friction: 1.0}
	s := NewIncline()
	start := s

	for i := 0; i < 1000; i++ {
		s = StepIncline(s, p)
		if InclineAcceleration(p) != 0 {
			t.Fatal("expected zero acceleration in the static case")
		}
		if s.S != start.S || s.V != 0 {
			t.Fatalf("tick %d: block moved: %+v", i, s)
		}
	}
}

func TestInclineSlidesThenStopsAtWall(t *testing.T) {
	p := InclineParams{AngleDeg: 30, Friction: 0.1}
	s := NewIncline()

	prevV := s.V
	tick := 0
	for ; tick < 10000; tick++ {
		s = StepIncline(s, p)
		if s.AtWall(p) {
			break
		}
		if s.V <= prevV {
			t.Fatalf("tick %d: velocity did not increase (%f -> %f)", tick, prevV, s.V)
		}
		prevV = s.V
	}

	if !s.AtWall(p) {
		t.Fatal("block never reached the wall")
	}
	if s.V != 0 {
		t.Fatalf("expected zero velocity at wall, got %f", s.V)
	}

	for i := 0; i < 500; i++ {
		s = StepIncline(s, p)
		if s.V != 0 {
			t.Fatalf("tick %d after wall: velocity %f", i, s.V)
		}
	}
}

func TestInclineDeterministic(t *testing.T) {
	p := DefaultInclineParams()
	a, b := NewIncline(), NewIncline()
	for i := 0; i < 300; i++ {
		a = StepIncline(a, p)
		b = StepIncline(b, p)
	}
	if a != b {
		t.Errorf("replay diverged: %+v vs %+v", a, b)
	}
}

func TestInclineForces(t *testing.T) {
	parallel, normal, friction := InclineParams{AngleDeg: 0, Friction: 0.5}.Forces()
	if parallel != 0 {
		t.Errorf("expected no parallel force on a flat plane, got %f", parallel)
	}
	if normal != InclineGravity {
		t.Errorf("expected normal force %f, got %f", InclineGravity, normal)
	}
	if friction != 0.5*InclineGravity {
		t.Errorf("expected friction %f, got %f", 0.5*InclineGravity, friction)
	}
}
