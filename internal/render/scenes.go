package render

import (
	"math"

	"github.com/san-kum/physlab/internal/kinematics"
)

var (
	GroundColor = hex("#654321")
	BallColor   = hex("#e53e3e")

	StringColor = hex("#4a5568")
	PivotColor  = hex("#2d3748")
	BobColor    = hex("#9f7aea")

	WedgeColor = hex("#a0aec0")
	BlockColor = hex("#4299e1")
)

const (
	stringWidth = 2.0
	pivotRadius = 5.0
	bobRadius   = 20.0
)

func DrawFreefall(s Surface, st kinematics.FreefallState) {
	w, h := s.Size()
	s.Clear()
	s.FillRect(0, h-kinematics.GroundHeight, w, kinematics.GroundHeight, GroundColor)
	s.FillCircle(w/2, st.Y, st.Radius, BallColor)
}

// PendulumBob returns the screen position of the bob for a pivot at (px, py).
func PendulumBob(px, py float64, st kinematics.PendulumState) Point {
	sin, cos := math.Sincos(st.Angle)
	return Point{X: px + st.Length*sin, Y: py + st.Length*cos}
}

func DrawPendulum(s Surface, st kinematics.PendulumState) {
	w, _ := s.Size()
	px, py := w/2, kinematics.PivotY
	bob := PendulumBob(px, py, st)

	s.Clear()
	s.Line(px, py, bob.X, bob.Y, stringWidth, StringColor)
	s.FillCircle(px, py, pivotRadius, PivotColor)
	s.FillCircle(bob.X, bob.Y, bobRadius, BobColor)
}

// InclineBlockOrigin is the lower-left corner of the block on screen: the
// along-slope position decomposed by the incline angle, offset by the wedge
// top.
func InclineBlockOrigin(st kinematics.InclineState, p kinematics.InclineParams) Point {
	sin, cos := math.Sincos(p.Radians())
	return Point{X: st.S * cos, Y: kinematics.WedgeTop + st.S*sin}
}

func DrawIncline(s Surface, st kinematics.InclineState, p kinematics.InclineParams) {
	w, _ := s.Size()
	a := p.Radians()
	origin := InclineBlockOrigin(st, p)

	s.Clear()

	s.Save()
	s.Translate(0, kinematics.WedgeTop)
	s.Rotate(a)
	s.FillRect(0, 0, w/math.Cos(a), kinematics.WedgeThickness, WedgeColor)
	s.Restore()

	s.Save()
	s.Translate(origin.X, origin.Y)
	s.Rotate(a)
	s.FillRect(0, -st.Height, st.Width, st.Height, BlockColor)
	s.Restore()
}
