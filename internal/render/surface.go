// Package render maps physical states to draw instructions.
//
// Scene functions ([DrawFreefall], [DrawPendulum], [DrawIncline]) draw onto a
// [Surface], the small 2D context the lab needs: filled rectangles, circles,
// lines and a save/restore affine transform stack. [Frame] is a Surface that
// records the calls as [Command] values; [Frame.Replay] resolves the
// transforms and hands world-space primitives to a raster [Backend] such as
// the terminal canvas, the SVG writer or the game window.
package render

import (
	"image/color"
	"math"
)

type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeCircle(cx, cy, r, width float64, c color.RGBA)
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(rad float64)
}

type Point struct {
	X, Y float64
}

// Backend receives primitives already transformed into surface pixels.
type Backend interface {
	Clear()
	FillPolygon(pts []Point, c color.RGBA)
	FillCircle(center Point, r float64, c color.RGBA)
	StrokeCircle(center Point, r, width float64, c color.RGBA)
	Line(a, b Point, width float64, c color.RGBA)
}

// InPolygon reports whether p lies inside pts by the even-odd rule.
func InPolygon(p Point, pts []Point) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, c := pts[i], pts[j]
		if (a.Y > p.Y) != (c.Y > p.Y) && p.X < (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Matrix is a 2D affine transform laid out like the canvas API:
// x' = A*x + C*y + E, y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float64
}

func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func (m Matrix) Translate(dx, dy float64) Matrix {
	m.E += m.A*dx + m.C*dy
	m.F += m.B*dx + m.D*dy
	return m
}

func (m Matrix) Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{
		A: m.A*cos + m.C*sin,
		B: m.B*cos + m.D*sin,
		C: -m.A*sin + m.C*cos,
		D: -m.B*sin + m.D*cos,
		E: m.E,
		F: m.F,
	}
}

// Scale is the linear scale factor applied to lengths such as radii.
func (m Matrix) Scale() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func hex(s string) color.RGBA {
	var c color.RGBA
	c.A = 255
	for i, shift := 1, 0; i+1 < len(s) && shift < 3; i, shift = i+2, shift+1 {
		v := hexByte(s[i])<<4 | hexByte(s[i+1])
		switch shift {
		case 0:
			c.R = v
		case 1:
			c.G = v
		case 2:
			c.B = v
		}
	}
	return c
}

func hexByte(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
