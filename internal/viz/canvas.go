package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/physlab/internal/render"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// SetPixel sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Backend draws replayed frames onto a Canvas. Surface pixels are scaled
// uniformly so the whole surface fits the canvas' sub-pixel grid. Braille
// has no colour, so colours are ignored.
type Backend struct {
	c     *Canvas
	scale float64
}

func NewBackend(c *Canvas, w, h float64) *Backend {
	sx := float64(c.Width*2) / w
	sy := float64(c.Height*4) / h
	return &Backend{c: c, scale: math.Min(sx, sy)}
}

func (b *Backend) Clear() { b.c.Clear() }

func (b *Backend) FillPolygon(pts []render.Point, _ color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0, y0 := int(math.Floor(minX*b.scale)), int(math.Floor(minY*b.scale))
	x1, y1 := int(math.Ceil(maxX*b.scale)), int(math.Ceil(maxY*b.scale))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := render.Point{X: (float64(x) + 0.5) / b.scale, Y: (float64(y) + 0.5) / b.scale}
			if render.InPolygon(p, pts) {
				b.c.Set(x, y)
			}
		}
	}
}

func (b *Backend) FillCircle(center render.Point, r float64, _ color.RGBA) {
	b.ring(center, 0, r*b.scale)
}

func (b *Backend) StrokeCircle(center render.Point, r, width float64, _ color.RGBA) {
	half := math.Max(0.5, width*b.scale/2)
	b.ring(center, r*b.scale-half, r*b.scale+half)
}

func (b *Backend) Line(p, q render.Point, _ float64, _ color.RGBA) {
	b.c.DrawLine(
		int(math.Round(p.X*b.scale)), int(math.Round(p.Y*b.scale)),
		int(math.Round(q.X*b.scale)), int(math.Round(q.Y*b.scale)),
	)
}

// ring sets every sub-pixel whose distance from center lies in [inner, outer],
// in sub-pixel units. A disc too small to cover any sub-pixel centre still
// sets the one under its centre.
func (b *Backend) ring(center render.Point, inner, outer float64) {
	cx, cy := center.X*b.scale, center.Y*b.scale
	if inner <= 0 {
		b.c.Set(int(math.Floor(cx)), int(math.Floor(cy)))
	}

	n := int(math.Ceil(outer))
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			x, y := int(math.Floor(cx))+dx, int(math.Floor(cy))+dy
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if d >= inner && d <= outer {
				b.c.Set(x, y)
			}
		}
	}
}
