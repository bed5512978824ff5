package analysis

import (
	"errors"
	"strings"
)

var ErrAxis = errors.New("analysis: axis out of range")

type Point struct{ X, Y float64 }

// Portrait is the trajectory of a run projected on two state components.
type Portrait struct {
	XIndex, YIndex int
	Points         []Point
}

// NewPortrait collects the (xIdx, yIdx) pairs of recorded state vectors.
func NewPortrait(states [][]float64, xIdx, yIdx int) (*Portrait, error) {
	if len(states) == 0 || xIdx < 0 || yIdx < 0 || xIdx >= len(states[0]) || yIdx >= len(states[0]) {
		return nil, ErrAxis
	}

	p := &Portrait{XIndex: xIdx, YIndex: yIdx, Points: make([]Point, 0, len(states))}
	for _, x := range states {
		if xIdx < len(x) && yIdx < len(x) {
			p.Points = append(p.Points, Point{x[xIdx], x[yIdx]})
		}
	}
	return p, nil
}

// Bounds returns the extent of the points padded by a tenth on each side.
// Degenerate ranges are widened to 1.
func (p *Portrait) Bounds() (lo, hi Point) {
	lo, hi = p.Points[0], p.Points[0]
	for _, q := range p.Points[1:] {
		lo.X, hi.X = min(lo.X, q.X), max(hi.X, q.X)
		lo.Y, hi.Y = min(lo.Y, q.Y), max(hi.Y, q.Y)
	}

	pad := func(a, b float64) (float64, float64) {
		r := b - a
		if r == 0 {
			r = 1
		}
		return a - r*0.1, b + r*0.1
	}
	lo.X, hi.X = pad(lo.X, hi.X)
	lo.Y, hi.Y = pad(lo.Y, hi.Y)
	return lo, hi
}

// ASCII plots the portrait on a width x height character grid, with the
// axes drawn where they fall inside the bounds.
func (p *Portrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	lo, hi := p.Bounds()
	col := func(x float64) int { return int((x - lo.X) / (hi.X - lo.X) * float64(width-1)) }
	row := func(y float64) int { return height - 1 - int((y-lo.Y)/(hi.Y-lo.Y)*float64(height-1)) }

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for _, q := range p.Points {
		r, c := row(q.Y), col(q.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			grid[r][c] = '•'
		}
	}

	if lo.X <= 0 && hi.X >= 0 {
		c := col(0)
		for r := range grid {
			if grid[r][c] == ' ' {
				grid[r][c] = '│'
			}
		}
	}
	if lo.Y <= 0 && hi.Y >= 0 {
		r := row(0)
		for c := range grid[r] {
			if grid[r][c] == ' ' {
				grid[r][c] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
