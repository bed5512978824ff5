// Package export writes scenes and run trajectories as SVG.
package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/render"
)

// SVG is a render.Backend that writes vector elements.
type SVG struct {
	w, h float64
	sb   strings.Builder
}

func NewSVG(w, h float64) *SVG {
	s := &SVG{w: w, h: h}
	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, w, h, w, h))
	return s
}

func (s *SVG) Clear() {
	s.sb.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
}

func (s *SVG) FillPolygon(pts []render.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	s.sb.WriteString(`<polygon points="`)
	for i, p := range pts {
		if i > 0 {
			s.sb.WriteByte(' ')
		}
		s.sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
	}
	s.sb.WriteString(fmt.Sprintf(`" fill="%s"/>`+"\n", hex(c)))
}

func (s *SVG) FillCircle(center render.Point, r float64, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
		center.X, center.Y, r, hex(c)))
}

func (s *SVG) StrokeCircle(center render.Point, r, width float64, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		center.X, center.Y, r, hex(c), width))
}

func (s *SVG) Line(a, b render.Point, width float64, c color.RGBA) {
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		a.X, a.Y, b.X, b.Y, hex(c), width))
}

// String closes the document.
func (s *SVG) String() string {
	return s.sb.String() + "</svg>"
}

// Snapshot renders the runner's current state as an SVG document.
func Snapshot(r driver.Runner) string {
	w, h := r.Size()
	f := render.NewFrame(w, h)
	surface := r.Surface()
	r.SetSurface(f)
	defer r.SetSurface(surface)

	svg := NewSVG(w, h)
	f.Replay(svg)
	return svg.String()
}

// TrajectoryToSVG plots ys against xs as a single path.
func TrajectoryToSVG(xs, ys []float64, width, height int, strokeColor string) string {
	n := min(len(xs), len(ys))
	if n < 2 {
		return ""
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 0; i < n; i++ {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := 0; i < n; i++ {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
