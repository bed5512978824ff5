package tui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/render"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// glyphs picks the character used for each scene colour.
var glyphs = map[color.RGBA]rune{
	render.GroundColor: '=',
	render.BallColor:   'O',
	render.PivotColor:  '+',
	render.BobColor:    '@',
	render.WedgeColor:  '%',
	render.BlockColor:  '#',
}

// LiveRenderer prints a running session to a plain ANSI terminal. It
// observes the driver and replays each rendered frame onto a character
// grid, so it is also a render.Backend.
type LiveRenderer struct {
	out       io.Writer
	session   *experiment.Session
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	sx, sy    float64
}

func NewLiveRenderer(out io.Writer, session *experiment.Session, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	w, h := session.Runner.Size()
	// terminal cells are about twice as tall as they are wide
	sx := math.Min(float64(width)/w, 2*float64(height)/h)
	return &LiveRenderer{
		out:       out,
		session:   session,
		frameRate: frameRate,
		canvas:    canvas,
		sx:        sx,
		sy:        sx / 2,
	}
}

func (r *LiveRenderer) OnTick(tick int, x []float64) {
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = time.Now()
	}
	r.Draw(tick)
}

// Draw replays the session's last frame and writes it out.
func (r *LiveRenderer) Draw(tick int) {
	if f, ok := r.session.Runner.Surface().(*render.Frame); ok {
		f.Replay(r)
	}
	r.write(tick)
}

func (r *LiveRenderer) Clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) FillPolygon(pts []render.Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	g := glyph(c, '#')
	for y := range r.canvas {
		for x := range r.canvas[y] {
			if render.InPolygon(r.world(x, y), pts) {
				r.set(x, y, g)
			}
		}
	}
}

func (r *LiveRenderer) FillCircle(center render.Point, radius float64, c color.RGBA) {
	g := glyph(c, 'o')
	r.disc(center, func(d float64) bool { return d <= radius }, g)
}

func (r *LiveRenderer) StrokeCircle(center render.Point, radius, w float64, c color.RGBA) {
	g := glyph(c, 'o')
	tol := math.Max(w/2, 0.5/r.sy)
	r.disc(center, func(d float64) bool { return math.Abs(d-radius) <= tol }, g)
}

func (r *LiveRenderer) Line(a, b render.Point, _ float64, _ color.RGBA) {
	x1, y1 := r.cell(a)
	x2, y2 := r.cell(b)
	r.line(x1, y1, x2, y2, slope(x2-x1, y2-y1))
}

func (r *LiveRenderer) disc(center render.Point, inside func(d float64) bool, g rune) {
	cx, cy := r.cell(center)
	r.set(cx, cy, g)
	for y := range r.canvas {
		for x := range r.canvas[y] {
			p := r.world(x, y)
			if inside(math.Hypot(p.X-center.X, p.Y-center.Y)) {
				r.set(x, y, g)
			}
		}
	}
}

// world is the surface point at the centre of cell (x, y).
func (r *LiveRenderer) world(x, y int) render.Point {
	return render.Point{X: (float64(x) + 0.5) / r.sx, Y: (float64(y) + 0.5) / r.sy}
}

func (r *LiveRenderer) cell(p render.Point) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *LiveRenderer) write(tick int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  tick=%d\n", r.session.Runner.Name(), tick))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString("  " + strings.Join(r.session.Readout(), "   ") + "\n")

	fmt.Fprint(r.out, b.String())
}

// Watch plays the session on out at fps until ctx is done.
func Watch(ctx context.Context, out io.Writer, session *experiment.Session, fps int) error {
	r := NewLiveRenderer(out, session, fps)
	session.Runner.AddObserver(r)

	fmt.Fprint(out, hideCursor)
	defer fmt.Fprint(out, showCursor)

	sched := driver.NewLoopScheduler(fps)
	h := session.Runner.Start(sched)
	defer h.Stop()
	session.Runner.Draw()
	r.Draw(0)

	err := sched.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func glyph(c color.RGBA, fallback rune) rune {
	if g, ok := glyphs[c]; ok {
		return g
	}
	return fallback
}

// slope picks a line character for a step of (dx, dy) cells, y down.
func slope(dx, dy int) rune {
	switch {
	case abs(dy)*2 <= abs(dx):
		return '-'
	case abs(dx)*2 <= abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
