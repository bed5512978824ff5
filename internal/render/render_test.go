package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physlab/internal/kinematics"
)

type recordingBackend struct {
	clears   int
	polygons [][]Point
	circles  []Point
	radii    []float64
	lines    [][2]Point
}

func (r *recordingBackend) Clear() { r.clears++ }

func (r *recordingBackend) FillPolygon(pts []Point, c color.RGBA) {
	r.polygons = append(r.polygons, pts)
}

func (r *recordingBackend) FillCircle(center Point, radius float64, c color.RGBA) {
	r.circles = append(r.circles, center)
	r.radii = append(r.radii, radius)
}

func (r *recordingBackend) StrokeCircle(center Point, radius, width float64, c color.RGBA) {
	r.FillCircle(center, radius, c)
}

func (r *recordingBackend) Line(a, b Point, width float64, c color.RGBA) {
	r.lines = append(r.lines, [2]Point{a, b})
}

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0x65, 0x43, 0x21, 0xff}, hex("#654321"))
	assert.Equal(t, color.RGBA{0x9f, 0x7a, 0xea, 0xff}, hex("#9F7AEA"))
}

func TestDrawFreefallCommands(t *testing.T) {
	f := NewFrame(kinematics.FreefallWidth, kinematics.FreefallHeight)
	DrawFreefall(f, kinematics.NewFreefall())

	require.Len(t, f.Commands, 3)
	assert.Equal(t, OpClear, f.Commands[0].Op)

	ground := f.Commands[1]
	assert.Equal(t, OpFillRect, ground.Op)
	assert.Equal(t, [4]float64{0, 280, 400, 20}, ground.Args)
	assert.Equal(t, GroundColor, ground.Color)

	ball := f.Commands[2]
	assert.Equal(t, OpFillCircle, ball.Op)
	assert.Equal(t, [4]float64{200, 20, 15, 0}, ball.Args)
	assert.Equal(t, BallColor, ball.Color)
}

func TestDrawIsDeterministic(t *testing.T) {
	st := kinematics.NewIncline()
	p := kinematics.DefaultInclineParams()

	a := NewFrame(kinematics.InclineWidth, kinematics.InclineHeight)
	b := NewFrame(kinematics.InclineWidth, kinematics.InclineHeight)
	DrawIncline(a, st, p)
	DrawIncline(b, st, p)

	assert.Equal(t, a.Commands, b.Commands)
}

func TestPendulumBob(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"hanging", 0, Point{200, 140}},
		{"horizontal right", math.Pi / 2, Point{320, 20}},
		{"horizontal left", -math.Pi / 2, Point{80, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PendulumBob(200, 20, kinematics.PendulumState{Angle: tt.angle, Length: 120})
			assertPoint(t, tt.want, got)
		})
	}
}

func TestDrawPendulumReplay(t *testing.T) {
	f := NewFrame(kinematics.PendulumWidth, kinematics.PendulumHeight)
	st := kinematics.NewPendulum()
	DrawPendulum(f, st)

	b := &recordingBackend{}
	f.Replay(b)

	assert.Equal(t, 1, b.clears)
	require.Len(t, b.lines, 1)
	require.Len(t, b.circles, 2)

	bob := PendulumBob(kinematics.PivotX, kinematics.PivotY, st)
	assertPoint(t, Point{200, 20}, b.lines[0][0])
	assertPoint(t, bob, b.lines[0][1])
	assertPoint(t, bob, b.circles[1])
	assert.InDelta(t, 20.0, b.radii[1], 1e-12)
}

func TestDrawInclineReplay(t *testing.T) {
	p := kinematics.InclineParams{AngleDeg: 30, Friction: 0.1}
	st := kinematics.NewIncline()

	f := NewFrame(kinematics.InclineWidth, kinematics.InclineHeight)
	DrawIncline(f, st, p)

	b := &recordingBackend{}
	f.Replay(b)
	require.Len(t, b.polygons, 2)

	sin, cos := math.Sincos(p.Radians())

	wedge := b.polygons[0]
	assertPoint(t, Point{0, 50}, wedge[0])
	assertPoint(t, Point{400, 50 + 400*sin/cos}, wedge[1])

	block := b.polygons[1]
	origin := InclineBlockOrigin(st, p)
	assertPoint(t, Point{20 * cos, 50 + 20*sin}, origin)
	// the block sits on the slope: its bottom-left corner is the origin
	assertPoint(t, origin, block[3])
	assertPoint(t, Point{origin.X + 30*cos, origin.Y + 30*sin}, block[2])
}

func TestReplayRestoresTransform(t *testing.T) {
	f := NewFrame(100, 100)
	f.Save()
	f.Translate(10, 10)
	f.Rotate(math.Pi / 2)
	f.Restore()
	f.Restore() // unbalanced, ignored
	f.FillCircle(5, 5, 1, BallColor)

	b := &recordingBackend{}
	f.Replay(b)

	require.Len(t, b.circles, 1)
	assertPoint(t, Point{5, 5}, b.circles[0])
}

func TestMatrixRotateThenTranslate(t *testing.T) {
	m := Identity().Translate(10, 0).Rotate(math.Pi / 2)
	assertPoint(t, Point{10, 1}, m.Apply(Point{1, 0}))
	assert.InDelta(t, 1.0, m.Scale(), 1e-12)
}

func TestFrameReset(t *testing.T) {
	f := NewFrame(10, 10)
	f.Clear()
	f.Reset()
	assert.Empty(t, f.Commands)
	assert.Equal(t, "fill-rect", OpFillRect.String())
}
