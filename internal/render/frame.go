package render

import "image/color"

type Op int

const (
	OpClear Op = iota
	OpFillRect
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpSave
	OpRestore
	OpTranslate
	OpRotate
)

var opNames = [...]string{"clear", "fill-rect", "fill-circle", "stroke-circle", "line", "save", "restore", "translate", "rotate"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded draw call. Args holds the positional arguments in
// call order (x, y, w, h for rects; cx, cy, r for circles; x0, y0, x1, y1
// for lines; dx, dy for translate; angle for rotate).
type Command struct {
	Op    Op
	Args  [4]float64
	Width float64
	Color color.RGBA
}

// Frame is a Surface that records every call.
type Frame struct {
	W, H     float64
	Commands []Command
}

func NewFrame(w, h float64) *Frame {
	return &Frame{W: w, H: h, Commands: make([]Command, 0, 16)}
}

// Reset drops recorded commands, keeping the allocation.
func (f *Frame) Reset() {
	f.Commands = f.Commands[:0]
}

func (f *Frame) Size() (float64, float64) { return f.W, f.H }

func (f *Frame) Clear() { f.add(Command{Op: OpClear}) }
func (f *Frame) Save()  { f.add(Command{Op: OpSave}) }

func (f *Frame) Restore() { f.add(Command{Op: OpRestore}) }

func (f *Frame) FillRect(x, y, w, h float64, c color.RGBA) {
	f.add(Command{Op: OpFillRect, Args: [4]float64{x, y, w, h}, Color: c})
}

func (f *Frame) FillCircle(cx, cy, r float64, c color.RGBA) {
	f.add(Command{Op: OpFillCircle, Args: [4]float64{cx, cy, r}, Color: c})
}

func (f *Frame) StrokeCircle(cx, cy, r, width float64, c color.RGBA) {
	f.add(Command{Op: OpStrokeCircle, Args: [4]float64{cx, cy, r}, Width: width, Color: c})
}

func (f *Frame) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	f.add(Command{Op: OpLine, Args: [4]float64{x0, y0, x1, y1}, Width: width, Color: c})
}

func (f *Frame) Translate(dx, dy float64) {
	f.add(Command{Op: OpTranslate, Args: [4]float64{dx, dy}})
}

func (f *Frame) Rotate(rad float64) {
	f.add(Command{Op: OpRotate, Args: [4]float64{rad}})
}

func (f *Frame) add(c Command) {
	f.Commands = append(f.Commands, c)
}

// Replay walks the recorded commands, tracking the transform stack, and draws
// the resulting primitives on b. Unbalanced restores are ignored.
func (f *Frame) Replay(b Backend) {
	m := Identity()
	stack := make([]Matrix, 0, 4)

	for _, c := range f.Commands {
		a := c.Args
		switch c.Op {
		case OpClear:
			b.Clear()
		case OpSave:
			stack = append(stack, m)
		case OpRestore:
			if n := len(stack); n > 0 {
				m = stack[n-1]
				stack = stack[:n-1]
			}
		case OpTranslate:
			m = m.Translate(a[0], a[1])
		case OpRotate:
			m = m.Rotate(a[0])
		case OpFillRect:
			x, y, w, h := a[0], a[1], a[2], a[3]
			b.FillPolygon([]Point{
				m.Apply(Point{x, y}),
				m.Apply(Point{x + w, y}),
				m.Apply(Point{x + w, y + h}),
				m.Apply(Point{x, y + h}),
			}, c.Color)
		case OpFillCircle:
			b.FillCircle(m.Apply(Point{a[0], a[1]}), a[2]*m.Scale(), c.Color)
		case OpStrokeCircle:
			b.StrokeCircle(m.Apply(Point{a[0], a[1]}), a[2]*m.Scale(), c.Width*m.Scale(), c.Color)
		case OpLine:
			b.Line(m.Apply(Point{a[0], a[1]}), m.Apply(Point{a[2], a[3]}), c.Width*m.Scale(), c.Color)
		}
	}
}
