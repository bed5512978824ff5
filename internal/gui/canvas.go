package gui

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/physlab/internal/render"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// canvas draws replayed scene primitives onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
	bg  color.RGBA
}

func (c *canvas) Clear() {
	fillRect(c.dst, 0, 0, screenWidth, sceneHeight, c.bg)
}

func (c *canvas) FillPolygon(pts []render.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff, float32(col.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	c.dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *canvas) FillCircle(center render.Point, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(r), col, true)
}

func (c *canvas) StrokeCircle(center render.Point, r, width float64, col color.RGBA) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(r), float32(width), col, true)
}

func (c *canvas) Line(a, b render.Point, width float64, col color.RGBA) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, col color.Color) {
	vector.FillRect(dst, x, y, w, h, col, false)
}
