// Package ebitencanvas rasterizes face draw primitives onto an ebiten image.
package ebitencanvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/roundface/face"
)

// arcSegments is the flattening step count for a full 360° arc; partial arcs
// use a proportional share.
const arcSegments = 48

// Canvas draws face primitives onto a destination image.
type Canvas struct {
	dst       *ebiten.Image
	antialias bool
}

func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, antialias: true}
}

// Retarget points the canvas at a new destination image, typically the
// screen passed to each Draw call.
func (c *Canvas) Retarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) FillRect(r face.FillRect) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if w <= 0 || h <= 0 {
		return
	}
	radius := float32(r.Radius)
	if max := minf(w, h) / 2; radius > max {
		radius = max
	}
	if radius <= 0 {
		vector.FillRect(c.dst, x, y, w, h, r.Color, c.antialias)
		return
	}

	// Rounded rect as a cross of plain rects plus four corner discs.
	vector.FillRect(c.dst, x+radius, y, w-2*radius, h, r.Color, c.antialias)
	vector.FillRect(c.dst, x, y+radius, radius, h-2*radius, r.Color, c.antialias)
	vector.FillRect(c.dst, x+w-radius, y+radius, radius, h-2*radius, r.Color, c.antialias)
	vector.FillCircle(c.dst, x+radius, y+radius, radius, r.Color, c.antialias)
	vector.FillCircle(c.dst, x+w-radius, y+radius, radius, r.Color, c.antialias)
	vector.FillCircle(c.dst, x+radius, y+h-radius, radius, r.Color, c.antialias)
	vector.FillCircle(c.dst, x+w-radius, y+h-radius, radius, r.Color, c.antialias)
}

func (c *Canvas) FillCircle(f face.FillCircle) {
	vector.FillCircle(c.dst, float32(f.CX), float32(f.CY), float32(f.R), f.Color, c.antialias)
}

func (c *Canvas) StrokeArc(a face.StrokeArc) {
	if a.End-a.Start >= 360 {
		vector.StrokeCircle(c.dst, float32(a.CX), float32(a.CY), float32(a.R),
			float32(a.Width), a.Color, c.antialias)
		return
	}
	pts := ArcPoints(a.CX, a.CY, a.R, a.Start, a.End)
	c.strokeChain(pts, float32(a.Width), a)
}

func (c *Canvas) Polyline(p face.Polyline) {
	for i := 1; i < len(p.Points); i++ {
		vector.StrokeLine(c.dst,
			float32(p.Points[i-1].X), float32(p.Points[i-1].Y),
			float32(p.Points[i].X), float32(p.Points[i].Y),
			float32(p.Width), p.Color, c.antialias)
	}
}

func (c *Canvas) strokeChain(pts []face.Point, width float32, a face.StrokeArc) {
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(c.dst,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			width, a.Color, c.antialias)
	}
}

// ArcPoints flattens a circular arc into chord points. Angles are degrees,
// clockwise from the positive x axis.
func ArcPoints(cx, cy, r, startDeg, endDeg float64) []face.Point {
	sweep := endDeg - startDeg
	n := int(math.Ceil(math.Abs(sweep) / 360 * arcSegments))
	if n < 2 {
		n = 2
	}
	pts := make([]face.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		deg := startDeg + sweep*float64(i)/float64(n)
		rad := deg * math.Pi / 180
		pts = append(pts, face.Point{
			X: cx + r*math.Cos(rad),
			Y: cy + r*math.Sin(rad),
		})
	}
	return pts
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
