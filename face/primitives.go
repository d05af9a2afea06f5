package face

import (
	"image/color"

	"github.com/milk9111/roundface/common"
)

// Point is a position in display coordinates.
type Point struct {
	X float64
	Y float64
}

// Primitive is one declarative draw call. The renderer emits an ordered list
// of these; a Canvas composites them into pixels.
type Primitive interface {
	Draw(Canvas)
}

// Canvas is the host drawing surface boundary. Implementations rasterize
// primitives however they like; the engine side never touches pixels.
type Canvas interface {
	FillRect(FillRect)
	FillCircle(FillCircle)
	StrokeArc(StrokeArc)
	Polyline(Polyline)
}

// FillRect is a filled axis-aligned rectangle with rounded corners.
type FillRect struct {
	X, Y   float64
	W, H   float64
	Radius float64
	Color  color.NRGBA
}

func (r FillRect) Draw(c Canvas) { c.FillRect(r) }

// FillCircle is a filled circle.
type FillCircle struct {
	CX, CY float64
	R      float64
	Color  color.NRGBA
}

func (f FillCircle) Draw(c Canvas) { c.FillCircle(f) }

// StrokeArc strokes a circular arc. Angles are degrees, clockwise from the
// positive x axis; Start == 0 and End == 360 is a full ring.
type StrokeArc struct {
	CX, CY   float64
	R        float64
	Start    float64
	End      float64
	Width    float64
	Color    color.NRGBA
}

func (a StrokeArc) Draw(c Canvas) { c.StrokeArc(a) }

// Polyline strokes consecutive segments through Points with round caps.
type Polyline struct {
	Points []Point
	Width  float64
	Color  color.NRGBA
}

func (p Polyline) Draw(c Canvas) { c.Polyline(p) }

// Draw feeds an ordered primitive list to a canvas.
func Draw(c Canvas, prims []Primitive) {
	for _, p := range prims {
		p.Draw(c)
	}
}

// painter accumulates primitives during one render pass. Colours are given
// as 0xRRGGBB plus an opacity in [0,1]; skipped entirely when the opacity
// rounds to nothing.
type painter struct {
	prims []Primitive
}

func (pt *painter) fillRect(x, y, w, h, radius float64, hex uint32, opa float64) {
	if opa <= 0 {
		return
	}
	pt.prims = append(pt.prims, FillRect{
		X: x, Y: y, W: w, H: h, Radius: radius,
		Color: common.HexNRGBA(hex, opa),
	})
}

func (pt *painter) fillCircle(cx, cy, r float64, hex uint32, opa float64) {
	if opa <= 0 {
		return
	}
	pt.prims = append(pt.prims, FillCircle{
		CX: cx, CY: cy, R: r,
		Color: common.HexNRGBA(hex, opa),
	})
}

func (pt *painter) strokeArc(cx, cy, r, start, end, width float64, hex uint32, opa float64) {
	if opa <= 0 {
		return
	}
	pt.prims = append(pt.prims, StrokeArc{
		CX: cx, CY: cy, R: r, Start: start, End: end, Width: width,
		Color: common.HexNRGBA(hex, opa),
	})
}

func (pt *painter) line(x0, y0, x1, y1, width float64, hex uint32, opa float64) {
	if opa <= 0 {
		return
	}
	pt.prims = append(pt.prims, Polyline{
		Points: []Point{{x0, y0}, {x1, y1}},
		Width:  width,
		Color:  common.HexNRGBA(hex, opa),
	})
}

// qbezier strokes a quadratic bezier flattened into CurveSegments segments.
func (pt *painter) qbezier(x0, y0, cx, cy, x1, y1, width float64, hex uint32, opa float64) {
	if opa <= 0 {
		return
	}
	points := make([]Point, 0, CurveSegments+1)
	for i := 0; i <= CurveSegments; i++ {
		x, y := common.QuadBezier(x0, y0, cx, cy, x1, y1, float64(i)/CurveSegments)
		points = append(points, Point{x, y})
	}
	pt.prims = append(pt.prims, Polyline{Points: points, Width: width, Color: common.HexNRGBA(hex, opa)})
}

// heart draws a filled heart from two lobes, a bridge rect and a tapering
// stack of slats, plus a small highlight glint.
func (pt *painter) heart(hx, hy, size float64, hex uint32, opa float64) {
	r := size * 0.32
	off := size * 0.28
	pt.fillCircle(hx-off, hy-size*0.12, r, hex, opa)
	pt.fillCircle(hx+off, hy-size*0.12, r, hex, opa)
	pt.fillRect(hx-off, hy-size*0.12, off*2, size*0.5, 2, hex, opa)
	for i := 0; i < 6; i++ {
		frac := float64(i) / 6
		w := off * 2 * (1 - frac)
		y := hy + size*0.12 + size*0.5*frac
		if w < 3 {
			w = 3
		}
		pt.fillRect(hx-w/2, y, w, size*0.09+2, 1, hex, opa)
	}
	pt.fillCircle(hx-off*0.7, hy-size*0.28, r*0.45, colorPureWhite, opa*0.45)
}

const colorPureWhite = 0xFFFFFF
