package face

import (
	"math"

	"github.com/milk9111/roundface/common"
)

// Phases are the auxiliary per-frame values the renderer consumes alongside
// the current snapshot: the monotonic frame counter driving the stateless
// oscillators, and the blink lid multiplier.
type Phases struct {
	Frame    uint64
	BlinkMul float64
}

// brightnessEpsilon is the master-brightness floor below which everything but
// the background fill is skipped.
const brightnessEpsilon = 0.02

// eyeRenderer draws one eye style plus its themed mouth. One implementation
// per EyeStyle variant keeps each style's tuning constants isolated.
type eyeRenderer interface {
	eyes(pt *painter, p Params, ph Phases)
	mouth(pt *painter, p Params, ph Phases)
}

var eyeRenderers = [eyeStyleCount]eyeRenderer{
	EyeSquared:  squaredEyes{},
	EyeHeart:    heartEyes{},
	EyeCrescent: crescentEyes{},
	EyeClosed:   closedEyes{},
	EyeWorried:  worriedEyes{},
	EyePolice:   policeEyes{},
}

// Render turns one snapshot plus phases into the ordered primitive list for a
// frame. It is pure: animation state is only read, never touched.
//
// Pass order: background fill, police strobe wash, glow ring, eyes, mouth,
// love bubbles, alert text.
func Render(p Params, ph Phases) []Primitive {
	pt := &painter{}

	// Round background; emitted even at zero brightness so the frame always
	// carries the panel fill.
	pt.prims = append(pt.prims, FillRect{
		W: DisplayWidth, H: DisplayHeight, Radius: FaceRadius,
		Color: common.HexNRGBA(ColorBackground, p.Brightness),
	})
	if p.Brightness < brightnessEpsilon {
		return pt.prims
	}

	renderPoliceWash(pt, p, ph)
	renderGlowRing(pt, p, ph)

	style := p.EyeStyle
	if style < 0 || style >= eyeStyleCount {
		style = EyeSquared
	}
	r := eyeRenderers[style]
	r.eyes(pt, p, ph)
	r.mouth(pt, p, ph)

	renderLoveBubbles(pt, p, ph)
	renderAlertText(pt, p, ph)
	return pt.prims
}

// renderPoliceWash paints the full-ring alternating red/blue wash behind an
// alerting face.
func renderPoliceWash(pt *painter, p Params, ph Phases) {
	if !p.AlertPolice {
		return
	}
	b := p.Brightness
	strobe := (0.5 + 0.5*sinf(ph.Frame, 0.25)) * 0.25
	hex := uint32(ColorPoliceBlue)
	cx := float64(CenterX + 60)
	if strobeFlip(ph.Frame) {
		hex = ColorRed
		cx = CenterX - 60
	}
	pt.fillCircle(cx, CenterY-30, FaceRadius-20, hex, b*strobe)
	pt.strokeArc(CenterX, CenterY, FaceRadius-4, 0, 360, 6, hex, b*0.45)
}

// renderGlowRing layers four concentric arcs whose opacity breathes or
// pulses with the state's oscillator.
func renderGlowRing(pt *painter, p Params, ph Phases) {
	g := glowLevel(p, ph.Frame)
	if g < 0.01 {
		return
	}
	for i := 3; i >= 0; i-- {
		pt.strokeArc(CenterX, CenterY, float64(FaceRadius-4-i*7), 0, 360,
			float64(8+i*5), p.PrimaryColor, g*0.08*float64(4-i))
	}
}

func renderLoveBubbles(pt *painter, p Params, ph Phases) {
	if !p.LoveBubbles {
		return
	}
	t := float64(ph.Frame) * 0.033
	for i := 0; i < heartPoolSize; i++ {
		bub, ok := heartBubbleAt(i, t)
		if !ok {
			continue
		}
		pt.heart(bub.x, bub.y, bub.size, p.SecondaryColor, bub.alpha*p.Brightness*0.55)
	}
}

// renderAlertText strokes "ALERT!" from line segments below the mouth,
// flashing between the police colours, over a faint backing plate.
func renderAlertText(pt *painter, p Params, ph Phases) {
	if !p.ShowAlertText {
		return
	}
	b := p.Brightness
	hex := uint32(ColorPoliceBlue)
	if strobeFlip(ph.Frame) {
		hex = ColorRed
	}
	opa := b * 0.94
	y0 := float64(CenterY + 56)
	const lh, lw, sp = 28.0, 5.0, 22.0
	xs := float64(CenterX) - sp*3 + 4
	x := xs
	// A
	pt.line(x, y0+lh, x+8, y0, lw, hex, opa)
	pt.line(x+8, y0, x+16, y0+lh, lw, hex, opa)
	pt.line(x+4, y0+lh/2, x+12, y0+lh/2, lw-1, hex, opa)
	x += sp
	// L
	pt.line(x, y0, x, y0+lh, lw, hex, opa)
	pt.line(x, y0+lh, x+14, y0+lh, lw, hex, opa)
	x += sp
	// E
	pt.line(x, y0, x, y0+lh, lw, hex, opa)
	pt.line(x, y0, x+14, y0, lw, hex, opa)
	pt.line(x, y0+lh/2, x+11, y0+lh/2, lw-1, hex, opa)
	pt.line(x, y0+lh, x+14, y0+lh, lw, hex, opa)
	x += sp
	// R
	pt.line(x, y0, x, y0+lh, lw, hex, opa)
	pt.qbezier(x, y0, x+16, y0+2, x+4, y0+lh/2, lw, hex, opa)
	pt.line(x+6, y0+lh/2, x+14, y0+lh, lw, hex, opa)
	x += sp
	// T
	pt.line(x, y0, x+16, y0, lw, hex, opa)
	pt.line(x+8, y0, x+8, y0+lh, lw, hex, opa)
	x += sp
	// !
	pt.line(x+4, y0, x+4, y0+lh-10, lw, hex, opa)
	pt.fillCircle(x+4, y0+lh-2, 3, hex, opa)
	pt.fillRect(xs-10, y0-6, sp*6+20, lh+12, 8, hex, b*0.12)
}

// sinf is sin(frame * step); the common shape of every frame oscillator.
func sinf(frame uint64, step float64) float64 {
	return math.Sin(float64(frame) * step)
}
