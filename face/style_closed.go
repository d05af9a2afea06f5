package face

import "math"

// closedEyes draws gentle sleep curves plus a drift of "Z" marks rising off
// the face. Also used as the fallback when a lidded style is fully shut.
type closedEyes struct{}

func (closedEyes) eyes(pt *painter, p Params, ph Phases) {
	b := p.Brightness
	sz := p.EyeSize
	for side := -1.0; side <= 1; side += 2 {
		ex := CenterX + side*eyeSpacing*sz
		ey := float64(CenterY + eyeYOffset + 6)
		pt.qbezier(ex-34*sz, ey, ex, ey+18*sz, ex+34*sz, ey, 7*sz, p.PrimaryColor, b*0.78)
	}

	// Three Z marks on staggered loops, fading in and out as they drift up
	// and to the right.
	t := float64(ph.Frame) * 0.033
	for i := 0; i < 3; i++ {
		phase := math.Mod(t*0.35+float64(i)*0.8, 3)
		if phase > 2.5 {
			continue
		}
		alpha := 1.0
		if phase < 0.3 {
			alpha = phase / 0.3
		}
		if phase > 2 {
			alpha = (2.5 - phase) / 0.5
		}
		if alpha < 0.02 {
			continue
		}
		zx := float64(CenterX+90) + phase*25
		zy := float64(CenterY-45) - phase*35
		zs := float64(10 + i*4)
		za := alpha * b * 0.7
		pt.line(zx, zy, zx+zs, zy, 3, p.PrimaryColor, za)
		pt.line(zx+zs, zy, zx, zy+zs, 3, p.PrimaryColor, za)
		pt.line(zx, zy+zs, zx+zs, zy+zs, 3, p.PrimaryColor, za)
	}
}

// mouth: none while sleeping.
func (closedEyes) mouth(*painter, Params, Phases) {}
