package face

// worriedEyes draws squared eyes tilted inward with brow lines above.
type worriedEyes struct{}

func (worriedEyes) eyes(pt *painter, p Params, ph Phases) {
	openness := p.EyeOpenness * ph.BlinkMul
	if openness < 0.05 {
		closedEyes{}.eyes(pt, p, ph)
		return
	}
	b := p.Brightness
	for side := -1.0; side <= 1; side += 2 {
		cx := CenterX + side*52
		cy := float64(CenterY - 18)
		hw := 22.0
		hh := 18 * openness
		tilt := side * 4

		pt.fillRect(cx-hw, cy-hh+tilt, hw*2, hh*2, 8, p.PrimaryColor, b)

		pw := hw * 0.55
		phh := hh * 0.65
		pt.fillRect(cx-pw, cy-phh+tilt, pw*2, phh*2, 5, ColorBackground, b)

		pt.line(cx-hw-4, cy-hh-8-side*3, cx+hw+4, cy-hh-8+side*3, 4, p.PrimaryColor, b)
	}
}

// mouth is a downturned worry curve.
func (worriedEyes) mouth(pt *painter, p Params, _ Phases) {
	b := p.Brightness
	if b < brightnessEpsilon {
		return
	}
	gx := p.Gaze.X * 1.5
	mY := float64(CenterY + mouthYOffset)
	mW := mouthBaseW * p.MouthWidth
	pt.qbezier(CenterX-mW*0.7+gx, mY+10, CenterX+gx, mY+28,
		CenterX+mW*0.7+gx, mY+10, 5, p.PrimaryColor, b*0.78)
}
