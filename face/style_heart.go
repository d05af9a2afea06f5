package face

// heartEyes draws pulsing filled hearts in the accent colour.
type heartEyes struct{}

func (heartEyes) eyes(pt *painter, p Params, ph Phases) {
	b := p.Brightness
	gx := p.Gaze.X * 2
	gy := p.Gaze.Y * 1.5
	pulse := 1 + 0.08*sinf(ph.Frame, 0.08)
	hsz := 72 * p.EyeSize * pulse
	for side := -1.0; side <= 1; side += 2 {
		ex := CenterX + side*eyeSpacing*p.EyeSize + gx
		ey := float64(CenterY+eyeYOffset+4) + gy
		pt.heart(ex, ey, hsz, p.SecondaryColor, b*0.96)
	}
}

// mouth is a small curved smile with soft cheek dots.
func (heartEyes) mouth(pt *painter, p Params, _ Phases) {
	b := p.Brightness
	if b < brightnessEpsilon {
		return
	}
	gx := p.Gaze.X * 1.5
	mY := float64(CenterY + mouthYOffset)
	pt.qbezier(CenterX-28+gx, mY+6, CenterX+gx, mY-14, CenterX+28+gx, mY+6,
		5, p.SecondaryColor, b*0.78)
	cs := eyeSpacing * p.EyeSize
	pt.fillCircle(CenterX-cs-30, mY-14, 20, p.SecondaryColor, b*0.35)
	pt.fillCircle(CenterX+cs+30, mY-14, 20, p.SecondaryColor, b*0.35)
}
