package face

// squaredEyes is the default style: bold rounded-rect eyes with a dark pupil
// rect and a white highlight square. Gaze shifts the whole eye and the pupil
// at different rates for a slight parallax.
type squaredEyes struct{}

func (squaredEyes) eyes(pt *painter, p Params, ph Phases) {
	openness := p.EyeOpenness * ph.BlinkMul
	if openness < 0.02 {
		closedEyes{}.eyes(pt, p, ph)
		return
	}
	b := p.Brightness
	sz := p.EyeSize * 40
	for side := -1.0; side <= 1; side += 2 {
		cx := CenterX + side*52 + p.Gaze.X*15
		cy := CenterY - 18 + p.Gaze.Y*10
		hw := sz * 0.55
		hh := sz * 0.45 * openness

		pt.fillRect(cx-hw, cy-hh, hw*2, hh*2, 10, p.PrimaryColor, b)

		pw := hw * p.PupilSize * 0.6
		phh := hh * p.PupilSize * 0.7
		px := cx + p.Gaze.X*8
		py := cy + p.Gaze.Y*5
		pt.fillRect(px-pw, py-phh, pw*2, phh*2, 6, ColorBackground, b)

		hs := sz * 0.14
		pt.fillRect(cx-hw/2+2, cy-hh/2+2, hs, hs, 2, colorPureWhite, b*0.78)
	}
}

// mouth draws either a rounded open-mouth capsule or a smile/frown curve.
func (squaredEyes) mouth(pt *painter, p Params, ph Phases) {
	b := p.Brightness
	if b < brightnessEpsilon {
		return
	}
	gx := p.Gaze.X * 1.5
	op := p.MouthOpen
	if p.Talking {
		op = talkingMouthOpen(ph.Frame)
	}
	mY := float64(CenterY + mouthYOffset)
	if op > 0.05 {
		mh := 12 + op*32
		mrw := 18 + op*14
		radius := mh / 2.5
		if radius > mrw {
			radius = mrw
		}
		pt.fillRect(CenterX+gx-mrw, mY-mh/2, mrw*2, mh, radius, p.PrimaryColor, b*0.9)
		return
	}
	mW := mouthBaseW * p.MouthWidth
	pt.qbezier(CenterX-mW*0.6+gx, mY, CenterX+gx, mY+p.MouthSmile*-22,
		CenterX+mW*0.6+gx, mY, 5, p.PrimaryColor, b*0.82)
}
