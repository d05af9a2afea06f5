package face

// crescentEyes draws the happy ^_^ arcs.
type crescentEyes struct{}

func (crescentEyes) eyes(pt *painter, p Params, _ Phases) {
	b := p.Brightness
	for side := -1.0; side <= 1; side += 2 {
		cx := CenterX + side*52 + p.Gaze.X*15
		cy := float64(CenterY - 18)
		pt.strokeArc(cx, cy+6, 18, 200, 340, 8, p.PrimaryColor, b)
	}
}

// mouth is a toothy D-grin: a flat top lip over a tapering stack of slats,
// with blush circles outside the eyes.
func (crescentEyes) mouth(pt *painter, p Params, _ Phases) {
	b := p.Brightness
	if b < brightnessEpsilon {
		return
	}
	gx := p.Gaze.X * 1.5
	mY := float64(CenterY + mouthYOffset)
	mW := mouthBaseW * p.MouthWidth
	gW := mW * 1.4
	gH := 42 * p.MouthWidth
	pt.line(CenterX-gW+gx, mY, CenterX+gW+gx, mY, 4, p.PrimaryColor, b*0.94)
	for r := 0; r < 10; r++ {
		f := float64(r) / 10
		w := gW * 2 * (1 - f*f*0.6)
		pt.fillRect(CenterX+gx-w/2, mY+gH*f, w, gH/10+2, 4, p.PrimaryColor, b*0.92)
	}
	cs := eyeSpacing * p.EyeSize
	pt.fillCircle(CenterX-cs-24, mY-10, 20, p.SecondaryColor, b*0.45)
	pt.fillCircle(CenterX+cs+24, mY-10, 20, p.SecondaryColor, b*0.45)
}
