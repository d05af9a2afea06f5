package face

// policeEyes draws the squared eye shape with the two sides locked to
// alternating red/blue, a soft halo behind each eye, and no mouth.
type policeEyes struct{}

func (policeEyes) eyes(pt *painter, p Params, ph Phases) {
	b := p.Brightness
	sz := p.EyeSize
	left, right := strobeColors(ph.Frame)
	ew := eyeWidth * sz
	eh := eyeHeight * sz
	er := eyeRadius * sz
	for side := -1.0; side <= 1; side += 2 {
		ex := CenterX + side*eyeSpacing*sz
		ey := float64(CenterY + eyeYOffset)
		hex := left
		if side > 0 {
			hex = right
		}
		pt.fillRect(ex-ew/2, ey-eh/2, ew, eh, er, hex, b*0.96)
		pt.fillRect(ex-ew/2-6, ey-eh/2-6, ew+12, eh+12, er+4, hex, b*0.16)
		hs := highlightSize * sz
		pt.fillRect(ex-ew/2+8*sz, ey-eh/2+8*sz, hs, hs, highlightRadius*sz, colorPureWhite, b*0.78)
	}
}

// mouth: none in alert mode; the ALERT! text takes its place.
func (policeEyes) mouth(*painter, Params, Phases) {}
