package face

import "math"

// heartPoolSize is the fixed number of love-bubble slots. Slots are never
// allocated or freed; each is a pure function of elapsed time and its index,
// so the pool carries no mutable state at all.
const heartPoolSize = 10

// heartBubble is the visible state of one pool slot at an instant.
type heartBubble struct {
	x     float64
	y     float64
	size  float64
	alpha float64
}

// heartBubbleAt evaluates slot i at time t (seconds). ok is false while the
// slot is in the hidden tail of its cycle or too small to draw. Golden-ratio
// seeding keeps neighbouring slots visually decorrelated.
func heartBubbleAt(i int, t float64) (heartBubble, bool) {
	seed := float64(i) * 1.618
	period := 2.5 + float64(i%4)*0.5
	phase := math.Mod(t/period+seed, 1)
	if phase > 0.92 {
		return heartBubble{}, false
	}

	x := CenterX + math.Sin(seed*5.7)*130 + math.Sin(t*1.4+seed*4)*20
	top := float64(CenterY - 170)
	bottom := float64(CenterY + 145)
	y := bottom + (top-bottom)*phase

	// Grow in quickly, shrink out with a quadratic tail.
	scale := 1.0
	if phase < 0.1 {
		scale = phase / 0.1
	} else if phase > 0.7 {
		pp := (phase - 0.7) / 0.22
		scale = 1 - pp*pp
	}
	if scale < 0 {
		scale = 0
	}
	size := (14 + float64(i%5)*6) * scale
	if size < 3 {
		return heartBubble{}, false
	}

	alpha := 1.0
	if phase < 0.08 {
		alpha = phase / 0.08
	}
	if phase > 0.75 {
		alpha = (0.92 - phase) / 0.17
		if alpha < 0 {
			alpha = 0
		}
	}
	return heartBubble{x: x, y: y, size: size, alpha: alpha}, true
}
