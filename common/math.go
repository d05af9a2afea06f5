package common

import (
	"image/color"
	"math"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOut maps t in [0,1] through a symmetric quadratic ease: accelerating
// below the midpoint, decelerating above it, continuous at t=0.5.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	d := -2*t + 2
	return 1 - d*d/2
}

// QuadBezier samples the quadratic bezier (x0,y0)-(cx,cy)-(x1,y1) at t.
func QuadBezier(x0, y0, cx, cy, x1, y1, t float64) (float64, float64) {
	u := 1 - t
	x := u*u*x0 + 2*u*t*cx + t*t*x1
	y := u*u*y0 + 2*u*t*cy + t*t*y1
	return x, y
}

// HexNRGBA decomposes a 0xRRGGBB value into an NRGBA with the given opacity.
// Opacity outside [0,1] is clamped.
func HexNRGBA(hex uint32, opacity float64) color.NRGBA {
	a := Clamp(opacity, 0, 1)
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: uint8(math.Round(a * 255)),
	}
}
