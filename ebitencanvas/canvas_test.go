package ebitencanvas

import (
	"math"
	"testing"
)

func TestArcPointsEndpoints(t *testing.T) {
	pts := ArcPoints(100, 100, 50, 200, 340)
	if len(pts) < 3 {
		t.Fatalf("want at least 3 points, got %d", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]

	wantX := 100 + 50*math.Cos(200*math.Pi/180)
	wantY := 100 + 50*math.Sin(200*math.Pi/180)
	if math.Abs(first.X-wantX) > 1e-9 || math.Abs(first.Y-wantY) > 1e-9 {
		t.Fatalf("first point = (%v, %v), want (%v, %v)", first.X, first.Y, wantX, wantY)
	}

	wantX = 100 + 50*math.Cos(340*math.Pi/180)
	wantY = 100 + 50*math.Sin(340*math.Pi/180)
	if math.Abs(last.X-wantX) > 1e-9 || math.Abs(last.Y-wantY) > 1e-9 {
		t.Fatalf("last point = (%v, %v), want (%v, %v)", last.X, last.Y, wantX, wantY)
	}
}

func TestArcPointsStayOnCircle(t *testing.T) {
	pts := ArcPoints(0, 0, 10, 0, 270)
	for i, p := range pts {
		d := math.Hypot(p.X, p.Y)
		if math.Abs(d-10) > 1e-9 {
			t.Fatalf("point %d off circle: radius %v", i, d)
		}
	}
}

func TestArcPointsShortSweepMinimum(t *testing.T) {
	if got := len(ArcPoints(0, 0, 10, 0, 5)); got < 3 {
		t.Fatalf("short sweep flattened to %d points, want at least 3", got)
	}
}
