package face

import (
	"math/rand"
	"testing"
	"time"
)

func newTestEngine() *Engine {
	return New(Config{Rand: rand.New(rand.NewSource(1))})
}

// tickN drives the engine as the host scheduler would.
func tickN(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

func TestSetParamsInstantSnap(t *testing.T) {
	e := newTestEngine()
	p, _, ok := Preset(StateHappy)
	if !ok {
		t.Fatalf("happy preset missing")
	}
	e.SetParams(&p, 0)
	if got := e.Params(); got != p {
		t.Fatalf("instant snap should equal target\ngot  %+v\nwant %+v", got, p)
	}
	if e.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", e.Progress())
	}
}

func TestSetParamsNilIsNoop(t *testing.T) {
	e := newTestEngine()
	before := e.Params()
	e.SetParams(nil, 200*time.Millisecond)
	if e.Params() != before {
		t.Fatalf("nil target should leave state unchanged")
	}
}

func TestTransitionCompletesInWholeTicks(t *testing.T) {
	cases := []struct {
		name  string
		d     time.Duration
		ticks int
	}{
		{"default_400ms", 400 * time.Millisecond, 12},
		{"alert_150ms", 150 * time.Millisecond, 5},
		{"night_1000ms", 1000 * time.Millisecond, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEngine()
			boot, _, _ := Preset(StateBoot)
			e.SetParams(&boot, 0)
			target, _, _ := Preset(StateIdle)
			e.SetParams(&target, c.d)

			if e.Progress() != 0 {
				t.Fatalf("progress after set = %v, want 0", e.Progress())
			}
			tickN(e, c.ticks-1)
			if e.Progress() >= 1 {
				t.Fatalf("transition settled one tick early")
			}
			e.Tick()
			if e.Progress() != 1 {
				t.Fatalf("progress after %d ticks = %v, want exactly 1", c.ticks, e.Progress())
			}
			got := e.Params()
			if got.EyeOpenness != target.EyeOpenness ||
				got.Brightness != target.Brightness ||
				got.MouthSmile != target.MouthSmile ||
				got.GlowIntensity != target.GlowIntensity {
				t.Fatalf("continuous fields should equal target after settling\ngot  %+v\nwant %+v", got, target)
			}
		})
	}
}

func TestZeroTicksLeavesCurrentUnchanged(t *testing.T) {
	e := newTestEngine()
	boot, _, _ := Preset(StateBoot)
	e.SetParams(&boot, 0)
	before := e.Params()
	target, _, _ := Preset(StateIdle)
	e.SetParams(&target, 400*time.Millisecond)
	got := e.Params()
	if got.EyeOpenness != before.EyeOpenness || got.Brightness != before.Brightness {
		t.Fatalf("continuous fields moved without a tick: %+v", got)
	}
}

func TestInterpolationMonotonic(t *testing.T) {
	e := newTestEngine()
	boot, _, _ := Preset(StateBoot)
	e.SetParams(&boot, 0)
	target, _, _ := Preset(StateIdle)
	e.SetParams(&target, 400*time.Millisecond)

	prev := e.Params()
	for i := 0; i < 12; i++ {
		e.Tick()
		got := e.Params()
		if got.EyeOpenness < prev.EyeOpenness || got.EyeOpenness > target.EyeOpenness {
			t.Fatalf("tick %d: openness %v not monotonic toward %v (prev %v)",
				i+1, got.EyeOpenness, target.EyeOpenness, prev.EyeOpenness)
		}
		if got.Brightness < prev.Brightness || got.Brightness > target.Brightness {
			t.Fatalf("tick %d: brightness %v overshoots", i+1, got.Brightness)
		}
		prev = got
	}
}

func TestDiscreteFieldsSnapOnFirstTick(t *testing.T) {
	e := newTestEngine()
	idle, _, _ := Preset(StateIdle)
	e.SetParams(&idle, 0)
	target, d, _ := Preset(StateAlertFall)
	e.SetParams(&target, d)

	e.Tick()
	got := e.Params()
	if got.EyeStyle != EyePolice {
		t.Fatalf("eye style should snap on first tick, got %v", got.EyeStyle)
	}
	if !got.AlertPolice || !got.ShowAlertText || !got.Pulse {
		t.Fatalf("effect flags should snap on first tick: %+v", got)
	}
	if got.PrimaryColor != ColorRed {
		t.Fatalf("primary colour should snap, got %06x", got.PrimaryColor)
	}
	if e.Progress() >= 1 {
		t.Fatalf("transition should still be easing")
	}
}

func TestEndToEndBootToIdle(t *testing.T) {
	e := newTestEngine()
	boot, _, _ := Preset(StateBoot)
	e.SetParams(&boot, 0)
	if !e.SetState(StateIdle) {
		t.Fatalf("SetState(idle) rejected")
	}

	tickN(e, 6)
	mid := e.Params()
	if mid.EyeOpenness <= 0 || mid.EyeOpenness >= 0.75 {
		t.Fatalf("tick 6 openness = %v, want strictly between 0 and 0.75", mid.EyeOpenness)
	}

	tickN(e, 6)
	got := e.Params()
	if got.EyeOpenness != 0.75 || got.MouthSmile != 0.4 || got.PrimaryColor != ColorCyan {
		t.Fatalf("after 12 ticks snapshot should equal idle preset: %+v", got)
	}
}

func TestEndToEndAlertTransition(t *testing.T) {
	e := newTestEngine()
	idle, _, _ := Preset(StateIdle)
	e.SetParams(&idle, 0)
	if !e.SetState(StateAlertFall) {
		t.Fatalf("SetState(alert) rejected")
	}

	for i := 1; i <= 5; i++ {
		e.Tick()
		if !e.Params().AlertPolice {
			t.Fatalf("strobe flag should be set from tick 1, missing at tick %d", i)
		}
	}
	if e.Progress() != 1 {
		t.Fatalf("150ms transition should settle in 5 ticks, progress = %v", e.Progress())
	}
}

func TestSetStateInvalidIsNoop(t *testing.T) {
	e := newTestEngine()
	before := e.Target()
	if e.SetState(State(-1)) {
		t.Fatalf("negative state should be rejected")
	}
	if e.SetState(StateCount) {
		t.Fatalf("out-of-range state should be rejected")
	}
	if e.Target() != before {
		t.Fatalf("rejected lookup must leave the target untouched")
	}
}

func TestTriggerBlinkCycle(t *testing.T) {
	e := newTestEngine()
	e.TriggerBlink()
	if e.blinkPhase != blinkHalfTicks*2 {
		t.Fatalf("blink phase = %d, want %d", e.blinkPhase, blinkHalfTicks*2)
	}

	sawClosed := false
	for i := 0; i < blinkHalfTicks*2; i++ {
		e.Tick()
		if e.Phases().BlinkMul < 0.2 {
			sawClosed = true
		}
	}
	if !sawClosed {
		t.Fatalf("lid multiplier never approached closed during the cycle")
	}
	if e.blinkPhase != 0 {
		t.Fatalf("blink phase = %d after full cycle, want 0", e.blinkPhase)
	}
	if got := e.Phases().BlinkMul; got != 1 {
		t.Fatalf("blink multiplier = %v after full cycle, want 1", got)
	}
}

func TestTriggerBlinkWhileActiveIsNoop(t *testing.T) {
	e := newTestEngine()
	e.TriggerBlink()
	tickN(e, 3)
	phase := e.blinkPhase
	e.TriggerBlink()
	if e.blinkPhase != phase {
		t.Fatalf("second trigger restarted the cycle: phase %d -> %d", phase, e.blinkPhase)
	}
}

func TestSpontaneousBlinkOnlyForLiddedStyles(t *testing.T) {
	e := newTestEngine()
	night, _, _ := Preset(StateNight)
	e.SetParams(&night, 0)
	timer := e.blinkTimer
	tickN(e, 50)
	if e.blinkTimer != timer {
		t.Fatalf("blink countdown should not run for closed eyes")
	}
}

func TestWanderStaysInBounds(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 5000; i++ {
		e.Tick()
		tgt := e.Target()
		if tgt.Gaze.X < -GazeMaxX || tgt.Gaze.X > GazeMaxX ||
			tgt.Gaze.Y < -GazeMaxY || tgt.Gaze.Y > GazeMaxY {
			t.Fatalf("tick %d: wander gaze out of bounds: %+v", i, tgt.Gaze)
		}
	}
}

func TestLookAtClamps(t *testing.T) {
	e := newTestEngine()
	e.LookAt(99, -99)
	tgt := e.Target()
	if tgt.Gaze.X != GazeMaxX || tgt.Gaze.Y != -GazeMaxY {
		t.Fatalf("gaze should clamp to bounds, got %+v", tgt.Gaze)
	}
}

type countingSurface struct {
	invalidations int
}

func (s *countingSurface) Invalidate() { s.invalidations++ }

func TestVisibilityGatesRedraws(t *testing.T) {
	s := &countingSurface{}
	e := New(Config{Surface: s, Rand: rand.New(rand.NewSource(1))})
	tickN(e, 3)
	if s.invalidations != 3 {
		t.Fatalf("visible ticks should request redraws, got %d", s.invalidations)
	}
	e.SetVisible(false)
	tickN(e, 3)
	if s.invalidations != 3 {
		t.Fatalf("hidden ticks must not request redraws, got %d", s.invalidations)
	}
	if e.Visible() {
		t.Fatalf("Visible() should report false")
	}
	e.SetVisible(true)
	e.Tick()
	if s.invalidations != 4 {
		t.Fatalf("redraws should resume when shown again")
	}
}

func TestFrameCounterAdvances(t *testing.T) {
	e := newTestEngine()
	tickN(e, 7)
	if e.Frame() != 7 {
		t.Fatalf("frame = %d, want 7", e.Frame())
	}
}
