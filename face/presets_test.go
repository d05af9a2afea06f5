package face

import (
	"testing"
	"time"
)

func TestPresetBoundsForAllStates(t *testing.T) {
	for s := State(0); s < StateCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			p, d, ok := Preset(s)
			if !ok {
				t.Fatalf("lookup failed for enumerated state")
			}
			if d <= 0 {
				t.Fatalf("transition duration %v must be positive", d)
			}
			unit := map[string]float64{
				"eye_openness": p.EyeOpenness,
				"pupil_size":   p.PupilSize,
				"mouth_open":   p.MouthOpen,
				"happiness":    p.Happiness,
				"brightness":   p.Brightness,
				"glow":         p.GlowIntensity,
			}
			for name, v := range unit {
				if v < 0 || v > 1 {
					t.Fatalf("%s = %v outside [0,1]", name, v)
				}
			}
			if p.MouthSmile < -1 || p.MouthSmile > 1 {
				t.Fatalf("mouth_smile = %v outside [-1,1]", p.MouthSmile)
			}
			if p.Gaze.X < -GazeMaxX || p.Gaze.X > GazeMaxX ||
				p.Gaze.Y < -GazeMaxY || p.Gaze.Y > GazeMaxY {
				t.Fatalf("gaze %+v outside bounds", p.Gaze)
			}
			if p.EyeStyle < 0 || p.EyeStyle >= eyeStyleCount {
				t.Fatalf("eye style %v out of range", p.EyeStyle)
			}
		})
	}
}

func TestPresetRejectsOutOfRange(t *testing.T) {
	for _, s := range []State{State(-1), StateCount, State(99)} {
		if _, _, ok := Preset(s); ok {
			t.Fatalf("Preset(%d) should be rejected", s)
		}
	}
}

func TestTransitionDurationRules(t *testing.T) {
	cases := []struct {
		state State
		want  time.Duration
	}{
		{StateAlertFall, 150 * time.Millisecond},
		{StateAlertStill, 150 * time.Millisecond},
		{StateAlertBaby, 150 * time.Millisecond},
		{StateAlertHeart, 150 * time.Millisecond},
		{StateNight, 1000 * time.Millisecond},
		{StateHappy, 350 * time.Millisecond},
		{StateIdle, 400 * time.Millisecond},
		{StateTalking, 400 * time.Millisecond},
	}
	for _, c := range cases {
		_, d, ok := Preset(c.state)
		if !ok || d != c.want {
			t.Fatalf("%v: duration = %v ok=%v, want %v", c.state, d, ok, c.want)
		}
	}
}

func TestStateNamesRoundTrip(t *testing.T) {
	for s := State(0); s < StateCount; s++ {
		got, ok := StateByName(s.String())
		if !ok || got != s {
			t.Fatalf("name %q did not round-trip: got %v ok=%v", s.String(), got, ok)
		}
	}
	if _, ok := StateByName("NoSuchState"); ok {
		t.Fatalf("unknown name should not resolve")
	}
	if State(99).String() != "Unknown" {
		t.Fatalf("out-of-range state name should be Unknown")
	}
}

func TestAlertPresetsFlagStrobe(t *testing.T) {
	for _, s := range []State{StateAlertFall, StateAlertStill, StateAlertBaby, StateAlertHeart} {
		p, _, _ := Preset(s)
		if !p.AlertPolice || !p.ShowAlertText || p.EyeStyle != EyePolice {
			t.Fatalf("%v should be a police-strobe preset: %+v", s, p)
		}
	}
}
