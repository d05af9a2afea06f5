package face

import "time"

// State identifies a named expression preset.
type State int

const (
	StateIdle State = iota
	StatePresence
	StateHappy
	StateLove
	StateListening
	StateConcerned
	StateAlertFall
	StateAlertStill
	StateAlertBaby
	StateAlertHeart
	StateNight
	StateTalking
	StateBoot
	StateSetup
	StateError

	StateCount
)

// DefaultTransition is the transition used by states without a special
// duration rule. Urgent alerts are snappier, night is gentler.
const DefaultTransition = 400 * time.Millisecond

var stateNames = [StateCount]string{
	StateIdle:       "Idle",
	StatePresence:   "Presence",
	StateHappy:      "Happy",
	StateLove:       "Love",
	StateListening:  "Listening",
	StateConcerned:  "Concerned",
	StateAlertFall:  "Alert:Fall",
	StateAlertStill: "Alert:Still",
	StateAlertBaby:  "Alert:Baby",
	StateAlertHeart: "Alert:Heart",
	StateNight:      "Night",
	StateTalking:    "Talking",
	StateBoot:       "Boot",
	StateSetup:      "Setup",
	StateError:      "Error",
}

func (s State) String() string {
	if s < 0 || s >= StateCount {
		return "Unknown"
	}
	return stateNames[s]
}

// Valid reports whether s is inside the enumerated state set.
func (s State) Valid() bool {
	return s >= 0 && s < StateCount
}

// transitions holds the per-state duration rule. Zero entries fall back to
// DefaultTransition.
var transitions = map[State]time.Duration{
	StateAlertFall:  150 * time.Millisecond,
	StateAlertStill: 150 * time.Millisecond,
	StateAlertBaby:  150 * time.Millisecond,
	StateAlertHeart: 150 * time.Millisecond,
	StateNight:      1000 * time.Millisecond,
	StateHappy:      350 * time.Millisecond,
	StateLove:       400 * time.Millisecond,
}

var presets = [StateCount]Params{
	// Idle: squared eyes, gentle smile, cyan.
	StateIdle: {
		EyeOpenness: 0.75, EyeSize: 1.0, PupilSize: 0.85,
		EyeStyle:   EyeSquared,
		MouthSmile: 0.4, MouthOpen: 0.0, MouthWidth: 1.05,
		Happiness: 0.3, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.45,
		PulseSpeed:    1.0,
	},
	// Presence: eyes widen, warm smile.
	StatePresence: {
		EyeOpenness: 0.92, EyeSize: 1.12, PupilSize: 0.95,
		EyeStyle:   EyeSquared,
		MouthSmile: 0.55, MouthOpen: 0.0, MouthWidth: 1.15,
		Happiness: 0.5, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.65,
		PulseSpeed:    1.0,
	},
	// Happy: crescent eyes, big D-grin, cheeks, sparkle.
	StateHappy: {
		EyeOpenness: 0.3, EyeSize: 1.3, PupilSize: 1.0,
		EyeStyle:   EyeCrescent,
		MouthSmile: 1.0, MouthOpen: 0.15, MouthWidth: 1.45,
		Happiness: 1.0, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.85,
		PulseSpeed:    1.0, Sparkle: true,
	},
	// Love: heart eyes, floating hearts, pink accent.
	StateLove: {
		EyeOpenness: 1.0, EyeSize: 1.1, PupilSize: 1.0,
		EyeStyle:   EyeHeart,
		MouthSmile: 0.6, MouthOpen: 0.0, MouthWidth: 1.0,
		Happiness: 0.9, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.7,
		PulseSpeed:    1.0, LoveBubbles: true,
	},
	// Listening: pulsing glow, wide eyes, gaze slightly down.
	StateListening: {
		EyeOpenness: 1.0, EyeSize: 1.15, PupilSize: 1.0,
		Gaze:       Gaze{X: 0, Y: 1},
		EyeStyle:   EyeSquared,
		MouthSmile: 0.15, MouthOpen: 0.05, MouthWidth: 0.9,
		Happiness: 0.15, Brightness: 1.0,
		PrimaryColor: ColorWhite, SecondaryColor: ColorPink,
		GlowIntensity: 0.9,
		Pulse:         true, PulseSpeed: 1.5,
	},
	// Concerned: worried eyes with brows, amber.
	StateConcerned: {
		EyeOpenness: 0.85, EyeSize: 1.0, PupilSize: 0.7,
		Gaze:       Gaze{X: 0, Y: 3},
		EyeStyle:   EyeWorried,
		MouthSmile: -0.3, MouthOpen: 0.0, MouthWidth: 0.85,
		Happiness: 0.0, Brightness: 1.0,
		PrimaryColor: ColorAmber, SecondaryColor: ColorPink,
		GlowIntensity: 0.6,
		Pulse:         true, PulseSpeed: 0.8,
	},
	// Alert variants: police flash plus stroke-drawn ALERT! text.
	StateAlertFall: {
		EyeOpenness: 1.0, EyeSize: 1.2, PupilSize: 0.45,
		EyeStyle:   EyePolice,
		MouthSmile: -0.5, MouthOpen: 0.0, MouthWidth: 1.0,
		Happiness: 0.0, Brightness: 1.0,
		PrimaryColor: ColorRed, SecondaryColor: ColorPink,
		GlowIntensity: 1.0,
		Pulse:         true, PulseSpeed: 3.0,
		AlertPolice:   true, ShowAlertText: true,
	},
	StateAlertStill: {
		EyeOpenness: 0.9, EyeSize: 1.1, PupilSize: 0.6,
		EyeStyle:   EyePolice,
		MouthSmile: -0.35, MouthOpen: 0.0, MouthWidth: 0.9,
		Happiness: 0.0, Brightness: 1.0,
		PrimaryColor: ColorOrange, SecondaryColor: ColorPink,
		GlowIntensity: 0.8,
		Pulse:         true, PulseSpeed: 1.2,
		AlertPolice:   true, ShowAlertText: true,
	},
	StateAlertBaby: {
		EyeOpenness: 1.0, EyeSize: 1.2, PupilSize: 0.55,
		EyeStyle:   EyePolice,
		MouthSmile: -0.55, MouthOpen: 0.0, MouthWidth: 0.9,
		Happiness: 0.0, Brightness: 1.0,
		PrimaryColor: ColorRed, SecondaryColor: ColorPink,
		GlowIntensity: 1.0,
		Pulse:         true, PulseSpeed: 4.0,
		AlertPolice:   true, ShowAlertText: true,
	},
	StateAlertHeart: {
		EyeOpenness: 1.0, EyeSize: 1.3, PupilSize: 0.35,
		EyeStyle:   EyePolice,
		MouthSmile: -0.65, MouthOpen: 0.0, MouthWidth: 1.1,
		Happiness: 0.0, Brightness: 1.0,
		PrimaryColor: ColorRed, SecondaryColor: ColorPink,
		GlowIntensity: 1.0,
		Pulse:         true, PulseSpeed: 6.0,
		AlertPolice:   true, ShowAlertText: true,
	},
	// Night: sleep, dim, closed eyes.
	StateNight: {
		EyeOpenness: 0.0, EyeSize: 0.8, PupilSize: 0.0,
		EyeStyle:   EyeClosed,
		MouthSmile: 0.2, MouthOpen: 0.0, MouthWidth: 0.7,
		Happiness: 0.2, Brightness: 0.15,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.1,
		PulseSpeed:    1.0,
	},
	StateTalking: {
		EyeOpenness: 0.8, EyeSize: 1.05, PupilSize: 0.85,
		EyeStyle:   EyeSquared,
		MouthSmile: 0.3, MouthOpen: 0.5, MouthWidth: 1.1,
		Happiness: 0.3, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.5,
		PulseSpeed:    1.0, Talking: true,
	},
	// Boot: everything dark and shrunk; transitioning out of it grows the
	// face in.
	StateBoot: {
		EyeStyle:     EyeSquared,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		PulseSpeed: 1.0,
	},
	StateSetup: {
		EyeOpenness: 1.0, EyeSize: 1.2, PupilSize: 1.0,
		Gaze:       Gaze{X: 5, Y: 0},
		EyeStyle:   EyeSquared,
		MouthSmile: 0.55, MouthOpen: 0.08, MouthWidth: 1.2,
		Happiness: 0.5, Brightness: 1.0,
		PrimaryColor: ColorCyan, SecondaryColor: ColorPink,
		GlowIntensity: 0.7,
		Pulse:         true, PulseSpeed: 1.0,
	},
	StateError: {
		EyeOpenness: 0.6, EyeSize: 0.9, PupilSize: 0.5,
		Gaze:       Gaze{X: -3, Y: 2},
		EyeStyle:   EyeWorried,
		MouthSmile: -0.15, MouthOpen: 0.05, MouthWidth: 0.8,
		Happiness: 0.0, Brightness: 0.7,
		PrimaryColor: ColorGrey, SecondaryColor: ColorPink,
		GlowIntensity: 0.2,
		PulseSpeed:    1.0,
	},
}

// DefaultParams is the expression the engine boots with.
func DefaultParams() Params {
	return presets[StateIdle]
}

// Preset returns the target parameters and transition duration for a state.
// Out-of-range states report ok=false and callers must leave the prior
// expression untouched.
func Preset(s State) (Params, time.Duration, bool) {
	if !s.Valid() {
		return Params{}, 0, false
	}
	d, found := transitions[s]
	if !found {
		d = DefaultTransition
	}
	return presets[s], d, true
}

// StateByName maps a preset name (case-sensitive, as reported by
// State.String) back to its identifier.
func StateByName(name string) (State, bool) {
	for s := State(0); s < StateCount; s++ {
		if stateNames[s] == name {
			return s, true
		}
	}
	return 0, false
}
