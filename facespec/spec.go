package facespec

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/roundface/face"
)

// PresetFile is the root of a preset tuning document.
type PresetFile struct {
	Presets []PresetSpec `yaml:"presets"`
}

// PresetSpec is one authored expression preset. Fields mirror face.Params;
// colours accept palette names or #RRGGBB, eye_style accepts the style names.
type PresetSpec struct {
	State        string  `yaml:"state"`
	TransitionMs int     `yaml:"transition_ms"`
	EyeOpenness  float64 `yaml:"eye_openness"`
	EyeSize      float64 `yaml:"eye_size"`
	PupilSize    float64 `yaml:"pupil_size"`
	GazeX        float64 `yaml:"gaze_x"`
	GazeY        float64 `yaml:"gaze_y"`
	EyeStyle     string  `yaml:"eye_style"`
	MouthSmile   float64 `yaml:"mouth_smile"`
	MouthOpen    float64 `yaml:"mouth_open"`
	MouthWidth   float64 `yaml:"mouth_width"`
	Happiness    float64 `yaml:"happiness"`
	Brightness   float64 `yaml:"brightness"`
	Primary      string  `yaml:"primary_color"`
	Secondary    string  `yaml:"secondary_color"`
	Glow         float64 `yaml:"glow_intensity"`

	Pulse         bool    `yaml:"pulse"`
	PulseSpeed    float64 `yaml:"pulse_speed"`
	Flash         bool    `yaml:"flash"`
	Talking       bool    `yaml:"talking"`
	Sparkle       bool    `yaml:"sparkle"`
	LoveBubbles   bool    `yaml:"love_bubbles"`
	AlertPolice   bool    `yaml:"alert_police"`
	ShowAlertText bool    `yaml:"show_alert_text"`
}

// LoadSpec unmarshals a named spec file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("facespec: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("facespec: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Params converts the spec into engine parameters.
func (s PresetSpec) Params() (face.Params, error) {
	style, err := ParseEyeStyle(s.EyeStyle)
	if err != nil {
		return face.Params{}, err
	}
	primary, err := ParseColor(s.Primary)
	if err != nil {
		return face.Params{}, fmt.Errorf("primary_color: %w", err)
	}
	secondary, err := ParseColor(s.Secondary)
	if err != nil {
		return face.Params{}, fmt.Errorf("secondary_color: %w", err)
	}
	return face.Params{
		EyeOpenness:    s.EyeOpenness,
		EyeSize:        s.EyeSize,
		PupilSize:      s.PupilSize,
		Gaze:           face.Gaze{X: s.GazeX, Y: s.GazeY},
		EyeStyle:       style,
		MouthSmile:     s.MouthSmile,
		MouthOpen:      s.MouthOpen,
		MouthWidth:     s.MouthWidth,
		Happiness:      s.Happiness,
		Brightness:     s.Brightness,
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		GlowIntensity:  s.Glow,
		Pulse:          s.Pulse,
		PulseSpeed:     s.PulseSpeed,
		Flash:          s.Flash,
		Talking:        s.Talking,
		Sparkle:        s.Sparkle,
		LoveBubbles:    s.LoveBubbles,
		AlertPolice:    s.AlertPolice,
		ShowAlertText:  s.ShowAlertText,
	}, nil
}

// Entry is one resolved preset table row.
type Entry struct {
	Params     face.Params
	Transition time.Duration
}

// Table maps states to authored presets. Missing or unparseable entries fall
// back to the built-in table, so a corrupted tuning file can only ever
// degrade to defaults.
type Table struct {
	entries map[face.State]Entry
}

// LoadTable reads a preset document and resolves it against the built-in
// states. Entries naming unknown states or carrying bad values are skipped
// with a log line.
func LoadTable(filename string) (*Table, error) {
	file, err := LoadSpec[PresetFile](filename)
	if err != nil {
		return nil, err
	}
	t := &Table{entries: make(map[face.State]Entry, len(file.Presets))}
	for _, spec := range file.Presets {
		state, ok := face.StateByName(spec.State)
		if !ok {
			log.Printf("facespec: %s: unknown state %q, skipping", filename, spec.State)
			continue
		}
		p, err := spec.Params()
		if err != nil {
			log.Printf("facespec: %s: state %q: %v, using built-in", filename, spec.State, err)
			continue
		}
		d := time.Duration(spec.TransitionMs) * time.Millisecond
		if d <= 0 {
			_, d, _ = face.Preset(state)
		}
		t.entries[state] = Entry{Params: p, Transition: d}
	}
	return t, nil
}

// Lookup resolves a state against the authored table, falling back to the
// built-in presets. Out-of-range states are rejected either way.
func (t *Table) Lookup(s face.State) (face.Params, time.Duration, bool) {
	if !s.Valid() {
		return face.Params{}, 0, false
	}
	if t != nil {
		if e, ok := t.entries[s]; ok {
			return e.Params, e.Transition, true
		}
	}
	return face.Preset(s)
}

// Overridden reports whether the authored document supplied the state.
func (t *Table) Overridden(s face.State) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[s]
	return ok
}

var palette = map[string]uint32{
	"cyan":        face.ColorCyan,
	"teal":        face.ColorTeal,
	"coral":       face.ColorCoral,
	"blue":        face.ColorBlue,
	"lavender":    face.ColorLavender,
	"white":       face.ColorWhite,
	"pink":        face.ColorPink,
	"red":         face.ColorRed,
	"police_blue": face.ColorPoliceBlue,
	"background":  face.ColorBackground,
	"amber":       face.ColorAmber,
	"orange":      face.ColorOrange,
	"grey":        face.ColorGrey,
}

// ParseColor accepts a palette name or a #RRGGBB literal.
func ParseColor(s string) (uint32, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := palette[name]; ok {
		return hex, nil
	}
	if h, found := strings.CutPrefix(name, "#"); found {
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil || len(h) != 6 {
			return 0, fmt.Errorf("bad colour literal %q", s)
		}
		return uint32(v), nil
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}

// ParseEyeStyle maps a style name to its variant.
func ParseEyeStyle(s string) (face.EyeStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "squared", "":
		return face.EyeSquared, nil
	case "heart":
		return face.EyeHeart, nil
	case "crescent":
		return face.EyeCrescent, nil
	case "closed":
		return face.EyeClosed, nil
	case "worried":
		return face.EyeWorried, nil
	case "police":
		return face.EyePolice, nil
	}
	return 0, fmt.Errorf("unknown eye style %q", s)
}
