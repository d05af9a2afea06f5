package face

// Display geometry. The target panel is a 466px round LCD; every layout
// constant below is tuned against it.
const (
	DisplayWidth  = 466
	DisplayHeight = 466

	CenterX    = DisplayWidth / 2
	CenterY    = DisplayHeight / 2
	FaceRadius = DisplayWidth / 2

	eyeSpacing   = 82  // half-distance between eye centres
	eyeYOffset   = -30 // eyes sit above centre
	eyeWidth     = 80
	eyeHeight    = 86
	eyeRadius    = 18 // corner radius of the rounded-rect eyes
	mouthYOffset = 80
	mouthBaseW   = 58 // base mouth half-width

	highlightSize   = 18
	highlightRadius = 5

	// CurveSegments is the fixed sample count used to flatten quadratic
	// bezier strokes into polylines.
	CurveSegments = 16
)

// Gaze bounds accepted by LookAt. Requests outside are clamped, not rejected.
const (
	GazeMaxX = 15.0
	GazeMaxY = 10.0
)

// Colour palette, 0xRRGGBB.
const (
	ColorCyan       = 0x38BDF8
	ColorTeal       = 0x2DD4BF
	ColorCoral      = 0xFB923C
	ColorBlue       = 0x60A5FA
	ColorLavender   = 0xA78BFA
	ColorWhite      = 0xE2E8F0
	ColorPink       = 0xF472B6
	ColorRed        = 0xFF3333
	ColorPoliceBlue = 0x3366FF
	ColorBackground = 0x0F172A
	ColorAmber      = 0xF59E0B
	ColorOrange     = 0xF97316
	ColorGrey       = 0x94A3B8
)

// EyeStyle selects which eye variant the renderer draws. The style also
// themes the companion mouth and decorations.
type EyeStyle int

const (
	// EyeSquared is the default rounded-rect eye with a white highlight.
	EyeSquared EyeStyle = iota
	// EyeHeart draws filled heart shapes (love state).
	EyeHeart
	// EyeCrescent draws happy ^_^ arcs.
	EyeCrescent
	// EyeClosed draws gentle sleep curves with drifting Z marks.
	EyeClosed
	// EyeWorried draws tilted squared eyes with brow lines.
	EyeWorried
	// EyePolice draws squared eyes flashing red/blue.
	EyePolice

	eyeStyleCount
)

func (s EyeStyle) String() string {
	switch s {
	case EyeSquared:
		return "squared"
	case EyeHeart:
		return "heart"
	case EyeCrescent:
		return "crescent"
	case EyeClosed:
		return "closed"
	case EyeWorried:
		return "worried"
	case EyePolice:
		return "police"
	}
	return "unknown"
}

// blinks reports whether the style has lids that can close. Blink timers only
// run for lidded styles.
func (s EyeStyle) blinks() bool {
	return s == EyeSquared || s == EyeWorried
}

// Gaze is an offset from the neutral forward gaze, in layout units.
type Gaze struct {
	X float64
	Y float64
}

// Params is the full expression state at one instant. It is a plain value:
// copied between the engine and the renderer, never shared by pointer.
//
// The float fields are interpolated during transitions; the style, colour and
// flag fields are snapped from the target on every tick.
type Params struct {
	// Eyes
	EyeOpenness float64 // 0=closed 1=fully open
	EyeSize     float64 // scale, 1.0 = normal
	PupilSize   float64 // 0=tiny 1=normal
	Gaze        Gaze
	EyeStyle    EyeStyle

	// Mouth
	MouthSmile float64 // -1=frown 0=neutral 1=big smile
	MouthOpen  float64 // 0=closed 1=wide open
	MouthWidth float64 // scale factor

	// Emotion
	Happiness float64 // 0..1

	// Overall
	Brightness     float64 // 0..1 master brightness, scales every primitive
	PrimaryColor   uint32  // 0xRRGGBB main feature colour
	SecondaryColor uint32  // 0xRRGGBB accent (cheeks, hearts)
	GlowIntensity  float64 // 0..1 ring glow

	// Effects (not interpolated)
	Pulse         bool
	PulseSpeed    float64
	Flash         bool
	Talking       bool
	Sparkle       bool
	LoveBubbles   bool
	AlertPolice   bool
	ShowAlertText bool
}
