package face

import (
	"math/rand"
	"sync"
	"time"

	"github.com/milk9111/roundface/common"
)

// TickPeriod is the fixed animation step the engine is tuned for (~30 Hz).
// The host scheduler is expected to call Engine.Tick once per period.
const TickPeriod = 33 * time.Millisecond

// Surface is the host drawing target. The engine never draws; it only asks
// the surface to schedule a redraw after a tick while visible.
type Surface interface {
	Invalidate()
}

// Config configures a new Engine. The zero value is usable: no surface,
// time-seeded randomness, the default tick period.
type Config struct {
	// Surface receives redraw requests. May be nil.
	Surface Surface
	// Rand drives blink and wander variance. Inject a seeded source for
	// deterministic tests. May be nil.
	Rand *rand.Rand
	// TickPeriod overrides the assumed interval between Tick calls.
	TickPeriod time.Duration
}

// Engine owns all animation state for one face instance: the current and
// target parameter snapshots, transition progress, and the micro-animation
// timers. All mutation happens inside Tick plus the setter methods, which are
// safe to call from a different goroutine than the ticker.
type Engine struct {
	mu sync.Mutex

	cur Params
	tgt Params

	// transition progress counted in whole ticks so it settles exactly:
	// progress = transDone/transTotal in [0,1], 1 = settled.
	transDone  int
	transTotal int

	blinkTimer int // ticks until the next spontaneous blink
	blinkPhase int // counts down through close+open while nonzero
	wanderTimer int

	frame   uint64
	visible bool

	surface Surface
	rng     *rand.Rand
	tick    time.Duration
}

// New creates an engine showing the default idle expression.
func New(cfg Config) *Engine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tick := cfg.TickPeriod
	if tick <= 0 {
		tick = TickPeriod
	}
	p := DefaultParams()
	return &Engine{
		cur:         p,
		tgt:         p,
		transDone:   1,
		transTotal:  1,
		blinkTimer:  initialBlinkDelay,
		wanderTimer: initialWanderDelay,
		visible:     true,
		surface:     cfg.Surface,
		rng:         rng,
		tick:        tick,
	}
}

// Tick advances the transition and the micro-animation timers by one fixed
// step, then requests a redraw if the face is visible. It must not be
// re-entered concurrently with itself; one periodic timer, one callback.
func (e *Engine) Tick() {
	e.mu.Lock()
	e.frame++
	e.animateStep()
	e.microStep()
	visible := e.visible
	surface := e.surface
	e.mu.Unlock()

	if visible && surface != nil {
		surface.Invalidate()
	}
}

// animateStep advances the current snapshot toward the target. Continuous
// fields ease while a transition is in flight; style, colours and effect
// flags are snapped from the target every tick regardless of progress.
func (e *Engine) animateStep() {
	if e.transDone < e.transTotal {
		e.transDone++
		t := common.EaseInOut(float64(e.transDone) / float64(e.transTotal))
		e.cur.EyeOpenness = common.Lerp(e.cur.EyeOpenness, e.tgt.EyeOpenness, t)
		e.cur.EyeSize = common.Lerp(e.cur.EyeSize, e.tgt.EyeSize, t)
		e.cur.PupilSize = common.Lerp(e.cur.PupilSize, e.tgt.PupilSize, t)
		e.cur.Gaze.X = common.Lerp(e.cur.Gaze.X, e.tgt.Gaze.X, t)
		e.cur.Gaze.Y = common.Lerp(e.cur.Gaze.Y, e.tgt.Gaze.Y, t)
		e.cur.MouthSmile = common.Lerp(e.cur.MouthSmile, e.tgt.MouthSmile, t)
		e.cur.MouthOpen = common.Lerp(e.cur.MouthOpen, e.tgt.MouthOpen, t)
		e.cur.MouthWidth = common.Lerp(e.cur.MouthWidth, e.tgt.MouthWidth, t)
		e.cur.Happiness = common.Lerp(e.cur.Happiness, e.tgt.Happiness, t)
		e.cur.Brightness = common.Lerp(e.cur.Brightness, e.tgt.Brightness, t)
		e.cur.GlowIntensity = common.Lerp(e.cur.GlowIntensity, e.tgt.GlowIntensity, t)
	}
	e.cur.EyeStyle = e.tgt.EyeStyle
	e.cur.PrimaryColor = e.tgt.PrimaryColor
	e.cur.SecondaryColor = e.tgt.SecondaryColor
	e.cur.Pulse = e.tgt.Pulse
	e.cur.PulseSpeed = e.tgt.PulseSpeed
	e.cur.Flash = e.tgt.Flash
	e.cur.Talking = e.tgt.Talking
	e.cur.Sparkle = e.tgt.Sparkle
	e.cur.LoveBubbles = e.tgt.LoveBubbles
	e.cur.AlertPolice = e.tgt.AlertPolice
	e.cur.ShowAlertText = e.tgt.ShowAlertText
}

// SetParams sets a new target expression. A nil target is ignored. A zero or
// negative duration snaps the current snapshot to the target immediately;
// otherwise progress restarts and the per-tick speed derives from the
// duration rounded to whole ticks.
func (e *Engine) SetParams(p *Params, d time.Duration) {
	if p == nil {
		return
	}
	target := *p
	target.Gaze.X = common.Clamp(target.Gaze.X, -GazeMaxX, GazeMaxX)
	target.Gaze.Y = common.Clamp(target.Gaze.Y, -GazeMaxY, GazeMaxY)

	e.mu.Lock()
	defer e.mu.Unlock()
	if d <= 0 {
		e.cur = target
		e.tgt = target
		e.transDone, e.transTotal = 1, 1
		return
	}
	e.tgt = target
	ticks := int((d + e.tick/2) / e.tick)
	if ticks < 1 {
		ticks = 1
	}
	e.transDone, e.transTotal = 0, ticks
}

// SetState looks up a preset and applies it with its authored transition
// duration. Unknown states are a no-op and report false.
func (e *Engine) SetState(s State) bool {
	p, d, ok := Preset(s)
	if !ok {
		return false
	}
	e.SetParams(&p, d)
	return true
}

// Params returns a copy of the current snapshot.
func (e *Engine) Params() Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur
}

// Target returns a copy of the target snapshot.
func (e *Engine) Target() Params {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tgt
}

// Progress reports transition progress in [0,1]; 1 means settled.
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return float64(e.transDone) / float64(e.transTotal)
}

// Frame reports the number of ticks since creation.
func (e *Engine) Frame() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

// Phases captures the auxiliary per-frame values the renderer consumes
// alongside the snapshot.
func (e *Engine) Phases() Phases {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Phases{Frame: e.frame, BlinkMul: blinkMul(e.blinkPhase)}
}

// TriggerBlink force-starts a blink cycle. While a blink is already in
// progress the call is a no-op; a new blink cannot start mid-cycle.
func (e *Engine) TriggerBlink() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.blinkPhase == 0 {
		e.blinkPhase = blinkHalfTicks * 2
	}
}

// LookAt sets the target gaze, clamped to bounds. The wander timer will
// overwrite it when it next fires. As with any target change, the rendered
// gaze only moves while a transition is in flight.
func (e *Engine) LookAt(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tgt.Gaze.X = common.Clamp(x, -GazeMaxX, GazeMaxX)
	e.tgt.Gaze.Y = common.Clamp(y, -GazeMaxY, GazeMaxY)
}

// SetVisible shows or hides the face. A hidden face still ticks but stops
// requesting redraws.
func (e *Engine) SetVisible(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = v
}

// Visible reports whether redraws are being requested.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}
