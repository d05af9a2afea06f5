package face

import (
	"math"

	"github.com/milk9111/roundface/common"
)

// Blink and wander timing, in ticks.
const (
	blinkHalfTicks     = 6 // closing half and opening half each take this long
	initialBlinkDelay  = 120
	blinkDelayBase     = 180
	blinkDelayJitter   = 300
	initialWanderDelay = 60
	wanderDelayBase    = 120
	wanderDelayJitter  = 240

	// Wander offsets stay well inside the hard gaze bounds.
	wanderRangeX = 6.0
	wanderRangeY = 3.0
)

// strobePeriod is the number of frames between red/blue alternations in
// police mode.
const strobePeriod = 6

// microStep runs the independent blink and wander timers. Blink only engages
// for lidded eye styles; wander rewrites the target gaze so the offset
// inherits transition smoothing.
func (e *Engine) microStep() {
	if e.cur.EyeStyle.blinks() {
		e.blinkTimer--
		if e.blinkTimer <= 0 && e.blinkPhase == 0 {
			e.blinkPhase = blinkHalfTicks * 2
			e.blinkTimer = blinkDelayBase + e.rng.Intn(blinkDelayJitter)
		}
	}
	if e.blinkPhase > 0 {
		e.blinkPhase--
	}

	e.wanderTimer--
	if e.wanderTimer <= 0 {
		e.tgt.Gaze.X = (float64(e.rng.Intn(100))/100 - 0.5) * wanderRangeX
		e.tgt.Gaze.Y = (float64(e.rng.Intn(100))/100 - 0.5) * wanderRangeY
		e.wanderTimer = wanderDelayBase + e.rng.Intn(wanderDelayJitter)
	}
}

// blinkMul derives the lid multiplier from the blink phase counter: 1 when
// not blinking, ramping to 0 through the closing half and back to 1 through
// the opening half.
func blinkMul(phase int) float64 {
	if phase <= 0 {
		return 1
	}
	if phase > blinkHalfTicks {
		return common.Lerp(1, 0, float64(blinkHalfTicks*2-phase)/blinkHalfTicks)
	}
	return common.Lerp(0, 1, float64(blinkHalfTicks-phase)/blinkHalfTicks)
}

// glowLevel modulates glow intensity with a breathing or pulsing sine,
// depending on the pulse flag. Stateless in the frame counter.
func glowLevel(p Params, frame uint64) float64 {
	g := p.GlowIntensity * p.Brightness
	if p.Pulse {
		spd := p.PulseSpeed
		if spd <= 0 {
			spd = 1
		}
		g *= 0.3 + 0.7*(0.5+0.5*math.Sin(float64(frame)*spd*0.05))
	} else {
		g *= 0.6 + 0.4*(0.5+0.5*math.Sin(float64(frame)*0.02))
	}
	return g
}

// strobeFlip alternates every strobePeriod frames.
func strobeFlip(frame uint64) bool {
	return (frame/strobePeriod)%2 == 1
}

// strobeColors returns the left/right police eye colours for a frame.
func strobeColors(frame uint64) (left, right uint32) {
	if strobeFlip(frame) {
		return ColorRed, ColorPoliceBlue
	}
	return ColorPoliceBlue, ColorRed
}

// talkingMouthOpen overrides mouth openness with a speech oscillation.
func talkingMouthOpen(frame uint64) float64 {
	return 0.15 + 0.45*math.Abs(math.Sin(float64(frame)*0.14))
}
