// Package choreo plays scripted expression sequences against a face engine.
// A tengo script runs once and leaves a global `steps` array of maps plus an
// optional `loop` length in ticks:
//
//	steps := [
//	    {at: 0, state: "Boot"},
//	    {at: 12, state: "Idle"},
//	    {at: 90, blink: true},
//	    {at: 120, look: [3.0, -2.0]},
//	]
//	loop := 300
//
// The Player fires each step when the tick counter reaches its `at` value.
package choreo

import (
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/roundface/face"
)

// Target is the slice of the engine surface a sequence may drive.
type Target interface {
	SetState(face.State) bool
	TriggerBlink()
	LookAt(x, y float64)
	SetVisible(bool)
}

// Step is one timed action.
type Step struct {
	At int

	State    face.State
	HasState bool

	Blink bool

	Look    *face.Gaze
	Visible *bool
}

// Sequence is a compiled, ordered list of steps.
type Sequence struct {
	steps []Step
	loop  int
}

// Steps returns the ordered step list.
func (s *Sequence) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Loop reports the loop length in ticks, 0 when the sequence plays once.
func (s *Sequence) Loop() int { return s.loop }

// Compile runs a choreography script and extracts its step list. The name is
// only used in error messages.
func Compile(name string, src []byte) (*Sequence, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))
	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("choreo: run %s: %w", name, err)
	}

	raw := compiled.Get("steps").Array()
	if raw == nil {
		return nil, fmt.Errorf("choreo: %s: script must define a steps array", name)
	}

	seq := &Sequence{loop: compiled.Get("loop").Int()}
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("choreo: %s: step %d is not a map", name, i)
		}
		step, err := parseStep(m)
		if err != nil {
			return nil, fmt.Errorf("choreo: %s: step %d: %w", name, i, err)
		}
		seq.steps = append(seq.steps, step)
	}
	sort.SliceStable(seq.steps, func(i, j int) bool {
		return seq.steps[i].At < seq.steps[j].At
	})
	return seq, nil
}

func parseStep(m map[string]interface{}) (Step, error) {
	step := Step{}
	at, ok := toInt(m["at"])
	if !ok || at < 0 {
		return Step{}, fmt.Errorf("missing or negative at")
	}
	step.At = at

	if name, ok := m["state"].(string); ok {
		state, found := face.StateByName(name)
		if !found {
			return Step{}, fmt.Errorf("unknown state %q", name)
		}
		step.State = state
		step.HasState = true
	}
	if b, ok := m["blink"].(bool); ok {
		step.Blink = b
	}
	if raw, ok := m["look"].([]interface{}); ok {
		if len(raw) != 2 {
			return Step{}, fmt.Errorf("look wants [x, y]")
		}
		x, okX := toFloat(raw[0])
		y, okY := toFloat(raw[1])
		if !okX || !okY {
			return Step{}, fmt.Errorf("look wants numeric [x, y]")
		}
		step.Look = &face.Gaze{X: x, Y: y}
	}
	if v, ok := m["visible"].(bool); ok {
		visible := v
		step.Visible = &visible
	}
	return step, nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Player advances a sequence one tick at a time, firing due steps against
// the target.
type Player struct {
	seq  *Sequence
	tick int
	next int
	done bool
}

func NewPlayer(seq *Sequence) *Player {
	return &Player{seq: seq}
}

// Done reports whether a non-looping sequence has fired its last step.
func (p *Player) Done() bool { return p.done }

// Tick fires every step due at the current tick, then advances. Looping
// sequences rewind when the loop length elapses.
func (p *Player) Tick(t Target) {
	if p.seq == nil || p.done {
		return
	}
	for p.next < len(p.seq.steps) && p.seq.steps[p.next].At <= p.tick {
		fire(t, p.seq.steps[p.next])
		p.next++
	}
	p.tick++
	if p.seq.loop > 0 && p.tick >= p.seq.loop {
		p.tick = 0
		p.next = 0
	} else if p.seq.loop <= 0 && p.next >= len(p.seq.steps) {
		p.done = true
	}
}

func fire(t Target, s Step) {
	if s.HasState {
		t.SetState(s.State)
	}
	if s.Blink {
		t.TriggerBlink()
	}
	if s.Look != nil {
		t.LookAt(s.Look.X, s.Look.Y)
	}
	if s.Visible != nil {
		t.SetVisible(*s.Visible)
	}
}
