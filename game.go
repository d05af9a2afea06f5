package main

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/roundface/choreo"
	"github.com/milk9111/roundface/ebitencanvas"
	"github.com/milk9111/roundface/face"
	"github.com/milk9111/roundface/facespec"
)

// specDir is where on-disk tuning overrides live, mirroring the embedded
// facespec package layout.
const specDir = "facespec"

var stateKeys = map[ebiten.Key]face.State{
	ebiten.KeyDigit1: face.StateIdle,
	ebiten.KeyDigit2: face.StatePresence,
	ebiten.KeyDigit3: face.StateHappy,
	ebiten.KeyDigit4: face.StateLove,
	ebiten.KeyDigit5: face.StateListening,
	ebiten.KeyDigit6: face.StateConcerned,
	ebiten.KeyDigit7: face.StateAlertFall,
	ebiten.KeyDigit8: face.StateAlertStill,
	ebiten.KeyDigit9: face.StateAlertBaby,
	ebiten.KeyDigit0: face.StateAlertHeart,
	ebiten.KeyQ:      face.StateNight,
	ebiten.KeyW:      face.StateTalking,
	ebiten.KeyE:      face.StateBoot,
	ebiten.KeyR:      face.StateSetup,
	ebiten.KeyT:      face.StateError,
}

type Game struct {
	engine *face.Engine
	canvas *ebitencanvas.Canvas

	presetFile string
	presets    *facespec.Table
	watcher    *facespec.Watcher

	player       *choreo.Player
	scriptPaused bool

	ui     *DebugUI
	showUI bool

	gaze face.Gaze

	dirty atomic.Bool
	prims []face.Primitive
}

func NewGame(presetFile, scriptName string, watch bool) (*Game, error) {
	g := &Game{
		presetFile: presetFile,
		canvas:     ebitencanvas.New(nil),
	}
	g.engine = face.New(face.Config{Surface: g})

	table, err := facespec.LoadTable(presetFile)
	if err != nil {
		log.Printf("preset tuning %s unavailable, using built-ins: %v", presetFile, err)
	} else {
		g.presets = table
	}

	if watch {
		if _, err := os.Stat(specDir); err == nil {
			w, err := facespec.NewWatcher(specDir)
			if err != nil {
				log.Printf("spec watch disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}

	if scriptName != "" {
		seq, err := choreo.CompileScript(scriptName)
		if err != nil {
			return nil, err
		}
		g.player = choreo.NewPlayer(seq)
	}

	g.ui = NewDebugUI(g)
	g.SetState(face.StateBoot)
	g.SetState(face.StateIdle)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Invalidate implements face.Surface; the engine calls it after every tick
// while the face is visible.
func (g *Game) Invalidate() {
	g.dirty.Store(true)
}

// SetState resolves a state through the tuning table before handing the
// preset to the engine, so authored overrides win over built-ins.
func (g *Game) SetState(s face.State) bool {
	p, d, ok := g.presets.Lookup(s)
	if !ok {
		return false
	}
	g.engine.SetParams(&p, d)
	return true
}

func (g *Game) TriggerBlink()        { g.engine.TriggerBlink() }
func (g *Game) LookAt(x, y float64)  { g.engine.LookAt(x, y) }
func (g *Game) SetVisible(show bool) { g.engine.SetVisible(show) }

func (g *Game) Update() error {
	g.drainSpecEvents()
	g.handleInput()

	if g.player != nil && !g.scriptPaused {
		g.player.Tick(g)
	}
	g.engine.Tick()

	if g.showUI {
		g.ui.Update()
	}
	return nil
}

func (g *Game) drainSpecEvents() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("spec changed: %s", path)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("spec watch: %v", err)
		default:
			if reload {
				table, err := facespec.LoadTable(g.presetFile)
				if err != nil {
					log.Printf("spec reload failed, keeping previous table: %v", err)
					return
				}
				g.presets = table
				g.ui = NewDebugUI(g)
			}
			return
		}
	}
}

func (g *Game) handleInput() {
	for key, state := range stateKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.SetState(state)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.TriggerBlink()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.SetVisible(!g.engine.Visible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showUI = !g.showUI
	}
	if g.player != nil && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scriptPaused = !g.scriptPaused
	}

	moved := false
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.gaze.X -= 3
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.gaze.X += 3
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.gaze.Y -= 2
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.gaze.Y += 2
		moved = true
	}
	if moved {
		g.gaze.X = clampGaze(g.gaze.X, face.GazeMaxX)
		g.gaze.Y = clampGaze(g.gaze.Y, face.GazeMaxY)
		g.LookAt(g.gaze.X, g.gaze.Y)
	}
}

func clampGaze(v, limit float64) float64 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.engine.Visible() {
		if g.dirty.Swap(false) {
			g.prims = face.Render(g.engine.Params(), g.engine.Phases())
		}
		g.canvas.Retarget(screen)
		face.Draw(g.canvas, g.prims)
	}

	if g.showUI {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return face.DisplayWidth, face.DisplayHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
