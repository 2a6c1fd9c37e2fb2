package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/excuse-wheel/audio"
	"github.com/lixenwraith/excuse-wheel/engine"
	"github.com/lixenwraith/excuse-wheel/input"
	"github.com/lixenwraith/excuse-wheel/render"
	"github.com/lixenwraith/excuse-wheel/status"
	"github.com/lixenwraith/excuse-wheel/wheel"
)

// app binds the terminal to the wheel: input in, frames out
type app struct {
	screen   tcell.Screen
	keys     *input.KeyTable
	wheel    *wheel.Wheel
	sounds   *audio.SoundManager
	renderer *render.Renderer
	clock    engine.Clock
	metrics  *status.Registry
	debug    bool

	layout      render.Layout // Last drawn, used for mouse hit testing
	buttonDown  bool
	statusAudio *status.AtomicString
}

func newApp(screen tcell.Screen, w *wheel.Wheel, sounds *audio.SoundManager, clock engine.Clock, metrics *status.Registry, debug bool) *app {
	return &app{
		screen:      screen,
		keys:        input.DefaultKeyTable(),
		wheel:       w,
		sounds:      sounds,
		renderer:    render.NewRenderer(w.Catalog()),
		clock:       clock,
		metrics:     metrics,
		debug:       debug,
		statusAudio: metrics.Strings.Get("audio.mode"),
	}
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventMouse); ok {
		// Spin on press, not while held
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.buttonDown {
			x, y := ev.Position()
			if a.layout.Button.Contains(x, y) {
				a.spin()
			}
		}
		a.buttonDown = pressed
		return true
	}

	switch a.keys.Translate(ev) {
	case input.IntentQuit:
		return false
	case input.IntentSpin:
		a.spin()
	case input.IntentToggleMute:
		audible := a.sounds.ToggleMute()
		log.Printf("sound audible=%v", audible)
	case input.IntentResize:
		a.screen.Sync()
		a.draw()
	}
	return true
}

func (a *app) spin() {
	if !a.wheel.Spin() {
		log.Printf("spin ignored, wheel busy")
	}
}

// draw renders one frame from a fresh snapshot
func (a *app) draw() {
	hud := render.HUD{Muted: a.sounds.IsMuted()}
	if a.debug {
		a.statusAudio.Store(a.sounds.Mode())
		hud.Status = a.metrics.Line()
	}

	a.layout = a.renderer.Draw(a.screen, a.wheel.Snapshot(), a.clock.Now(), hud)
	a.screen.Show()
}
