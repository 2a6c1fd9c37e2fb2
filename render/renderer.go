package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/content"
	"github.com/lixenwraith/excuse-wheel/wheel"
)

const (
	titleText    = "* WHEEL OF EXCUSES *"
	labelIdle    = "SPIN THE WHEEL!"
	labelSpin    = "Spinning..."
	hintText     = "space/enter spin  m mute  q quit"
	pointerRune  = '▼'
	bulbRune     = '●'
	hubInnerFrac = 0.18
	hubOuterFrac = 0.30
)

// HUD carries shell state that is not part of the wheel
type HUD struct {
	Muted  bool
	Status string // Debug status line, empty hides it
}

// Renderer draws wheel snapshots; holds no mutable state
type Renderer struct {
	catalog *content.Catalog

	rim       colorful.Color
	bulbGold  colorful.Color
	bulbRed   colorful.Color
	hubBright colorful.Color
	hubDark   colorful.Color
}

// NewRenderer creates a renderer for catalog
func NewRenderer(catalog *content.Catalog) *Renderer {
	return &Renderer{
		catalog:   catalog,
		rim:       content.RimGold.Color(),
		bulbGold:  content.BulbGold.Color(),
		bulbRed:   content.BulbRed.Color(),
		hubBright: content.HubBright.Color(),
		hubDark:   content.HubDark.Color(),
	}
}

// Draw paints a full frame and returns the layout used, for hit testing
func (r *Renderer) Draw(screen tcell.Screen, snap wheel.Snapshot, now time.Time, hud HUD) Layout {
	w, h := screen.Size()
	l := ComputeLayout(w, h)

	screen.Fill(' ', style(ColorText, ColorBackground))

	drawCentered(screen, l.Title.X, l.Title.Y, l.Title.W, titleText, style(r.rim, ColorBackground).Bold(true))

	r.drawDisc(screen, l, snap.DisplayRotation)
	r.drawBulbs(screen, l, snap.Spinning, now)
	screen.SetContent(l.CenterX, l.CenterY-l.RadiusY-wheelHeadroom, pointerRune, nil, style(r.rim, ColorBackground))

	r.drawButton(screen, l, snap.Spinning)
	r.drawResult(screen, l, snap, now)
	r.drawStatus(screen, l, hud)

	return l
}

// SliceAt returns the slice index under the cell (x, y), false outside the slice ring
func (r *Renderer) SliceAt(l Layout, rotation float64, x, y int) (int, bool) {
	dx := float64(x-l.CenterX) / float64(l.RadiusX)
	dy := float64(y-l.CenterY) / float64(l.RadiusY)
	d := math.Hypot(dx, dy)
	if d <= hubOuterFrac || d >= r.rimInner(l) {
		return 0, false
	}
	return r.sliceAtAngle(rotation, dx, dy), true
}

// rimInner is the normalized radius where the one-row rim begins
func (r *Renderer) rimInner(l Layout) float64 {
	return 1 - 1/float64(l.RadiusY+1)
}

// sliceAtAngle maps a screen direction to a slice; theta is clockwise from the pointer
func (r *Renderer) sliceAtAngle(rotation, dx, dy float64) int {
	theta := math.Atan2(dx, -dy) * 180 / math.Pi
	return wheel.SliceIndex(rotation-theta, r.catalog.Len())
}

func (r *Renderer) drawDisc(screen tcell.Screen, l Layout, rotation float64) {
	rimInner := r.rimInner(l)

	for y := l.CenterY - l.RadiusY; y <= l.CenterY+l.RadiusY; y++ {
		for x := l.CenterX - l.RadiusX; x <= l.CenterX+l.RadiusX; x++ {
			dx := float64(x-l.CenterX) / float64(l.RadiusX)
			dy := float64(y-l.CenterY) / float64(l.RadiusY)
			d := math.Hypot(dx, dy)
			if d > 1 {
				continue
			}

			var c colorful.Color
			switch {
			case d <= hubInnerFrac:
				c = r.hubBright
			case d <= hubOuterFrac:
				c = Blend(r.hubBright, r.hubDark, (d-hubInnerFrac)/(hubOuterFrac-hubInnerFrac))
			case d >= rimInner:
				c = r.rim
			default:
				c = r.catalog.Color(r.sliceAtAngle(rotation, dx, dy))
			}
			screen.SetContent(x, y, ' ', nil, style(ColorText, c))
		}
	}
}

// drawBulbs places the ring just outside the rim; odd and even bulbs swap while spinning
func (r *Renderer) drawBulbs(screen tcell.Screen, l Layout, spinning bool, now time.Time) {
	phase := int64(0)
	if spinning {
		phase = now.UnixNano() / int64(constant.BulbPulseInterval) % 2
	}

	rx := float64(l.RadiusX + 2)
	ry := float64(l.RadiusY + 1)
	for i := 0; i < constant.BulbCount; i++ {
		a := float64(i) * 2 * math.Pi / constant.BulbCount
		bx := l.CenterX + int(math.Round(rx*math.Sin(a)))
		by := l.CenterY - int(math.Round(ry*math.Cos(a)))

		base := r.bulbGold
		if i%2 == 1 {
			base = r.bulbRed
		}
		if spinning && int64(i%2) != phase {
			base = Blend(base, ColorBackground, 0.6)
		}
		screen.SetContent(bx, by, bulbRune, nil, style(base, ColorBackground))
	}
}

func (r *Renderer) drawButton(screen tcell.Screen, l Layout, spinning bool) {
	bg, fg, label := ColorButton, ColorText, labelIdle
	if spinning {
		bg, fg, label = ColorButtonDim, ColorHint, labelSpin
	}

	st := style(fg, bg).Bold(!spinning)
	for row := 0; row < l.Button.H; row++ {
		fillRow(screen, l.Button.X, l.Button.Y+row, l.Button.W, st)
	}
	drawCentered(screen, l.Button.X, l.Button.Y+l.Button.H/2, l.Button.W, label, st)
}

// drawResult fades the text in from the background color; panel rows stay reserved when hidden
func (r *Renderer) drawResult(screen tcell.Screen, l Layout, snap wheel.Snapshot, now time.Time) {
	if !snap.ShowResult || snap.Selected == nil {
		return
	}

	alpha := 1.0
	if elapsed := now.Sub(snap.ResultAt); elapsed < constant.ResultFadeDuration {
		alpha = max(float64(elapsed)/float64(constant.ResultFadeDuration), 0)
	}

	accent := Blend(ColorBackground, snap.Selected.Color, alpha)
	text := Blend(ColorBackground, ColorText, alpha)

	fillRow(screen, l.Panel.X, l.Panel.Y, l.Panel.W, style(text, accent))

	lines := wrapText(snap.Selected.Text, l.Panel.W-4)
	maxLines := l.Panel.H - 2
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateWithEllipsis(lines[maxLines-1], l.Panel.W-4)
	}
	for i, line := range lines {
		drawCentered(screen, l.Panel.X, l.Panel.Y+1+i, l.Panel.W, line, style(text, ColorBackground).Bold(true))
	}

	fillRow(screen, l.Panel.X, l.Panel.Y+l.Panel.H-1, l.Panel.W, style(text, accent))
}

func (r *Renderer) drawStatus(screen tcell.Screen, l Layout, hud HUD) {
	st := style(ColorHint, ColorBackground)
	n := drawText(screen, 1, l.Status.Y, l.Status.W-1, hintText, st)

	right := ""
	if hud.Muted {
		right = "[muted]"
	}
	if hud.Status != "" {
		right = fmt.Sprintf("%s %s", hud.Status, right)
	}
	if right == "" {
		return
	}

	x := n + 3
	drawText(screen, x, l.Status.Y, l.Status.W-x, right, st)
}
