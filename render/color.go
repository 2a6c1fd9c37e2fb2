package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed UI colors
var (
	ColorBackground = colorful.Color{R: 0.09, G: 0.05, B: 0.09}
	ColorText       = colorful.Color{R: 1, G: 1, B: 1}
	ColorButton     = colorful.Hsl(0, 0.75, 0.45)
	ColorButtonDim  = colorful.Hsl(0, 0.30, 0.30)
	ColorHint       = colorful.Color{R: 0.55, G: 0.55, B: 0.6}
)

// ToTcell converts a go-colorful color to a truecolor tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes from toward to by alpha in [0, 1] through RGB space
func Blend(from, to colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return from
	}
	if alpha >= 1 {
		return to
	}
	return from.BlendRgb(to, alpha)
}

// style builds a tcell style from foreground and background colors
func style(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}
