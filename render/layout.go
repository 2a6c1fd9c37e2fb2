package render

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout positions every widget for a screen size
type Layout struct {
	Width, Height int

	// Wheel disc, RadiusX is twice RadiusY to correct the terminal cell aspect
	CenterX, CenterY int
	RadiusX, RadiusY int

	Title  Rect
	Button Rect
	Panel  Rect // Reserved for the result whether or not it is visible
	Status Rect
}

const (
	minRadiusY = 3
	buttonH    = 3
	panelH     = 6

	// Rows above the disc taken by the bulb ring and pointer
	wheelHeadroom = 2

	// Side-by-side layout needs at least this many columns
	wideLayoutMinWidth = 72
)

// ComputeLayout arranges the wheel left of the controls on wide screens and above them otherwise
func ComputeLayout(width, height int) Layout {
	l := Layout{
		Width:  width,
		Height: height,
		Title:  Rect{X: 0, Y: 0, W: width, H: 1},
		Status: Rect{X: 0, Y: height - 1, W: width, H: 1},
	}

	top := 2
	bottom := height - 2 // Last usable row above the status line

	if width >= wideLayoutMinWidth {
		// Wheel takes the left 40%
		wheelW := width * 40 / 100
		areaH := bottom - top + 1

		ry := min((areaH-2*wheelHeadroom-1)/2, (wheelW-6)/4)
		l.RadiusY = max(ry, minRadiusY)
		l.RadiusX = 2 * l.RadiusY
		l.CenterX = 2 + wheelW/2
		l.CenterY = top + areaH/2

		colX := wheelW + 6
		colW := width - colX - 2
		l.Button = Rect{X: colX, Y: top + 2, W: colW, H: buttonH}
		l.Panel = Rect{X: colX, Y: l.Button.Y + buttonH + 2, W: colW, H: panelH}
		return l
	}

	// Stacked: controls take the bottom rows
	l.Panel = Rect{X: 2, Y: bottom - panelH + 1, W: width - 4, H: panelH}
	l.Button = Rect{X: 2, Y: l.Panel.Y - buttonH - 1, W: width - 4, H: buttonH}

	areaH := l.Button.Y - 1 - top
	ry := min((areaH-2*wheelHeadroom-1)/2, (width-6)/4)
	l.RadiusY = max(ry, minRadiusY)
	l.RadiusX = 2 * l.RadiusY
	l.CenterX = width / 2
	l.CenterY = top + wheelHeadroom + l.RadiusY
	return l
}
