package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/excuse-wheel/content"
	"github.com/lixenwraith/excuse-wheel/wheel"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func regionText(screen tcell.Screen, rect Rect) string {
	var b strings.Builder
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TestPointerCellMatchesOutcome verifies the cell under the pointer has the selected slice's color
func TestPointerCellMatchesOutcome(t *testing.T) {
	cat := content.Default()
	r := NewRenderer(cat)
	screen := newTestScreen(t, 100, 30)
	w := cat.SliceWidth()

	rotations := []float64{0, 3000, 3000 + 0.45*w, 3000 - 0.45*w, 777.7, 1234.5}
	for _, rot := range rotations {
		l := r.Draw(screen, wheel.Snapshot{DisplayRotation: rot}, time.Now(), HUD{})
		screen.Show()

		x, y := l.CenterX, l.CenterY-l.RadiusY/2
		want := wheel.SliceIndex(rot, cat.Len())

		idx, ok := r.SliceAt(l, rot, x, y)
		if !ok {
			t.Fatalf("Expected pointer cell inside slice ring at rotation %.2f", rot)
		}
		if idx != want {
			t.Errorf("Expected slice %d under pointer at rotation %.2f, got %d", want, rot, idx)
		}

		_, _, st, _ := screen.GetContent(x, y)
		_, bg, _ := st.Decompose()
		if bg != ToTcell(cat.Color(want)) {
			t.Errorf("Expected pointer cell color of slice %d at rotation %.2f, got %v", want, rot, bg)
		}
	}
}

// TestSliceOrderClockwise verifies the slice right of the pointer is the next index at rotation 0
func TestSliceOrderClockwise(t *testing.T) {
	cat := content.Default()
	r := NewRenderer(cat)
	l := ComputeLayout(100, 30)

	// Quarter turn clockwise from the pointer is at 3 o'clock
	x, y := l.CenterX+l.RadiusX/2, l.CenterY
	idx, ok := r.SliceAt(l, 0, x, y)
	if !ok {
		t.Fatal("Expected 3 o'clock cell inside slice ring")
	}

	// 27 slices of 13.33°: 90° lands in slice 7
	want := 7
	if idx != want {
		t.Errorf("Expected slice %d at 3 o'clock, got %d", want, idx)
	}
}

func TestSliceAtOutsideRing(t *testing.T) {
	r := NewRenderer(content.Default())
	l := ComputeLayout(100, 30)

	if _, ok := r.SliceAt(l, 0, l.CenterX, l.CenterY); ok {
		t.Error("Expected hub cell to be outside slice ring")
	}
	if _, ok := r.SliceAt(l, 0, l.CenterX, l.CenterY-l.RadiusY); ok {
		t.Error("Expected rim cell to be outside slice ring")
	}
	if _, ok := r.SliceAt(l, 0, l.CenterX+l.RadiusX+5, l.CenterY); ok {
		t.Error("Expected cell beyond radius to be outside slice ring")
	}
}

func TestButtonLabel(t *testing.T) {
	r := NewRenderer(content.Default())
	screen := newTestScreen(t, 100, 30)

	l := r.Draw(screen, wheel.Snapshot{}, time.Now(), HUD{})
	screen.Show()
	row := rowText(screen, l.Button.Y+l.Button.H/2)
	if !strings.Contains(row, labelIdle) {
		t.Errorf("Expected idle label %q, got row %q", labelIdle, row)
	}

	l = r.Draw(screen, wheel.Snapshot{Spinning: true}, time.Now(), HUD{})
	screen.Show()
	row = rowText(screen, l.Button.Y+l.Button.H/2)
	if !strings.Contains(row, labelSpin) {
		t.Errorf("Expected spinning label %q, got row %q", labelSpin, row)
	}
	if strings.Contains(row, labelIdle) {
		t.Error("Expected idle label hidden while spinning")
	}

	_, _, st, _ := screen.GetContent(l.Button.X, l.Button.Y)
	_, bg, _ := st.Decompose()
	if bg != ToTcell(ColorButtonDim) {
		t.Errorf("Expected dimmed button while spinning, got %v", bg)
	}
}

func TestResultPanel(t *testing.T) {
	cat := content.Default()
	r := NewRenderer(cat)
	screen := newTestScreen(t, 100, 30)
	now := time.Now()

	// Hidden: panel rows blank
	l := r.Draw(screen, wheel.Snapshot{}, now, HUD{})
	screen.Show()
	if text := strings.TrimSpace(regionText(screen, l.Panel)); text != "" {
		t.Errorf("Expected blank result panel, got %q", text)
	}

	outcome := cat.Outcome(3)
	snap := wheel.Snapshot{Selected: &outcome, ShowResult: true, ResultAt: now.Add(-time.Second)}
	l = r.Draw(screen, snap, now, HUD{})
	screen.Show()

	text := regionText(screen, l.Panel)
	firstWord := strings.Fields(outcome.Text)[0]
	if !strings.Contains(text, firstWord) {
		t.Errorf("Expected panel to contain %q, got %q", firstWord, text)
	}

	// Selected but not flagged for display stays blank
	snap.ShowResult = false
	l = r.Draw(screen, snap, now, HUD{})
	screen.Show()
	if text := strings.TrimSpace(regionText(screen, l.Panel)); text != "" {
		t.Errorf("Expected blank panel without show-result, got %q", text)
	}
}

func TestResultFadeIn(t *testing.T) {
	cat := content.Default()
	r := NewRenderer(cat)
	screen := newTestScreen(t, 100, 30)
	now := time.Now()
	outcome := cat.Outcome(0)

	textFg := func(resultAt time.Time) tcell.Color {
		snap := wheel.Snapshot{Selected: &outcome, ShowResult: true, ResultAt: resultAt}
		l := r.Draw(screen, snap, now, HUD{})
		screen.Show()
		for y := l.Panel.Y + 1; y < l.Panel.Y+l.Panel.H-1; y++ {
			for x := l.Panel.X; x < l.Panel.X+l.Panel.W; x++ {
				ch, _, st, _ := screen.GetContent(x, y)
				if ch != ' ' {
					fg, _, _ := st.Decompose()
					return fg
				}
			}
		}
		t.Fatal("Expected result text in panel")
		return tcell.ColorDefault
	}

	if fg := textFg(now); fg != ToTcell(ColorBackground) {
		t.Errorf("Expected invisible text at fade start, got %v", fg)
	}
	if fg := textFg(now.Add(-time.Second)); fg != ToTcell(ColorText) {
		t.Errorf("Expected full text color after fade, got %v", fg)
	}
	mid := textFg(now.Add(-250 * time.Millisecond))
	if mid == ToTcell(ColorBackground) || mid == ToTcell(ColorText) {
		t.Errorf("Expected intermediate text color mid-fade, got %v", mid)
	}
}

func TestStatusLine(t *testing.T) {
	r := NewRenderer(content.Default())
	screen := newTestScreen(t, 100, 30)

	l := r.Draw(screen, wheel.Snapshot{}, time.Now(), HUD{Muted: true, Status: "wheel.spins=2"})
	screen.Show()

	row := rowText(screen, l.Status.Y)
	for _, want := range []string{"space/enter spin", "[muted]", "wheel.spins=2"} {
		if !strings.Contains(row, want) {
			t.Errorf("Expected status row to contain %q, got %q", want, row)
		}
	}
}

func TestLayoutFits(t *testing.T) {
	sizes := [][2]int{{100, 30}, {80, 24}, {60, 40}, {40, 30}, {200, 60}}
	for _, sz := range sizes {
		l := ComputeLayout(sz[0], sz[1])

		top := l.CenterY - l.RadiusY - wheelHeadroom
		bottom := l.CenterY + l.RadiusY + 1
		left := l.CenterX - l.RadiusX - 2
		right := l.CenterX + l.RadiusX + 2

		if l.RadiusX != 2*l.RadiusY {
			t.Errorf("%dx%d: expected RadiusX twice RadiusY, got %d/%d", sz[0], sz[1], l.RadiusX, l.RadiusY)
		}
		if top < 1 || left < 0 || right >= sz[0] {
			t.Errorf("%dx%d: wheel out of bounds (top=%d left=%d right=%d)", sz[0], sz[1], top, left, right)
		}

		if l.Button.X > right {
			// Side by side
			continue
		}
		if bottom >= l.Button.Y {
			t.Errorf("%dx%d: wheel bottom %d overlaps button at %d", sz[0], sz[1], bottom, l.Button.Y)
		}
		if l.Button.Y+l.Button.H > l.Panel.Y {
			t.Errorf("%dx%d: button overlaps panel", sz[0], sz[1])
		}
		if l.Panel.Y+l.Panel.H > l.Status.Y {
			t.Errorf("%dx%d: panel overlaps status", sz[0], sz[1])
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 3}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 7, true},
		{14, 5, false},
		{10, 8, false},
		{9, 6, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "my cat ate it", 20, []string{"my cat ate it"}},
		{"wraps", "my cat ate the homework", 10, []string{"my cat ate", "the", "homework"}},
		{"hard break", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"collapses spaces", "  a   b  ", 10, []string{"a b"}},
		{"zero width", "anything", 0, nil},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d lines %q, got %d lines %q", len(tt.want), tt.want, len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
