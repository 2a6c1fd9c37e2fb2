package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s at (x, y) honoring wide runes, clipped to maxWidth cells; returns cells written
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, st tcell.Style) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		screen.SetContent(x+col, y, r, nil, st)
		col += w
	}
	return col
}

// drawCentered writes s centered in [x, x+width)
func drawCentered(screen tcell.Screen, x, y, width int, s string, st tcell.Style) {
	w := runewidth.StringWidth(s)
	if w > width {
		w = width
	}
	drawText(screen, x+(width-w)/2, y, width, s, st)
}

// fillRow paints width cells starting at (x, y)
func fillRow(screen tcell.Screen, x, y, width int, st tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, st)
	}
}

// wrapText breaks s into lines no wider than width cells, splitting on spaces
// Words longer than width are hard-broken
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)

		for ww > width {
			if lineWidth > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// Single rune wider than the line
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}

		if lineWidth > 0 && lineWidth+1+ww > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}

	if lineWidth > 0 {
		flush()
	}
	return lines
}

// truncateWithEllipsis shortens s to fit width with a trailing ellipsis
func truncateWithEllipsis(s string, width int) string {
	if runewidth.StringWidth(s)+1 <= width {
		return s + "…"
	}
	return runewidth.Truncate(s, width, "…")
}
