package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawCentered writes text on row y, centered in width w and clipped to it.
func drawCentered(s tcell.Screen, y, w int, text string, style tcell.Style) {
	tw := runewidth.StringWidth(text)
	if tw > w {
		text = runewidth.Truncate(text, w, "…")
		tw = runewidth.StringWidth(text)
	}
	drawText(s, (w-tw)/2, y, text, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += rw
	}
}
