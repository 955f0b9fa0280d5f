package screen

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyName converts a tcell key event to the bubbletea key name the
// KeyMap is written in.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return " "
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + string(r)
		}
		return string(r)
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlL:
		return "ctrl+l"
	}
	return strings.ToLower(ev.Name())
}
