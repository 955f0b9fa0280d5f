package common

import (
	"strings"

	"colat/pkg/nav"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the viewer.
//
// Both display backends report keys in bubbletea notation, so one map
// serves the tea and tcell front ends alike.
type KeyMap struct {
	Next     key.Binding // Space, Enter, →, j - show the next color
	Previous key.Binding // Backspace, ←, k - show the previous color
	Quit     key.Binding // q, Esc, Ctrl+C - leave the viewer
	Redraw   key.Binding // Ctrl+L - repaint the current color
	Help     key.Binding // ? - toggle the key help
}

// Default key names per action.
var (
	DefaultNextKeys     = []string{" ", "enter", "right", "j"}
	DefaultPreviousKeys = []string{"backspace", "left", "k"}
	DefaultQuitKeys     = []string{"q", "esc", "ctrl+c"}
	DefaultRedrawKeys   = []string{"ctrl+l"}
	DefaultHelpKeys     = []string{"?"}
)

// NewKeyMap creates a KeyMap with the default keybindings
func NewKeyMap() *KeyMap {
	return NewKeyMapFromKeys(DefaultNextKeys, DefaultPreviousKeys, DefaultQuitKeys, DefaultRedrawKeys, DefaultHelpKeys)
}

// NewKeyMapFromKeys builds a KeyMap from user supplied key names.
// "space" is accepted as an alias for " ".
func NewKeyMapFromKeys(next, previous, quit, redraw, help []string) *KeyMap {
	return &KeyMap{
		Next:     binding(next, "next color"),
		Previous: binding(previous, "previous color"),
		Quit:     binding(quit, "quit"),
		Redraw:   binding(redraw, "redraw"),
		Help:     binding(help, "toggle help"),
	}
}

func binding(keys []string, desc string) key.Binding {
	normalized := make([]string, 0, len(keys))
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		k = NormalizeKey(k)
		normalized = append(normalized, k)
		labels = append(labels, keyLabel(k))
	}
	return key.NewBinding(
		key.WithKeys(normalized...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// NormalizeKey maps friendly names from config files to bubbletea names.
func NormalizeKey(k string) string {
	switch strings.ToLower(k) {
	case "space":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	return k
}

// keyLabel renders a key name for the help view.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

type keyName string

func (k keyName) String() string { return string(k) }

// Resolve implements nav.KeyResolver.
func (k *KeyMap) Resolve(name string) nav.Action {
	kn := keyName(name)
	switch {
	case key.Matches(kn, k.Quit):
		return nav.ActionQuit
	case key.Matches(kn, k.Next):
		return nav.ActionNext
	case key.Matches(kn, k.Previous):
		return nav.ActionPrevious
	case key.Matches(kn, k.Redraw):
		return nav.ActionRedraw
	case key.Matches(kn, k.Help):
		return nav.ActionHelp
	}
	return nav.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous},
		{k.Redraw, k.Help, k.Quit},
	}
}
