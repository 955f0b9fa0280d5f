package config

import (
	"fmt"
	"slices"

	"colat/pkg/common"
)

// Backend names.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// UIConfig captures display settings.
type UIConfig struct {
	Title   string `toml:"title"`
	Label   bool   `toml:"label"`
	Bell    bool   `toml:"bell"`
	Backend string `toml:"backend"`
}

func defaultUIConfig() UIConfig {
	return UIConfig{
		Title:   "colat",
		Label:   true,
		Backend: BackendTea,
	}
}

func (u UIConfig) validate() error {
	return ValidateBackend(u.Backend)
}

// ValidateBackend reports whether name is a known display backend.
func ValidateBackend(name string) error {
	switch name {
	case BackendTea, BackendTcell:
		return nil
	}
	return fmt.Errorf("unknown backend %q (want %q or %q)", name, BackendTea, BackendTcell)
}

// KeysConfig lists key names per action, in bubbletea notation.
type KeysConfig struct {
	Next     []string `toml:"next"`
	Previous []string `toml:"previous"`
	Quit     []string `toml:"quit"`
	Redraw   []string `toml:"redraw"`
	Help     []string `toml:"help"`
}

func defaultKeysConfig() KeysConfig {
	return KeysConfig{
		Next:     slices.Clone(common.DefaultNextKeys),
		Previous: slices.Clone(common.DefaultPreviousKeys),
		Quit:     slices.Clone(common.DefaultQuitKeys),
		Redraw:   slices.Clone(common.DefaultRedrawKeys),
		Help:     slices.Clone(common.DefaultHelpKeys),
	}
}

func (k KeysConfig) validate() error {
	required := []struct {
		name string
		keys []string
	}{
		{"keys.next", k.Next},
		{"keys.previous", k.Previous},
		{"keys.quit", k.Quit},
	}
	for _, r := range required {
		if len(r.keys) == 0 {
			return fmt.Errorf("%s must list at least one key", r.name)
		}
	}
	return nil
}

// KeyMap builds the key bindings described by the config.
func (k KeysConfig) KeyMap() *common.KeyMap {
	return common.NewKeyMapFromKeys(k.Next, k.Previous, k.Quit, k.Redraw, k.Help)
}
