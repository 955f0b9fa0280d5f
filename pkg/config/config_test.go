package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colat/pkg/common"
	"colat/pkg/nav"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.UI.Title != "colat" || !cfg.UI.Label || cfg.UI.Backend != BackendTea {
		t.Fatalf("unexpected UI defaults: %+v", cfg.UI)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[ui]
title = "swatches"
label = false
backend = "tcell"

[keys]
next = ["space", "l"]

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.UI.Title != "swatches" || cfg.UI.Label || cfg.UI.Backend != BackendTcell {
		t.Fatalf("ui = %+v", cfg.UI)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxSizeMB != 5 {
		t.Fatalf("log = %+v", cfg.Log)
	}

	km := cfg.Keys.KeyMap()
	if km.Resolve("l") != nav.ActionNext || km.Resolve(" ") != nav.ActionNext {
		t.Fatalf("custom next keys not applied")
	}
	if km.Resolve("left") != nav.ActionPrevious {
		t.Fatalf("default previous keys lost")
	}
}

func TestLoadDoesNotMutateDefaults(t *testing.T) {
	path := writeConfig(t, "[keys]\nnext = [\"a\", \"b\"]\n")
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	if common.DefaultNextKeys[0] != " " || common.DefaultNextKeys[1] != "enter" {
		t.Fatalf("defaults were mutated: %q", common.DefaultNextKeys)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[ui]\ncolour = \"red\"\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "ui.colour") {
		t.Fatalf("error = %v want unknown key ui.colour", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"backend":  "[ui]\nbackend = \"sdl\"\n",
		"no quit":  "[keys]\nquit = []\n",
		"level":    "[log]\nlevel = \"loud\"\n",
		"max size": "[log]\nmax_size_mb = 0\n",
		"syntax":   "[ui\n",
	}
	for name, body := range tests {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v want fs.ErrNotExist", err)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error = %v", err)
	}
	if cfg.UI.Backend != BackendTea {
		t.Fatalf("backend = %q", cfg.UI.Backend)
	}
}
