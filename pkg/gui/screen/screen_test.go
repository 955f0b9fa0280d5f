package screen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"colat/pkg/color"
	"colat/pkg/common"
	"colat/pkg/nav"

	"github.com/gdamore/tcell/v2"
)

func openSim(t *testing.T, label bool) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := Open(Options{Title: "colat", Label: label, Keys: common.NewKeyMap(), Screen: sim})
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	sim.SetSize(24, 5)
	return scr, sim
}

func newController(t *testing.T, inputs ...string) *nav.Controller {
	t.Helper()
	list, err := color.NewList(inputs)
	if err != nil {
		t.Fatal(err)
	}
	c, err := nav.New(list, common.NewKeyMap())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func cellBackground(sim tcell.SimulationScreen, x, y int) tcell.Color {
	cells, w, _ := sim.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func row(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[y*w+x].Runes {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRunOnSimulationScreen(t *testing.T) {
	scr, sim := openSim(t, true)
	defer scr.Close()

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var echo bytes.Buffer
	ctrl := newController(t, "#000000", "#ffffff", "#ff0000")
	if err := nav.Run(ctrl, scr, scr, &echo); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if want := "#000000\n#ffffff\n#ff0000\n#ffffff\n"; echo.String() != want {
		t.Fatalf("echo = %q want %q", echo.String(), want)
	}
	if got := cellBackground(sim, 0, 0); got != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("fill = %v want white", got)
	}
	if label := row(sim, 4); !strings.Contains(label, "#ffffff  2/3") {
		t.Fatalf("label row = %q", label)
	}
}

func TestPaintWithoutLabel(t *testing.T) {
	scr, sim := openSim(t, false)
	defer scr.Close()

	entry, _ := color.NewEntry("1a2b3c")
	if err := scr.Paint(nav.Frame{Entry: entry, Total: 1}); err != nil {
		t.Fatal(err)
	}
	if got := cellBackground(sim, 23, 4); got != tcell.NewRGBColor(0x1a, 0x2b, 0x3c) {
		t.Fatalf("bottom right = %v", got)
	}
	if strings.TrimSpace(row(sim, 4)) != "" {
		t.Fatalf("label drawn although disabled: %q", row(sim, 4))
	}
}

func TestPaintHelp(t *testing.T) {
	scr, sim := openSim(t, true)
	defer scr.Close()
	sim.SetSize(60, 10)

	entry, _ := color.NewEntry("fff")
	if err := scr.Paint(nav.Frame{Entry: entry, Total: 1, ShowHelp: true}); err != nil {
		t.Fatal(err)
	}
	var all strings.Builder
	for y := 0; y < 10; y++ {
		all.WriteString(row(sim, y))
	}
	if !strings.Contains(all.String(), "next color") {
		t.Fatalf("help not drawn: %q", all.String())
	}
}

func TestRequestCloseQuits(t *testing.T) {
	scr, _ := openSim(t, true)
	defer scr.Close()

	scr.RequestClose()
	for {
		ev, err := scr.WaitForEvent()
		if err != nil {
			t.Fatalf("WaitForEvent error = %v", err)
		}
		if ev.Kind == nav.EventRedraw {
			continue
		}
		if ev.Kind != nav.EventQuit {
			t.Fatalf("event = %+v want quit", ev)
		}
		return
	}
}

func TestWaitAfterCloseFails(t *testing.T) {
	scr, _ := openSim(t, true)
	scr.Close()

	if _, err := scr.WaitForEvent(); !errors.Is(err, ErrClosed) {
		t.Fatalf("error = %v want ErrClosed", err)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), "j"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "right"},
	}
	keys := common.NewKeyMap()
	for _, tt := range tests {
		if got := KeyName(tt.ev); got != tt.want {
			t.Errorf("KeyName(%v) = %q want %q", tt.ev.Name(), got, tt.want)
		}
		if keys.Resolve(KeyName(tt.ev)) == nav.ActionNone {
			t.Errorf("%q is not bound", tt.want)
		}
	}
}
