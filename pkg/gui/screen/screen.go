// Package screen is the tcell front end. It exposes the display as the
// blocking EventSource and Display pair that nav.Run drives.
package screen

import (
	"errors"
	"fmt"
	"log/slog"

	"colat/pkg/color"
	"colat/pkg/common"
	"colat/pkg/gui/theme"
	"colat/pkg/nav"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by WaitForEvent once the screen was released.
var ErrClosed = errors.New("screen closed")

// closeRequest is posted through the event queue by RequestClose.
type closeRequest struct{}

// Options configures Open.
type Options struct {
	Title string
	Label bool
	Keys  *common.KeyMap
	// Screen overrides the terminal screen, e.g. with a simulation screen.
	Screen tcell.Screen
	Logger *slog.Logger
}

// Screen owns a tcell screen for the lifetime of a session.
type Screen struct {
	s      tcell.Screen
	label  bool
	keys   *common.KeyMap
	logger *slog.Logger
}

// Open initializes the terminal. The caller must Close the result.
func Open(opts Options) (*Screen, error) {
	s := opts.Screen
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("creating screen: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.SetTitle(opts.Title)
	s.HideCursor()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := opts.Keys
	if keys == nil {
		keys = common.NewKeyMap()
	}
	return &Screen{s: s, label: opts.Label, keys: keys, logger: logger}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.s.Fini()
}

// RequestClose makes the next WaitForEvent return a quit event.
// It is safe to call from another goroutine.
func (s *Screen) RequestClose() {
	_ = s.s.PostEvent(tcell.NewEventInterrupt(closeRequest{}))
}

// Paint implements nav.Display.
func (s *Screen) Paint(f nav.Frame) error {
	c := f.Entry.Color
	fill := tcell.StyleDefault.
		Background(rgb(c)).
		Foreground(rgb(c.Contrast()))

	s.s.Fill(' ', fill)
	w, h := s.s.Size()

	if f.ShowHelp {
		s.drawHelp(w, h)
	}
	if s.label && h > 0 {
		text := fmt.Sprintf(" %s  %d/%d ", f.Entry.Text, f.Index+1, f.Total)
		drawCentered(s.s, h-1, w, text, fill.Bold(true))
	}
	s.s.Show()
	return nil
}

func (s *Screen) drawHelp(w, h int) {
	style := tcell.StyleDefault.
		Background(hexColor(theme.HelpBackground)).
		Foreground(hexColor(theme.HelpKey))

	var lines []string
	for _, group := range s.keys.FullHelp() {
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			lines = append(lines, fmt.Sprintf(" %-22s %s ", b.Help().Key, b.Help().Desc))
		}
	}

	top := (h - len(lines)) / 2
	for i, line := range lines {
		if y := top + i; y >= 0 && y < h-1 {
			drawCentered(s.s, y, w, line, style)
		}
	}
}

// WaitForEvent implements nav.EventSource. It blocks until a key, resize
// or close request arrives; mouse, paste and focus events are skipped.
func (s *Screen) WaitForEvent() (nav.Event, error) {
	for {
		switch ev := s.s.PollEvent().(type) {
		case nil:
			return nav.Event{}, ErrClosed
		case *tcell.EventKey:
			return nav.KeyUp(KeyName(ev)), nil
		case *tcell.EventResize:
			s.s.Sync()
			return nav.Redraw(), nil
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(closeRequest); ok {
				return nav.Quit(), nil
			}
		case *tcell.EventError:
			return nav.Event{}, fmt.Errorf("terminal: %s", ev.Error())
		default:
			s.logger.Debug("ignoring terminal event", "type", fmt.Sprintf("%T", ev))
		}
	}
}

func rgb(c color.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func hexColor(s string) tcell.Color {
	c, err := color.Parse(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return rgb(c)
}
