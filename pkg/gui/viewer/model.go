// Package viewer is the bubbletea front end: it fills the terminal with the
// current color and turns key and resize messages into navigation events.
package viewer

import (
	"io"
	"log/slog"

	"colat/pkg/common"
	"colat/pkg/nav"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// CloseMsg asks the viewer to quit as if the window had been closed.
// The host sends it on SIGTERM/SIGHUP.
type CloseMsg struct{}

// Options configures a Model.
type Options struct {
	Title string
	// Label draws the current string and position on the last row.
	Label bool
	// Echo receives one line per newly shown color. When nil the line is
	// printed above the program with tea.Println.
	Echo io.Writer
	// Renderer styles the output. Defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
	Logger   *slog.Logger
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctrl     *nav.Controller
	keys     *common.KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	logger   *slog.Logger

	title       string
	showLabel   bool
	echo        io.Writer
	approximate bool // terminal cannot show 24-bit color

	width    int
	height   int
	showHelp bool
	quitting bool
}

// New creates the model. ctrl must be freshly constructed; Init emits its
// start effect.
func New(ctrl *nav.Controller, keys *common.KeyMap, opts Options) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := help.New()
	h.ShowAll = true

	profile := r.ColorProfile()
	if profile != termenv.TrueColor {
		logger.Warn("terminal lacks 24-bit color, fills are approximated", "profile", profileName(profile))
	}

	return Model{
		ctrl:        ctrl,
		keys:        keys,
		help:        h,
		renderer:    r,
		logger:      logger,
		title:       opts.Title,
		showLabel:   opts.Label,
		echo:        opts.Echo,
		approximate: profile != termenv.TrueColor,
	}
}

// Init sets the window title and echoes the first color.
func (m Model) Init() tea.Cmd {
	_, cmd := m.apply(m.ctrl.Start())
	return tea.Batch(tea.SetWindowTitle(m.title), cmd)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
