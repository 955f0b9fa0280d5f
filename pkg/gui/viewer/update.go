package viewer

import (
	"fmt"

	"colat/pkg/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages. Terminals report a key once per
// keystroke, so every key message is treated as a release.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.apply(m.ctrl.Handle(nav.Redraw()))

	case tea.KeyMsg:
		return m.apply(m.ctrl.Handle(nav.KeyUp(msg.String())))

	case CloseMsg:
		return m.apply(m.ctrl.Handle(nav.Quit()))
	}

	return m, nil
}

// apply turns a controller effect into model changes and commands.
// Painting needs no command: View always draws the current color.
func (m Model) apply(eff nav.Effect) (Model, tea.Cmd) {
	if eff.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if eff.ToggleHelp {
		m.showHelp = !m.showHelp
	}
	if eff.Echo {
		return m, m.echoCurrent()
	}
	return m, nil
}

func (m Model) echoCurrent() tea.Cmd {
	text := m.ctrl.Current().Text
	if m.echo == nil {
		return tea.Println(text)
	}
	if _, err := fmt.Fprintln(m.echo, text); err != nil {
		m.logger.Error("echo failed", "color", text, "error", err)
	}
	return nil
}
