package viewer

import (
	"fmt"

	"colat/pkg/color"
	"colat/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// View fills the whole terminal with the current color.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	entry := m.ctrl.Current()
	bg := lipgloss.Color(entry.Color.Hex())

	bodyHeight := m.height
	var label string
	if m.showLabel {
		label = m.renderLabel(entry, bg)
		bodyHeight--
	}
	if bodyHeight <= 0 {
		return label
	}

	var content string
	if m.showHelp {
		content = m.renderHelp()
	}
	body := m.renderer.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))

	if label == "" {
		return body
	}
	return body + "\n" + label
}

func (m Model) renderLabel(entry color.Entry, bg lipgloss.Color) string {
	text := fmt.Sprintf(" %s  %d/%d ", entry.Text, m.ctrl.Index()+1, m.ctrl.Len())
	if m.approximate {
		text += "(approx) "
	}
	if ansi.PrintableRuneWidth(text) > m.width {
		text = truncate.StringWithTail(text, uint(m.width), "…")
	}

	styled := m.renderer.NewStyle().
		Foreground(lipgloss.Color(entry.Color.Contrast().Hex())).
		Background(bg).
		Bold(true).
		Render(text)

	return m.renderer.PlaceHorizontal(m.width, lipgloss.Center, styled,
		lipgloss.WithWhitespaceBackground(bg))
}

func (m Model) renderHelp() string {
	m.help.Styles.FullKey = m.renderer.NewStyle().Foreground(lipgloss.Color(theme.HelpKey)).Background(lipgloss.Color(theme.HelpBackground))
	m.help.Styles.FullDesc = m.renderer.NewStyle().Foreground(lipgloss.Color(theme.HelpDesc)).Background(lipgloss.Color(theme.HelpBackground))
	m.help.Styles.FullSeparator = m.renderer.NewStyle().Foreground(lipgloss.Color(theme.HelpSeparator)).Background(lipgloss.Color(theme.HelpBackground))

	return m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.HelpBorder)).
		Background(lipgloss.Color(theme.HelpBackground)).
		Padding(1, 2).
		Render(m.help.View(m.keys))
}
