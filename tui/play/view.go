package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/dungeonterm/tui/common"
)

// View renders the game view.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("⚔ dungeonterm")
	b.WriteString(title + common.TaglineStyle.Render(m.server) + "\n")

	b.WriteString(common.TranscriptStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	if !m.hideStats {
		b.WriteString(m.renderStats())
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(common.NoticeStyle.Render(m.notice + "   [enter: ok]"))
		return b.String()
	}

	b.WriteString(common.PromptStyle.Render("> ") + m.input.View())
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(m.statusLine()))

	return b.String()
}

func (m Model) renderStats() string {
	// Score is short; action and rewards share the rest.
	scoreW := 12
	rest := m.width - scoreW - 12 // three borders + paddings
	if rest < 20 {
		rest = 20
	}
	actionW := rest * 3 / 5
	rewardsW := rest - actionW

	panel := func(label, value string, width int, style lipgloss.Style) string {
		line := common.SingleLine(value, width-lipgloss.Width(label)-1)
		return common.PanelStyle.Width(width).Render(
			common.PanelLabelStyle.Render(label) + " " + style.Render(line),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panel("DM", m.action, actionW, common.ContentStyle),
		panel("Score", m.score, scoreW, common.ScoreStyle),
		panel("Rewards", m.rewards, rewardsW, common.ContentStyle),
	)
}

func (m Model) statusLine() string {
	var parts []string
	if m.inFlight > 0 {
		parts = append(parts, fmt.Sprintf("%s waiting on the DM (%d)", m.spinner.View(), m.inFlight))
	}
	if m.status != "" {
		parts = append(parts, common.ErrorStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "  •  ")
}
