package play

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the game view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case InteractionDoneMsg:
		if m.inFlight > 0 {
			m.inFlight--
		}
		m.interactor.Complete(msg.Pending, &m, &m)
		return m, nil

	case editorFinishedMsg:
		return m.handleEditorFinished(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.notice != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.status = ""
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.interactor.Clear(&m)
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		cmd := m.launchEditor()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleStats):
		m.hideStats = !m.hideStats
		m.resize(m.width, m.height)
		return m, prefsChanged(m.hideStats)

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEditorFinished(msg editorFinishedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Editor: %v", msg.err)
		return m, nil
	}
	content, err := m.editor.ReadContent(msg.tmpPath)
	if err != nil {
		m.status = fmt.Sprintf("Editor: %v", err)
		return m, nil
	}
	if content != "" {
		m.input.SetValue(content)
		m.input.CursorEnd()
	}
	return m, nil
}
