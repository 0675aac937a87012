package play

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/dungeonterm/app"
)

// submit starts one interaction cycle. The returned command waits off the
// UI loop and hands the settled Pending back as an InteractionDoneMsg.
func (m *Model) submit() tea.Cmd {
	p, err := m.interactor.Submit(m.ctx, m, m)
	if err != nil {
		return nil
	}
	m.inFlight++

	cmds := []tea.Cmd{awaitInteraction(p)}
	if m.inFlight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func awaitInteraction(p *app.Pending) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return InteractionDoneMsg{Pending: p}
	}
}

// launchEditor opens $EDITOR on the current draft. tea.ExecProcess suspends
// Bubble Tea while the editor owns the terminal.
func (m *Model) launchEditor() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	cmd, tmpPath, err := m.editor.Cmd(m.input.Value())
	if err != nil {
		m.status = fmt.Sprintf("Editor: %v", err)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

func prefsChanged(hideStats bool) tea.Cmd {
	return func() tea.Msg {
		return PrefsChangedMsg{HideStats: hideStats}
	}
}
