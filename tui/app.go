package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/dungeonterm/app"
	"github.com/CrestNiraj12/dungeonterm/infra/config"
	"github.com/CrestNiraj12/dungeonterm/infra/editor"
	"github.com/CrestNiraj12/dungeonterm/tui/common"
	"github.com/CrestNiraj12/dungeonterm/tui/play"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Context    context.Context // Bounds in-flight requests; nil means never cancelled
	Interactor *app.Interactor
	Editor     *editor.EnvEditor
	ServerURL  string
	StatePath  string
	UIState    config.UIState
}

// App is the root Bubble Tea model.
type App struct {
	deps   Deps
	play   play.Model
	keys   common.KeyMap
	status string // Transient status message (e.g. a failed prefs save)
}

type prefsSavedMsg struct {
	err error
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps: deps,
		play: play.New(deps.Context, deps.Interactor, deps.Editor, deps.ServerURL, deps.UIState.HideStats),
		keys: common.DefaultKeyMap(),
	}
}

// Init delegates to the game view.
func (a App) Init() tea.Cmd {
	return a.play.Init()
}

// Update handles global keys and routes everything else to the game view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		// esc dismisses the notice before it quits.
		if key.Matches(msg, a.keys.Quit) && !a.play.HasNotice() {
			return a, tea.Quit
		}
		a.status = ""

	case play.PrefsChangedMsg:
		a.deps.UIState.HideStats = msg.HideStats
		return a, a.savePrefs()

	case prefsSavedMsg:
		if msg.err != nil {
			a.status = "Could not save preferences: " + msg.err.Error()
		}
		return a, nil
	}

	updated, cmd := a.play.Update(msg)
	a.play = updated
	return a, cmd
}

func (a App) savePrefs() tea.Cmd {
	if a.deps.StatePath == "" {
		return nil
	}
	path, st := a.deps.StatePath, a.deps.UIState
	return func() tea.Msg {
		return prefsSavedMsg{err: config.SaveUIState(path, st)}
	}
}

// View renders the game view.
func (a App) View() string {
	s := a.play.View()

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.ErrorStyle.Render(a.status)
	}

	return s
}
