package play

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/dungeonterm/app"
	"github.com/CrestNiraj12/dungeonterm/infra/editor"
	"github.com/CrestNiraj12/dungeonterm/tui/common"
)

// --- Messages ---

// InteractionDoneMsg is delivered when a submitted action has settled,
// successfully or not.
type InteractionDoneMsg struct {
	Pending *app.Pending
}

// PrefsChangedMsg is emitted when a persisted view preference changes.
type PrefsChangedMsg struct {
	HideStats bool
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model is the game view: the action input line, the transcript, and the
// action/score/rewards panels. *Model is the app.Display, app.InputField and
// app.Notifier handed to the Interactor.
type Model struct {
	ctx        context.Context // cancelled when the program exits
	interactor *app.Interactor
	editor     *editor.EnvEditor
	server     string

	input      textinput.Model
	viewport   viewport.Model
	transcript []string

	action  string
	score   string
	rewards string

	notice    string // Blocking notice; keys only dismiss it while set
	status    string
	inFlight  int
	hideStats bool

	keys    common.KeyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
}

// New creates the game view with injected dependencies. Requests it starts
// are abandoned once ctx is done.
func New(ctx context.Context, interactor *app.Interactor, ed *editor.EnvEditor, server string, hideStats bool) Model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Prompt = ""
	ti.CharLimit = 2000
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C6A0F6"))

	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:        ctx,
		interactor: interactor,
		editor:     ed,
		server:     server,
		input:      ti,
		viewport:   viewport.New(80, 10),
		hideStats:  hideStats,
		keys:       common.DefaultKeyMap(),
		help:       help.New(),
		spinner:    s,
	}
	m.resize(80, 24)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// HasNotice reports whether the blocking notice is showing.
func (m Model) HasNotice() bool {
	return m.notice != ""
}

// InFlight is the number of submitted actions still waiting on the server.
func (m Model) InFlight() int {
	return m.inFlight
}

// --- app.Display ---

func (m *Model) AppendTranscript(text string) {
	m.transcript = append(m.transcript, text)
	m.refreshTranscript()
}

func (m *Model) ScrollToBottom() {
	m.viewport.GotoBottom()
}

func (m *Model) SetAction(text string)  { m.action = text }
func (m *Model) SetScore(text string)   { m.score = text }
func (m *Model) SetRewards(text string) { m.rewards = text }

func (m *Model) ClearTranscript() {
	m.transcript = nil
	m.refreshTranscript()
	m.viewport.GotoTop()
}

// --- app.InputField ---

func (m *Model) Value() string { return m.input.Value() }
func (m *Model) Clear()        { m.input.Reset() }

// --- app.Notifier ---

func (m *Model) Notify(message string) { m.notice = message }

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(common.ContentStyle.Render(common.Paragraphs(m.transcript, m.viewport.Width)))
}

// Reserved rows: title (2), transcript border (2), stats panels (3),
// input line (1), status bar (2).
const (
	chromeRows = 7
	statsRows  = 3
)

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	rows := height - chromeRows
	if !m.hideStats {
		rows -= statsRows
	}
	if rows < 3 {
		rows = 3
	}
	cols := width - 4 // border + padding
	if cols < 10 {
		cols = 10
	}

	atBottom := m.viewport.AtBottom()
	m.viewport.Width = cols
	m.viewport.Height = rows
	m.input.Width = width - 4
	m.help.Width = width
	m.refreshTranscript()
	if atBottom {
		m.viewport.GotoBottom()
	}
}
