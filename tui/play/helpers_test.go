package play

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/dungeonterm/app"
	"github.com/CrestNiraj12/dungeonterm/domain"
)

type reply struct {
	res domain.InteractionResult
	err error
}

// gatedService holds every Interact call until the test releases it.
type gatedService struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan reply
}

func newGatedService() *gatedService {
	return &gatedService{gates: map[string]chan reply{}}
}

func (s *gatedService) gate(input string) chan reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.gates[input]
	if !ok {
		ch = make(chan reply, 1)
		s.gates[input] = ch
	}
	return ch
}

func (s *gatedService) release(input string, res domain.InteractionResult, err error) {
	s.gate(input) <- reply{res: res, err: err}
}

func (s *gatedService) Interact(_ context.Context, userInput string) (domain.InteractionResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, userInput)
	s.mu.Unlock()
	r := <-s.gate(userInput)
	return r.res, r.err
}

func (s *gatedService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestModel(svc app.InteractionService) Model {
	m := New(context.Background(), app.NewInteractor(svc, nil), nil, "http://game.test", false)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func press(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// runCmd executes cmd, expanding batches, and returns every message produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func doneMsg(cmd tea.Cmd) (InteractionDoneMsg, bool) {
	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(InteractionDoneMsg); ok {
			return done, true
		}
	}
	return InteractionDoneMsg{}, false
}
