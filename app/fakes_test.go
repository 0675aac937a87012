package app

import (
	"context"
	"sync"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

type recordingDisplay struct {
	transcript []string
	action     string
	score      string
	rewards    string
	scrolls    int
}

func (d *recordingDisplay) AppendTranscript(text string) { d.transcript = append(d.transcript, text) }
func (d *recordingDisplay) ScrollToBottom()              { d.scrolls++ }
func (d *recordingDisplay) SetAction(text string)        { d.action = text }
func (d *recordingDisplay) SetScore(text string)         { d.score = text }
func (d *recordingDisplay) SetRewards(text string)       { d.rewards = text }
func (d *recordingDisplay) ClearTranscript()             { d.transcript = nil }

type fakeInput struct {
	value string
}

func (f *fakeInput) Value() string { return f.value }
func (f *fakeInput) Clear()        { f.value = "" }

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(message string) { n.messages = append(n.messages, message) }

type outcome struct {
	res domain.InteractionResult
	err error
}

// gatedService blocks each Interact call until the test releases it.
type gatedService struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan outcome
}

func newGatedService() *gatedService {
	return &gatedService{gates: map[string]chan outcome{}}
}

func (s *gatedService) gate(input string) chan outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.gates[input]
	if !ok {
		ch = make(chan outcome, 1)
		s.gates[input] = ch
	}
	return ch
}

func (s *gatedService) release(input string, res domain.InteractionResult, err error) {
	s.gate(input) <- outcome{res: res, err: err}
}

func (s *gatedService) Interact(ctx context.Context, userInput string) (domain.InteractionResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, userInput)
	s.mu.Unlock()

	select {
	case o := <-s.gate(userInput):
		return o.res, o.err
	case <-ctx.Done():
		return domain.InteractionResult{}, ctx.Err()
	}
}

func (s *gatedService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
