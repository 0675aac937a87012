package play

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/dungeonterm/app"
	"github.com/CrestNiraj12/dungeonterm/domain"
)

func score(f float64) *float64 { return &f }

func TestSubmit_BlankInputShowsNoticeAndSendsNothing(t *testing.T) {
	svc := newGatedService()
	m := newTestModel(svc)
	m.input.SetValue("   ")

	m, cmd := m.Update(press(tea.KeyEnter))
	if cmd != nil {
		t.Fatalf("blank input must not start a request")
	}
	if svc.callCount() != 0 {
		t.Fatalf("expected zero network calls, got %d", svc.callCount())
	}
	if !m.HasNotice() || m.notice != domain.EmptyInputNotice {
		t.Fatalf("expected empty-input notice, got %q", m.notice)
	}
	if !strings.Contains(m.View(), domain.EmptyInputNotice) {
		t.Fatalf("notice should be rendered")
	}
}

func TestNotice_BlocksKeysUntilDismissed(t *testing.T) {
	m := newTestModel(newGatedService())
	m.Notify("stop")

	m = typeText(m, "abc")
	if m.input.Value() != "" {
		t.Fatalf("typing must be swallowed while the notice is open, got %q", m.input.Value())
	}
	m, _ = m.Update(press(tea.KeyCtrlL))
	if !m.HasNotice() {
		t.Fatalf("only dismiss keys should close the notice")
	}

	m, _ = m.Update(press(tea.KeyEnter))
	if m.HasNotice() {
		t.Fatalf("enter should dismiss the notice")
	}
	m = typeText(m, "abc")
	if m.input.Value() != "abc" {
		t.Fatalf("typing should resume after dismiss, got %q", m.input.Value())
	}
}

func TestSubmit_AppliesReplyWhenDone(t *testing.T) {
	svc := newGatedService()
	m := newTestModel(svc)
	m = typeText(m, "open the door")

	m, cmd := m.Update(press(tea.KeyEnter))
	if cmd == nil || m.InFlight() != 1 {
		t.Fatalf("expected one in-flight request, got %d", m.InFlight())
	}
	if m.input.Value() != "open the door" {
		t.Fatalf("input is cleared only after the reply arrives")
	}

	svc.release("open the door", domain.InteractionResult{
		DMAction:       "You open the door.",
		FeedbackScore:  score(0.875),
		UpdatedRewards: json.RawMessage(`{"gold":1}`),
	}, nil)
	done, ok := doneMsg(cmd)
	if !ok {
		t.Fatalf("expected InteractionDoneMsg")
	}
	m, _ = m.Update(done)

	if len(m.transcript) != 1 || m.transcript[0] != "You open the door." {
		t.Fatalf("unexpected transcript: %#v", m.transcript)
	}
	if m.action != "You open the door." || m.score != "0.88" || m.rewards != `{"gold":1}` {
		t.Fatalf("unexpected panels: action=%q score=%q rewards=%q", m.action, m.score, m.rewards)
	}
	if m.input.Value() != "" {
		t.Fatalf("input should be cleared, got %q", m.input.Value())
	}
	if m.InFlight() != 0 {
		t.Fatalf("in-flight count should drop to zero")
	}
	if !m.viewport.AtBottom() {
		t.Fatalf("transcript should be scrolled to the newest entry")
	}

	view := m.View()
	for _, want := range []string{"You open the door.", "0.88", `{"gold":1}`} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestSubmit_FailureLeavesViewUntouched(t *testing.T) {
	svc := newGatedService()
	m := newTestModel(svc)
	m.AppendTranscript("earlier")
	m.SetScore("0.50")
	m.SetRewards(`{"gold":0}`)
	m = typeText(m, "look")

	m, cmd := m.Update(press(tea.KeyEnter))
	svc.release("look", domain.InteractionResult{}, errors.New("connection refused"))
	done, ok := doneMsg(cmd)
	if !ok {
		t.Fatalf("expected InteractionDoneMsg")
	}
	m, _ = m.Update(done)

	if len(m.transcript) != 1 || m.transcript[0] != "earlier" {
		t.Fatalf("transcript must be unchanged: %#v", m.transcript)
	}
	if m.score != "0.50" || m.rewards != `{"gold":0}` {
		t.Fatalf("panels must be unchanged: score=%q rewards=%q", m.score, m.rewards)
	}
	if m.input.Value() != "look" {
		t.Fatalf("input must be untouched, got %q", m.input.Value())
	}
	if m.HasNotice() || m.status != "" {
		t.Fatalf("failures are not surfaced to the player")
	}
}

// hangingService never answers; it returns only when the request context ends.
type hangingService struct{}

func (hangingService) Interact(ctx context.Context, _ string) (domain.InteractionResult, error) {
	<-ctx.Done()
	return domain.InteractionResult{}, ctx.Err()
}

func TestSubmit_ProgramExitAbandonsRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, app.NewInteractor(hangingService{}, nil), nil, "http://game.test", false)
	m = typeText(m, "wait")

	m, cmd := m.Update(press(tea.KeyEnter))
	cancel()
	done, ok := doneMsg(cmd)
	if !ok {
		t.Fatalf("expected InteractionDoneMsg once the program context is cancelled")
	}
	var got error
	done.Pending.Settle(func(domain.InteractionResult) {}, func(err error) { got = err })
	if !errors.Is(got, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", got)
	}
	m, _ = m.Update(done)
	if len(m.transcript) != 0 || m.input.Value() != "wait" {
		t.Fatalf("abandoned request must not touch the view: %#v %q", m.transcript, m.input.Value())
	}
}

func TestSubmit_OverlappingRepliesRenderInArrivalOrder(t *testing.T) {
	svc := newGatedService()
	m := newTestModel(svc)

	m = typeText(m, "first")
	m, firstCmd := m.Update(press(tea.KeyEnter))
	m.input.SetValue("second")
	m, secondCmd := m.Update(press(tea.KeyEnter))
	if m.InFlight() != 2 {
		t.Fatalf("submissions must not be blocked while one is in flight, got %d", m.InFlight())
	}

	svc.release("second", domain.InteractionResult{DMAction: "reply to second"}, nil)
	done, _ := doneMsg(secondCmd)
	m, _ = m.Update(done)

	svc.release("first", domain.InteractionResult{DMAction: "reply to first"}, nil)
	done, _ = doneMsg(firstCmd)
	m, _ = m.Update(done)

	if len(m.transcript) != 2 || m.transcript[0] != "reply to second" || m.transcript[1] != "reply to first" {
		t.Fatalf("expected resolution order, got %#v", m.transcript)
	}
}

func TestClear_EmptiesTranscriptIdempotently(t *testing.T) {
	m := newTestModel(newGatedService())
	for _, s := range []string{"a", "b", "c"} {
		m.AppendTranscript(s)
	}
	m.SetAction("c")

	m, _ = m.Update(press(tea.KeyCtrlL))
	if len(m.transcript) != 0 {
		t.Fatalf("expected empty transcript, got %d entries", len(m.transcript))
	}
	first := m.viewport.View()

	m, _ = m.Update(press(tea.KeyCtrlL))
	if len(m.transcript) != 0 || m.viewport.View() != first {
		t.Fatalf("second clear should be a no-op")
	}
	if m.action != "c" {
		t.Fatalf("clearing the transcript must not touch the panels")
	}
}

func TestToggleStats_EmitsPrefsChanged(t *testing.T) {
	m := newTestModel(newGatedService())
	m.SetScore("9.99")

	m, cmd := m.Update(press(tea.KeyTab))
	msgs := runCmd(cmd)
	if len(msgs) != 1 || msgs[0] != (PrefsChangedMsg{HideStats: true}) {
		t.Fatalf("expected PrefsChangedMsg, got %#v", msgs)
	}
	if strings.Contains(m.View(), "9.99") {
		t.Fatalf("stats panels should be hidden")
	}

	m, _ = m.Update(press(tea.KeyTab))
	if !strings.Contains(m.View(), "9.99") {
		t.Fatalf("stats panels should be back")
	}
}
