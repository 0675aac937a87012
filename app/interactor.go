package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

// Interactor runs interaction cycles against the game server and projects
// the replies into a Display. It holds no UI state of its own: the input
// field, notifier and display are passed in on every call.
//
// Overlapping submissions are allowed. Their replies are applied in the
// order Complete is called, which is the order they arrive.
type Interactor struct {
	svc    InteractionService
	log    *slog.Logger
	nextID func() string
}

// NewInteractor creates an Interactor. A nil logger discards log output.
func NewInteractor(svc InteractionService, logger *slog.Logger) *Interactor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interactor{
		svc:    svc,
		log:    logger,
		nextID: uuid.NewString,
	}
}

// Submit reads the input field and starts one request for it.
// A blank field raises the empty-input notice and sends nothing.
// The returned Pending settles asynchronously; Submit never waits on it.
func (i *Interactor) Submit(ctx context.Context, input InputField, notify Notifier) (*Pending, error) {
	value := input.Value()
	if domain.IsBlank(value) {
		notify.Notify(domain.EmptyInputNotice)
		return nil, domain.ErrEmptyInput
	}

	id := i.nextID()
	i.log.Debug("submitting interaction", "interaction_id", id, "input_len", len(value))
	return startPending(ctx, id, value, i.svc.Interact), nil
}

// Complete applies a settled Pending. It must run on the UI loop.
// Failures are logged only: the display and input are left untouched.
func (i *Interactor) Complete(p *Pending, display Display, input InputField) {
	p.Settle(
		func(res domain.InteractionResult) {
			display.AppendTranscript(res.DMAction)
			display.ScrollToBottom()
			display.SetAction(res.DMAction)
			display.SetScore(domain.FormatScore(res.FeedbackScore))
			display.SetRewards(domain.FormatRewards(res.UpdatedRewards))
			input.Clear()
			i.log.Debug("interaction applied", "interaction_id", p.ID)
		},
		func(err error) {
			i.log.Error("interaction failed", "interaction_id", p.ID, "input_len", len(p.Input), "error", err)
		},
	)
}

// Clear empties the transcript. The three panels keep their values.
func (i *Interactor) Clear(display Display) {
	display.ClearTranscript()
}
