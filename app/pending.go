package app

import (
	"context"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

// Pending is the in-flight result of one interaction cycle.
// It is settled exactly once, when the request finishes or fails.
type Pending struct {
	ID    string
	Input string

	done   chan struct{}
	result domain.InteractionResult
	err    error
}

func startPending(ctx context.Context, id, input string, fn func(context.Context, string) (domain.InteractionResult, error)) *Pending {
	p := &Pending{ID: id, Input: input, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.result, p.err = fn(ctx, input)
	}()
	return p
}

// Resolved returns a Pending that has already settled with the given outcome.
func Resolved(id, input string, result domain.InteractionResult, err error) *Pending {
	p := &Pending{ID: id, Input: input, done: make(chan struct{}), result: result, err: err}
	close(p.done)
	return p
}

// Done is closed once the request has settled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the request settles or ctx is done.
func (p *Pending) Await(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settle waits for the outcome and hands it to exactly one continuation.
func (p *Pending) Settle(onSuccess func(domain.InteractionResult), onFailure func(error)) {
	<-p.done
	if p.err != nil {
		onFailure(p.err)
		return
	}
	onSuccess(p.result)
}
