// Package console is the line-oriented front end used with --plain: each
// input line is one action, and the transcript streams to the output.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/CrestNiraj12/dungeonterm/app"
)

// ClearCommand is the input line that clears the transcript.
const ClearCommand = "/clear"

// lineInput is the input field: it holds the line being submitted.
type lineInput struct {
	value string
}

func (l *lineInput) Value() string { return l.value }
func (l *lineInput) Clear()        { l.value = "" }

// display streams the transcript to w. A stream cannot be scrolled or
// repainted, so the panels are printed as one stats line per reply.
type display struct {
	w       io.Writer
	entries int

	score   string
	rewards string
	dirty   bool
}

func (d *display) AppendTranscript(text string) {
	fmt.Fprintf(d.w, "%s\n\n", text)
	d.entries++
}

// A stream is always at its bottom, and the transcript line just printed is
// the latest action, so neither needs output of its own.
func (d *display) ScrollToBottom()        {}
func (d *display) SetAction(string)       {}
func (d *display) SetScore(text string)   { d.score, d.dirty = text, true }
func (d *display) SetRewards(text string) { d.rewards, d.dirty = text, true }

func (d *display) ClearTranscript() {
	if d.entries == 0 {
		return
	}
	d.entries = 0
	fmt.Fprintln(d.w, "--- transcript cleared ---")
}

func (d *display) Notify(message string) {
	fmt.Fprintf(d.w, "! %s\n", message)
}

func (d *display) flushPanels() {
	if !d.dirty {
		return
	}
	d.dirty = false
	fmt.Fprintf(d.w, "[score %s] [rewards %s]\n\n", d.score, d.rewards)
}

// Run reads actions from in until EOF and writes the transcript to out.
// Lines are submitted as soon as they are read, without waiting for earlier
// replies; replies print in the order they arrive. Run returns once input is
// exhausted and every reply has settled, or when ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, interactor *app.Interactor) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	d := &display{w: out}
	input := &lineInput{}
	settled := make(chan *app.Pending)
	inFlight := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				lines = nil
				if inFlight == 0 {
					return drainReadErr(readErr)
				}
				continue
			}
			if strings.TrimSpace(line) == ClearCommand {
				interactor.Clear(d)
				continue
			}
			input.value = line
			p, err := interactor.Submit(ctx, input, d)
			if err != nil {
				continue
			}
			inFlight++
			go func() {
				select {
				case <-p.Done():
					settled <- p
				case <-ctx.Done():
				}
			}()

		case p := <-settled:
			inFlight--
			interactor.Complete(p, d, input)
			d.flushPanels()
			if lines == nil && inFlight == 0 {
				return drainReadErr(readErr)
			}
		}
	}
}

func drainReadErr(ch <-chan error) error {
	select {
	case err := <-ch:
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	default:
	}
	return nil
}
