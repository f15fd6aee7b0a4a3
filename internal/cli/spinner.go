package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// spinnerInterval is the frame advance rate.
const spinnerInterval = 90 * time.Millisecond

// spinnerFrames animates a sweeping arc.
var spinnerFrames = [...]string{"◜", "◠", "◝", "◞", "◡", "◟"}

// Spinner is a single-line progress indicator for slow operations such
// as catalog syncs. It draws on stderr so command output on stdout
// stays clean for piping.
type Spinner struct {
	message string
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	halt    sync.Once
	done    chan struct{} // closed by Stop
	idle    chan struct{} // closed when the draw loop has exited
}

// newSpinner creates a spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext ties the spinner to ctx: cancelling the context
// stops the animation and marks the spinner cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	derived, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		parent:  ctx,
		ctx:     derived,
		cancel:  cancel,
		done:    make(chan struct{}),
		idle:    make(chan struct{}),
	}
}

// Start launches the draw loop. Call Stop (or a StopWith variant) before
// printing anything else.
func (s *Spinner) Start() {
	go func() {
		defer close(s.idle)
		defer s.erase()
		for frame := 0; ; frame++ {
			fmt.Fprintf(os.Stderr, "\r%s %s",
				styleSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]),
				StyleDim.Render(s.message))
			select {
			case <-s.ctx.Done():
				return
			case <-s.done:
				return
			case <-time.After(spinnerInterval):
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call repeatedly
// and after context cancellation.
func (s *Spinner) Stop() {
	s.halt.Do(func() { close(s.done) })
	s.cancel()
	<-s.idle
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context was cancelled, as
// opposed to a plain Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

// erase blanks the spinner line. Runs on the draw goroutine, after the
// last frame, so it never races a concurrent draw.
func (s *Spinner) erase() {
	fmt.Fprint(os.Stderr, "\r", strings.Repeat(" ", lipgloss.Width(s.message)+2), "\r")
}
