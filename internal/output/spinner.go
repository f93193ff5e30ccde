package output

import (
	"fmt"
	"io"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner displays a progress animation while a request is in flight.
// When animate is false nothing is drawn until Success or Fail.
type Spinner struct {
	w       io.Writer
	message string
	animate bool
	started bool
	done    chan struct{}
	stopped chan struct{}
}

// NewSpinner creates a new spinner.
func NewSpinner(w io.Writer, message string, animate bool) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		animate: animate,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start starts the spinner animation.
func (s *Spinner) Start() {
	s.started = true
	if !s.animate {
		close(s.stopped)
		return
	}
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.halt()
	if s.animate {
		fmt.Fprint(s.w, "\r\033[K")
	}
}

// Success stops the spinner with a success message.
func (s *Spinner) Success(message string) {
	s.halt()
	fmt.Fprintf(s.w, "%s✓ %s\n", s.lineStart(), message)
}

// Fail stops the spinner with a failure message.
func (s *Spinner) Fail(message string) {
	s.halt()
	fmt.Fprintf(s.w, "%s✗ %s\n", s.lineStart(), message)
}

// halt ends the animation and waits for the drawing goroutine to exit so
// that nothing is written to w afterwards.
func (s *Spinner) halt() {
	if !s.started {
		return
	}
	close(s.done)
	<-s.stopped
}

func (s *Spinner) lineStart() string {
	if s.animate {
		return "\r\033[K"
	}
	return ""
}
