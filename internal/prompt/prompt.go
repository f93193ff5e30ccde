// Package prompt reads answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user a question and returns the answer.
type Prompter interface {
	// Ask writes question and reads one line. The answer is trimmed.
	// At end of input with nothing typed, Ask returns "" and no error.
	Ask(question string) (string, error)
}

// Terminal is a Prompter reading lines from an input stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a prompter reading from in and writing questions to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter.
func (t *Terminal) Ask(question string) (string, error) {
	fmt.Fprint(t.out, question)
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		// Keep the terminal tidy when input ends without a newline.
		fmt.Fprintln(t.out)
	}
	return strings.TrimSpace(line), nil
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Confirmed reports whether answer is an affirmative reply: y or yes, in
// any case.
func Confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
