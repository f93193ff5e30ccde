// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"minimado/internal/config"
	"minimado/internal/output"
	"minimado/internal/prompt"
	"minimado/internal/service"
)

// Env is everything a command may use during one invocation.
type Env struct {
	// Config is always provided (config dir, flags, resolved user ID).
	Config *config.Config

	// Store reads and writes the settings file.
	Store *config.Store

	// Service is nil if NeedsAuth() returns false.
	Service service.Service

	// Prompt asks the user questions.
	Prompt prompt.Prompter

	Log logrus.FieldLogger

	// Now returns the current time. Defaults to time.Now when nil.
	Now func() time.Time

	Out    io.Writer
	ErrOut io.Writer
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// spinner returns a progress spinner on Out, silent in quiet mode.
func (e *Env) spinner(message string) *output.Spinner {
	if e.Config.Quiet {
		return output.NewSpinner(io.Discard, message, false)
	}
	return output.NewSpinner(e.Out, message, e.Config.Animate)
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to the service and
	// therefore needs a user ID.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// reportError prints a failed service call. Failures are surfaced but do
// not change the exit code.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "error: cancelled")
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
