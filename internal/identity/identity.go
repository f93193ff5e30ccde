// Package identity resolves the user ID sent to the task service.
package identity

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"minimado/internal/config"
	"minimado/internal/prompt"
)

// ErrNoIdentity is returned when no user ID is stored and none was entered.
var ErrNoIdentity = errors.New("user ID is required")

const setupText = `Welcome to minimado!
This looks like your first run, so your user ID is needed to reach your tasks.
You can copy it from your profile page in the minimado web app.
`

// Resolver returns the cached user ID, asking for it on first use.
type Resolver struct {
	store  *config.Store
	prompt prompt.Prompter
	out    io.Writer
	log    logrus.FieldLogger
}

// NewResolver creates a resolver backed by store. Setup instructions are
// written to out.
func NewResolver(store *config.Store, p prompt.Prompter, out io.Writer, log logrus.FieldLogger) *Resolver {
	return &Resolver{store: store, prompt: p, out: out, log: log}
}

// UserID returns the stored user ID without validating it. When none is
// stored the user is asked once and the answer is saved; a failed save is
// logged and the entered ID is still returned.
func (r *Resolver) UserID() (string, error) {
	settings := r.store.Load()
	if settings.UserID != "" {
		return settings.UserID, nil
	}

	fmt.Fprint(r.out, setupText)
	answer, err := r.prompt.Ask("Enter your user ID: ")
	if err != nil {
		return "", fmt.Errorf("read user ID: %w", err)
	}
	if answer == "" {
		return "", ErrNoIdentity
	}

	settings.UserID = answer
	if err := r.store.Save(settings); err != nil {
		r.log.WithFields(logrus.Fields{
			"path":  r.store.Path(),
			"cause": err,
		}).Error("Could not save user ID, it will be asked again next time")
	} else {
		fmt.Fprintf(r.out, "User ID saved to %s\n", r.store.Path())
	}
	return answer, nil
}
