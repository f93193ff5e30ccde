// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"minimado/internal/commands"
	"minimado/internal/config"
	"minimado/internal/exitcode"
	"minimado/internal/identity"
	"minimado/internal/prompt"
	"minimado/internal/service"
)

// defaultCommand runs when the first argument is not a command name.
const defaultCommand = "add"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	prompt   prompt.Prompter

	// Animate enables the progress spinner animation.
	Animate bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewDispatcher creates a new dispatcher with the given registry, service
// factory and prompter.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, p prompt.Prompter) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		prompt:   p,
		Now:      time.Now,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> usage
	if len(args) == 0 {
		return d.dispatch(ctx, "help", nil, out, errOut)
	}

	// Look up command (aliases include --help and --version)
	if cmd, ok := d.registry.Find(args[0]); ok {
		return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
	}

	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(errOut, "error: unknown option: %s\n", args[0])
		return exitcode.UserError
	}

	// Anything else is a task title
	return d.dispatch(ctx, defaultCommand, args, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return d.flagError(cmd, err, out, errOut)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.Animate = d.Animate

	log := newLogger(errOut, cfg)
	store := config.NewStore(cfg.SettingsPath(), log)

	// Resolve identity and build the service for commands that need it
	var svc service.Service
	if cmd.NeedsAuth() {
		resolver := identity.NewResolver(store, d.prompt, out, log)
		userID, err := resolver.UserID()
		if err != nil {
			if errors.Is(err, identity.ErrNoIdentity) {
				fmt.Fprintf(errOut, "error: %s\n", err)
			} else {
				fmt.Fprintf(errOut, "error: could not get user ID: %s\n", err)
			}
			return exitcode.AuthError
		}
		cfg.UserID = userID

		svc, err = d.factory(ctx, cfg, log)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}

	env := &commands.Env{
		Config:  cfg,
		Store:   store,
		Service: svc,
		Prompt:  d.prompt,
		Log:     log,
		Now:     d.Now,
		Out:     out,
		ErrOut:  errOut,
	}
	return cmd.Run(ctx, env, positionalArgs)
}

// flagError reports a flag parsing error.
func (d *Dispatcher) flagError(cmd commands.Command, err error, out, errOut io.Writer) int {
	// -h/--help after a command prints that command's usage
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(out, "Usage:\n  %s\n", cmd.Usage())
		return exitcode.Success
	}

	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}

// newLogger returns the logger for one invocation, writing to errOut.
func newLogger(errOut io.Writer, cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case cfg.Debug:
		log.SetLevel(logrus.DebugLevel)
	case cfg.Quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
