package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"minimado/internal/exitcode"
	"minimado/internal/prompt"
)

func init() {
	Register(&ConfigCmd{})
}

// stringOption is a string flag that remembers whether it was given, so
// an explicit empty value can be told apart from an absent flag.
type stringOption struct {
	value string
	set   bool
}

func (o *stringOption) String() string { return o.value }

func (o *stringOption) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

// ConfigCmd implements the config command. Its options are mutually
// exclusive.
type ConfigCmd struct {
	setUserID stringOption
	show      bool
	reset     bool
}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Show, set or reset the stored user ID" }
func (c *ConfigCmd) Usage() string     { return "mm config [--set-user-id <id>] [--show] [--reset]" }
func (c *ConfigCmd) NeedsAuth() bool   { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {
	c.setUserID = stringOption{}
	fs.Var(&c.setUserID, "set-user-id", "")
	fs.BoolVar(&c.show, "show", false, "")
	fs.BoolVar(&c.reset, "reset", false, "")
}

func (c *ConfigCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	selected := 0
	for _, on := range []bool{c.setUserID.set, c.show, c.reset} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		fmt.Fprintln(env.ErrOut, "error: --set-user-id, --show and --reset cannot be combined")
		return exitcode.UserError
	}

	switch {
	case c.setUserID.set:
		return c.runSetUserID(env)
	case c.show:
		return c.runShow(env)
	case c.reset:
		return c.runReset(env)
	default:
		fmt.Fprint(env.Out, configHelpText)
		return exitcode.Success
	}
}

func (c *ConfigCmd) runSetUserID(env *Env) int {
	userID := strings.TrimSpace(c.setUserID.value)
	if userID == "" {
		fmt.Fprintln(env.ErrOut, "error: user ID cannot be empty")
		return exitcode.UserError
	}

	settings := env.Store.Load()
	settings.UserID = userID
	if err := env.Store.Save(settings); err != nil {
		fmt.Fprintf(env.ErrOut, "error: failed to save config: %v\n", err)
		return exitcode.Success
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "✓ User ID saved")
	}
	return exitcode.Success
}

func (c *ConfigCmd) runShow(env *Env) int {
	settings := env.Store.Load()
	userID := settings.UserID
	if userID == "" {
		userID = "(not set)"
	}
	fmt.Fprintf(env.Out, "Config file: %s\n", env.Store.Path())
	fmt.Fprintf(env.Out, "User ID: %s\n", userID)
	return exitcode.Success
}

func (c *ConfigCmd) runReset(env *Env) int {
	answer, err := env.Prompt.Ask("Are you sure you want to reset your configuration? (y/N): ")
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if !prompt.Confirmed(answer) {
		fmt.Fprintln(env.Out, "Reset cancelled")
		return exitcode.Success
	}

	if err := env.Store.Remove(); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(env.Out, "No configuration to reset")
			return exitcode.Success
		}
		fmt.Fprintf(env.ErrOut, "error: failed to remove config: %v\n", err)
		return exitcode.Success
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "✓ Configuration reset")
	}
	return exitcode.Success
}

const configHelpText = `Usage:
  mm config --set-user-id <id>   Store the user ID
  mm config --show               Show the config file and user ID
  mm config --reset              Delete the config file (asks first)
`
