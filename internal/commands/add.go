package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"minimado/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. It also runs when the first argument
// is not a known command, so `mm "Buy milk"` adds a task.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task (default)" }
func (c *AddCmd) Usage() string     { return `mm [add] "<title>"` }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(env.ErrOut, "error: title required")
		return exitcode.UserError
	}

	spinner := env.spinner("Adding task...")
	spinner.Start()
	body, err := env.Service.AddTask(ctx, env.Config.UserID, title)
	if err != nil {
		spinner.Fail("Failed to add task")
		reportError(env.ErrOut, err)
		return exitcode.Success
	}
	spinner.Success("Task added")

	if body = strings.TrimSpace(body); body != "" && !env.Config.Quiet {
		fmt.Fprintln(env.Out, body)
	}
	return exitcode.Success
}
