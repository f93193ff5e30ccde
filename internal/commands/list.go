package commands

import (
	"context"
	"flag"
	"fmt"

	"minimado/internal/exitcode"
	"minimado/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	all bool
}

// SetAll sets the --all flag (for testing).
func (c *ListCmd) SetAll(all bool) {
	c.all = all
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List incomplete tasks (--all to include completed)" }
func (c *ListCmd) Usage() string     { return "mm list [--all|-a]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.all, "a", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	spinner := env.spinner("Fetching tasks...")
	spinner.Start()
	tasks, err := env.Service.ListTasks(ctx, env.Config.UserID)
	if err != nil {
		spinner.Fail("Failed to fetch tasks")
		reportError(env.ErrOut, err)
		return exitcode.Success
	}
	spinner.Stop()
	env.Log.WithField("count", len(tasks)).Debug("Fetched tasks")

	output.RenderTaskList(env.Out, tasks, c.all, env.now())
	return exitcode.Success
}
