package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"minimado/internal/exitcode"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	registry *Registry
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"--help", "-h"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "mm --help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	PrintUsage(env.Out, c.registry)
	return exitcode.Success
}

// PrintUsage writes the usage of every command in r.
func PrintUsage(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "mm - add and list your minimado tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-52s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(w, commonFlagsText)
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory (default ~/.minimado-cli)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
