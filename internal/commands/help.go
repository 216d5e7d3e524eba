package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklist help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasklist                                 List all tasks
  tasklist list [common flags]             List all tasks
  tasklist add [common flags] <text...>    Add a task
  tasklist rm [common flags] <n>           Delete task number n
  tasklist clear [common flags] [--yes]    Delete all tasks
  tasklist ui [common flags]               Interactive list
  tasklist login [common flags]
  tasklist logout [common flags]
  tasklist help
  tasklist version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Interactive keys:
  enter      add the typed task
  tab        switch between input and list
  up/down    move the cursor
  space      strike through the selected task
  x, delete  delete the selected task
  D          delete all tasks
  q, ctrl+c  quit
`
