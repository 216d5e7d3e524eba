package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/store"
	"tasklist/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return []string{"tui"} }
func (c *UICmd) Synopsis() string  { return "Interactive task list" }
func (c *UICmd) Usage() string     { return "tasklist ui [common flags]" }
func (c *UICmd) NeedsStore() bool  { return true }

// LogsToFile reports that logs go to the log file, keeping the screen clean.
func (c *UICmd) LogsToFile() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	err := ui.Run(ctx, st, out,
		ui.WithLogger(cfg.Log()),
		ui.WithDeleteMode(cfg.Mode()),
	)
	if errors.Is(err, ui.ErrNoTTY) {
		fmt.Fprintf(errOut, "error: %v (try: tasklist list)\n", err)
		return exitcode.UserError
	}
	if err != nil {
		return reportError(errOut, err)
	}
	return exitcode.Success
}
