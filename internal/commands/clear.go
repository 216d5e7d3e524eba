package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/controller"
	"tasklist/internal/exitcode"
	"tasklist/internal/prompt"
	"tasklist/internal/store"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct {
	yes bool
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "tasklist clear [--yes]" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	var p prompt.UserPrompt = prompt.NewTerminal(in, errOut)
	if c.yes {
		p = prompt.Fixed{Answer: true, Out: errOut}
	}

	s, code := startSession(ctx, cfg, st, p, errOut)
	if code != exitcode.Success {
		return code
	}

	err := s.ctrl.DeleteAll(ctx, controller.DeleteAllButton)
	if errors.Is(err, controller.ErrUserAbort) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "aborted")
		}
		return exitcode.Success
	}
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
