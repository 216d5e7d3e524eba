package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/config"
	"tasklist/internal/controller"
	"tasklist/internal/exitcode"
	"tasklist/internal/prompt"
	"tasklist/internal/store"
	"tasklist/internal/view"
)

// session is one run of the startup sequence: a controller over a fresh
// view, already loaded from the store.
type session struct {
	ctrl *controller.Controller
	view *view.List
}

// startSession builds a controller for st and runs Start.
// On failure it reports the error and returns a non-zero exit code.
func startSession(ctx context.Context, cfg *config.Config, st store.Store, p prompt.UserPrompt, errOut io.Writer) (*session, int) {
	v := view.NewList()
	ctrl := controller.New(st, v, p,
		controller.WithLogger(cfg.Log()),
		controller.WithDeleteMode(cfg.Mode()),
	)
	if err := ctrl.Start(ctx); err != nil {
		return nil, reportError(errOut, err)
	}
	return &session{ctrl: ctrl, view: v}, exitcode.Success
}

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, controller.ErrEmptyInput):
		return exitcode.UserError
	case errors.Is(err, controller.ErrUserAbort):
		return exitcode.UserError
	case googletasks.IsAuthError(err):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	case errors.Is(err, controller.ErrStorage):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
}

// textInput is a controller.Input holding a fixed string, used for tasks
// given on the command line.
type textInput struct {
	value string
}

func (t *textInput) Value() string { return t.value }
func (t *textInput) Reset()        { t.value = "" }
