// Package controller turns user actions into store and view updates.
//
// A Controller is driven from a single goroutine. Each action runs to
// completion before the next one starts, so it holds no locks.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"tasklist/internal/logging"
	"tasklist/internal/prompt"
	"tasklist/internal/store"
	"tasklist/internal/task"
	"tasklist/internal/view"
)

// DeleteAllButton is the only source allowed to trigger DeleteAll.
const DeleteAllButton = "delete-tasks-button"

const (
	emptyInputNotice  = "No tasks added"
	deleteAllQuestion = "Are you sure?"
)

var (
	// ErrEmptyInput is returned when AddTask is given blank text.
	ErrEmptyInput = errors.New("no tasks added")

	// ErrUserAbort is returned when the user declines a confirmation.
	ErrUserAbort = errors.New("aborted")

	// ErrStorage wraps failures reported by the store.
	ErrStorage = errors.New("storage error")
)

// Renderer is the view side of the controller.
type Renderer interface {
	RenderAll(tasks []task.Task)
	RenderOne(t task.Task) *view.Row
	RemoveRow(row *view.Row) bool
	Toggle(row *view.Row)
	Clear()
}

// Input is the text field new tasks are read from.
type Input interface {
	Value() string
	Reset()
}

// Controller coordinates a Store, a Renderer and a UserPrompt.
type Controller struct {
	store    store.Store
	view     Renderer
	prompt   prompt.UserPrompt
	mode     store.Mode
	logger   *log.Logger
	dispatch *view.Dispatcher
	started  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDeleteMode selects delete by id (default) or by text.
func WithDeleteMode(mode store.Mode) Option {
	return func(c *Controller) {
		c.mode = mode
	}
}

// New creates a Controller.
func New(st store.Store, r Renderer, p prompt.UserPrompt, opts ...Option) *Controller {
	c := &Controller{
		store:  st,
		view:   r,
		prompt: p,
		mode:   store.ModeID,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dispatch = view.NewDispatcher()
	c.dispatch.Handle(view.RoleToggle, func(_ context.Context, row *view.Row) error {
		c.ToggleStrike(row)
		return nil
	})
	c.dispatch.Handle(view.RoleDelete, c.DeleteOne)
	return c
}

// Start loads the persisted list and renders it. It runs once; later calls
// are ignored.
func (c *Controller) Start(ctx context.Context) error {
	if c.started {
		return nil
	}
	tasks, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Error("load tasks", "err", err)
		return fmt.Errorf("%w: load: %w", ErrStorage, err)
	}
	c.view.RenderAll(tasks)
	c.started = true
	c.logger.Debug("started", "tasks", len(tasks))
	return nil
}

// AddTask appends the input's text as a new task. Blank input notifies the
// user and changes nothing. On success the input is reset.
func (c *Controller) AddTask(ctx context.Context, in Input) error {
	text := in.Value()
	if task.IsBlank(text) {
		c.prompt.Notify(emptyInputNotice)
		return ErrEmptyInput
	}

	t, err := c.store.Append(ctx, task.New(text))
	if err != nil {
		c.logger.Error("append task", "text", text, "err", err)
		return fmt.Errorf("%w: append: %w", ErrStorage, err)
	}
	c.view.RenderOne(t)
	in.Reset()
	c.logger.Debug("task added", "id", t.ID, "text", text)
	return nil
}

// Click handles a click on part of a row: the toggle strikes the label,
// the delete marker deletes the row, anything else is ignored.
func (c *Controller) Click(ctx context.Context, target view.Target) error {
	ran, err := c.dispatch.Dispatch(ctx, target)
	if !ran {
		c.logger.Debug("click ignored", "role", target.Role)
	}
	return err
}

// ToggleStrike flips the strike on row. The store is not touched.
func (c *Controller) ToggleStrike(row *view.Row) {
	c.view.Toggle(row)
}

// DeleteOne removes row from the view and its task from the store.
func (c *Controller) DeleteOne(ctx context.Context, row *view.Row) error {
	if row == nil {
		return nil
	}
	c.view.RemoveRow(row)

	var err error
	switch c.mode {
	case store.ModeValue:
		// Every stored entry with this text goes, even if other rows
		// still show it.
		err = c.store.RemoveByValue(ctx, row.Task.Text)
	default:
		err = c.store.RemoveByID(ctx, row.Task.ID)
	}
	if err != nil {
		c.logger.Error("delete task", "id", row.Task.ID, "text", row.Task.Text, "err", err)
		return fmt.Errorf("%w: delete: %w", ErrStorage, err)
	}
	c.logger.Debug("task deleted", "id", row.Task.ID, "mode", c.mode)
	return nil
}

// DeleteAll asks for confirmation and then empties both the view and the
// store. source names the control that fired; any source other than
// DeleteAllButton is ignored without asking.
func (c *Controller) DeleteAll(ctx context.Context, source string) error {
	if source != DeleteAllButton {
		c.logger.Debug("delete all ignored", "source", source)
		return nil
	}
	if !c.prompt.Confirm(deleteAllQuestion) {
		return ErrUserAbort
	}

	c.view.Clear()
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error("clear tasks", "err", err)
		return fmt.Errorf("%w: clear: %w", ErrStorage, err)
	}
	c.logger.Debug("all tasks deleted")
	return nil
}
