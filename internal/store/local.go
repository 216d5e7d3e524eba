package store

import (
	"context"

	"github.com/charmbracelet/log"

	"tasklist/internal/logging"
	"tasklist/internal/task"
)

// Local is a Store kept in a Slot under TasksKey.
type Local struct {
	slot   Slot
	mode   Mode
	logger *log.Logger
}

// Option configures a Local store.
type Option func(*Local)

// WithMode sets the layout written back to the slot.
func WithMode(mode Mode) Option {
	return func(l *Local) {
		l.mode = mode
	}
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(logger *log.Logger) Option {
	return func(l *Local) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocal creates a Store over slot.
func NewLocal(slot Slot, opts ...Option) *Local {
	l := &Local{
		slot:   slot,
		mode:   ModeID,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements Store. Unreadable or corrupt content loads as an empty
// list and is logged; it is never returned as an error.
func (l *Local) Load(ctx context.Context) ([]task.Task, error) {
	return l.read(), nil
}

// Append implements Store. The task is stored with its own ID.
func (l *Local) Append(ctx context.Context, t task.Task) (task.Task, error) {
	tasks := l.read()
	tasks = append(tasks, t)
	if err := l.write(tasks); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// RemoveByValue implements Store.
func (l *Local) RemoveByValue(ctx context.Context, text string) error {
	tasks := l.read()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.Text != text {
			kept = append(kept, t)
		}
	}
	l.logger.Debug("remove by value", "text", text, "removed", len(tasks)-len(kept))
	return l.write(kept)
}

// RemoveByID implements Store.
func (l *Local) RemoveByID(ctx context.Context, id string) error {
	tasks := l.read()
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return l.write(tasks)
		}
	}
	l.logger.Debug("remove by id: no such task", "id", id)
	return nil
}

// Clear implements Store.
func (l *Local) Clear(ctx context.Context) error {
	return l.write(nil)
}

func (l *Local) read() []task.Task {
	data, ok, err := l.slot.Get(TasksKey)
	if err != nil {
		l.logger.Warn("task slot unreadable, using empty list", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	tasks, lay, err := decodeTasks(data)
	if err != nil {
		l.logger.Warn("task slot corrupt, using empty list", "err", err)
		return nil
	}
	if lay == layoutLegacy && l.mode == ModeID {
		l.logger.Debug("legacy task slot, upgraded on next write", "tasks", len(tasks))
	}
	return tasks
}

func (l *Local) write(tasks []task.Task) error {
	data, err := encodeTasks(tasks, l.mode)
	if err != nil {
		l.logger.Error("encode tasks", "err", err)
		return err
	}
	if err := l.slot.Set(TasksKey, data); err != nil {
		l.logger.Error("persist tasks", "err", err)
		return err
	}
	return nil
}
