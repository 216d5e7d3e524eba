// Package store defines the persistence boundary for the task list.
package store

import (
	"context"
	"fmt"

	"tasklist/internal/task"
)

// TasksKey is the slot key holding the serialized task list.
const TasksKey = "tasks"

// Store defines the operations the controller needs from persistence.
// Every mutation rewrites the whole list; there are no partial updates.
type Store interface {
	// Load returns the persisted list in order.
	// An absent slot is an empty list.
	Load(ctx context.Context) ([]task.Task, error)

	// Append adds t to the end of the list and returns the task as
	// stored. Backends that assign their own IDs return that ID, which is
	// the one RemoveByID expects.
	Append(ctx context.Context, t task.Task) (task.Task, error)

	// RemoveByValue removes every entry whose text equals text.
	RemoveByValue(ctx context.Context, text string) error

	// RemoveByID removes the entry with the given ID, if present.
	RemoveByID(ctx context.Context, id string) error

	// Clear persists the empty list.
	Clear(ctx context.Context) error
}

// Mode selects how entries are identified on delete and how the list is
// written back.
type Mode string

const (
	// ModeID deletes by stable identifier and persists {id,text} objects.
	ModeID Mode = "id"

	// ModeValue deletes by text and persists a plain array of strings
	// (the legacy layout).
	ModeValue Mode = "value"
)

// ParseMode parses a delete mode name. Empty means ModeID.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeID:
		return ModeID, nil
	case ModeValue:
		return ModeValue, nil
	default:
		return "", fmt.Errorf("invalid delete mode %q, must be one of: id, value", s)
	}
}
