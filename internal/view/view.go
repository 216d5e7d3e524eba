// Package view projects the task list into rows and tracks view-only state.
//
// A List owns its rows. Rows are identified by pointer, so two rows showing
// the same text are still distinct. Strike state lives on the row and is
// never written back to the store.
package view

import (
	"tasklist/internal/task"
)

// Row is one rendered task.
type Row struct {
	Task   task.Task
	Struck bool
}

// Text returns the row's label.
func (r *Row) Text() string {
	return r.Task.Text
}

// List is an ordered set of rows.
type List struct {
	rows []*Row
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// RenderAll replaces every row with one row per task, in order.
func (l *List) RenderAll(tasks []task.Task) {
	l.rows = make([]*Row, 0, len(tasks))
	for _, t := range tasks {
		l.rows = append(l.rows, &Row{Task: t})
	}
}

// RenderOne appends a row for t and returns it.
func (l *List) RenderOne(t task.Task) *Row {
	row := &Row{Task: t}
	l.rows = append(l.rows, row)
	return row
}

// RemoveRow removes exactly row. It reports whether the row was present.
func (l *List) RemoveRow(row *Row) bool {
	for i, r := range l.rows {
		if r == row {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every row.
func (l *List) Clear() {
	l.rows = nil
}

// Toggle flips the strike state of row only.
func (l *List) Toggle(row *Row) {
	if row == nil {
		return
	}
	row.Struck = !row.Struck
}

// Rows returns the rows top to bottom. The slice must not be modified.
func (l *List) Rows() []*Row {
	return l.rows
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.rows)
}

// Row returns the i-th (0-based) row, or nil if out of range.
func (l *List) Row(i int) *Row {
	if i < 0 || i >= len(l.rows) {
		return nil
	}
	return l.rows[i]
}

// Texts returns every row's label in order.
func (l *List) Texts() []string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Text()
	}
	return out
}
