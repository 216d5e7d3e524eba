// Package task defines the to-do entry shared by the store, view and controller.
package task

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// LegacyIDPrefix prefixes the positional IDs given to entries read from the
// legacy string-array layout.
const LegacyIDPrefix = "legacy-"

// Task is a single to-do entry.
type Task struct {
	// ID identifies the entry independently of its text.
	ID string `json:"id"`

	// Text is what the user typed.
	Text string `json:"text"`
}

// New creates a task with a freshly generated ID.
func New(text string) Task {
	return Task{ID: NewID(), Text: text}
}

// NewID returns a new random task identifier.
func NewID() string {
	return uuid.NewString()
}

// LegacyID returns the positional ID for the n-th (1-based) legacy entry.
func LegacyID(n int) string {
	return fmt.Sprintf("%s%d", LegacyIDPrefix, n)
}

// IsBlank reports whether text has no visible content.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Texts returns the text of every task, in order.
func Texts(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}
