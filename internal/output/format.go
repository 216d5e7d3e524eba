// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/view"
)

// FormatRow formats a row line for the list command.
// Format: "{N:>4}  {TEXT}\n" (4-wide right-aligned number, two spaces, text)
func FormatRow(w io.Writer, num int, row *view.Row) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(row.Text()))
}

// FormatRows writes every row of l, numbered from 1.
func FormatRows(w io.Writer, l *view.List) {
	for i, row := range l.Rows() {
		FormatRow(w, i+1, row)
	}
}

// normalizeText keeps a task on one line.
// Newlines become spaces; blank text becomes "(untitled)".
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
