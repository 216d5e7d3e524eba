// Package prompt provides the user confirmation and notification capability.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UserPrompt asks the user yes/no questions and shows notices.
type UserPrompt interface {
	// Confirm asks question and reports whether the user agreed.
	Confirm(question string) bool

	// Notify shows message to the user.
	Notify(message string)
}

// Terminal prompts on a line-oriented terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a prompt reading answers from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm implements UserPrompt. Only "y" or "yes" confirm; anything else,
// including EOF, declines.
func (t *Terminal) Confirm(question string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", question)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Notify implements UserPrompt.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}

// Fixed answers every question the same way without asking.
type Fixed struct {
	Answer bool
	Out    io.Writer
}

// Confirm implements UserPrompt.
func (f Fixed) Confirm(question string) bool {
	return f.Answer
}

// Notify implements UserPrompt.
func (f Fixed) Notify(message string) {
	if f.Out != nil {
		fmt.Fprintln(f.Out, message)
	}
}
