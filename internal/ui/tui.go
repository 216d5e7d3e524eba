// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tasklist/internal/controller"
	"tasklist/internal/logging"
	"tasklist/internal/store"
	"tasklist/internal/view"
)

// ErrNoTTY is returned by Run when the output is not a terminal.
var ErrNoTTY = errors.New("ui requires a terminal")

// Option configures the TUI.
type Option func(*options)

type options struct {
	logger *log.Logger
	mode   store.Mode
}

// WithLogger sets the logger handed to the controller.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDeleteMode sets how single deletions reach the store.
func WithDeleteMode(mode store.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// Run starts the TUI over st and blocks until the user quits or ctx is done.
func Run(ctx context.Context, st store.Store, out io.Writer, opts ...Option) error {
	if !IsTTY(out) {
		return ErrNoTTY
	}

	m := NewModel(ctx, st, opts...)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return m.startErr
}

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Model is the bubbletea model of the task screen. All controller calls
// happen inside Update.
type Model struct {
	ctx    context.Context
	ctrl   *controller.Controller
	list   *view.List
	prompt *modalPrompt
	input  textinput.Model
	keys   keyMap
	styles styles
	logger *log.Logger

	focus      focusArea
	cursor     int
	confirming bool
	status     string
	failed     bool
	startErr   error
	width      int
}

// NewModel creates the model and its controller. Nothing is loaded until Init.
func NewModel(ctx context.Context, st store.Store, opts ...Option) *Model {
	o := &options{mode: store.ModeID}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	list := view.NewList()
	p := &modalPrompt{}
	ctrl := controller.New(st, list, p,
		controller.WithLogger(o.logger),
		controller.WithDeleteMode(o.mode),
	)

	return &Model{
		ctx:    ctx,
		ctrl:   ctrl,
		list:   list,
		prompt: p,
		input:  ti,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
		logger: o.logger,
	}
}

// Init runs the startup sequence.
func (m *Model) Init() tea.Cmd {
	if err := m.ctrl.Start(m.ctx); err != nil {
		m.startErr = err
		m.setError(err)
	}
	return textinput.Blink
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.confirming {
			return m, m.updateConfirm(msg)
		}
		if key.Matches(msg, m.keys.Focus) {
			m.switchFocus()
			return m, nil
		}
		if m.focus == focusInput {
			return m, m.updateInput(msg)
		}
		return m, m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Add) {
		m.clearStatus()
		err := m.ctrl.AddTask(m.ctx, &m.input)
		if err != nil && !errors.Is(err, controller.ErrEmptyInput) {
			m.setError(err)
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.click(view.RoleToggle)
	case key.Matches(msg, m.keys.Delete):
		m.click(view.RoleDelete)
		m.clampCursor()
	case key.Matches(msg, m.keys.DeleteAll):
		m.clearStatus()
		m.confirming = true
	}
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.prompt.answer = true
	case key.Matches(msg, m.keys.No):
		m.prompt.answer = false
	default:
		return nil
	}
	m.confirming = false

	err := m.ctrl.DeleteAll(m.ctx, controller.DeleteAllButton)
	switch {
	case errors.Is(err, controller.ErrUserAbort):
		m.status = "aborted"
	case err != nil:
		m.setError(err)
	}
	m.clampCursor()
	return nil
}

// click sends a click on the given part of the row under the cursor.
func (m *Model) click(role view.Role) {
	m.clearStatus()
	target := view.Target{Row: m.list.Row(m.cursor), Role: role}
	if err := m.ctrl.Click(m.ctx, target); err != nil {
		m.setError(err)
	}
}

func (m *Model) switchFocus() {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clearStatus() {
	m.status = ""
	m.failed = false
	m.prompt.status = ""
}

func (m *Model) setError(err error) {
	m.logger.Error("tui action failed", "err", err)
	m.status = err.Error()
	m.failed = true
}

// statusLine returns the current notice, preferring controller notices.
func (m *Model) statusLine() string {
	if m.prompt.status != "" {
		return m.styles.Status.Render(m.prompt.status)
	}
	if m.status == "" {
		return ""
	}
	if m.failed {
		return m.styles.Error.Render("error: " + m.status)
	}
	return m.styles.Status.Render(m.status)
}

// View renders the screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tasklist"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(m.styles.Empty.Render("  no tasks"))
		b.WriteString("\n")
	}
	for i, row := range m.list.Rows() {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirming {
		b.WriteString(m.styles.Modal.Render("Delete all tasks? (y/n)"))
		b.WriteString("\n")
	} else if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) renderRow(i int, row *view.Row) string {
	cursor := "  "
	if m.focus == focusList && i == m.cursor {
		cursor = m.styles.Cursor.Render("> ")
	}

	marker := "[ ]"
	label := m.styles.Label.Render(row.Text())
	if row.Struck {
		marker = "[x]"
		label = m.styles.Struck.Render(row.Text())
	}

	return fmt.Sprintf("%s%s %s  %s", cursor, m.styles.Marker.Render(marker), label, m.styles.Delete.Render("✕"))
}

func (m *Model) helpView() string {
	bindings := m.keys.inputHelp()
	if m.focus == focusList {
		bindings = m.keys.listHelp()
	}
	if m.confirming {
		bindings = []key.Binding{m.keys.Yes, m.keys.No}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.Help.Render(h.Desc))
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
