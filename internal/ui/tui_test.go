package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/store"
	"tasklist/internal/task"
	"tasklist/internal/testutil"
)

// failingStore fails every call.
type failingStore struct{}

var errUnavailable = errors.New("unavailable")

func (failingStore) Load(ctx context.Context) ([]task.Task, error)              { return nil, errUnavailable }
func (failingStore) Append(ctx context.Context, t task.Task) (task.Task, error) { return task.Task{}, errUnavailable }
func (failingStore) RemoveByValue(ctx context.Context, text string) error       { return errUnavailable }
func (failingStore) RemoveByID(ctx context.Context, id string) error            { return errUnavailable }
func (failingStore) Clear(ctx context.Context) error                            { return errUnavailable }

func newTestModel(t *testing.T, seed string, mode store.Mode) (*Model, *testutil.MemSlot) {
	t.Helper()
	slot := testutil.NewMemSlot()
	if seed != "" {
		slot.Put(store.TasksKey, seed)
	}
	st := store.NewLocal(slot, store.WithMode(mode))
	m := NewModel(context.Background(), st, WithDeleteMode(mode))
	m.Init()
	return m, slot
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "delete":
			msg = tea.KeyMsg{Type: tea.KeyDelete}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func raw(slot *testutil.MemSlot) string {
	v, _ := slot.Raw(store.TasksKey)
	return v
}

func TestInit_RendersStoredTasks(t *testing.T) {
	m, _ := newTestModel(t, `["a","b"]`, store.ModeValue)

	if got := strings.Join(m.list.Texts(), ","); got != "a,b" {
		t.Errorf("expected rows a,b, got %s", got)
	}
	out := m.View()
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("view should show both tasks:\n%s", out)
	}
}

func TestEnter_AddsTask(t *testing.T) {
	m, slot := newTestModel(t, "", store.ModeValue)

	m.input.SetValue("buy milk")
	press(m, "enter")

	if got := raw(slot); got != `["buy milk"]` {
		t.Errorf("unexpected slot %s", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be reset, got %q", m.input.Value())
	}
	if m.list.Len() != 1 {
		t.Errorf("expected 1 row, got %d", m.list.Len())
	}
}

func TestEnter_EmptyShowsNotice(t *testing.T) {
	m, slot := newTestModel(t, "", store.ModeValue)

	m.input.SetValue("   ")
	press(m, "enter")

	if slot.Writes != 0 {
		t.Errorf("expected no writes, got %d", slot.Writes)
	}
	if !strings.Contains(m.View(), "No tasks added") {
		t.Errorf("expected notice in view:\n%s", m.View())
	}
	if m.input.Value() != "   " {
		t.Errorf("input should be kept, got %q", m.input.Value())
	}
}

func TestEnter_WriteFailureKeepsInput(t *testing.T) {
	m, slot := newTestModel(t, "", store.ModeValue)
	slot.SetErr = errors.New("disk full")

	m.input.SetValue("x")
	press(m, "enter")

	if m.list.Len() != 0 {
		t.Errorf("expected no rows, got %d", m.list.Len())
	}
	if m.input.Value() != "x" {
		t.Errorf("input should be kept, got %q", m.input.Value())
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
}

func TestListKeysIgnoredWhileTyping(t *testing.T) {
	m, slot := newTestModel(t, `["a"]`, store.ModeValue)

	press(m, "x", "D", "q")

	if m.input.Value() != "xDq" {
		t.Errorf("expected keys typed into input, got %q", m.input.Value())
	}
	if raw(slot) != `["a"]` || m.confirming {
		t.Error("list keys should not act while the input has focus")
	}
}

func TestSpace_TogglesViewOnly(t *testing.T) {
	m, slot := newTestModel(t, `["a","b"]`, store.ModeValue)

	press(m, "tab", "down", "space")

	if m.list.Row(0).Struck || !m.list.Row(1).Struck {
		t.Error("expected only the second row struck")
	}
	if slot.Writes != 0 {
		t.Errorf("toggle should not write, got %d writes", slot.Writes)
	}

	press(m, "space")
	if m.list.Row(1).Struck {
		t.Error("second toggle should clear the strike")
	}
}

func TestDelete_RemovesRowUnderCursor(t *testing.T) {
	m, slot := newTestModel(t, `["a","b","c"]`, store.ModeValue)

	press(m, "tab", "down", "down", "x")

	if got := raw(slot); got != `["a","b"]` {
		t.Errorf("unexpected slot %s", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor should move to the new last row, got %d", m.cursor)
	}

	press(m, "up", "delete")
	if got := raw(slot); got != `["b"]` {
		t.Errorf("unexpected slot %s", got)
	}
}

func TestDelete_ValueModeRemovesAllMatches(t *testing.T) {
	m, slot := newTestModel(t, `["a","b","a"]`, store.ModeValue)

	press(m, "tab", "x")

	if got := raw(slot); got != `["b"]` {
		t.Errorf("unexpected slot %s", got)
	}
	// The view only loses the clicked row
	if got := strings.Join(m.list.Texts(), ","); got != "b,a" {
		t.Errorf("unexpected rows %s", got)
	}
}

func TestDelete_EmptyListIsNoop(t *testing.T) {
	m, slot := newTestModel(t, "", store.ModeID)

	press(m, "tab", "x", "space")

	if slot.Writes != 0 {
		t.Errorf("expected no writes, got %d", slot.Writes)
	}
}

func TestDeleteAll_Confirmed(t *testing.T) {
	m, slot := newTestModel(t, `["a","b"]`, store.ModeValue)

	press(m, "tab", "D")
	if !m.confirming {
		t.Fatal("expected confirmation modal")
	}
	if !strings.Contains(m.View(), "Delete all tasks?") {
		t.Errorf("modal not shown:\n%s", m.View())
	}

	press(m, "y")

	if m.confirming {
		t.Error("modal should close")
	}
	if m.list.Len() != 0 {
		t.Errorf("expected empty view, got %d rows", m.list.Len())
	}
	if got := raw(slot); got != `[]` {
		t.Errorf("expected empty slot, got %s", got)
	}
}

func TestDeleteAll_Declined(t *testing.T) {
	for _, answer := range []string{"n", "esc"} {
		m, slot := newTestModel(t, `["a","b"]`, store.ModeValue)

		press(m, "tab", "D", "z", answer)

		if m.confirming {
			t.Errorf("%s: modal should close", answer)
		}
		if m.list.Len() != 2 {
			t.Errorf("%s: expected 2 rows, got %d", answer, m.list.Len())
		}
		if slot.Writes != 0 {
			t.Errorf("%s: expected no writes, got %d", answer, slot.Writes)
		}
		if !strings.Contains(m.View(), "aborted") {
			t.Errorf("%s: expected aborted notice", answer)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "", store.ModeID)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should quit")
	}

	press(m, "tab")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit from the list")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestInit_LoadFailureShown(t *testing.T) {
	m := NewModel(context.Background(), failingStore{})
	m.Init()

	if m.startErr == nil {
		t.Fatal("expected start error")
	}
	if !strings.Contains(m.View(), "error:") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
}

func TestRun_RequiresTTY(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), store.NewLocal(testutil.NewMemSlot()), &buf)
	if !errors.Is(err, ErrNoTTY) {
		t.Errorf("expected ErrNoTTY, got %v", err)
	}
}

func TestModalPrompt(t *testing.T) {
	p := &modalPrompt{answer: true}

	if !p.Confirm("Are you sure?") {
		t.Error("expected the recorded answer")
	}
	if p.question != "Are you sure?" {
		t.Errorf("question not recorded: %q", p.question)
	}
	if p.Confirm("again?") {
		t.Error("an answer is used once")
	}

	p.Notify("hello")
	if p.status != "hello" {
		t.Errorf("expected status hello, got %q", p.status)
	}
}
