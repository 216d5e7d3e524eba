package store_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"tasklist/internal/store"
	"tasklist/internal/task"
	"tasklist/internal/testutil"
)

func texts(t *testing.T, s store.Store) []string {
	t.Helper()
	tasks, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return task.Texts(tasks)
}

func TestLocal_LoadAbsentSlot(t *testing.T) {
	s := store.NewLocal(testutil.NewMemSlot())

	got := texts(t, s)
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestLocal_RoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	s := store.NewLocal(slot)

	for _, text := range []string{"a", "b", "c", "b"} {
		if _, err := s.Append(ctx, task.New(text)); err != nil {
			t.Fatalf("append %q: %v", text, err)
		}
	}

	// A fresh store over the same slot plays the part of a reload.
	reloaded := store.NewLocal(slot)
	want := []string{"a", "b", "c", "b"}
	if got := texts(t, reloaded); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLocal_RemoveByValueRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	slot.Put(store.TasksKey, `["buy milk","walk dog","buy milk"]`)
	s := store.NewLocal(slot, store.WithMode(store.ModeValue))

	if err := s.RemoveByValue(ctx, "buy milk"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	raw, _ := slot.Raw(store.TasksKey)
	if raw != `["walk dog"]` {
		t.Errorf("expected legacy layout [\"walk dog\"], got %s", raw)
	}
}

func TestLocal_RemoveByIDRemovesOneDuplicate(t *testing.T) {
	ctx := context.Background()
	s := store.NewLocal(testutil.NewMemSlot())

	first := task.New("buy milk")
	second := task.New("buy milk")
	for _, tk := range []task.Task{first, task.New("walk dog"), second} {
		if _, err := s.Append(ctx, tk); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := s.RemoveByID(ctx, second.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	tasks, _ := s.Load(ctx)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != first.ID || tasks[1].Text != "walk dog" {
		t.Errorf("unexpected tasks after remove: %+v", tasks)
	}
}

func TestLocal_RemoveByIDUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	s := store.NewLocal(slot)
	if _, err := s.Append(ctx, task.New("a")); err != nil {
		t.Fatalf("append: %v", err)
	}
	writes := slot.Writes

	if err := s.RemoveByID(ctx, "missing"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if slot.Writes != writes {
		t.Errorf("expected no write for unknown id")
	}
	if got := texts(t, s); len(got) != 1 {
		t.Errorf("expected 1 task, got %v", got)
	}
}

func TestLocal_LegacyLayoutReadInIDMode(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	slot.Put(store.TasksKey, `["a","b","a"]`)
	s := store.NewLocal(slot)

	tasks, _ := s.Load(ctx)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, tk := range tasks {
		if tk.ID != task.LegacyID(i+1) {
			t.Errorf("task %d: expected positional id, got %q", i, tk.ID)
		}
	}

	// Deleting the third entry by id leaves the first "a" alone and
	// upgrades the slot to the identified layout.
	if err := s.RemoveByID(ctx, tasks[2].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	raw, _ := slot.Raw(store.TasksKey)
	if raw != `[{"id":"legacy-1","text":"a"},{"id":"legacy-2","text":"b"}]` {
		t.Errorf("unexpected slot content: %s", raw)
	}
}

func TestLocal_LegacyLayoutUpgradeIsLogged(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		mode   store.Mode
		logged bool
	}{
		{"legacy in id mode", `["a"]`, store.ModeID, true},
		{"legacy in value mode", `["a"]`, store.ModeValue, false},
		{"identified", `[{"id":"x","text":"a"}]`, store.ModeID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(&buf)
			logger.SetLevel(log.DebugLevel)

			slot := testutil.NewMemSlot()
			slot.Put(store.TasksKey, tt.raw)
			s := store.NewLocal(slot, store.WithMode(tt.mode), store.WithLogger(logger))

			if got := texts(t, s); len(got) != 1 {
				t.Fatalf("expected 1 task, got %v", got)
			}
			if got := strings.Contains(buf.String(), "legacy task slot"); got != tt.logged {
				t.Errorf("expected logged=%v, got log %q", tt.logged, buf.String())
			}
		})
	}
}

func TestLocal_CorruptSlotLoadsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"object", `{"tasks":[]}`},
		{"numbers", `[1,2,3]`},
		{"mixed", `["a",{"id":"x","text":"b"}]`},
		{"missing id", `[{"text":"b"}]`},
		{"null", `null`},
		{"empty string", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := testutil.NewMemSlot()
			slot.Put(store.TasksKey, tt.raw)
			s := store.NewLocal(slot)

			if got := texts(t, s); len(got) != 0 {
				t.Errorf("expected empty list, got %v", got)
			}
		})
	}
}

func TestLocal_CorruptSlotIsOverwrittenOnAppend(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	slot.Put(store.TasksKey, `not json`)
	s := store.NewLocal(slot, store.WithMode(store.ModeValue))

	if _, err := s.Append(ctx, task.New("fresh")); err != nil {
		t.Fatalf("append: %v", err)
	}
	raw, _ := slot.Raw(store.TasksKey)
	if raw != `["fresh"]` {
		t.Errorf("expected [\"fresh\"], got %s", raw)
	}
}

func TestLocal_Clear(t *testing.T) {
	ctx := context.Background()
	slot := testutil.NewMemSlot()
	s := store.NewLocal(slot)
	for _, text := range []string{"a", "b"} {
		if _, err := s.Append(ctx, task.New(text)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := texts(t, s); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	raw, _ := slot.Raw(store.TasksKey)
	if raw != `[]` {
		t.Errorf("expected [], got %s", raw)
	}
}

func TestLocal_AppendReturnsStoredTask(t *testing.T) {
	s := store.NewLocal(testutil.NewMemSlot())
	in := task.New("buy milk")

	got, err := s.Append(context.Background(), in)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if got != in {
		t.Errorf("expected %v, got %v", in, got)
	}
}

func TestLocal_WriteFailureReturned(t *testing.T) {
	slot := testutil.NewMemSlot()
	slot.SetErr = errors.New("quota exceeded")
	s := store.NewLocal(slot)

	_, err := s.Append(context.Background(), task.New("a"))
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("expected quota error, got %v", err)
	}
}

func TestLocal_ReadFailureLoadsEmpty(t *testing.T) {
	slot := testutil.NewMemSlot()
	slot.Put(store.TasksKey, `["a"]`)
	slot.GetErr = errors.New("disk on fire")
	s := store.NewLocal(slot)

	tasks, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %v", tasks)
	}
}

func TestFileSlot_SetGetDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	slot := store.NewFileSlot(dir)

	if _, ok, err := slot.Get("tasks"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := slot.Set("tasks", `["a"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := slot.Get("tasks")
	if err != nil || !ok || v != `["a"]` {
		t.Fatalf("unexpected get: %q %v %v", v, ok, err)
	}

	info, err := os.Stat(slot.Path("tasks"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	if err := slot.Delete("tasks"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := slot.Delete("tasks"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, ok, _ := slot.Get("tasks"); ok {
		t.Error("expected key to be gone")
	}
}

func TestFileSlot_RejectsBadKey(t *testing.T) {
	slot := store.NewFileSlot(t.TempDir())
	if err := slot.Set("../escape", "x"); err == nil {
		t.Error("expected error for path-like key")
	}
}

func TestLocal_OverFileSlot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := store.NewLocal(store.NewFileSlot(dir), store.WithMode(store.ModeValue))

	if _, err := s.Append(ctx, task.New("walk dog")); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "tasks.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `["walk dog"]` {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    store.Mode
		wantErr bool
	}{
		{"", store.ModeID, false},
		{"id", store.ModeID, false},
		{"value", store.ModeValue, false},
		{"text", "", true},
	}
	for _, tt := range tests {
		got, err := store.ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
