// Package testutil provides testing utilities.
package testutil

import (
	"sync"
)

// MemSlot is an in-memory implementation of store.Slot for testing.
type MemSlot struct {
	mu     sync.RWMutex
	values map[string]string

	// Error injection for testing
	GetErr    error
	SetErr    error
	DeleteErr error

	// Writes counts successful Set calls.
	Writes int
}

// NewMemSlot creates an empty MemSlot.
func NewMemSlot() *MemSlot {
	return &MemSlot{values: make(map[string]string)}
}

// Put seeds a raw value, bypassing error injection and the write counter.
func (m *MemSlot) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Raw returns the raw stored value for key.
func (m *MemSlot) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Get implements store.Slot.
func (m *MemSlot) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements store.Slot.
func (m *MemSlot) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.Writes++
	return nil
}

// Delete implements store.Slot.
func (m *MemSlot) Delete(key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
