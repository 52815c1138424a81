package kvstore

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Memory implements types.KV with a plain map. It backs tests and
// throwaway stores; nothing survives the process. An optional capacity
// cap makes quota-exhaustion paths testable.
type Memory struct {
	mu       sync.Mutex
	data     map[string]string
	capacity int // total value bytes allowed; 0 means unlimited
	closed   bool
}

// NewMemory creates an unbounded in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// NewMemoryWithCapacity creates an in-memory store that rejects writes
// once total stored value bytes would exceed capacity.
func NewMemoryWithCapacity(capacity int) *Memory {
	return &Memory{data: make(map[string]string), capacity: capacity}
}

// Get returns the value stored under key, or ok=false when absent.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", false, types.ErrStoreClosed
	}
	value, ok := m.data[key]
	return value, ok, nil
}

// Set stores value under key, enforcing the capacity cap if one is set.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return types.ErrStoreClosed
	}

	if m.capacity > 0 {
		total := len(value)
		for k, v := range m.data {
			if k != key {
				total += len(v)
			}
		}
		if total > m.capacity {
			return fmt.Errorf("writing key %q: %w", key, types.ErrCapacityExceeded)
		}
	}

	m.data[key] = value
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return types.ErrStoreClosed
	}
	delete(m.data, key)
	return nil
}

// Clear removes every key.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return types.ErrStoreClosed
	}
	m.data = make(map[string]string)
	return nil
}

// Close marks the store closed. Idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
