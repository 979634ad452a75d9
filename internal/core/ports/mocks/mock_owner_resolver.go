package mocks

import (
	"fmt"
	"sync"
)

// OwnerResolver is a deterministic in-memory account table for testing
type OwnerResolver struct {
	mu    sync.Mutex
	names map[uint32]string
	calls int
}

// NewOwnerResolver creates a resolver knowing the given accounts
func NewOwnerResolver(names map[uint32]string) *OwnerResolver {
	if names == nil {
		names = make(map[uint32]string)
	}
	return &OwnerResolver{names: names}
}

// Resolve returns the configured name or an error for unmapped ids
func (m *OwnerResolver) Resolve(uid uint32) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	name, ok := m.names[uid]
	if !ok {
		return "", fmt.Errorf("unknown uid %d", uid)
	}
	return name, nil
}

// Set adds or replaces an account
func (m *OwnerResolver) Set(uid uint32, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names[uid] = name
}

// Calls returns how many lookups were made
func (m *OwnerResolver) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
