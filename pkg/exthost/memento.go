// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exthost

import (
	"context"
	"sort"
	"sync"
)

// Memento is an in-memory key-value store for one extension state scope.
type Memento struct {
	mux    sync.Mutex
	values map[string]interface{}
}

// NewMemento creates an empty Memento.
func NewMemento() *Memento {
	return &Memento{
		values: make(map[string]interface{}),
	}
}

// Get returns the stored value and whether it exists.
func (m *Memento) Get(key string) (interface{}, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	value, ok := m.values[key]
	return value, ok
}

// Update stores a value. A nil value deletes the key.
func (m *Memento) Update(ctx context.Context, key string, value interface{}) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	if value == nil {
		delete(m.values, key)
		return nil
	}
	m.values[key] = value
	return nil
}

// Keys returns all stored keys, sorted.
func (m *Memento) Keys() []string {
	m.mux.Lock()
	defer m.mux.Unlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes all stored values.
func (m *Memento) Clear() {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.values = make(map[string]interface{})
}
