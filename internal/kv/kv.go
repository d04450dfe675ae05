// ABOUTME: Durable string key-value slots: interface, in-memory store, key namespacing
// ABOUTME: ErrNotFound distinguishes an absent key from a storage failure

package kv

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("kv: key not found")

// Store is a small string key-value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is a volatile Store. The zero value is ready to use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value for key or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key, replacing any previous value.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Namespace returns a Store that prefixes every key with prefix + "/".
func Namespace(s Store, prefix string) Store {
	return &namespaced{inner: s, prefix: prefix + "/"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(key string) (string, error) {
	return n.inner.Get(n.prefix + key)
}

func (n *namespaced) Set(key, value string) error {
	return n.inner.Set(n.prefix+key, value)
}
