/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the object store
// interface for testing
package mock

import (
	"context"
	"sort"
	"sync"
)

// Store is an in-memory objectstore.Store for tests.
type Store struct {
	mu       sync.RWMutex
	bucket   string
	objects  map[string][]byte
	putError error
}

// New creates a new mock Store bound to the given bucket name.
func New(bucket string) *Store {
	return &Store{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

// WithPutError makes Put operations return an error
func (m *Store) WithPutError(err error) *Store {
	m.putError = err
	return m
}

// Put stores a copy of body under key
func (m *Store) Put(ctx context.Context, key string, body []byte) error {
	if m.putError != nil {
		return m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(body))
	copy(buf, body)
	m.objects[key] = buf
	return nil
}

// Bucket reports the configured bucket name
func (m *Store) Bucket() string {
	return m.bucket
}

// Test helper methods

// Object returns the stored body for key
func (m *Store) Object(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	body, ok := m.objects[key]
	return body, ok
}

// Keys returns all stored object keys, sorted
func (m *Store) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of stored objects
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.objects)
}

// Clear removes all stored objects
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects = make(map[string][]byte)
}
