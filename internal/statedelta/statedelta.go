// Package statedelta provides a transactional, discardable overlay over a
// key-value store. Multi-step state mutations draft their effects in a Delta,
// then either commit them to the parent atomically or discard them without a
// trace. Deltas nest: a Delta is itself a KVStore and can parent another
// Delta.
package statedelta

import (
	"sort"
)

// KVStore is the minimal key-value contract shared by root stores and deltas.
// Values must be non-nil; a nil return from Get means the key is absent.
type KVStore interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Set(key, value []byte)
	Delete(key []byte)
}

var (
	_ KVStore = (*MemStore)(nil)
	_ KVStore = (*Delta)(nil)
)

// MemStore is a map-backed root store.
type MemStore struct {
	entries map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

// Get implements KVStore.
func (s *MemStore) Get(key []byte) []byte {
	return s.entries[string(key)]
}

// Has implements KVStore.
func (s *MemStore) Has(key []byte) bool {
	_, ok := s.entries[string(key)]
	return ok
}

// Set implements KVStore.
func (s *MemStore) Set(key, value []byte) {
	s.entries[string(key)] = value
}

// Delete implements KVStore.
func (s *MemStore) Delete(key []byte) {
	delete(s.entries, string(key))
}

// Delta is a working overlay of pending writes on top of a parent store.
// Reads observe the parent state plus any local writes. Nothing reaches the
// parent until Commit; Discard drops every pending write.
type Delta struct {
	parent KVStore
	// pending write set; a nil value marks a pending deletion
	writes map[string][]byte
}

// New returns an empty Delta over the given parent store.
func New(parent KVStore) *Delta {
	return &Delta{
		parent: parent,
		writes: make(map[string][]byte),
	}
}

// Get implements KVStore. Local writes shadow the parent.
func (d *Delta) Get(key []byte) []byte {
	if value, ok := d.writes[string(key)]; ok {
		return value
	}
	return d.parent.Get(key)
}

// Has implements KVStore.
func (d *Delta) Has(key []byte) bool {
	if value, ok := d.writes[string(key)]; ok {
		return value != nil
	}
	return d.parent.Has(key)
}

// Set implements KVStore.
func (d *Delta) Set(key, value []byte) {
	d.writes[string(key)] = value
}

// Delete implements KVStore.
func (d *Delta) Delete(key []byte) {
	d.writes[string(key)] = nil
}

// Commit applies the pending writes to the parent store and resets the
// delta. Writes are applied in sorted key order so that commit effects are
// deterministic.
func (d *Delta) Commit() {
	keys := make([]string, 0, len(d.writes))
	for key := range d.writes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if value := d.writes[key]; value == nil {
			d.parent.Delete([]byte(key))
		} else {
			d.parent.Set([]byte(key), value)
		}
	}

	d.writes = make(map[string][]byte)
}

// Discard drops every pending write, leaving the parent untouched.
func (d *Delta) Discard() {
	d.writes = make(map[string][]byte)
}
