package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Memory is a thread-safe in-process Store. Ids are generated from a counter so
// they sort in insertion order, the way push ids do on the Realtime Database.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]Record
	counter     atomic.Uint64
	prefix      string
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]Record),
		prefix:      "mem",
	}
}

// NextID generates an id of the form "mem_00000001".
func (m *Memory) NextID() string {
	n := m.counter.Add(1)
	return fmt.Sprintf("%s_%08d", m.prefix, n)
}

// Put stores rec under id, replacing any existing record. It is used to seed data
// with caller-chosen ids.
func (m *Memory) Put(collection, id string, rec Record) error {
	norm, err := Normalize(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(collection)[id] = norm
	return nil
}

func (m *Memory) List(_ context.Context, collection string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, len(m.collections[collection]))
	for id, rec := range m.collections[collection] {
		out = append(out, Entry{ID: id, Data: rec.Clone()})
	}
	sortEntries(out)
	return out, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *Memory) Push(_ context.Context, collection string, rec Record) (string, error) {
	norm, err := Normalize(rec)
	if err != nil {
		return "", err
	}
	id := m.NextID()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(collection)[id] = norm
	return id, nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields Record) error {
	norm, err := Normalize(fields)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket := m.bucket(collection)
	existing, ok := bucket[id]
	if !ok {
		existing = Record{}
	}
	bucket[id] = existing.Merge(norm)
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func (m *Memory) FindEqual(ctx context.Context, collection, field string, value interface{}) ([]Entry, error) {
	all, err := m.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	return filterEqual(all, field, value)
}

func (m *Memory) Latest(ctx context.Context, collection, field string, n int) ([]Entry, error) {
	all, err := m.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	return latestOf(all, field, n), nil
}

func (m *Memory) Apply(_ context.Context, b Batch) error {
	for _, id := range b.Delete {
		if err := checkKey(id); err != nil {
			return err
		}
	}
	set := make(map[string]Record, len(b.Set))
	for id, rec := range b.Set {
		if err := checkKey(id); err != nil {
			return err
		}
		norm, err := Normalize(rec)
		if err != nil {
			return err
		}
		set[id] = norm
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	bucket := m.bucket(b.Collection)
	for _, id := range b.Delete {
		delete(bucket, id)
	}
	for id, rec := range set {
		bucket[id] = rec
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// bucket must be called with mu held for writing.
func (m *Memory) bucket(collection string) map[string]Record {
	b, ok := m.collections[collection]
	if !ok {
		b = make(map[string]Record)
		m.collections[collection] = b
	}
	return b
}
