// Package store is the document-store boundary of the dashboard. Every backend
// addresses records by collection path and generated id, supports equality queries
// on a single field, ordered "latest N" reads, partial updates and one atomic
// multi-key write per collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var ErrNotFound = errors.New("store: record not found")

// Record is one stored document: a flat field map.
type Record map[string]interface{}

type Entry struct {
	ID   string
	Data Record
}

// Batch is an all-or-nothing write on one collection.
type Batch struct {
	Collection string
	Set        map[string]Record
	Delete     []string
}

type Store interface {
	// List returns every record in the collection ordered by id.
	List(ctx context.Context, collection string) ([]Entry, error)
	// Get returns ErrNotFound when id is absent.
	Get(ctx context.Context, collection, id string) (Record, error)
	// Push stores rec under a freshly generated id and returns it.
	Push(ctx context.Context, collection string, rec Record) (string, error)
	// Update merges fields into the record at id.
	Update(ctx context.Context, collection, id string, fields Record) error
	Delete(ctx context.Context, collection, id string) error
	// FindEqual returns the records whose field equals value, ordered by id.
	FindEqual(ctx context.Context, collection, field string, value interface{}) ([]Entry, error)
	// Latest returns up to n records with the highest numeric value of field,
	// newest first.
	Latest(ctx context.Context, collection, field string, n int) ([]Entry, error)
	Apply(ctx context.Context, b Batch) error
	Close() error
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge copies every field of other into a copy of r; other wins on collision.
func (r Record) Merge(other Record) Record {
	out := r.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Decode converts r into a typed struct through its JSON form.
func (r Record) Decode(v interface{}) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// Normalize returns rec as it would come back from a JSON document store: integers
// become float64 and nested values become maps and slices.
func Normalize(rec Record) (Record, error) {
	if rec == nil {
		return Record{}, nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var out Record
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

// Number reports v as a float64 when it holds a JSON or Go numeric value.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
}

// sortLatest orders entries by field descending, ties broken by id descending, and
// keeps the first n.
func sortLatest(entries []Entry, field string, n int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, _ := Number(entries[i].Data[field])
		b, _ := Number(entries[j].Data[field])
		if a != b {
			return a > b
		}
		return entries[i].ID > entries[j].ID
	})
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// filterEqual keeps the entries whose field equals value once both are in their
// JSON form.
func filterEqual(entries []Entry, field string, value interface{}) ([]Entry, error) {
	want, err := normalizeValue(value)
	if err != nil {
		return nil, err
	}
	out := []Entry{}
	for _, e := range entries {
		if got, ok := e.Data[field]; ok && reflect.DeepEqual(got, want) {
			out = append(out, e)
		}
	}
	return out, nil
}

// latestOf drops entries without field and keeps the n newest by it.
func latestOf(entries []Entry, field string, n int) []Entry {
	withField := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := e.Data[field]; ok {
			withField = append(withField, e)
		}
	}
	return sortLatest(withField, field, n)
}

func normalizeValue(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode query value: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode query value: %w", err)
	}
	return out, nil
}

func entriesFromMap(m map[string]Record) []Entry {
	out := make([]Entry, 0, len(m))
	for id, rec := range m {
		if rec == nil {
			continue
		}
		out = append(out, Entry{ID: id, Data: rec})
	}
	sortEntries(out)
	return out
}
