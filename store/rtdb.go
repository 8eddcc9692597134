package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"firebase.google.com/go/db"
)

// RealtimeDB stores each collection as a child of the database root, addressed
// the same way the web dashboard addressed it ("users", "merchants", ...).
type RealtimeDB struct {
	client *db.Client
}

func NewRealtimeDB(client *db.Client) *RealtimeDB {
	return &RealtimeDB{client: client}
}

func (r *RealtimeDB) List(ctx context.Context, collection string) ([]Entry, error) {
	var raw map[string]Record
	if err := r.client.NewRef(collection).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return entriesFromMap(raw), nil
}

func (r *RealtimeDB) Get(ctx context.Context, collection, id string) (Record, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	var rec Record
	if err := r.client.NewRef(collection).Child(id).Get(ctx, &rec); err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *RealtimeDB) Push(ctx context.Context, collection string, rec Record) (string, error) {
	ref, err := r.client.NewRef(collection).Push(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("push %s: %w", collection, err)
	}
	return ref.Key, nil
}

func (r *RealtimeDB) Update(ctx context.Context, collection, id string, fields Record) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	if err := r.client.NewRef(collection).Child(id).Update(ctx, fields); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *RealtimeDB) Delete(ctx context.Context, collection, id string) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if err := r.client.NewRef(collection).Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *RealtimeDB) FindEqual(ctx context.Context, collection, field string, value interface{}) ([]Entry, error) {
	var raw map[string]Record
	q := r.client.NewRef(collection).OrderByChild(field).EqualTo(value)
	if err := q.Get(ctx, &raw); err != nil {
		if !isMissingIndex(err) {
			return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
		}
		all, err := r.List(ctx, collection)
		if err != nil {
			return nil, err
		}
		return filterEqual(all, field, value)
	}
	return entriesFromMap(raw), nil
}

func (r *RealtimeDB) Latest(ctx context.Context, collection, field string, n int) ([]Entry, error) {
	nodes, err := r.client.NewRef(collection).OrderByChild(field).LimitToLast(n).GetOrdered(ctx)
	if err != nil {
		if !isMissingIndex(err) {
			return nil, fmt.Errorf("query latest %s by %s: %w", collection, field, err)
		}
		all, err := r.List(ctx, collection)
		if err != nil {
			return nil, err
		}
		return latestOf(all, field, n), nil
	}
	out := make([]Entry, 0, len(nodes))
	for _, node := range nodes {
		var rec Record
		if err := node.Unmarshal(&rec); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, node.Key(), err)
		}
		out = append(out, Entry{ID: node.Key(), Data: rec})
	}
	return sortLatest(out, field, n), nil
}

// Apply sends a single multi-location update: the server applies every path or none.
func (r *RealtimeDB) Apply(ctx context.Context, b Batch) error {
	updates, err := batchUpdates(b)
	if err != nil || len(updates) == 0 {
		return err
	}
	if err := r.client.NewRef(b.Collection).Update(ctx, updates); err != nil {
		return fmt.Errorf("batch %s: %w", b.Collection, err)
	}
	return nil
}

// batchUpdates builds the multi-location update body of b, relative to the
// collection: a null child deletes it, an object replaces it whole.
func batchUpdates(b Batch) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(b.Set)+len(b.Delete))
	for _, id := range b.Delete {
		if err := checkKey(id); err != nil {
			return nil, err
		}
		updates[id] = nil
	}
	for id, rec := range b.Set {
		if err := checkKey(id); err != nil {
			return nil, err
		}
		if _, deleted := updates[id]; deleted {
			return nil, fmt.Errorf("batch %s: %q both set and deleted", b.Collection, id)
		}
		norm, err := Normalize(rec)
		if err != nil {
			return nil, err
		}
		updates[id] = map[string]interface{}(norm)
	}
	return updates, nil
}

// isMissingIndex reports the REST error returned for orderBy on a child that has
// no ".indexOn" rule (see database.rules.json).
func isMissingIndex(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Index not defined")
}

func (r *RealtimeDB) Close() error { return nil }

// checkKey rejects ids that would address a different node than intended.
func checkKey(id string) error {
	if id == "" || strings.ContainsAny(id, ".#$[]/") {
		return errors.Join(ErrNotFound, fmt.Errorf("invalid key %q", id))
	}
	return nil
}
