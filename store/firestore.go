package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore maps each collection path onto a top-level Firestore collection.
// Document ids are UUIDv7 so they sort by creation time like push ids.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) List(ctx context.Context, collection string) ([]Entry, error) {
	entries, err := collect(f.client.Collection(collection).Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	sortEntries(entries)
	return entries, nil
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (Record, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return nil, ErrNotFound
	}
	return Record(snap.Data()), nil
}

func (f *Firestore) Push(ctx context.Context, collection string, rec Record) (string, error) {
	rec, err := Normalize(rec)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	if _, err := f.client.Collection(collection).Doc(id.String()).Set(ctx, map[string]interface{}(rec)); err != nil {
		return "", fmt.Errorf("push %s: %w", collection, err)
	}
	return id.String(), nil
}

func (f *Firestore) Update(ctx context.Context, collection, id string, fields Record) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	fields, err := Normalize(fields)
	if err != nil {
		return err
	}
	updates := make([]firestore.Update, 0, len(fields))
	for field, value := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: value})
	}
	if _, err := f.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, collection, id string) error {
	if err := checkKey(id); err != nil {
		return err
	}
	if _, err := f.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) FindEqual(ctx context.Context, collection, field string, value interface{}) ([]Entry, error) {
	iter := f.client.Collection(collection).WherePath(firestore.FieldPath{field}, "==", value).Documents(ctx)
	entries, err := collect(iter)
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	sortEntries(entries)
	return entries, nil
}

func (f *Firestore) Latest(ctx context.Context, collection, field string, n int) ([]Entry, error) {
	iter := f.client.Collection(collection).
		OrderByPath(firestore.FieldPath{field}, firestore.Desc).
		Limit(n).
		Documents(ctx)
	entries, err := collect(iter)
	if err != nil {
		return nil, fmt.Errorf("query latest %s by %s: %w", collection, field, err)
	}
	return sortLatest(entries, field, n), nil
}

// Apply runs the batch inside a Firestore transaction.
func (f *Firestore) Apply(ctx context.Context, b Batch) error {
	for _, id := range b.Delete {
		if err := checkKey(id); err != nil {
			return err
		}
	}
	for id := range b.Set {
		if err := checkKey(id); err != nil {
			return err
		}
	}

	col := f.client.Collection(b.Collection)
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, id := range b.Delete {
			if err := tx.Delete(col.Doc(id)); err != nil {
				return err
			}
		}
		for id, rec := range b.Set {
			norm, err := Normalize(rec)
			if err != nil {
				return err
			}
			if err := tx.Set(col.Doc(id), map[string]interface{}(norm)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch %s: %w", b.Collection, err)
	}
	return nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

func collect(iter *firestore.DocumentIterator) ([]Entry, error) {
	defer iter.Stop()
	entries := []Entry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: doc.Ref.ID, Data: Record(doc.Data())})
	}
	return entries, nil
}
