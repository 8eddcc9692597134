package services

import (
	"context"
	"errors"
	"time"

	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// Collection implements the list/get/create/update/delete contract shared by
// every entity of the dashboard.
type Collection struct {
	Entity string
	Path   string

	// StrictDelete makes Delete report NotFound for an absent id. Users and
	// transactions are deleted unconditionally.
	StrictDelete bool

	// Validate checks a complete record (the payload on create, the merged record
	// on update) and returns every violation.
	Validate func(rec store.Record) []string

	// BeforeUpdate may add fields to patch before it is merged and written.
	BeforeUpdate func(id string, existing, patch store.Record)

	store store.Store
	now   func() time.Time
}

func NewCollection(st store.Store, entity, path string) *Collection {
	return &Collection{
		Entity: entity,
		Path:   path,
		store:  st,
		now:    time.Now,
	}
}

func (c *Collection) List(ctx context.Context) ([]store.Entry, error) {
	entries, err := c.store.List(ctx, c.Path)
	if err != nil {
		return nil, storeErr("list "+c.Path, err)
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	return entries, nil
}

func (c *Collection) Get(ctx context.Context, id string) (store.Record, error) {
	rec, err := c.store.Get(ctx, c.Path, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound(c.Entity, id)
		}
		return nil, storeErr("get "+c.Path, err)
	}
	return rec, nil
}

func (c *Collection) Create(ctx context.Context, payload store.Record) (string, store.Record, error) {
	rec := sanitize(payload)
	if err := invalid(c.validate(rec)); err != nil {
		return "", nil, err
	}
	if _, ok := rec[model.FieldCreatedAt]; !ok {
		rec[model.FieldCreatedAt] = c.now().UnixMilli()
	}

	rec, err := store.Normalize(rec)
	if err != nil {
		return "", nil, err
	}
	id, err := c.store.Push(ctx, c.Path, rec)
	if err != nil {
		return "", nil, storeErr("create "+c.Path, err)
	}
	return id, rec, nil
}

func (c *Collection) Update(ctx context.Context, id string, payload store.Record) (store.Record, error) {
	existing, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := sanitize(payload)
	if c.BeforeUpdate != nil {
		c.BeforeUpdate(id, existing, patch)
	}
	patch, err = store.Normalize(patch)
	if err != nil {
		return nil, err
	}

	merged := existing.Merge(patch)
	if err := invalid(c.validate(merged)); err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return existing, nil
	}
	if err := c.store.Update(ctx, c.Path, id, patch); err != nil {
		return nil, storeErr("update "+c.Path, err)
	}
	return merged, nil
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	if c.StrictDelete {
		if _, err := c.Get(ctx, id); err != nil {
			return err
		}
	}
	if err := c.store.Delete(ctx, c.Path, id); err != nil {
		if errors.Is(err, store.ErrNotFound) && !c.StrictDelete {
			return nil
		}
		return storeErr("delete "+c.Path, err)
	}
	return nil
}

func (c *Collection) validate(rec store.Record) []string {
	if c.Validate == nil {
		return nil
	}
	return c.Validate(rec)
}

// sanitize copies payload without the response-only attributes.
func sanitize(payload store.Record) store.Record {
	rec := payload.Clone()
	delete(rec, model.FieldID)
	delete(rec, model.FieldUniqueID)
	return rec
}
