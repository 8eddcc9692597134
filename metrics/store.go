package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// InstrumentedStore times every call of the wrapped store and counts failures.
type InstrumentedStore struct {
	next store.Store
	m    *Metrics
}

func InstrumentStore(next store.Store, m *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, m: m}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	s.m.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.m.StoreErrors.WithLabelValues(op).Inc()
	}
}

func (s *InstrumentedStore) List(ctx context.Context, collection string) (entries []store.Entry, err error) {
	defer func(start time.Time) { s.observe("list", start, err) }(time.Now())
	return s.next.List(ctx, collection)
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (rec store.Record, err error) {
	defer func(start time.Time) { s.observe("get", start, err) }(time.Now())
	return s.next.Get(ctx, collection, id)
}

func (s *InstrumentedStore) Push(ctx context.Context, collection string, rec store.Record) (id string, err error) {
	defer func(start time.Time) { s.observe("push", start, err) }(time.Now())
	return s.next.Push(ctx, collection, rec)
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields store.Record) (err error) {
	defer func(start time.Time) { s.observe("update", start, err) }(time.Now())
	return s.next.Update(ctx, collection, id, fields)
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.Delete(ctx, collection, id)
}

func (s *InstrumentedStore) FindEqual(ctx context.Context, collection, field string, value interface{}) (entries []store.Entry, err error) {
	defer func(start time.Time) { s.observe("find_equal", start, err) }(time.Now())
	return s.next.FindEqual(ctx, collection, field, value)
}

func (s *InstrumentedStore) Latest(ctx context.Context, collection, field string, n int) (entries []store.Entry, err error) {
	defer func(start time.Time) { s.observe("latest", start, err) }(time.Now())
	return s.next.Latest(ctx, collection, field, n)
}

func (s *InstrumentedStore) Apply(ctx context.Context, b store.Batch) (err error) {
	defer func(start time.Time) { s.observe("apply", start, err) }(time.Now())
	return s.next.Apply(ctx, b)
}

func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}
