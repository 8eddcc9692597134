package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/users", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/users", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/users", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/api/users", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("POST", "/api/users", "400")))
}

func TestObserveMerchantMerge(t *testing.T) {
	m := New()
	m.ObserveMerchantMerge(2)
	m.ObserveMerchantMerge(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MerchantMerges))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MerchantDuplicatesRemoved))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveMerchantMerge(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard_merchants_merges_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

type failingStore struct {
	*store.Memory
}

func (failingStore) List(context.Context, string) ([]store.Entry, error) {
	return nil, errors.New("unavailable")
}

func TestInstrumentedStore(t *testing.T) {
	m := New()
	ctx := context.Background()

	st := InstrumentStore(store.NewMemory(), m)
	id, err := st.Push(ctx, "users", store.Record{"a": 1})
	require.NoError(t, err)
	_, err = st.Get(ctx, "users", id)
	require.NoError(t, err)
	_, err = st.Get(ctx, "users", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, 2, testutil.CollectAndCount(m.StoreDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("get")))

	broken := InstrumentStore(failingStore{store.NewMemory()}, m)
	_, err = broken.List(ctx, "users")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("list")))
}
