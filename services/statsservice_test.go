package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelliBrahim0/DashboardAdmin/dto"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

func TestStatsService_Stats(t *testing.T) {
	svc, st := newTestServices(t)
	ctx := context.Background()

	stats, err := svc.Stats.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{}, stats)

	for i := 0; i < 3; i++ {
		_, err := st.Push(ctx, "users", store.Record{"firstName": "u"})
		require.NoError(t, err)
	}
	_, err = st.Push(ctx, "merchants", store.Record{"businessName": "m"})
	require.NoError(t, err)
	_, err = st.Push(ctx, "gift_codes", store.Record{"code": "g"})
	require.NoError(t, err)
	_, err = st.Push(ctx, "verification", store.Record{"status": "pending"})
	require.NoError(t, err)
	_, err = st.Push(ctx, "verification", store.Record{"status": "approved"})
	require.NoError(t, err)

	stats, err = svc.Stats.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{
		TotalUsers:           3,
		TotalMerchants:       1,
		TotalTransactions:    0,
		TotalGiftCodes:       1,
		PendingVerifications: 1,
	}, stats)
}

func TestUserService_Recent(t *testing.T) {
	svc, st := newTestServices(t)
	svc.Users.now = fixedNow(999)
	ctx := context.Background()

	require.NoError(t, st.Put("users", "u1", store.Record{"createdAt": 100, "username": "old"}))
	require.NoError(t, st.Put("users", "u2", store.Record{"createdAt": 300, "firstName": "Lina", "email": "lina@x.tn"}))
	require.NoError(t, st.Put("users", "u3", store.Record{"createdAt": 200}))
	require.NoError(t, st.Put("users", "u4", store.Record{"firstName": "no date"}))

	recent, err := svc.Users.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, "u2", recent[0]["id"])
	assert.Equal(t, "Lina", recent[0]["name"])
	assert.Equal(t, "lina@x.tn", recent[0]["email"])

	assert.Equal(t, "u3", recent[1]["id"])
	assert.Equal(t, "N/A", recent[1]["name"])
	assert.Equal(t, "N/A", recent[1]["email"])
	assert.Equal(t, float64(200), recent[1]["createdAt"])

	recent, err = svc.Users.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
	assert.Equal(t, "old", recent[2]["name"])
}

// unindexedStore fails every equality query the way the Realtime Database does
// for a child without an ".indexOn" rule.
type unindexedStore struct {
	*store.Memory
}

func (unindexedStore) FindEqual(context.Context, string, string, interface{}) ([]store.Entry, error) {
	return nil, errors.New(`http error status: 400; reason: Index not defined, add ".indexOn": "status", for path "/verification", to the rules`)
}

func TestStatsService_PendingWithoutIndex(t *testing.T) {
	st := unindexedStore{store.NewMemory()}
	ctx := context.Background()
	require.NoError(t, st.Put("verification", "v1", store.Record{"status": "pending"}))
	require.NoError(t, st.Put("verification", "v2", store.Record{"status": "pending"}))
	require.NoError(t, st.Put("verification", "v3", store.Record{"status": "rejected"}))
	require.NoError(t, st.Put("verification", "v4", store.Record{"status": 1}))

	stats, err := NewStatsService(st).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingVerifications)
}
