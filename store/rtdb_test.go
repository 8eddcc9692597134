package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckKey(t *testing.T) {
	for _, id := range []string{"-NxA1b2C3", "mem_00000001", "0190a6c2-7d1e-7c3f-9c8e-0a1b2c3d4e5f"} {
		assert.NoError(t, checkKey(id), id)
	}
	for _, id := range []string{"", "a/b", "a.b", "a#b", "a$b", "a[0]", "../users"} {
		err := checkKey(id)
		assert.ErrorIs(t, err, ErrNotFound, "%q", id)
	}
}

func TestBatchUpdates(t *testing.T) {
	updates, err := batchUpdates(Batch{
		Collection: "merchants",
		Set:        map[string]Record{"a1": {"name": "Z", "balance": 5}},
		Delete:     []string{"a2", "a3"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"a1": map[string]interface{}{"name": "Z", "balance": float64(5)},
		"a2": nil,
		"a3": nil,
	}, updates)

	updates, err = batchUpdates(Batch{Collection: "merchants"})
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestBatchUpdatesRejectsBadKeys(t *testing.T) {
	_, err := batchUpdates(Batch{Collection: "merchants", Delete: []string{"a/b"}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = batchUpdates(Batch{Collection: "merchants", Set: map[string]Record{"": {}}})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = batchUpdates(Batch{
		Collection: "merchants",
		Set:        map[string]Record{"a1": {"name": "Z"}},
		Delete:     []string{"a1"},
	})
	assert.Error(t, err)
}

func TestIsMissingIndex(t *testing.T) {
	assert.True(t, isMissingIndex(errors.New(`http error status: 400; reason: Index not defined, add ".indexOn": "ownerEmail", for path "/merchants", to the rules`)))
	assert.False(t, isMissingIndex(errors.New("http error status: 401; reason: Permission denied")))
	assert.False(t, isMissingIndex(nil))
}

func TestFilterEqualAndLatestOf(t *testing.T) {
	entries := []Entry{
		{ID: "a", Data: Record{"status": "pending", "createdAt": float64(10)}},
		{ID: "b", Data: Record{"status": "approved", "createdAt": float64(30)}},
		{ID: "c", Data: Record{"status": "pending"}},
		{ID: "d", Data: Record{"montant": float64(10), "createdAt": float64(20)}},
	}

	pending, err := filterEqual(entries, "status", "pending")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)

	byNumber, err := filterEqual(entries, "montant", 10)
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "d", byNumber[0].ID)

	latest := latestOf(entries, "createdAt", 2)
	require.Len(t, latest, 2)
	assert.Equal(t, "b", latest[0].ID)
	assert.Equal(t, "d", latest[1].ID)
}
