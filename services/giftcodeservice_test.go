package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

func TestGiftCodeService_Create(t *testing.T) {
	svc, _ := newTestServices(t)
	svc.GiftCodes.now = fixedNow(1700000000000)
	ctx := context.Background()

	id, rec, err := svc.GiftCodes.Create(ctx, store.Record{
		"code":    "WELCOME10",
		"montant": "10.5",
		"isUsed":  true,
		"extra":   "dropped",
	})
	require.NoError(t, err)
	assert.Equal(t, store.Record{
		"code":      "WELCOME10",
		"montant":   10.5,
		"createdAt": float64(1700000000000),
		"isUsed":    false,
	}, rec)

	got, err := svc.GiftCodes.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestGiftCodeService_CreateAmounts(t *testing.T) {
	tests := []struct {
		name    string
		montant interface{}
		ok      bool
	}{
		{"zero", 0, false},
		{"negative", -5, false},
		{"not a number", "abc", false},
		{"missing", nil, false},
		{"boolean", true, false},
		{"rounds to zero", "1e-400", false},
		{"overflows", "1e400", false},
		{"tiny", 0.001, true},
		{"numeric string", "20", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestServices(t)
			_, _, err := svc.GiftCodes.Create(context.Background(), store.Record{"code": "C-" + tt.name, "montant": tt.montant})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{"Amount must be a positive number"}, verr.Errors)
		})
	}
}

func TestGiftCodeService_CreateCollectsErrors(t *testing.T) {
	svc, _ := newTestServices(t)

	_, _, err := svc.GiftCodes.Create(context.Background(), store.Record{"code": " ", "montant": -1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Gift code is required", "Amount must be a positive number"}, verr.Errors)
}

func TestGiftCodeService_DuplicateCode(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.GiftCodes.Create(ctx, store.Record{"code": "WELCOME10", "montant": 10})
	require.NoError(t, err)

	_, _, err = svc.GiftCodes.Create(ctx, store.Record{"code": "WELCOME10", "montant": 5})
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Gift code already exists", cerr.Error())

	entries, err := svc.GiftCodes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGiftCodeService_Update(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	id, _, err := svc.GiftCodes.Create(ctx, store.Record{"code": "A", "montant": 10})
	require.NoError(t, err)
	otherID, _, err := svc.GiftCodes.Create(ctx, store.Record{"code": "B", "montant": 10})
	require.NoError(t, err)

	rec, err := svc.GiftCodes.Update(ctx, id, store.Record{"code": "A", "isUsed": true, "createdAt": 1})
	require.NoError(t, err, "keeping its own code is not a conflict")
	assert.Equal(t, true, rec["isUsed"])
	assert.NotEqual(t, float64(1), rec["createdAt"])

	_, err = svc.GiftCodes.Update(ctx, otherID, store.Record{"code": "A"})
	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)

	_, err = svc.GiftCodes.Update(ctx, id, store.Record{"montant": 0, "isUsed": "no", "code": ""})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"Gift code is required",
		"Amount must be a positive number",
		"isUsed must be a boolean",
	}, verr.Errors)

	for _, montant := range []string{"1e-400", "1e400"} {
		_, err = svc.GiftCodes.Update(ctx, id, store.Record{"montant": montant})
		require.ErrorAs(t, err, &verr, montant)
		assert.Equal(t, []string{"Amount must be a positive number"}, verr.Errors)
	}
	got, err := svc.GiftCodes.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(10), got["montant"])

	_, err = svc.GiftCodes.Update(ctx, "missing", store.Record{"montant": 3})
	assert.ErrorIs(t, err, ErrNotFound)
}
