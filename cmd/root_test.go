package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_ENV", "production")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMerchantsDuplicates_Empty(t *testing.T) {
	out, err := runCmd(t, "merchants", "duplicates", "--merge")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestMerchantsFind_NotFound(t *testing.T) {
	_, err := runCmd(t, "merchants", "find", "--email", "nobody@x.tn")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMerchantsFind_RequiresEmail(t *testing.T) {
	_, err := runCmd(t, "merchants", "find")
	assert.Error(t, err)
}
