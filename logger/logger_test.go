package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn"}).WithOutput(&buf)

	l.Info("dropped")
	l.Warn("kept")
	l.Error(errors.New("boom"), "also kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud"}).WithOutput(&buf)
	assert.Equal(t, zerolog.InfoLevel, l.zl.GetLevel())

	l.Info("visible")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "visible", lines[0]["message"])
}

func TestWithFieldsAndContext(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: "debug"}).WithOutput(&buf)
	child := base.With("request_id", "abc")

	ctx := child.WithContext(context.Background())
	base.Ctx(ctx).Warn("from context")
	base.Ctx(context.Background()).Warn("from base")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "abc", lines[0]["request_id"])
	assert.NotContains(t, lines[1], "request_id")
}
