package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		out = append(out, line)
	}
	return out
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "debug"}).WithOutput(&buf)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) {
		logger.Nop().Ctx(c.Request.Context()).Info("handler")
		c.String(http.StatusOK, "pong")
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get(RequestIDHeader)
		require.NotEmpty(t, rid)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "handler", lines[0]["message"])
		assert.Equal(t, rid, lines[0]["request_id"])
		assert.Equal(t, "request", lines[1]["message"])
		assert.Equal(t, "/ping", lines[1]["path"])
		assert.Equal(t, float64(http.StatusOK), lines[1]["status"])
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		lines := decodeLines(t, &buf)
		require.NotEmpty(t, lines)
		assert.Equal(t, "abc-123", lines[len(lines)-1]["request_id"])
	})
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/users/a", "/api/users/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/api/users/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestInFlight))
}
