package observability_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/safehaven/internal/observability"
)

func TestNewLoggerTagsService(t *testing.T) {
	var buf bytes.Buffer
	log := observability.New(&buf, "safehaven-test", zerolog.DebugLevel)

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"service":"safehaven-test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, observability.ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, observability.ParseLevel("nonsense"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := observability.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", observability.RequestIDFromContext(ctx))
	assert.Empty(t, observability.RequestIDFromContext(context.Background()))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *observability.Metrics
	m.ObserveChatTurn("answered")
	m.ObservePost("ok")
	m.ObserveLLM(time.Second)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsHandler(t *testing.T) {
	m := observability.NewMetrics()
	m.ObservePost("ok")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `safehaven_posts_total{result="ok"} 1`)
}
