package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTurn(t *testing.T) {
	m := New(false)

	m.ObserveTurn("INITIAL", true, false, 10*time.Millisecond)
	m.ObserveTurn("RECALL", false, true, 10*time.Millisecond)
	m.ObserveTurn("RECALL", false, true, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TurnsTotal.WithLabelValues("INITIAL")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TurnsTotal.WithLabelValues("RECALL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackLookups))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(false)
	m.ObserveTurn("FALLBACK", false, true, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `research_turns_total{intent="FALLBACK"} 1`)
}
