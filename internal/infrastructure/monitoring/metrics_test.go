package monitoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsNilRegisterer(t *testing.T) {
	_, err := NewMetrics(nil)
	assert.Error(t, err)
}

func TestNewMetricsReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewMetrics(reg)
	require.NoError(t, err)
	second, err := NewMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, first.RequestsTotal, second.RequestsTotal)
	assert.Same(t, first.OperationDuration, second.OperationDuration)
}

func TestInstrumentRoundTripper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	client := &http.Client{Transport: m.InstrumentRoundTripper(http.DefaultTransport)}

	for _, path := range []string{"/", "/", "/missing"} {
		resp, err := client.Post(srv.URL+path, "text/plain", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("200", "post")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("404", "post")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestInstrumentRoundTripperNilMetrics(t *testing.T) {
	var m *Metrics
	rt := http.DefaultTransport
	assert.Equal(t, rt, m.InstrumentRoundTripper(rt))
}

func TestTimer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	NewTimer(m, "conversion.url").Stop(nil)
	NewTimer(m, "conversion.url").Stop(errors.New("boom"))
	NewTimer(m, "manipulation.merge").Stop(context.Canceled)

	assert.Equal(t, 3, testutil.CollectAndCount(m.OperationDuration))
}

func TestTimerNilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		NewTimer(nil, "conversion.html").Stop(nil)
	})
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
	assert.Equal(t, OutcomeCanceled, Outcome(fmt.Errorf("post: %w", context.DeadlineExceeded)))
}
