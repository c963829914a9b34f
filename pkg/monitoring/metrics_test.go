package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCollector(t *testing.T) {
	mc := NewMetricsCollector("admin-bff")

	handler := mc.Instrument("/api/views/businesses/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/views/businesses/b1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/views/businesses/b2", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(mc.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/views/businesses/:id", "404")))

	mc.ObserveUpstream("/analytics/revenue/metrics", http.StatusOK, 20*time.Millisecond)
	mc.ObserveUpstream("/analytics/revenue/metrics", 0, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(mc.upstreamRequestsTotal.WithLabelValues("/analytics/revenue/metrics", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.upstreamRequestsTotal.WithLabelValues("/analytics/revenue/metrics", "error")))

	rec := httptest.NewRecorder()
	mc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin_bff_http_requests_total")
	assert.Contains(t, rec.Body.String(), "admin_bff_upstream_requests_total")
}
