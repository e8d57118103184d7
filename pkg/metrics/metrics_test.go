package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IncReservation(t *testing.T) {
	m := New("test")

	m.IncReservation("reserve", "success")
	m.IncReservation("reserve", "success")
	m.IncReservation("reserve", "room_full")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("reserve", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("reserve", "room_full")))
}

func TestMetrics_HandlerExposesHTTPMetrics(t *testing.T) {
	m := New("test")
	m.ObserveHTTPRequest(http.MethodGet, "/booking", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/booking",service="test",status="200"} 1`)
}

func TestNew_TwiceDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("a")
	})
}
