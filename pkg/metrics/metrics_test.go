package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("travel_booking", reg)

	m.ObserveHTTP(http.MethodPost, "/api/v1/bookings/{bookingId}/submit", http.StatusOK, 20*time.Millisecond)
	m.BookingSubmitted("confirmed", true)
	m.BookingSubmitted("confirmed", false)
	m.PriceUnavailableInc()
	m.GroupJoined()
	m.NotificationFailed("email")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/bookings/{bookingId}/submit", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsSubmitted.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShareTokensMinted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PriceUnavailable))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GroupJoins))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationErrors.WithLabelValues("email")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.BookingSubmitted("confirmed", true)
		m.PriceUnavailableInc()
		m.GroupJoined()
		m.NotificationFailed("email")
	})
}
