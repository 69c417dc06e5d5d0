package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsSubmitted  *prometheus.CounterVec
	ShareTokensMinted  prometheus.Counter
	GroupJoins         prometheus.Counter
	PriceUnavailable   prometheus.Counter
	NotificationErrors *prometheus.CounterVec
}

// New registers the collectors in reg under the service namespace.
// A nil reg means the default prometheus registry.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_submitted_total",
			Help:      "The total number of submitted bookings by resulting status",
		}, []string{"status"}),
		ShareTokensMinted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "share_tokens_minted_total",
			Help:      "The total number of minted group share tokens",
		}),
		GroupJoins: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "group_joins_total",
			Help:      "The total number of participants that joined a group",
		}),
		PriceUnavailable: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "price_unavailable_total",
			Help:      "The total number of submissions rejected without a resolvable price",
		}),
		NotificationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "notification_errors_total",
			Help:      "The total number of failed booking notifications",
		}, []string{"channel"}),
	}
}

// ObserveHTTP records one finished request.
// All recording methods are no-ops on a nil *Metrics.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// BookingSubmitted counts a successful submission
func (m *Metrics) BookingSubmitted(status string, tokenMinted bool) {
	if m == nil {
		return
	}
	m.BookingsSubmitted.WithLabelValues(status).Inc()
	if tokenMinted {
		m.ShareTokensMinted.Inc()
	}
}

// PriceUnavailableInc counts a submission without a price
func (m *Metrics) PriceUnavailableInc() {
	if m == nil {
		return
	}
	m.PriceUnavailable.Inc()
}

// GroupJoined counts a successful join
func (m *Metrics) GroupJoined() {
	if m == nil {
		return
	}
	m.GroupJoins.Inc()
}

// NotificationFailed counts a failed notification on a channel
func (m *Metrics) NotificationFailed(channel string) {
	if m == nil {
		return
	}
	m.NotificationErrors.WithLabelValues(channel).Inc()
}
