package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"expoBooths/internal/floorplan"
	"expoBooths/internal/models"
)

// Metrics groups the collectors exported by the service.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	booths       *prometheus.GaugeVec
	detailViews  *prometheus.CounterVec
}

// New creates the collectors under namespace and registers them with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		booths: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "booths",
			Help:      "Number of booths on the floor plan by status.",
		}, []string{"status"}),
		detailViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booth_detail_views_total",
			Help:      "Number of booth detail panels opened, by package.",
		}, []string{"package"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.booths, m.detailViews)

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SetBoothCounts publishes the status partition of the floor plan.
func (m *Metrics) SetBoothCounts(c floorplan.Counts) {
	m.booths.WithLabelValues(string(models.StatusAvailable)).Set(float64(c.Available))
	m.booths.WithLabelValues(string(models.StatusReserved)).Set(float64(c.Reserved))
	m.booths.WithLabelValues(string(models.StatusSold)).Set(float64(c.Sold))
}

func (m *Metrics) ObserveDetail(pkg models.Package) {
	m.detailViews.WithLabelValues(string(pkg)).Inc()
}
