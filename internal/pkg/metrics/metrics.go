// Package metrics exposes the Prometheus collectors shared by the services.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Nearby search outcomes
const (
	OutcomeNoLocation = "no_location"
	OutcomeOK         = "ok"
	OutcomeError      = "error"
)

type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	NearbySearches  *prometheus.CounterVec
	NearbyResults   prometheus.Histogram
	CacheLookups    *prometheus.CounterVec
	GeocodeRequests *prometheus.CounterVec
	GeocodeSeconds  *prometheus.HistogramVec
	UploadedBytes   prometheus.Counter
	EventsPublished *prometheus.CounterVec
}

// NewMetrics registers every collector on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "senyum_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "senyum_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		NearbySearches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "senyum_nearby_searches_total",
			Help: "Nearby dentist searches by outcome.",
		}, []string{"outcome"}),
		NearbyResults: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "senyum_nearby_results",
			Help:    "Number of dentists returned by a nearby search.",
			Buckets: []float64{0, 1, 5, 10, 20, 30, 40, 50},
		}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "senyum_cache_lookups_total",
			Help: "Cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
		GeocodeRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "senyum_geocoding_requests_total",
			Help: "Requests to the geocoding provider by status.",
		}, []string{"provider", "status"}),
		GeocodeSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "senyum_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		UploadedBytes: f.NewCounter(prometheus.CounterOpts{
			Name: "senyum_media_uploaded_bytes_total",
			Help: "Bytes of dentist media written to object storage.",
		}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "senyum_events_published_total",
			Help: "Events published to NATS by subject.",
		}, []string{"subject"}),
	}
}

// NewRegistry returns a registry with the Go and process collectors attached
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ObserveNearby records one nearby search
func (m *Metrics) ObserveNearby(outcome string, results int) {
	if m == nil {
		return
	}
	m.NearbySearches.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.NearbyResults.Observe(float64(results))
	}
}

// ObserveCache records a hit or miss on the named cache
func (m *Metrics) ObserveCache(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveGeocode records one provider call
func (m *Metrics) ObserveGeocode(provider string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.GeocodeRequests.WithLabelValues(provider, status).Inc()
	m.GeocodeSeconds.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// AddUploadedBytes counts bytes written to storage
func (m *Metrics) AddUploadedBytes(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.UploadedBytes.Add(float64(n))
}

// ObservePublish counts one published event
func (m *Metrics) ObservePublish(subject string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(subject).Inc()
}

// Middleware records request count and latency by route template
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil || c.Path() == "/metrics" {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
