package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveNearby(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveNearby(OutcomeNoLocation, 0)
	m.ObserveNearby(OutcomeOK, 12)
	m.ObserveNearby(OutcomeOK, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NearbySearches.WithLabelValues(OutcomeNoLocation)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NearbySearches.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.NearbyResults))
}

func TestObserveCacheAndGeocode(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveCache("dentist_profile", true)
	m.ObserveCache("dentist_profile", false)
	m.ObserveCache("dentist_profile", false)
	m.ObserveGeocode("nominatim", 20*time.Millisecond, nil)
	m.ObserveGeocode("nominatim", time.Second, errors.New("timeout"))
	m.AddUploadedBytes(1024)
	m.AddUploadedBytes(-1)
	m.ObservePublish("appointment.booked")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("dentist_profile", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("dentist_profile", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeocodeRequests.WithLabelValues("nominatim", "error")))
	assert.Equal(t, 1024.0, testutil.ToFloat64(m.UploadedBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("appointment.booked")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveNearby(OutcomeOK, 3)
		m.ObserveCache("x", true)
		m.ObserveGeocode("google", time.Second, nil)
		m.AddUploadedBytes(10)
		m.ObservePublish("x")
	})
}

func TestMiddleware(t *testing.T) {
	reg := NewRegistry()
	m := NewMetrics(reg)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/dentists/:slug", func(c echo.Context) error {
		if c.Param("slug") == "missing" {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(Handler(reg)))

	for _, slug := range []string{"a", "b", "missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dentists/"+slug, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/dentists/:slug", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/dentists/:slug", "404")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "senyum_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
