package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/newrelic"
	"golang.org/x/time/rate"
)

// DefaultNominatimURL is the public OpenStreetMap search endpoint
const DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

// HTTPClient is satisfied by *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NominatimProvider geocodes with OpenStreetMap Nominatim. The public
// instance allows one request per second and requires a User-Agent.
type NominatimProvider struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimProvider builds a provider; rps <= 0 disables throttling
func NewNominatimProvider(client HTTPClient, baseURL, userAgent string, rps int) *NominatimProvider {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &NominatimProvider{client: client, baseURL: baseURL, userAgent: userAgent, limiter: limiter}
}

// Name implements Provider
func (np *NominatimProvider) Name() string { return string(ProviderTypeNominatim) }

// Geocode tries the full address, then drops trailing comma separated parts
// (unit, house number) until something matches
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*geo.Coordinate, error) {
	variations := addressFallbacks(address)
	for idx, variation := range variations {
		coord, err := np.search(ctx, variation)
		if err == nil {
			if idx > 0 {
				logger.InfoCtx(ctx, "Geocoded using fallback address",
					logger.String("original", address),
					logger.String("fallback", variation))
			}
			return coord, nil
		}
		if !errors.Is(err, ErrNoResult) {
			return nil, err
		}
	}

	logger.WarnCtx(ctx, "All address fallbacks exhausted",
		logger.String("address", address),
		logger.Int("variations_tried", len(variations)))
	return nil, ErrNoResult
}

func addressFallbacks(address string) []string {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	seen := make(map[string]bool)
	var out []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	add(strings.Join(parts, ", "))
	for n := len(parts) - 1; n >= 2; n-- {
		add(strings.Join(parts[:n], ", "))
	}
	return out
}

func (np *NominatimProvider) search(ctx context.Context, address string) (*geo.Coordinate, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := newrelic.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return np.client.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, fmt.Errorf("nominatim returned unparsable coordinates %q,%q", results[0].Lat, results[0].Lon)
	}
	coord := geo.Coordinate{Latitude: lat, Longitude: lon}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("nominatim returned invalid coordinates: %w", err)
	}
	return &coord, nil
}

// StatusError is a non-200 answer from an HTTP geocoder
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying may help
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
