package geocoding_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/senyum/internal/pkg/circuitbreaker"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/geocoding"
	"github.com/piresc/senyum/internal/pkg/geocoding/mocks"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.GeocodingConfig
		wantErr string
		want    string
	}{
		{name: "google", cfg: models.GeocodingConfig{Provider: "google", APIKey: "AIza-test", RateLimit: 10}, want: "google"},
		{name: "google without key", cfg: models.GeocodingConfig{Provider: "google"}, wantErr: "API key is required for Google provider"},
		{name: "nominatim", cfg: models.GeocodingConfig{Provider: "nominatim", UserAgent: "test"}, want: "nominatim"},
		{name: "unsupported", cfg: models.GeocodingConfig{Provider: "visicom"}, wantErr: "unsupported provider type: visicom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := geocoding.NewProvider(tt.cfg, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, provider)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider.Name())
		})
	}
}

func TestGoogleProvider_Geocode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockGoogleAPIClient(ctrl)
	provider := geocoding.NewGoogleProvider(client, "id")
	ctx := context.Background()

	t.Run("api error", func(t *testing.T) {
		client.EXPECT().Geocode(ctx, &maps.GeocodingRequest{Address: "nowhere", Region: "id"}).Return(nil, assert.AnError)

		_, err := provider.Geocode(ctx, "nowhere")

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("empty response", func(t *testing.T) {
		client.EXPECT().Geocode(ctx, gomock.Any()).Return(nil, nil)

		coord, err := provider.Geocode(ctx, "nowhere")

		assert.Nil(t, coord)
		assert.ErrorIs(t, err, geocoding.ErrNoResult)
	})

	t.Run("success", func(t *testing.T) {
		client.EXPECT().Geocode(ctx, gomock.Any()).Return([]maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: -6.2, Lng: 106.8}}},
		}, nil)

		coord, err := provider.Geocode(ctx, "Jl. Sudirman 1, Jakarta")

		require.NoError(t, err)
		assert.InDelta(t, -6.2, coord.Latitude, 1e-9)
		assert.InDelta(t, 106.8, coord.Longitude, 1e-9)
	})
}

func TestNominatimProvider_Geocode(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "senyum-test", r.Header.Get("User-Agent"))
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		switch q {
		case "Jl. Kemang Raya, Jakarta":
			_, _ = w.Write([]byte(`[{"lat":"-6.2607","lon":"106.8137"}]`))
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	provider := geocoding.NewNominatimProvider(srv.Client(), srv.URL, "senyum-test", 0)

	t.Run("falls back by dropping trailing parts", func(t *testing.T) {
		queries = nil
		coord, err := provider.Geocode(context.Background(), "Jl. Kemang Raya, Jakarta, No. 12")

		require.NoError(t, err)
		assert.InDelta(t, -6.2607, coord.Latitude, 1e-9)
		assert.Equal(t, []string{"Jl. Kemang Raya, Jakarta, No. 12", "Jl. Kemang Raya, Jakarta"}, queries)
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := provider.Geocode(context.Background(), "Atlantis")

		assert.ErrorIs(t, err, geocoding.ErrNoResult)
	})

	t.Run("upstream error", func(t *testing.T) {
		_, err := provider.Geocode(context.Background(), "broken")

		var statusErr *geocoding.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.True(t, statusErr.Temporary())
	})
}

func TestInstrumented_RetriesTransientOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mocks.NewMockProvider(ctrl)
	inner.EXPECT().Name().Return("fake").AnyTimes()
	retrier := retry.New(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}, logger.NewFromZap(zap.NewNop(), "test"))
	provider := geocoding.NewInstrumented(inner, retrier, nil, nil)

	var calls int32
	inner.EXPECT().Geocode(gomock.Any(), "Jl. A").DoAndReturn(func(ctx context.Context, address string) (*geo.Coordinate, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, &geocoding.StatusError{StatusCode: http.StatusServiceUnavailable}
		}
		return &geo.Coordinate{Latitude: 1, Longitude: 2}, nil
	}).Times(2)

	coord, err := provider.Geocode(context.Background(), "Jl. A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, coord.Longitude)

	inner.EXPECT().Geocode(gomock.Any(), "Nowhere").Return(nil, geocoding.ErrNoResult).Times(1)
	_, err = provider.Geocode(context.Background(), "Nowhere")
	assert.True(t, errors.Is(err, geocoding.ErrNoResult))
}

func TestInstrumented_BreakerOpensOnOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockProvider(ctrl)
	inner.EXPECT().Name().Return("fake").AnyTimes()
	retrier := retry.New(retry.Config{MaxRetries: 0}, logger.NewFromZap(zap.NewNop(), "test"))
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "fake", FailureThreshold: 2, Timeout: time.Minute})
	provider := geocoding.NewInstrumented(inner, retrier, breaker, nil)

	inner.EXPECT().Geocode(gomock.Any(), gomock.Any()).
		Return(nil, &geocoding.StatusError{StatusCode: http.StatusBadGateway}).Times(2)

	for i := 0; i < 2; i++ {
		_, err := provider.Geocode(context.Background(), "Jl. B")
		require.Error(t, err)
	}
	_, err := provider.Geocode(context.Background(), "Jl. B")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
}
