package locationtoken

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "location-secret"

func newTestCodec() *Codec {
	return NewCodec(models.LocationConfig{Secret: testSecret})
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestNewCodec_Defaults(t *testing.T) {
	codec := NewCodec(models.LocationConfig{Secret: testSecret})

	assert.Equal(t, DefaultCookieName, codec.CookieName())
	assert.Equal(t, DefaultTTL, codec.ttl)
}

func TestIssueAndResolve(t *testing.T) {
	codec := newTestCodec()
	captured := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	coord := geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}

	token, err := codec.Issue(coord, captured)
	require.NoError(t, err)

	got := codec.Resolve(token, captured.Add(time.Hour))
	require.NotNil(t, got)
	assert.Equal(t, coord, *got)
}

func TestResolve_WireFormat(t *testing.T) {
	codec := newTestCodec()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	raw := sign(t, testSecret, jwt.MapClaims{
		"latitude":              37.7749,
		"longitude":             -122.4194,
		"capturedAtEpochMillis": now.Add(-time.Minute).UnixMilli(),
	})

	got := codec.Resolve(raw, now)
	require.NotNil(t, got)
	assert.Equal(t, geo.Coordinate{Latitude: 37.7749, Longitude: -122.4194}, *got)
}

func TestIssue_ClaimsAreExactlyTheLocationFields(t *testing.T) {
	codec := newTestCodec()
	captured := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	raw, err := codec.Issue(geo.Coordinate{Latitude: 1, Longitude: 2}, captured)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(raw, claims)
	require.NoError(t, err)
	assert.Equal(t, jwt.MapClaims{
		"latitude":              1.0,
		"longitude":             2.0,
		"capturedAtEpochMillis": float64(captured.UnixMilli()),
	}, claims)
}

func TestNewCodec_TTLCappedAtOneDay(t *testing.T) {
	codec := NewCodec(models.LocationConfig{Secret: testSecret, TTL: 72 * time.Hour})
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	raw := sign(t, testSecret, jwt.MapClaims{
		"latitude":              1.0,
		"longitude":             2.0,
		"capturedAtEpochMillis": now.Add(-25 * time.Hour).UnixMilli(),
	})

	assert.Equal(t, DefaultTTL, codec.ttl)
	assert.Nil(t, codec.Resolve(raw, now))
}

func TestIssue_InvalidCoordinate(t *testing.T) {
	codec := newTestCodec()

	_, err := codec.Issue(geo.Coordinate{Latitude: 91}, time.Now())

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestIssue_MissingSecret(t *testing.T) {
	codec := NewCodec(models.LocationConfig{})

	_, err := codec.Issue(geo.Coordinate{}, time.Now())

	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	nowMillis := now.UnixMilli()

	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  *geo.Coordinate
	}{
		{
			name:  "absent",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "wrong signature",
			token: func(t *testing.T) string {
				return sign(t, "other-secret", jwt.MapClaims{"latitude": 1.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis})
			},
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"latitude": 1.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis,
				}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return raw
			},
		},
		{
			name: "latitude is a string",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": "1.0", "longitude": 2.0, "capturedAtEpochMillis": nowMillis})
			},
		},
		{
			name: "missing longitude",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 1.0, "capturedAtEpochMillis": nowMillis})
			},
		},
		{
			name: "missing timestamp",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 1.0, "longitude": 2.0})
			},
		},
		{
			name: "latitude out of range",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 95.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis})
			},
		},
		{
			name: "stale by one millisecond",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 1.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis - 86_400_001})
			},
		},
		{
			name: "exactly 24 hours old",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 1.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis - 86_400_000})
			},
			want: &geo.Coordinate{Latitude: 1, Longitude: 2},
		},
		{
			name: "captured in the future",
			token: func(t *testing.T) string {
				return sign(t, testSecret, jwt.MapClaims{"latitude": 1.0, "longitude": 2.0, "capturedAtEpochMillis": nowMillis + 60_000})
			},
			want: &geo.Coordinate{Latitude: 1, Longitude: 2},
		},
	}

	codec := newTestCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codec.Resolve(tt.token(t), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCookieAndFromRequest(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()
	coord := geo.Coordinate{Latitude: -6.2, Longitude: 106.8}

	token, err := codec.Issue(coord, now)
	require.NoError(t, err)

	cookie := codec.Cookie(token)
	assert.Equal(t, DefaultCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 86400, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/dentists/nearby", nil)
	req.AddCookie(cookie)
	got := codec.FromRequest(req, now)
	require.NotNil(t, got)
	assert.Equal(t, coord, *got)

	assert.Nil(t, codec.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil), now))
}
