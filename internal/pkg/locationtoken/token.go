// Package locationtoken issues and reads the signed cookie that remembers
// where a visitor was when they granted geolocation permission.
package locationtoken

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
)

const (
	// DefaultCookieName is used when the config leaves the name empty
	DefaultCookieName = "senyum_location"
	// DefaultTTL is how long a captured location stays usable; configured
	// TTLs are capped at it
	DefaultTTL = 24 * time.Hour

	claimLatitude   = "latitude"
	claimLongitude  = "longitude"
	claimCapturedAt = "capturedAtEpochMillis"
)

// Codec signs and resolves location tokens
type Codec struct {
	cookieName string
	secret     []byte
	ttl        time.Duration
	secure     bool
}

// NewCodec builds a Codec from the location config
func NewCodec(cfg models.LocationConfig) *Codec {
	c := &Codec{
		cookieName: cfg.CookieName,
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
	}
	if c.cookieName == "" {
		c.cookieName = DefaultCookieName
	}
	if c.ttl <= 0 || c.ttl > DefaultTTL {
		c.ttl = DefaultTTL
	}
	return c
}

// CookieName returns the name of the location cookie
func (c *Codec) CookieName() string {
	return c.cookieName
}

// Issue signs coord together with the capture time
func (c *Codec) Issue(coord geo.Coordinate, capturedAt time.Time) (string, error) {
	if err := coord.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if len(c.secret) == 0 {
		return "", errors.New("location token secret is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimLatitude:   coord.Latitude,
		claimLongitude:  coord.Longitude,
		claimCapturedAt: capturedAt.UnixMilli(),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign location token: %w", err)
	}
	return signed, nil
}

// Cookie wraps a signed token into the cookie sent to the browser
func (c *Codec) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Resolve returns the coordinate stored in raw, or nil when the token is
// missing, tampered with, malformed or older than the TTL at now.
// Timestamps in the future are accepted.
func (c *Codec) Resolve(raw string, now time.Time) *geo.Coordinate {
	if raw == "" || len(c.secret) == 0 {
		return nil
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := jwt.MapClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	lat, ok := number(claims[claimLatitude])
	if !ok {
		return nil
	}
	lon, ok := number(claims[claimLongitude])
	if !ok {
		return nil
	}
	capturedAt, ok := number(claims[claimCapturedAt])
	if !ok {
		return nil
	}

	coord := geo.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.IsValid() {
		return nil
	}
	if float64(now.UnixMilli())-capturedAt > float64(c.ttl.Milliseconds()) {
		return nil
	}
	return &coord
}

// FromRequest resolves the location cookie carried by r
func (c *Codec) FromRequest(r *http.Request, now time.Time) *geo.Coordinate {
	cookie, err := r.Cookie(c.cookieName)
	if err != nil {
		return nil
	}
	return c.Resolve(cookie.Value, now)
}

func number(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
