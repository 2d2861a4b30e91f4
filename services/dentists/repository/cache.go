package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/models"
)

const defaultProfileTTL = 10 * time.Minute

// ProfileCache keeps rendered profiles in Redis under dentist:profile:{slug}
type ProfileCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewProfileCache creates a profile cache; ttl <= 0 uses ten minutes
func NewProfileCache(redis *database.RedisClient, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &ProfileCache{redis: redis, ttl: ttl}
}

// Get returns the cached profile or database.ErrCacheMiss
func (c *ProfileCache) Get(ctx context.Context, slug string) (*models.DentistProfile, error) {
	raw, err := c.redis.Get(ctx, fmt.Sprintf(constants.KeyDentistProfile, slug))
	if err != nil {
		if errors.Is(err, database.ErrCacheMiss) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read profile cache: %w", err)
	}

	var profile models.DentistProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return &profile, nil
}

// Set stores profile under its slug
func (c *ProfileCache) Set(ctx context.Context, profile *models.DentistProfile) error {
	if profile == nil || profile.Dentist == nil {
		return nil
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := c.redis.Set(ctx, fmt.Sprintf(constants.KeyDentistProfile, profile.Slug), data, c.ttl); err != nil {
		return fmt.Errorf("failed to write profile cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached profiles of slugs
func (c *ProfileCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, fmt.Sprintf(constants.KeyDentistProfile, slug))
		}
	}
	if err := c.redis.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to invalidate profile cache: %w", err)
	}
	return nil
}
