package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisClient{Client: client}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "dentist:profile:jane", "payload", time.Minute))

	val, err := client.Get(ctx, "dentist:profile:jane")
	require.NoError(t, err)
	assert.Equal(t, "payload", val)
	assert.Equal(t, time.Minute, mr.TTL("dentist:profile:jane"))

	require.NoError(t, client.Delete(ctx, "dentist:profile:jane"))
	_, err = client.Get(ctx, "dentist:profile:jane")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, client.Delete(ctx))
}

func TestRedisClient_IncrWithExpiry(t *testing.T) {
	client, mr := setupRedis(t)
	ctx := context.Background()

	count, ttl, err := client.IncrWithExpiry(ctx, "rate:ip:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(20 * time.Second)

	count, ttl, err = client.IncrWithExpiry(ctx, "rate:ip:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 40*time.Second, ttl)

	mr.FastForward(41 * time.Second)

	count, _, err = client.IncrWithExpiry(ctx, "rate:ip:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_Ping(t *testing.T) {
	client, mr := setupRedis(t)

	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}
