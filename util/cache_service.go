// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/openmusic-api/openmusic/logging"
)

// ErrCacheMiss is returned by Cacher.Get when the key is absent.
var ErrCacheMiss = errors.New("cache: key not found")

// Cacher is the capability set the read path needs from the cache backend.
type Cacher interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// CacheService wraps the shared Redis client with a fixed TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	} else if err != nil {
		return "", fmt.Errorf("failed to get %q from cache: %w", key, err)
	}
	return value, nil
}

func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %q: %w", key, err)
	}
	return nil
}

func (c *CacheService) Delete(ctx context.Context, keys ...string) error {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys %v: %w", keys, err)
	}
	return nil
}

// Cache keys for the aggregates served through the cache-aside path. Writes
// to the underlying entity must delete the matching key.
func AlbumLikesKey(albumID string) string {
	return fmt.Sprintf("album:%s:likes", albumID)
}

func UserPlaylistsKey(userID string) string {
	return fmt.Sprintf("user:%s:playlists", userID)
}

func PlaylistActivitiesKey(playlistID string) string {
	return fmt.Sprintf("playlist:%s:activities", playlistID)
}

// Remember implements the cache-aside read: return the cached value when
// present, otherwise run the producer and populate the key. The boolean
// reports whether the value came from the cache. A cache backend failure
// never fails the read; only producer errors propagate.
func Remember[T any](ctx context.Context, cache Cacher, key string, producer func(context.Context) (T, error)) (T, bool, error) {
	var zero T

	raw, err := cache.Get(ctx, key)
	if err == nil {
		var value T
		if uerr := json.Unmarshal([]byte(raw), &value); uerr == nil {
			return value, true, nil
		}
		// An undecodable entry counts as a miss and gets overwritten below.
		logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.Warn("Cache read failed, falling through to source",
			zap.String("key", key), zap.Error(err))
	}

	value, err := producer(ctx)
	if err != nil {
		return zero, false, err
	}

	if encoded, merr := json.Marshal(value); merr == nil {
		if serr := cache.Set(ctx, key, string(encoded)); serr != nil {
			logger.Warn("Cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}

	return value, false, nil
}
