// util/cache_service_test.go
package util_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/test/mock"
	"github.com/openmusic-api/openmusic/util"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cache-test-logs")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	logger.InitLogger(dir)
	os.Exit(m.Run())
}

func TestRememberMissPopulatesCache(t *testing.T) {
	cache := mock.NewFakeCache()
	key := util.AlbumLikesKey("album-1")

	calls := 0
	value, fromCache, err := util.Remember(context.Background(), cache, key,
		func(ctx context.Context) (int64, error) {
			calls++
			return 42, nil
		})

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, int64(42), value)
	assert.Equal(t, 1, calls)
	assert.True(t, cache.Contains(key))
}

func TestRememberHitSkipsProducer(t *testing.T) {
	cache := mock.NewFakeCache()
	key := util.AlbumLikesKey("album-1")
	require.NoError(t, cache.Set(context.Background(), key, "42"))

	value, fromCache, err := util.Remember(context.Background(), cache, key,
		func(ctx context.Context) (int64, error) {
			t.Fatal("producer must not run on a cache hit")
			return 0, nil
		})

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, int64(42), value)
}

func TestRememberBackendFailureFallsThrough(t *testing.T) {
	cache := mock.NewFakeCache()
	cache.Err = errors.New("connection refused")

	value, fromCache, err := util.Remember(context.Background(), cache, "some-key",
		func(ctx context.Context) (int64, error) {
			return 7, nil
		})

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, int64(7), value)
}

func TestRememberProducerErrorPropagates(t *testing.T) {
	cache := mock.NewFakeCache()
	wantErr := errors.New("database unavailable")

	_, fromCache, err := util.Remember(context.Background(), cache, "some-key",
		func(ctx context.Context) (int64, error) {
			return 0, wantErr
		})

	assert.ErrorIs(t, err, wantErr)
	assert.False(t, fromCache)
	assert.False(t, cache.Contains("some-key"))
}

func TestRememberUndecodableEntryTreatedAsMiss(t *testing.T) {
	cache := mock.NewFakeCache()
	key := util.UserPlaylistsKey("user-1")
	require.NoError(t, cache.Set(context.Background(), key, "{not json"))

	value, fromCache, err := util.Remember(context.Background(), cache, key,
		func(ctx context.Context) (int64, error) {
			return 3, nil
		})

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, int64(3), value)
}
