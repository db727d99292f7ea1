// test/mock/util.go
package mock

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/openmusic-api/openmusic/util"
)

// MockProducer is a mock implementation of util.Producer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) ExportPlaylist(ctx context.Context, playlistID, targetEmail string) error {
	args := m.Called(ctx, playlistID, targetEmail)
	return args.Error(0)
}

// FakeCache is an in-memory util.Cacher for exercising the cache-aside path
// without Redis.
type FakeCache struct {
	mu      sync.Mutex
	entries map[string]string

	// Err, when set, is returned by every operation to simulate a broken
	// backend.
	Err error

	Gets    int
	Sets    int
	Deletes int
}

var _ util.Cacher = (*FakeCache)(nil)

func NewFakeCache() *FakeCache {
	return &FakeCache{entries: make(map[string]string)}
}

func (f *FakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Gets++
	if f.Err != nil {
		return "", f.Err
	}
	value, ok := f.entries[key]
	if !ok {
		return "", util.ErrCacheMiss
	}
	return value, nil
}

func (f *FakeCache) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sets++
	if f.Err != nil {
		return f.Err
	}
	f.entries[key] = value
	return nil
}

func (f *FakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deletes++
	if f.Err != nil {
		return f.Err
	}
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

// Contains reports whether the key currently holds a value.
func (f *FakeCache) Contains(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}
