package resolver_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/resolver"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCache_MemoizesFirstResult(t *testing.T) {
	cache := resolver.NewCache()
	key := domain.CacheKey{Kind: domain.KindDependency, Name: "style-lib"}

	var calls atomic.Int32
	fill := func() (string, error) {
		calls.Add(1)
		return "/opt/style-lib", nil
	}

	first, err := cache.Resolve(key, fill)
	require.NoError(t, err)
	second, err := cache.Resolve(key, fill)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCache_DistinctKeysDoNotCollide(t *testing.T) {
	cache := resolver.NewCache()

	rootPath, err := cache.Resolve(domain.CacheKey{Kind: domain.KindRoot}, func() (string, error) {
		return "/plugin", nil
	})
	require.NoError(t, err)

	depPath, err := cache.Resolve(domain.CacheKey{Kind: domain.KindDependency, Name: "style-lib"}, func() (string, error) {
		return "/style-lib", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "/plugin", rootPath)
	assert.Equal(t, "/style-lib", depPath)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_FailuresAreNotMemoized(t *testing.T) {
	cache := resolver.NewCache()
	key := domain.CacheKey{Kind: domain.KindDependency, Name: "style-lib"}

	var calls atomic.Int32
	_, err := cache.Resolve(key, func() (string, error) {
		calls.Add(1)
		return "", zerr.New("not there yet")
	})
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())

	path, err := cache.Resolve(key, func() (string, error) {
		calls.Add(1)
		return "/opt/style-lib", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/style-lib", path)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_ClearForcesRecompute(t *testing.T) {
	cache := resolver.NewCache()
	key := domain.CacheKey{Kind: domain.KindRoot}

	var calls atomic.Int32
	fill := func() (string, error) {
		calls.Add(1)
		return "/plugin", nil
	}

	_, err := cache.Resolve(key, fill)
	require.NoError(t, err)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Resolve(key, fill)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_ConcurrentFillsCollapse(t *testing.T) {
	cache := resolver.NewCache()
	key := domain.CacheKey{Kind: domain.KindDependency, Name: "style-lib"}

	var calls atomic.Int32
	entered := make(chan struct{})
	gate := make(chan struct{})
	fill := func() (string, error) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-gate
		return "/opt/style-lib", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		path, err := cache.Resolve(key, fill)
		assert.NoError(t, err)
		results[0] = path
	}()

	// Wait for the first fill to be in flight, then pile on. Everyone else
	// either joins the flight or hits the memo once it lands.
	<-entered
	for i := 1; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := cache.Resolve(key, fill)
			assert.NoError(t, err)
			results[i] = path
		}()
	}

	close(gate)
	wg.Wait()

	// Concurrent fills of the same key collapse into a single computation.
	assert.Equal(t, int32(1), calls.Load())
	for _, path := range results {
		assert.Equal(t, "/opt/style-lib", path)
	}
}
