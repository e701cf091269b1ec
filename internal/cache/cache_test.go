package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestRemember_LoadsOnce(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]item, error) {
		calls++
		return []item{{ID: 1, Name: "Regular cleaning"}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, CatalogPrefix+"services", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []item{{ID: 1, Name: "Regular cleaning"}}, got)
	}
	assert.Equal(t, 1, calls)

	InvalidateCatalog(ctx, c)

	_, err := Remember(ctx, c, CatalogPrefix+"services", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRemember_LoadErrorIsNotCached(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()
	boom := errors.New("db down")

	_, err := Remember(ctx, c, "k", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	found, err := c.Get(ctx, "k", new(int))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	var v string
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	now = now.Add(time.Minute)
	found, err = c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_DeletePrefix(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, CatalogPrefix+"a", 1, 0))
	require.NoError(t, c.Set(ctx, CatalogPrefix+"b", 2, 0))
	require.NoError(t, c.Set(ctx, "session:1", 3, 0))

	require.NoError(t, c.DeletePrefix(ctx, CatalogPrefix))

	var n int
	found, _ := c.Get(ctx, CatalogPrefix+"a", &n)
	assert.False(t, found)
	found, _ = c.Get(ctx, "session:1", &n)
	assert.True(t, found)
	assert.Equal(t, 3, n)
}

// Runs against a real server only when TEST_REDIS_URL is set.
func TestRedis_RoundTrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()

	client, err := NewRedisClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedis(client)
	key := CatalogPrefix + "test:" + t.Name()

	require.NoError(t, c.Set(ctx, key, item{ID: 7, Name: "Windows"}, time.Minute))

	var got item
	found, err := c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, item{ID: 7, Name: "Windows"}, got)

	require.NoError(t, c.DeletePrefix(ctx, CatalogPrefix+"test:"))
	found, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
