package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type definitionSet struct {
	Revision string
	Count    int
}

func TestInMemory_Get(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemory[*definitionSet]("definitions", DefaultExpiration)

	got, ok := cache.Get(ctx, "definitions")
	require.False(t, ok)
	require.Nil(t, got)

	expect := &definitionSet{Revision: "r1", Count: 2}
	cache.Set(ctx, "definitions", expect)
	got, ok = cache.Get(ctx, "definitions")
	require.True(t, ok)
	assert.Same(t, expect, got)
}

func TestInMemory_GetWithInvalidValueType(t *testing.T) {
	cache := NewInMemory[string]("definitions", DefaultExpiration)
	cache.cache.Set("definitions", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "definitions")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestInMemory_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemory[string]("definitions", 0)
	cache.Set(ctx, "a", "1")
	cache.Set(ctx, "b", "2")
	cache.Set(ctx, "c", "3")
	assert.Equal(t, 3, cache.Len())

	cache.Delete(ctx, "a", "missing")
	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Len())

	cache.Flush(ctx)
	assert.Equal(t, 0, cache.Len())
}

func TestInMemory_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemory[string]("definitions", 20*time.Millisecond)
	cache.Set(ctx, "a", "1")
	_, ok := cache.Get(ctx, "a")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, "a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestInMemory_NoExpiration(t *testing.T) {
	cache := NewInMemory[string]("definitions", -1)
	assert.Equal(t, NoExpiration, cache.ttl)
}
