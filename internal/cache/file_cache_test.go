package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestFileCache_SetAndGet(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	fc := NewFileCache[payload]("test", 0)
	key := fc.GenerateKey("plot-1", "2024-05-01")

	require.NoError(t, fc.Set(key, payload{Name: "ndvi", Value: 0.6}))

	got, ok := fc.Get(key)
	require.True(t, ok)
	assert.Equal(t, "ndvi", got.Name)
	assert.Equal(t, 0.6, got.Value)
}

func TestFileCache_MissingKey(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	fc := NewFileCache[payload]("test", 0)
	_, ok := fc.Get("does-not-exist")
	assert.False(t, ok)
}

func TestFileCache_ExpiredEntry(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	fc := NewFileCache[payload]("test", time.Nanosecond)
	key := fc.GenerateKey("plot-1")
	require.NoError(t, fc.Set(key, payload{Name: "stale"}))

	time.Sleep(time.Millisecond)
	_, ok := fc.Get(key)
	assert.False(t, ok)
}

func TestFileCache_KeyIsStableForSameParams(t *testing.T) {
	fc := NewFileCache[payload]("test", 0)

	assert.Equal(t, fc.GenerateKey("a", 1, 2.5), fc.GenerateKey("a", 1, 2.5))
	assert.NotEqual(t, fc.GenerateKey("a", 1), fc.GenerateKey("a", 2))
}
