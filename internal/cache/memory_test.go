package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, KeyHierarchy, []byte("tree"), time.Minute))
	v, ok, err := c.Get(ctx, KeyHierarchy)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tree", string(v))

	require.NoError(t, c.Invalidate(ctx, KeyHierarchy, "other"))
	_, ok, _ = c.Get(ctx, KeyHierarchy)
	assert.False(t, ok)
}

func TestMemory_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, RoleKey("user_1"), []byte("admin"), 60*time.Second))

	now = now.Add(59 * time.Second)
	_, ok, _ := c.Get(ctx, RoleKey("user_1"))
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = c.Get(ctx, RoleKey("user_1"))
	assert.False(t, ok)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	buf := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", buf, 0))
	buf[0] = 'x'

	v, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(v))
	v[1] = 'y'

	v2, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(v2))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, c, "p", payload{Name: "a", Count: 2}, time.Minute))
	got, ok, err := GetJSON[payload](ctx, c, "p")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "a", Count: 2}, got)

	require.NoError(t, c.Set(ctx, "bad", []byte("{not json"), time.Minute))
	_, ok, err = GetJSON[payload](ctx, c, "bad")
	assert.NoError(t, err)
	assert.False(t, ok)
}
