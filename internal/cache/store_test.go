package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStringRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{Prefix: "files"})

	s.SetString(ctx, "/srv/index.html", "<html></html>", 0)

	got, ok := s.GetString(ctx, "/srv/index.html")
	require.True(t, ok)
	assert.Equal(t, "<html></html>", got)

	ttl, ok := s.TTL(ctx, "/srv/index.html")
	require.True(t, ok)
	assert.LessOrEqual(t, ttl, 30*time.Second)

	s.Delete(ctx, "/srv/index.html")
	_, ok = s.GetString(ctx, "/srv/index.html")
	assert.False(t, ok)
}

func TestStoreBytesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})

	src := []byte("abc")
	s.SetBytes(ctx, "k", src, time.Minute)
	src[0] = 'z'

	got, ok := s.GetBytes(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'z'
	again, _ := s.GetBytes(ctx, "k")
	assert.Equal(t, []byte("abc"), again)

	str, ok := s.GetString(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "abc", str)
}

func TestStoreNamespacesShareBackend(t *testing.T) {
	ctx := context.Background()
	root := NewStore(Options{Prefix: "tinyhttpd:"})
	a := root.Namespace("a")
	b := root.Namespace(":b")

	a.SetString(ctx, "x", "from a", 0)
	b.SetString(ctx, "x", "from b", 0)

	va, _ := a.GetString(ctx, "x")
	vb, _ := b.GetString(ctx, "x")
	assert.Equal(t, "from a", va)
	assert.Equal(t, "from b", vb)
	assert.Equal(t, 2, root.Len())

	_, ok := root.GetString(ctx, "x")
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{DefaultTTL: time.Minute})

	s.SetString(ctx, "short", "v", 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := s.GetString(ctx, "short")
		return !ok
	}, time.Second, 5*time.Millisecond)
}
