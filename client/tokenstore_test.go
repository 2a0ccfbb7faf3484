package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	pair, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, TokenPair{}, pair)

	want := TokenPair{AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, store.Set(ctx, want))

	pair, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, pair)

	require.NoError(t, store.Clear(ctx))
	pair, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, TokenPair{}, pair)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	store := NewMemoryTokenStore()

	built := 0
	factory := func() *Client {
		built++
		return New("http://example.test", store, nil, nil)
	}

	a := r.GetOrCreate("sess-1", factory)
	b := r.GetOrCreate("sess-1", factory)
	assert.Same(t, a, b)
	assert.Equal(t, 1, built)

	c := r.GetOrCreate("sess-2", factory)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, built)

	r.Drop("sess-1")
	d := r.GetOrCreate("sess-1", factory)
	assert.NotSame(t, a, d)
}
