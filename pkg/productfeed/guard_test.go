package productfeed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_BeginMakesPreviousStale(t *testing.T) {
	var g Guard
	assert.Equal(t, uint64(0), g.Current())

	id1, ctx1 := g.Begin(context.Background())
	assert.False(t, g.IsStale(id1))

	id2, ctx2 := g.Begin(context.Background())
	assert.Greater(t, id2, id1)
	assert.True(t, g.IsStale(id1))
	assert.False(t, g.IsStale(id2))
	require.ErrorIs(t, ctx1.Err(), context.Canceled, "superseded request canceled")
	require.NoError(t, ctx2.Err())
}

func TestGuard_Release(t *testing.T) {
	var g Guard
	id1, ctx1 := g.Begin(context.Background())
	id2, ctx2 := g.Begin(context.Background())

	g.Release(id1) // not current, must not touch the current context
	require.NoError(t, ctx2.Err())
	require.Error(t, ctx1.Err())

	g.Release(id2)
	require.ErrorIs(t, ctx2.Err(), context.Canceled)
	assert.False(t, g.IsStale(id2), "release doesn't change the current id")
}

func TestGuard_Invalidate(t *testing.T) {
	var g Guard
	id, ctx := g.Begin(context.Background())
	g.Invalidate()
	assert.True(t, g.IsStale(id))
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestGuard_ParentCancel(t *testing.T) {
	var g Guard
	parent, cancel := context.WithCancel(context.Background())
	id, ctx := g.Begin(parent)
	cancel()
	require.Error(t, ctx.Err())
	assert.False(t, g.IsStale(id), "canceled request is still current until superseded")
}
