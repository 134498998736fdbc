package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/domain"
)

func TestCartRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	products := testProducts()

	qty, err := repos.Cart.Add(ctx, "s1", products[0], 12)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	qty, err = repos.Cart.Add(ctx, "s1", products[0], 12)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
	_, err = repos.Cart.Add(ctx, "s1", products[1], 21)
	require.NoError(t, err)
	_, err = repos.Cart.Add(ctx, "s2", products[2], 31)
	require.NoError(t, err)

	_, err = repos.Cart.Add(ctx, "s1", products[0], 99)
	require.ErrorIs(t, err, ErrUnknownSize)

	cart, err := repos.Cart.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "1-12", cart.Lines[0].Key())
	assert.Equal(t, "big", cart.Lines[0].SizeName)
	assert.Equal(t, 3, cart.Count())
	assert.InDelta(t, 180*2+150, cart.Total(), 0.001)
	assert.Equal(t, map[string]int{"1-12": 2, "2-21": 1}, cart.Quantities())

	require.NoError(t, repos.Cart.Remove(ctx, "s1", 1, 12))
	cart, err = repos.Cart.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].ProductID)

	require.NoError(t, repos.Cart.Clear(ctx, "s1"))
	cart, err = repos.Cart.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	cart, err = repos.Cart.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1, "other visitor cart untouched")
}

func TestAddressRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Address.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repos.Address.Set(ctx, "s1", domain.Address{FullAddress: "Main st 1", Details: "apt 5"}))
	addr, err := repos.Address.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Main st 1", addr.FullAddress)
	assert.Nil(t, addr.Lat)

	lat, lng := 55.75, 37.61
	require.NoError(t, repos.Address.Set(ctx, "s1", domain.Address{FullAddress: "Red sq", Lat: &lat, Lng: &lng}))
	addr, err = repos.Address.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Red sq", addr.FullAddress)
	assert.Empty(t, addr.Details)
	require.NotNil(t, addr.Lat)
	assert.InDelta(t, 55.75, *addr.Lat, 0.0001)

	require.NoError(t, repos.Address.Clear(ctx, "s1"))
	_, err = repos.Address.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)
}
