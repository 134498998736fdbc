package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/repository"
)

type categorySourceFunc func(ctx context.Context) ([]domain.Category, error)

func (f categorySourceFunc) Categories(ctx context.Context) ([]domain.Category, error) { return f(ctx) }

func setupAdapter(t *testing.T, remote CategorySource) (*RepositoryAdapter, *repository.Repositories) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return NewRepositoryAdapter(repos, remote), repos
}

func TestRepositoryAdapter_Products(t *testing.T) {
	ctx := context.Background()
	adapter, repos := setupAdapter(t, nil)
	require.NoError(t, repos.Product.UpsertProducts(ctx, testProducts(3)))

	p, err := adapter.GetProduct(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "product 2", p.Name)

	p, err = adapter.GetProduct(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)

	newest, err := adapter.NewestProducts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, newest, 2)

	require.NoError(t, adapter.BumpPopularity(ctx, 3, 5))
	page, err := repos.Product.FetchPage(ctx, 1, 1, domain.SortPopular, domain.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(3), page[0].ID)
}

func TestRepositoryAdapter_Cart(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t, nil)
	product := testProducts(1)[0]

	qty, err := adapter.AddToCart(ctx, "s1", product, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	qty, err = adapter.AddToCart(ctx, "s1", product, 101)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	_, err = adapter.AddToCart(ctx, "s1", product, 999)
	require.ErrorIs(t, err, repository.ErrUnknownSize)

	cart, err := adapter.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count())

	other, err := adapter.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)

	require.NoError(t, adapter.RemoveFromCart(ctx, "s1", product.ID, 101))
	cart, err = adapter.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	_, err = adapter.AddToCart(ctx, "s1", product, 101)
	require.NoError(t, err)
	require.NoError(t, adapter.ClearCart(ctx, "s1"))
	cart, err = adapter.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, cart.Count())
}

func TestRepositoryAdapter_Address(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t, nil)

	addr, err := adapter.GetAddress(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, addr)

	lat, lng := 55.76, 37.61
	require.NoError(t, adapter.SetAddress(ctx, "s1", domain.Address{FullAddress: "Tverskaya 1", Lat: &lat, Lng: &lng}))
	addr, err = adapter.GetAddress(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, "Tverskaya 1", addr.FullAddress)
	require.NotNil(t, addr.Lat)
	assert.InDelta(t, lat, *addr.Lat, 0.0001)

	require.NoError(t, adapter.ClearAddress(ctx, "s1"))
	addr, err = adapter.GetAddress(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, addr)
}

func TestRepositoryAdapter_GetCategories(t *testing.T) {
	ctx := context.Background()
	remoteTree := []domain.Category{{ID: "r1", Name: "Remote"}}

	t.Run("falls back to remote when nothing mirrored", func(t *testing.T) {
		adapter, _ := setupAdapter(t, categorySourceFunc(func(ctx context.Context) ([]domain.Category, error) {
			return remoteTree, nil
		}))
		tree, err := adapter.GetCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, remoteTree, tree)
	})

	t.Run("remote failure gives empty tree", func(t *testing.T) {
		adapter, _ := setupAdapter(t, categorySourceFunc(func(ctx context.Context) ([]domain.Category, error) {
			return nil, errors.New("catalog is down")
		}))
		tree, err := adapter.GetCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, tree)
	})

	t.Run("mirrored tree wins", func(t *testing.T) {
		called := false
		adapter, repos := setupAdapter(t, categorySourceFunc(func(ctx context.Context) ([]domain.Category, error) {
			called = true
			return remoteTree, nil
		}))
		require.NoError(t, repos.Category.ReplaceCategories(ctx, []domain.Category{
			{ID: "c1", Name: "Drinks", Children: []domain.Category{{ID: "c2", Name: "Coffee"}}},
		}))
		tree, err := adapter.GetCategories(ctx)
		require.NoError(t, err)
		require.Len(t, tree, 1)
		assert.Equal(t, "Drinks", tree[0].Name)
		require.Len(t, tree[0].Children, 1)
		assert.False(t, called)
	})
}

func TestRepositoryAdapter_LastSync(t *testing.T) {
	ctx := context.Background()
	adapter, repos := setupAdapter(t, nil)

	ts, count, err := adapter.LastSync(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
	assert.Zero(t, count)

	syncedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Setting.SetLastSync(ctx, syncedAt, 42))
	ts, count, err = adapter.LastSync(ctx)
	require.NoError(t, err)
	assert.True(t, syncedAt.Equal(ts))
	assert.Equal(t, 42, count)
}

func TestRepositoryAdapter_CountProducts(t *testing.T) {
	ctx := context.Background()
	adapter, repos := setupAdapter(t, nil)

	cnt, err := adapter.CountProducts(ctx)
	require.NoError(t, err)
	assert.Zero(t, cnt)

	require.NoError(t, repos.Product.UpsertProducts(ctx, []domain.Product{{ID: 1, Name: "tea"}, {ID: 2, Name: "coffee"}}))
	cnt, err = adapter.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}

func TestRepositoryAdapter_Checkout(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t, nil)
	products := testProducts(1)
	_, err := adapter.AddToCart(ctx, "s1", products[0], products[0].Sizes[0].ID)
	require.NoError(t, err)

	require.NoError(t, adapter.SetDelivery(ctx, "s1", domain.DeliveryPickup))
	require.NoError(t, adapter.SetPromo(ctx, "s1", domain.Promo{Code: "SALE10", Discount: 10}))
	co, err := adapter.GetCheckout(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryPickup, co.Delivery)
	require.NotNil(t, co.Promo)
	require.NoError(t, adapter.ClearPromo(ctx, "s1"))
	co, err = adapter.GetCheckout(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, co.Promo)

	cart, err := adapter.GetCart(ctx, "s1")
	require.NoError(t, err)
	order, err := adapter.PlaceOrder(ctx, domain.Order{SessionID: "s1", Recipient: "Ann",
		Address: domain.Address{FullAddress: "Main st 1"}, Lines: cart.Lines,
		Summary: domain.DeliveryRules{}.Summary(cart, co)})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	cart, err = adapter.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestRepositoryAdapter_ProfileAndCompanies(t *testing.T) {
	ctx := context.Background()
	adapter, _ := setupAdapter(t, nil)

	p, err := adapter.GetProfile(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, p, "never saved")
	require.NoError(t, adapter.SetProfile(ctx, "s1", domain.Profile{Name: "Ann"}))
	p, err = adapter.GetProfile(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ann", p.Name)

	c, err := adapter.CreateCompany(ctx, "s1", "Acme")
	require.NoError(t, err)
	list, err := adapter.ListCompanies(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	_, err = adapter.DissolveCompany(ctx, "s2", c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	dissolved, err := adapter.DissolveCompany(ctx, "s1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyDissolved, dissolved.Status)
}
