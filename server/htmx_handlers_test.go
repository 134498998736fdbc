package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/productfeed"
	pfmocks "github.com/umputun/storefront/pkg/productfeed/mocks"
	"github.com/umputun/storefront/pkg/repository"
	"github.com/umputun/storefront/pkg/session"
	"github.com/umputun/storefront/server/mocks"
)

func TestServer_homeHandler(t *testing.T) {
	t.Run("stories and popular preview", func(t *testing.T) {
		fetcher := pagedFetcher(testProducts(5))
		srv, registry := testServer(t, testStore(), fetcher, nil)

		w := httptest.NewRecorder()
		srv.homeHandler(w, visitorRequest("GET", "/", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<title>Test Store</title>")
		assert.Contains(t, body, "Summer sale")
		assert.Contains(t, body, "Popular Products")
		assert.Contains(t, body, "product 1")
		assert.Contains(t, body, "product 2")
		assert.NotContains(t, body, "product 3")
		assert.NotContains(t, body, "/catalog/sentinel/", "popular preview never continues")
		assert.NotContains(t, body, "Load More")

		require.Len(t, fetcher.FetchPageCalls(), 1)
		assert.Equal(t, domain.SortPopular, fetcher.FetchPageCalls()[0].Sort)
		assert.Equal(t, domain.CategoryAll, fetcher.FetchPageCalls()[0].CategoryID)

		inst, ok := registry.Lookup(testVisitor, productfeed.ViewPopular)
		require.True(t, ok)
		assert.False(t, inst.Continuable())
	})

	t.Run("popular products failed", func(t *testing.T) {
		fetcher := &pfmocks.FetcherMock{
			FetchPageFunc: func(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
				return nil, errors.New("catalog is down")
			},
		}
		srv, _ := testServer(t, testStore(), fetcher, nil)

		w := httptest.NewRecorder()
		srv.homeHandler(w, visitorRequest("GET", "/", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Summer sale")
		assert.Contains(t, w.Body.String(), "Failed to load products")
	})

	t.Run("cart and address in header", func(t *testing.T) {
		store := testStore()
		store.GetCartFunc = func(ctx context.Context, sessionID string) (domain.Cart, error) {
			return domain.Cart{Lines: []domain.CartLine{{ProductID: 1, SizeID: 101, Quantity: 3, Price: 10}}}, nil
		}
		store.GetAddressFunc = func(ctx context.Context, sessionID string) (*domain.Address, error) {
			return &domain.Address{FullAddress: "Tverskaya 1"}, nil
		}
		srv, _ := testServer(t, store, pagedFetcher(testProducts(5)), nil)

		w := httptest.NewRecorder()
		srv.homeHandler(w, visitorRequest("GET", "/", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `<span id="cart-count" class="cart-count">3</span>`)
		assert.Contains(t, body, "Deliver to: Tverskaya 1")
		assert.Contains(t, body, "In Cart (3)", "card of product 1 shows cart quantity")
	})
}

func TestServer_catalogHandler(t *testing.T) {
	fetcher := pagedFetcher(testProducts(5))
	srv, registry := testServer(t, testStore(), fetcher, nil)

	w := httptest.NewRecorder()
	srv.catalogHandler(w, visitorRequest("GET", "/catalog?category=c2&sort=price-asc&search=+tea+", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="catalog-filters"`)
	assert.Contains(t, body, `<option value="c2" selected>`)
	assert.Contains(t, body, `<option value="price-asc" selected>`)
	assert.Contains(t, body, `value="tea"`)
	assert.Contains(t, body, "product 1")
	assert.Contains(t, body, `hx-get="/catalog/sentinel/1"`)
	assert.Contains(t, body, "intersect once threshold:0.5")
	assert.Contains(t, body, "Load More")

	require.Len(t, fetcher.FetchPageCalls(), 1)
	call := fetcher.FetchPageCalls()[0]
	assert.Equal(t, 1, call.Page)
	assert.Equal(t, 2, call.PageSize)
	assert.Equal(t, domain.SortPriceAsc, call.Sort)
	assert.Equal(t, "c2", call.CategoryID)
	assert.Equal(t, "tea", call.Search)

	inst, ok := registry.Lookup(testVisitor, productfeed.ViewCatalog)
	require.True(t, ok)
	assert.True(t, inst.Continuable())
	assert.Len(t, inst.Feed.State().Items, 2)
}

func TestServer_catalogItemsHandler(t *testing.T) {
	t.Run("filter change restarts the feed", func(t *testing.T) {
		fetcher := pagedFetcher(testProducts(5))
		srv, _ := testServer(t, testStore(), fetcher, nil)

		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		srv.catalogItemsHandler(w, visitorRequest("GET", "/catalog/items?category=c1&sort=price-asc", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/catalog?category=c1&sort=price-asc", w.Header().Get("HX-Push-Url"))
		body := w.Body.String()
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, `id="product-grid"`)
		assert.Contains(t, body, "product 1")
		assert.NotContains(t, body, "product 3", "restart drops loaded pages")
		assert.Contains(t, body, `hx-get="/catalog/sentinel/3"`)

		calls := fetcher.FetchPageCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, 1, calls[2].Page)
		assert.Equal(t, "c1", calls[2].CategoryID)
	})

	t.Run("nothing found", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(nil), nil)
		w := httptest.NewRecorder()
		srv.catalogItemsHandler(w, visitorRequest("GET", "/catalog/items?search=nothing", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No products found")
		assert.NotContains(t, w.Body.String(), "feed-control")
	})

	t.Run("first page failed", func(t *testing.T) {
		fetcher := &pfmocks.FetcherMock{
			FetchPageFunc: func(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
				return nil, errors.New("catalog is down")
			},
		}
		srv, _ := testServer(t, testStore(), fetcher, nil)
		w := httptest.NewRecorder()
		srv.catalogItemsHandler(w, visitorRequest("GET", "/catalog/items", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to load products")
		assert.Len(t, fetcher.FetchPageCalls(), 1, "failed restart is not retried")
	})

	t.Run("feed evicted right after mount", func(t *testing.T) {
		fetcher := pagedFetcher(testProducts(5))
		inst := productfeed.Mount(productfeed.CatalogView(), fetcher, productfeed.Options{})
		inst.Unmount()
		feeds := &mocks.FeedRegistryMock{
			MountFunc: func(visitorID string, view productfeed.ViewConfig) *productfeed.Instance { return inst },
		}
		srv, err := New(Params{
			Store:    testStore(),
			Feeds:    feeds,
			Sessions: session.NewManager(session.Params{Secret: strings.Repeat("s", 32)}),
			Stories:  &mocks.StoriesMock{},
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		srv.catalogItemsHandler(w, visitorRequest("GET", "/catalog/items?category=c1", http.NoBody))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
		assert.Empty(t, w.Header().Get("HX-Push-Url"))
		assert.Empty(t, w.Body.String())
		assert.Empty(t, fetcher.FetchPageCalls())
	})
}

func TestServer_catalogMoreHandler(t *testing.T) {
	t.Run("feed is not mounted", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(testProducts(5)), nil)
		w := httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
	})

	t.Run("appends pages until exhausted", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(testProducts(5)), nil)
		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `hx-swap-oob="beforeend:#product-grid"`)
		assert.NotContains(t, body, "product 1")
		assert.Contains(t, body, "product 3")
		assert.Contains(t, body, "product 4")
		assert.Contains(t, body, `id="feed-control"`)
		assert.Contains(t, body, `data-count="4"`)
		assert.Contains(t, body, `hx-get="/catalog/sentinel/2"`)

		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		body = w.Body.String()
		assert.Contains(t, body, "product 5")
		assert.Contains(t, body, `id="feed-control"`)
		assert.NotContains(t, body, "/catalog/sentinel/", "exhausted feed removes the sentinel")
		assert.NotContains(t, body, "Load More")

		// nothing to load, the empty control replaces the old one
		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "product-card")
		assert.Contains(t, w.Body.String(), `id="feed-control"`)
	})

	t.Run("failed page shows retry without sentinel", func(t *testing.T) {
		products := testProducts(5)
		fail := true
		fetcher := &pfmocks.FetcherMock{
			FetchPageFunc: func(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error) {
				if page > 1 && fail {
					return nil, errors.New("catalog is down")
				}
				start := (page - 1) * pageSize
				return products[start:min(start+pageSize, len(products))], nil
			},
		}
		srv, _ := testServer(t, testStore(), fetcher, nil)
		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Failed to load products")
		assert.Contains(t, body, "Try again")
		assert.NotContains(t, body, "/catalog/sentinel/")
		assert.NotContains(t, body, "product-card")

		// retry succeeds and continues from the failed page
		fail = false
		w = httptest.NewRecorder()
		srv.catalogMoreHandler(w, visitorRequest("POST", "/catalog/more", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "product 3")
		assert.Contains(t, w.Body.String(), `hx-get="/catalog/sentinel/3"`)
		calls := fetcher.FetchPageCalls()
		assert.Equal(t, 2, calls[len(calls)-1].Page)
	})
}

func TestServer_catalogSentinelHandler(t *testing.T) {
	sentinel := func(srv *Server, token string) *httptest.ResponseRecorder {
		req := visitorRequest("GET", "/catalog/sentinel/"+token, http.NoBody)
		req.SetPathValue("token", token)
		w := httptest.NewRecorder()
		srv.catalogSentinelHandler(w, req)
		return w
	}

	t.Run("invalid token", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(testProducts(5)), nil)
		assert.Equal(t, http.StatusBadRequest, sentinel(srv, "abc").Code)
	})

	t.Run("feed is not mounted", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(testProducts(5)), nil)
		w := sentinel(srv, "1")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
	})

	t.Run("fires once per sentinel entering the viewport", func(t *testing.T) {
		fetcher := pagedFetcher(testProducts(7))
		srv, _ := testServer(t, testStore(), fetcher, nil)
		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, fetcher.FetchPageCalls(), 1)

		// outdated sentinel is ignored
		assert.Equal(t, http.StatusNoContent, sentinel(srv, "0").Code)
		assert.Len(t, fetcher.FetchPageCalls(), 1)

		w = sentinel(srv, "1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "product 3")
		assert.Contains(t, w.Body.String(), `hx-get="/catalog/sentinel/2"`)
		assert.Contains(t, w.Body.String(), `style="top:-100px"`, "sentinel is shifted by the pre-fetch margin")
		assert.Len(t, fetcher.FetchPageCalls(), 2)

		// same sentinel reported again, no new fetch
		assert.Equal(t, http.StatusNoContent, sentinel(srv, "1").Code)
		assert.Len(t, fetcher.FetchPageCalls(), 2)

		// next sentinel continues the feed
		w = sentinel(srv, "2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "product 5")
		assert.Len(t, fetcher.FetchPageCalls(), 3)
	})
}

func TestServer_productHandler(t *testing.T) {
	product := func(srv *Server, id string) *httptest.ResponseRecorder {
		req := visitorRequest("GET", "/products/"+id, http.NoBody)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		srv.productHandler(w, req)
		return w
	}

	t.Run("product from the mounted feed", func(t *testing.T) {
		store := testStore()
		srv, _ := testServer(t, store, pagedFetcher(testProducts(5)), nil)
		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		w = product(srv, "2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `id="product-drawer"`)
		assert.Contains(t, w.Body.String(), "product 2")
		assert.Contains(t, w.Body.String(), `hx-post="/cart/2/102"`)
		assert.Empty(t, store.GetProductCalls())
	})

	t.Run("product from the store with sanitized description", func(t *testing.T) {
		store := testStore()
		store.GetProductFunc = func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Green tea", DiscountPercentage: 50,
				Description: `<p>fresh</p><script>alert(1)</script>`,
				Sizes:       []domain.ProductSize{{ID: 7, Price: 20, Size: "L"}}}, nil
		}
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)

		w := product(srv, "42")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Green tea")
		assert.Contains(t, body, "<p>fresh</p>")
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "L · 10.00")
		assert.Contains(t, body, `<span class="old-price">20.00</span>`)
		require.Len(t, store.GetProductCalls(), 1)
		assert.Equal(t, int64(42), store.GetProductCalls()[0].Id)
	})

	t.Run("unknown product", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusNotFound, product(srv, "42").Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusBadRequest, product(srv, "abc").Code)
	})

	t.Run("store error", func(t *testing.T) {
		store := testStore()
		store.GetProductFunc = func(ctx context.Context, id int64) (*domain.Product, error) {
			return nil, errors.New("db error")
		}
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusInternalServerError, product(srv, "42").Code)
	})
}

func TestServer_addToCartHandler(t *testing.T) {
	addToCart := func(srv *Server, id, size string) *httptest.ResponseRecorder {
		req := visitorRequest("POST", "/cart/"+id+"/"+size, http.NoBody)
		req.SetPathValue("id", id)
		req.SetPathValue("size", size)
		w := httptest.NewRecorder()
		srv.addToCartHandler(w, req)
		return w
	}

	t.Run("adds and bumps popularity", func(t *testing.T) {
		store := testStore()
		store.AddToCartFunc = func(ctx context.Context, sessionID string, product domain.Product, sizeID int64) (int, error) {
			return 2, nil
		}
		store.GetCartFunc = func(ctx context.Context, sessionID string) (domain.Cart, error) {
			return domain.Cart{Lines: []domain.CartLine{{ProductID: 1, SizeID: 101, Quantity: 2}, {ProductID: 3, SizeID: 103, Quantity: 1}}}, nil
		}
		srv, _ := testServer(t, store, pagedFetcher(testProducts(5)), nil)
		w := httptest.NewRecorder()
		srv.catalogHandler(w, visitorRequest("GET", "/catalog", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		w = addToCart(srv, "1", "101")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "In Cart (2)")
		assert.Contains(t, body, `<span id="cart-count" class="cart-count" hx-swap-oob="true">3</span>`)

		require.Len(t, store.AddToCartCalls(), 1)
		call := store.AddToCartCalls()[0]
		assert.Equal(t, testVisitor, call.SessionID)
		assert.Equal(t, "product 1", call.Product.Name)
		assert.Equal(t, int64(101), call.SizeID)
		require.Len(t, store.BumpPopularityCalls(), 1)
		assert.Equal(t, int64(1), store.BumpPopularityCalls()[0].Id)
		assert.Equal(t, 1, store.BumpPopularityCalls()[0].Delta)
	})

	t.Run("unknown size", func(t *testing.T) {
		store := testStore()
		store.GetProductFunc = func(ctx context.Context, id int64) (*domain.Product, error) {
			return &testProducts(1)[0], nil
		}
		store.AddToCartFunc = func(ctx context.Context, sessionID string, product domain.Product, sizeID int64) (int, error) {
			return 0, repository.ErrUnknownSize
		}
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusBadRequest, addToCart(srv, "1", "999").Code)
		assert.Empty(t, store.BumpPopularityCalls())
	})

	t.Run("unknown product", func(t *testing.T) {
		store := testStore()
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusNotFound, addToCart(srv, "1", "101").Code)
		assert.Empty(t, store.AddToCartCalls())
	})

	t.Run("invalid ids", func(t *testing.T) {
		srv, _ := testServer(t, testStore(), pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusBadRequest, addToCart(srv, "x", "101").Code)
		assert.Equal(t, http.StatusBadRequest, addToCart(srv, "1", "y").Code)
	})
}

func TestServer_cartHandlers(t *testing.T) {
	lines := []domain.CartLine{{ProductID: 1, SizeID: 101, Name: "Green tea", SizeName: "L", Price: 10, Quantity: 2}}
	newStore := func() *mocks.StoreMock {
		store := testStore()
		store.GetCartFunc = func(ctx context.Context, sessionID string) (domain.Cart, error) {
			return domain.Cart{Lines: lines}, nil
		}
		store.RemoveFromCartFunc = func(ctx context.Context, sessionID string, productID, sizeID int64) error {
			lines = nil
			return nil
		}
		store.ClearCartFunc = func(ctx context.Context, sessionID string) error {
			lines = nil
			return nil
		}
		return store
	}

	t.Run("cart drawer", func(t *testing.T) {
		srv, _ := testServer(t, newStore(), pagedFetcher(nil), nil)
		w := httptest.NewRecorder()
		srv.cartHandler(w, visitorRequest("GET", "/cart", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Green tea, L × 2 · 20.00")
		assert.Contains(t, body, "Total: 20.00")
		assert.Contains(t, body, `hx-delete="/cart/1/101"`)
		assert.Contains(t, body, `hx-swap-oob="true">2</span>`)
	})

	t.Run("remove line", func(t *testing.T) {
		store := newStore()
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		req := visitorRequest("DELETE", "/cart/1/101", http.NoBody)
		req.SetPathValue("id", "1")
		req.SetPathValue("size", "101")
		w := httptest.NewRecorder()
		srv.removeFromCartHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Your cart is empty")
		require.Len(t, store.RemoveFromCartCalls(), 1)
		assert.Equal(t, int64(1), store.RemoveFromCartCalls()[0].ProductID)
		assert.Equal(t, int64(101), store.RemoveFromCartCalls()[0].SizeID)
	})

	t.Run("clear cart", func(t *testing.T) {
		lines = []domain.CartLine{{ProductID: 1, SizeID: 101, Name: "Green tea", Price: 10, Quantity: 2}}
		store := newStore()
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		w := httptest.NewRecorder()
		srv.clearCartHandler(w, visitorRequest("DELETE", "/cart", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Your cart is empty")
		assert.Len(t, store.ClearCartCalls(), 1)
	})

	t.Run("cart store error", func(t *testing.T) {
		store := testStore()
		store.GetCartFunc = func(ctx context.Context, sessionID string) (domain.Cart, error) {
			return domain.Cart{}, errors.New("db error")
		}
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		w := httptest.NewRecorder()
		srv.cartHandler(w, visitorRequest("GET", "/cart", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_addressHandlers(t *testing.T) {
	postAddress := func(srv *Server, form url.Values) *httptest.ResponseRecorder {
		req := visitorRequest("POST", "/address", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.setAddressHandler(w, req)
		return w
	}

	t.Run("set address", func(t *testing.T) {
		store := testStore()
		store.SetAddressFunc = func(ctx context.Context, sessionID string, addr domain.Address) error { return nil }
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)

		w := postAddress(srv, url.Values{"full_address": {" Tverskaya 1 "}, "details": {"apt 5"},
			"lat": {"55.76"}, "lng": {"37.61"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Deliver to: Tverskaya 1, apt 5")

		require.Len(t, store.SetAddressCalls(), 1)
		addr := store.SetAddressCalls()[0].Addr
		assert.Equal(t, "Tverskaya 1", addr.FullAddress)
		require.NotNil(t, addr.Lat)
		require.NotNil(t, addr.Lng)
		assert.InDelta(t, 55.76, *addr.Lat, 0.0001)
		assert.InDelta(t, 37.61, *addr.Lng, 0.0001)
	})

	t.Run("invalid address", func(t *testing.T) {
		store := testStore()
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		assert.Equal(t, http.StatusBadRequest, postAddress(srv, url.Values{"full_address": {"  "}}).Code)
		assert.Equal(t, http.StatusBadRequest, postAddress(srv, url.Values{"full_address": {"a"}, "lat": {"91"}}).Code)
		assert.Equal(t, http.StatusBadRequest, postAddress(srv, url.Values{"full_address": {"a"}, "lng": {"east"}}).Code)
		assert.Empty(t, store.SetAddressCalls())
	})

	t.Run("clear address", func(t *testing.T) {
		store := testStore()
		store.ClearAddressFunc = func(ctx context.Context, sessionID string) error { return nil }
		srv, _ := testServer(t, store, pagedFetcher(nil), nil)
		w := httptest.NewRecorder()
		srv.clearAddressHandler(w, visitorRequest("DELETE", "/address", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `hx-post="/address"`)
		assert.Len(t, store.ClearAddressCalls(), 1)
	})
}

func TestServer_langHandler(t *testing.T) {
	srv, _ := testServer(t, testStore(), pagedFetcher(nil), nil)
	lang := func(code string, hx bool, referer string) *httptest.ResponseRecorder {
		req := visitorRequest("POST", "/lang/"+code, http.NoBody)
		req.SetPathValue("lang", code)
		if hx {
			req.Header.Set("HX-Request", "true")
		}
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		w := httptest.NewRecorder()
		srv.langHandler(w, req)
		return w
	}

	t.Run("htmx request refreshes the page", func(t *testing.T) {
		w := lang("ru", true, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "storefront=")
	})

	t.Run("plain request redirects back", func(t *testing.T) {
		w := lang("en", false, "http://localhost:8080/catalog?sort=newest")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/catalog?sort=newest", w.Header().Get("Location"))
	})

	t.Run("unsupported language", func(t *testing.T) {
		w := lang("de", true, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}

func TestQueryFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/catalog?sort=bogus&search=++milk+", http.NoBody)
	q := queryFromRequest(req)
	assert.Equal(t, domain.SortPopular, q.Sort)
	assert.Equal(t, domain.CategoryAll, q.CategoryID)
	assert.Equal(t, "milk", q.Search)
	assert.Zero(t, q.Limit)
}

func TestCatalogURL(t *testing.T) {
	tests := []struct {
		name string
		q    domain.FeedQuery
		want string
	}{
		{name: "defaults", q: domain.FeedQuery{Sort: domain.SortPopular, CategoryID: domain.CategoryAll},
			want: "/catalog?sort=popular"},
		{name: "category and search", q: domain.FeedQuery{Sort: domain.SortNewest, CategoryID: "c1", Search: "green tea"},
			want: "/catalog?category=c1&search=green+tea&sort=newest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalogURL(tt.q))
		})
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    *float64
		wantErr bool
	}{
		{in: "", want: nil},
		{in: " 12.5 ", want: ptr(12.5)},
		{in: "-90", want: ptr(-90)},
		{in: "90.1", wantErr: true},
		{in: "north", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCoord(tt.in, 90)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortLabel(t *testing.T) {
	assert.Equal(t, "Price: Low to High", sortLabel("en", domain.SortPriceAsc))
	assert.Equal(t, "custom", sortLabel("en", domain.SortOption("custom")))
}

func ptr(v float64) *float64 { return &v }
