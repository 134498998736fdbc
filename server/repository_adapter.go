package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/repository"
)

// CategorySource provides the category tree when the local mirror has none
type CategorySource interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// RepositoryAdapter adapts repositories to server.Store interface
type RepositoryAdapter struct {
	repos  *repository.Repositories
	remote CategorySource
}

// NewRepositoryAdapter creates a new repository adapter, remote may be nil
func NewRepositoryAdapter(repos *repository.Repositories, remote CategorySource) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos, remote: remote}
}

// GetProduct returns the product from the local mirror, nil if it is not there
func (r *RepositoryAdapter) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.repos.Product.GetProduct(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// NewestProducts returns the most recently added products
func (r *RepositoryAdapter) NewestProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.repos.Product.Newest(ctx, limit)
}

// BumpPopularity raises the local popularity rank of the product
func (r *RepositoryAdapter) BumpPopularity(ctx context.Context, id int64, delta int) error {
	return r.repos.Product.BumpPopularity(ctx, id, delta)
}

// GetCategories returns the mirrored category tree, falling back to the remote one
// when nothing is mirrored yet
func (r *RepositoryAdapter) GetCategories(ctx context.Context) ([]domain.Category, error) {
	tree, err := r.repos.Category.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(tree) > 0 || r.remote == nil {
		return tree, nil
	}
	remote, err := r.remote.Categories(ctx)
	if err != nil {
		log.Printf("[WARN] failed to get remote categories: %v", err)
		return tree, nil
	}
	return remote, nil
}

// GetCart returns the visitor cart
func (r *RepositoryAdapter) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return r.repos.Cart.Get(ctx, sessionID)
}

// AddToCart adds one unit of the product size, returns the new quantity
func (r *RepositoryAdapter) AddToCart(ctx context.Context, sessionID string, product domain.Product, sizeID int64) (int, error) {
	return r.repos.Cart.Add(ctx, sessionID, product, sizeID)
}

// RemoveFromCart drops the cart line
func (r *RepositoryAdapter) RemoveFromCart(ctx context.Context, sessionID string, productID, sizeID int64) error {
	return r.repos.Cart.Remove(ctx, sessionID, productID, sizeID)
}

// ClearCart empties the visitor cart
func (r *RepositoryAdapter) ClearCart(ctx context.Context, sessionID string) error {
	return r.repos.Cart.Clear(ctx, sessionID)
}

// GetAddress returns the visitor address, nil if not set
func (r *RepositoryAdapter) GetAddress(ctx context.Context, sessionID string) (*domain.Address, error) {
	addr, err := r.repos.Address.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// SetAddress stores the visitor address
func (r *RepositoryAdapter) SetAddress(ctx context.Context, sessionID string, addr domain.Address) error {
	return r.repos.Address.Set(ctx, sessionID, addr)
}

// ClearAddress removes the visitor address
func (r *RepositoryAdapter) ClearAddress(ctx context.Context, sessionID string) error {
	return r.repos.Address.Clear(ctx, sessionID)
}

// GetCheckout returns visitor checkout choices
func (r *RepositoryAdapter) GetCheckout(ctx context.Context, sessionID string) (domain.Checkout, error) {
	return r.repos.Checkout.Get(ctx, sessionID)
}

// SetDelivery stores the delivery method
func (r *RepositoryAdapter) SetDelivery(ctx context.Context, sessionID string, method domain.DeliveryMethod) error {
	return r.repos.Checkout.SetDelivery(ctx, sessionID, method)
}

// SetPromo stores the validated promo code
func (r *RepositoryAdapter) SetPromo(ctx context.Context, sessionID string, promo domain.Promo) error {
	return r.repos.Checkout.SetPromo(ctx, sessionID, promo)
}

// ClearPromo removes the promo code
func (r *RepositoryAdapter) ClearPromo(ctx context.Context, sessionID string) error {
	return r.repos.Checkout.ClearPromo(ctx, sessionID)
}

// PlaceOrder stores the order and empties the visitor cart
func (r *RepositoryAdapter) PlaceOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	return r.repos.Order.Place(ctx, order)
}

// GetProfile returns the visitor profile, nil if never saved
func (r *RepositoryAdapter) GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error) {
	p, err := r.repos.Profile.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetProfile stores the visitor profile
func (r *RepositoryAdapter) SetProfile(ctx context.Context, sessionID string, p domain.Profile) error {
	return r.repos.Profile.Set(ctx, sessionID, p)
}

// ListCompanies returns visitor companies
func (r *RepositoryAdapter) ListCompanies(ctx context.Context, sessionID string) ([]domain.Company, error) {
	return r.repos.Company.List(ctx, sessionID)
}

// CreateCompany registers a company for the visitor
func (r *RepositoryAdapter) CreateCompany(ctx context.Context, sessionID, name string) (domain.Company, error) {
	return r.repos.Company.Create(ctx, sessionID, name)
}

// DissolveCompany terminates the visitor company contract
func (r *RepositoryAdapter) DissolveCompany(ctx context.Context, sessionID string, id int64) (domain.Company, error) {
	return r.repos.Company.Dissolve(ctx, sessionID, id)
}

// LastSync returns time and product count of the last catalog sync
func (r *RepositoryAdapter) LastSync(ctx context.Context) (time.Time, int, error) {
	return r.repos.Setting.LastSync(ctx)
}

// CountProducts returns the number of products in the local mirror
func (r *RepositoryAdapter) CountProducts(ctx context.Context) (int, error) {
	return r.repos.Product.Count(ctx)
}
