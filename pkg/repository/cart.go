package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// ErrUnknownSize returned when a product doesn't have the requested size
var ErrUnknownSize = errors.New("unknown product size")

// CartRepository handles visitor carts
type CartRepository struct {
	db *sqlx.DB
}

// cartLineSQL represents a cart line for SQL operations
type cartLineSQL struct {
	SessionID          string    `db:"session_id"`
	ProductID          int64     `db:"product_id"`
	SizeID             int64     `db:"size_id"`
	Name               string    `db:"name"`
	Image              string    `db:"image"`
	Brand              string    `db:"brand"`
	Unit               string    `db:"unit"`
	SizeName           string    `db:"size_name"`
	Price              float64   `db:"price"`
	DiscountPercentage float64   `db:"discount_percentage"`
	Quantity           int       `db:"quantity"`
	AddedAt            time.Time `db:"added_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add puts one unit of the product size into the visitor cart and returns the new quantity.
// Price and names are captured at the moment of adding.
func (r *CartRepository) Add(ctx context.Context, sessionID string, product domain.Product, sizeID int64) (int, error) {
	size, ok := product.Size(sizeID)
	if !ok {
		return 0, fmt.Errorf("add product %d to cart: %w %d", product.ID, ErrUnknownSize, sizeID)
	}
	line := cartLineSQL{
		SessionID:          sessionID,
		ProductID:          product.ID,
		SizeID:             size.ID,
		Name:               product.Name,
		Image:              product.Image,
		Brand:              product.Brand,
		Unit:               product.Unit,
		SizeName:           size.Size,
		Price:              size.Price,
		DiscountPercentage: product.DiscountPercentage,
	}

	var qty int
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO cart_lines (
				session_id, product_id, size_id, name, image, brand, unit, size_name,
				price, discount_percentage, quantity
			) VALUES (
				:session_id, :product_id, :size_id, :name, :image, :brand, :unit, :size_name,
				:price, :discount_percentage, 1
			)
			ON CONFLICT(session_id, product_id, size_id) DO UPDATE SET
				quantity = cart_lines.quantity + 1,
				name = excluded.name,
				image = excluded.image,
				price = excluded.price,
				discount_percentage = excluded.discount_percentage,
				updated_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.NamedExecContext(ctx, query, line); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("add cart line: %w", err)}
		}
		if err := r.db.GetContext(ctx, &qty,
			"SELECT quantity FROM cart_lines WHERE session_id = ? AND product_id = ? AND size_id = ?",
			sessionID, product.ID, size.ID); err != nil {
			return &criticalError{err: fmt.Errorf("get cart quantity: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return qty, nil
}

// Remove drops the product size line from the visitor cart
func (r *CartRepository) Remove(ctx context.Context, sessionID string, productID, sizeID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM cart_lines WHERE session_id = ? AND product_id = ? AND size_id = ?",
		sessionID, productID, sizeID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}

// Clear empties the visitor cart
func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cart_lines WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Get returns the visitor cart, lines in the order they were added
func (r *CartRepository) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	var rows []cartLineSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM cart_lines WHERE session_id = ? ORDER BY added_at, rowid", sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	res := domain.Cart{Lines: make([]domain.CartLine, 0, len(rows))}
	for _, row := range rows {
		res.Lines = append(res.Lines, domain.CartLine{
			SessionID:          row.SessionID,
			ProductID:          row.ProductID,
			SizeID:             row.SizeID,
			Name:               row.Name,
			Image:              row.Image,
			Brand:              row.Brand,
			Unit:               row.Unit,
			SizeName:           row.SizeName,
			Price:              row.Price,
			DiscountPercentage: row.DiscountPercentage,
			Quantity:           row.Quantity,
			UpdatedAt:          row.UpdatedAt,
		})
	}
	return res, nil
}
