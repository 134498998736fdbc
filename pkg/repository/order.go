package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// ErrEmptyCart returned when an order is placed with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// OrderRepository handles placed orders
type OrderRepository struct {
	db *sqlx.DB
}

type orderSQL struct {
	ID            string        `db:"id"`
	SessionID     string        `db:"session_id"`
	Recipient     string        `db:"recipient"`
	FullAddress   string        `db:"full_address"`
	Details       string        `db:"details"`
	Comment       string        `db:"comment"`
	Lines         orderLinesSQL `db:"lines"`
	Delivery      string        `db:"delivery"`
	PromoCode     string        `db:"promo_code"`
	PromoDiscount float64       `db:"promo_discount"`
	Subtotal      float64       `db:"subtotal"`
	Discount      float64       `db:"discount"`
	DeliveryCost  float64       `db:"delivery_cost"`
	Total         float64       `db:"total"`
	CreatedAt     time.Time     `db:"created_at"`
}

// orderLinesSQL is a JSON array of ordered cart lines
type orderLinesSQL []domain.CartLine

// Value implements driver.Valuer for database storage
func (l orderLinesSQL) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (l *orderLinesSQL) Scan(value any) error {
	return scanJSON(value, l)
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Place stores the order and empties the visitor cart and checkout choices in one transaction.
// Missing ID and creation time are filled in, the stored order is returned.
func (r *OrderRepository) Place(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	row := orderSQL{
		ID:           order.ID,
		SessionID:    order.SessionID,
		Recipient:    order.Recipient,
		FullAddress:  order.Address.FullAddress,
		Details:      order.Address.Details,
		Comment:      order.Comment,
		Lines:        order.Lines,
		Delivery:     string(order.Summary.Delivery),
		Subtotal:     order.Summary.Subtotal,
		Discount:     order.Summary.Discount,
		DeliveryCost: order.Summary.DeliveryCost,
		Total:        order.Summary.Total,
		CreatedAt:    order.CreatedAt,
	}
	if order.Summary.Promo != nil {
		row.PromoCode, row.PromoDiscount = order.Summary.Promo.Code, order.Summary.Promo.Discount
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		query := `
			INSERT INTO orders (
				id, session_id, recipient, full_address, details, comment, lines, delivery,
				promo_code, promo_discount, subtotal, discount, delivery_cost, total, created_at
			) VALUES (
				:id, :session_id, :recipient, :full_address, :details, :comment, :lines, :delivery,
				:promo_code, :promo_discount, :subtotal, :discount, :delivery_cost, :total, :created_at
			)
		`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("insert order: %w", err)}
		}
		for _, q := range []string{"DELETE FROM cart_lines WHERE session_id = ?", "DELETE FROM checkouts WHERE session_id = ?"} {
			if _, err := tx.ExecContext(ctx, q, order.SessionID); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("clear after order: %w", err)}
			}
		}
		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit order: %w", err)}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// List returns visitor orders, newest first
func (r *OrderRepository) List(ctx context.Context, sessionID string) ([]domain.Order, error) {
	var rows []orderSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM orders WHERE session_id = ? ORDER BY created_at DESC, rowid DESC", sessionID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	res := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o := domain.Order{
			ID:        row.ID,
			SessionID: row.SessionID,
			Recipient: row.Recipient,
			Address:   domain.Address{FullAddress: row.FullAddress, Details: row.Details},
			Comment:   row.Comment,
			Lines:     row.Lines,
			Summary: domain.CheckoutSummary{
				Delivery:     domain.ParseDeliveryMethod(row.Delivery),
				Subtotal:     row.Subtotal,
				Discount:     row.Discount,
				DeliveryCost: row.DeliveryCost,
				Total:        row.Total,
			},
			CreatedAt: row.CreatedAt,
		}
		if row.PromoCode != "" {
			o.Summary.Promo = &domain.Promo{Code: row.PromoCode, Discount: row.PromoDiscount}
		}
		res = append(res, o)
	}
	return res, nil
}
