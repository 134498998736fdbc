package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// CheckoutRepository handles visitor checkout choices
type CheckoutRepository struct {
	db *sqlx.DB
}

type checkoutSQL struct {
	SessionID     string  `db:"session_id"`
	Delivery      string  `db:"delivery"`
	PromoCode     string  `db:"promo_code"`
	PromoDiscount float64 `db:"promo_discount"`
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *sqlx.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// Get returns visitor checkout choices, courier delivery without promo if nothing was chosen
func (r *CheckoutRepository) Get(ctx context.Context, sessionID string) (domain.Checkout, error) {
	var row checkoutSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT session_id, delivery, promo_code, promo_discount FROM checkouts WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Checkout{Delivery: domain.DeliveryCourier}, nil
	}
	if err != nil {
		return domain.Checkout{}, fmt.Errorf("get checkout: %w", err)
	}
	res := domain.Checkout{Delivery: domain.ParseDeliveryMethod(row.Delivery)}
	if row.PromoCode != "" {
		res.Promo = &domain.Promo{Code: row.PromoCode, Discount: row.PromoDiscount}
	}
	return res, nil
}

// SetDelivery stores the delivery method, promo is kept
func (r *CheckoutRepository) SetDelivery(ctx context.Context, sessionID string, method domain.DeliveryMethod) error {
	query := `
		INSERT INTO checkouts (session_id, delivery) VALUES (?, ?)
		ON CONFLICT(session_id) DO UPDATE SET delivery = excluded.delivery, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, sessionID, string(domain.ParseDeliveryMethod(string(method)))); err != nil {
		return fmt.Errorf("set delivery: %w", err)
	}
	return nil
}

// SetPromo stores the applied promo code, replacing the previous one
func (r *CheckoutRepository) SetPromo(ctx context.Context, sessionID string, promo domain.Promo) error {
	query := `
		INSERT INTO checkouts (session_id, promo_code, promo_discount) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			promo_code = excluded.promo_code,
			promo_discount = excluded.promo_discount,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, sessionID, promo.Code, promo.Discount); err != nil {
		return fmt.Errorf("set promo: %w", err)
	}
	return nil
}

// ClearPromo removes the applied promo code
func (r *CheckoutRepository) ClearPromo(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE checkouts SET promo_code = '', promo_discount = 0, updated_at = CURRENT_TIMESTAMP WHERE session_id = ?",
		sessionID)
	if err != nil {
		return fmt.Errorf("clear promo: %w", err)
	}
	return nil
}
