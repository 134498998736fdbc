package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// AddressRepository handles visitor delivery addresses
type AddressRepository struct {
	db *sqlx.DB
}

type addressSQL struct {
	SessionID   string          `db:"session_id"`
	FullAddress string          `db:"full_address"`
	Details     string          `db:"details"`
	Lat         sql.NullFloat64 `db:"lat"`
	Lng         sql.NullFloat64 `db:"lng"`
}

// NewAddressRepository creates a new address repository
func NewAddressRepository(db *sqlx.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Set stores the visitor address, replacing the previous one
func (r *AddressRepository) Set(ctx context.Context, sessionID string, addr domain.Address) error {
	row := addressSQL{SessionID: sessionID, FullAddress: addr.FullAddress, Details: addr.Details}
	if addr.Lat != nil && addr.Lng != nil {
		row.Lat = sql.NullFloat64{Float64: *addr.Lat, Valid: true}
		row.Lng = sql.NullFloat64{Float64: *addr.Lng, Valid: true}
	}
	query := `
		INSERT INTO addresses (session_id, full_address, details, lat, lng)
		VALUES (:session_id, :full_address, :details, :lat, :lng)
		ON CONFLICT(session_id) DO UPDATE SET
			full_address = excluded.full_address,
			details = excluded.details,
			lat = excluded.lat,
			lng = excluded.lng,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("set address: %w", err)
	}
	return nil
}

// Get returns the visitor address, ErrNotFound if none was set
func (r *AddressRepository) Get(ctx context.Context, sessionID string) (domain.Address, error) {
	var row addressSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT session_id, full_address, details, lat, lng FROM addresses WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Address{}, ErrNotFound
	}
	if err != nil {
		return domain.Address{}, fmt.Errorf("get address: %w", err)
	}
	res := domain.Address{FullAddress: row.FullAddress, Details: row.Details}
	if row.Lat.Valid && row.Lng.Valid {
		lat, lng := row.Lat.Float64, row.Lng.Float64
		res.Lat, res.Lng = &lat, &lng
	}
	return res, nil
}

// Clear removes the visitor address
func (r *AddressRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM addresses WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("clear address: %w", err)
	}
	return nil
}
