package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// ProfileRepository handles visitor contact details
type ProfileRepository struct {
	db *sqlx.DB
}

type profileSQL struct {
	SessionID string `db:"session_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Birthday  string `db:"birthday"`
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the visitor profile, ErrNotFound if it was never saved
func (r *ProfileRepository) Get(ctx context.Context, sessionID string) (domain.Profile, error) {
	var row profileSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT session_id, name, email, phone, birthday FROM profiles WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return domain.Profile{Name: row.Name, Email: row.Email, Phone: row.Phone, Birthday: row.Birthday}, nil
}

// Set stores the visitor profile, replacing the previous one
func (r *ProfileRepository) Set(ctx context.Context, sessionID string, p domain.Profile) error {
	row := profileSQL{SessionID: sessionID, Name: p.Name, Email: p.Email, Phone: p.Phone, Birthday: p.Birthday}
	query := `
		INSERT INTO profiles (session_id, name, email, phone, birthday)
		VALUES (:session_id, :name, :email, :phone, :birthday)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			birthday = excluded.birthday,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
