package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// ErrCannotDissolve returned when the company contract is already terminated or not yet active
var ErrCannotDissolve = errors.New("company can't be dissolved")

// CompanyRepository handles visitor company contracts
type CompanyRepository struct {
	db *sqlx.DB
}

type companySQL struct {
	ID        int64     `db:"id"`
	SessionID string    `db:"session_id"`
	Name      string    `db:"name"`
	Number    string    `db:"number"`
	Status    int       `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c companySQL) toDomain() domain.Company {
	return domain.Company{ID: c.ID, Name: c.Name, Number: c.Number, Status: domain.CompanyStatus(c.Status),
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create registers an active company contract, the contract number is derived from its id
func (r *CompanyRepository) Create(ctx context.Context, sessionID, name string) (domain.Company, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Company{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.ExecContext(ctx, "INSERT INTO companies (session_id, name, status) VALUES (?, ?, ?)",
		sessionID, name, int(domain.CompanyActive))
	if err != nil {
		return domain.Company{}, fmt.Errorf("insert company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Company{}, fmt.Errorf("get company id: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE companies SET number = ? WHERE id = ?", fmt.Sprintf("K-%06d", id), id); err != nil {
		return domain.Company{}, fmt.Errorf("set company number: %w", err)
	}
	var row companySQL
	if err := tx.GetContext(ctx, &row, "SELECT * FROM companies WHERE id = ?", id); err != nil {
		return domain.Company{}, fmt.Errorf("get company: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Company{}, fmt.Errorf("commit company: %w", err)
	}
	return row.toDomain(), nil
}

// List returns visitor companies in creation order
func (r *CompanyRepository) List(ctx context.Context, sessionID string) ([]domain.Company, error) {
	var rows []companySQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM companies WHERE session_id = ? ORDER BY id", sessionID); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	res := make([]domain.Company, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// Dissolve terminates the visitor company contract. ErrNotFound if the company
// doesn't belong to the visitor, ErrCannotDissolve if its status doesn't allow it.
func (r *CompanyRepository) Dissolve(ctx context.Context, sessionID string, id int64) (domain.Company, error) {
	var row companySQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM companies WHERE id = ? AND session_id = ?", id, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Company{}, ErrNotFound
	}
	if err != nil {
		return domain.Company{}, fmt.Errorf("get company %d: %w", id, err)
	}
	if !row.toDomain().CanDissolve() {
		return domain.Company{}, fmt.Errorf("company %d is %s: %w", id, row.toDomain().Status, ErrCannotDissolve)
	}

	// status condition guards against a concurrent dissolve
	res, err := r.db.ExecContext(ctx,
		"UPDATE companies SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status IN (?, ?)",
		int(domain.CompanyDissolved), id, int(domain.CompanyActive), int(domain.CompanyInactive))
	if err != nil {
		return domain.Company{}, fmt.Errorf("dissolve company %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Company{}, fmt.Errorf("company %d: %w", id, ErrCannotDissolve)
	}
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM companies WHERE id = ?", id); err != nil {
		return domain.Company{}, fmt.Errorf("get company %d: %w", id, err)
	}
	return row.toDomain(), nil
}
