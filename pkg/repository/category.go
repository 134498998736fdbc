package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// CategoryRepository handles category-related database operations
type CategoryRepository struct {
	db *sqlx.DB
}

// categorySQL represents a category for SQL operations
type categorySQL struct {
	ID        string    `db:"id"`
	ParentID  string    `db:"parent_id"`
	Name      string    `db:"name"`
	Position  string    `db:"position"`
	IconURL   string    `db:"icon_url"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ReplaceCategories stores the category tree, dropping categories not present in it
func (r *CategoryRepository) ReplaceCategories(ctx context.Context, tree []domain.Category) error {
	var rows []categorySQL
	var walk func(parent string, cats []domain.Category)
	walk = func(parent string, cats []domain.Category) {
		for _, c := range cats {
			rows = append(rows, categorySQL{ID: c.ID, ParentID: parent, Name: c.Name, Position: c.Position, IconURL: c.IconURL})
			walk(c.ID, c.Children)
		}
	}
	walk("", tree)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "DELETE FROM categories"); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("clear categories: %w", err)}
		}
		for _, row := range rows {
			_, err := tx.NamedExecContext(ctx, `
				INSERT INTO categories (id, parent_id, name, position, icon_url)
				VALUES (:id, :parent_id, :name, :position, :icon_url)
				ON CONFLICT(id) DO NOTHING`, row)
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert category %s: %w", row.ID, err)}
			}
		}
		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit categories: %w", err)}
		}
		return nil
	})
}

// GetCategories returns the stored category tree, ordered by position
func (r *CategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categorySQL
	query := "SELECT * FROM categories ORDER BY CAST(position AS INTEGER), position, name"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	children := make(map[string][]categorySQL)
	for _, row := range rows {
		children[row.ParentID] = append(children[row.ParentID], row)
	}
	var build func(parent string) []domain.Category
	build = func(parent string) []domain.Category {
		var res []domain.Category
		for _, row := range children[parent] {
			res = append(res, domain.Category{
				ID:       row.ID,
				Name:     row.Name,
				Position: row.Position,
				IconURL:  row.IconURL,
				Children: build(row.ID),
			})
		}
		return res
	}
	return build(""), nil
}
