package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// ProductRepository handles product-related database operations
type ProductRepository struct {
	db *sqlx.DB
}

// productSQL represents a product for SQL operations
type productSQL struct {
	ID                 int64      `db:"id"`
	Name               string     `db:"name"`
	Description        string     `db:"description"`
	Image              string     `db:"image"`
	DiscountPercentage float64    `db:"discount_percentage"`
	Unit               string     `db:"unit"`
	Brand              string     `db:"brand"`
	CategoryID         string     `db:"category_id"`
	Sizes              sizesSQL   `db:"sizes"`
	Options            optionsSQL `db:"options"`
	Price              float64    `db:"price"`
	Popularity         int64      `db:"popularity"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// sizesSQL is a JSON array of product sizes for SQL operations
type sizesSQL []domain.ProductSize

// Value implements driver.Valuer for database storage
func (s sizesSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (s *sizesSQL) Scan(value any) error {
	return scanJSON(value, s)
}

// optionsSQL is a JSON array of product options for SQL operations
type optionsSQL []domain.ProductOption

// Value implements driver.Valuer for database storage
func (o optionsSQL) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (o *optionsSQL) Scan(value any) error {
	return scanJSON(value, o)
}

func scanJSON(value, dest any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// UpsertProducts inserts new products and refreshes existing ones.
// Creation time and popularity of existing products are kept.
func (r *ProductRepository) UpsertProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO products (
			id, name, description, image, discount_percentage, unit, brand,
			category_id, sizes, options, price
		) VALUES (
			:id, :name, :description, :image, :discount_percentage, :unit, :brand,
			:category_id, :sizes, :options, :price
		)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			image = excluded.image,
			discount_percentage = excluded.discount_percentage,
			unit = excluded.unit,
			brand = excluded.brand,
			category_id = CASE WHEN excluded.category_id = '' THEN products.category_id ELSE excluded.category_id END,
			sizes = excluded.sizes,
			options = excluded.options,
			price = excluded.price,
			updated_at = CURRENT_TIMESTAMP
	`

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

		for _, p := range products {
			if _, err := tx.NamedExecContext(ctx, query, toProductSQL(p)); err != nil {
				if isLockError(err) {
					return err // repeater will retry this
				}
				return &criticalError{err: fmt.Errorf("upsert product %d: %w", p.ID, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit products: %w", err)}
		}
		return nil
	})
}

// GetProduct retrieves a product by ID
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p productSQL
	err := r.db.GetContext(ctx, &p, "SELECT * FROM products WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	res := p.toDomain()
	return &res, nil
}

// FetchPage lists one page of stored products, ordered and filtered the same way the remote catalog does
func (r *ProductRepository) FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption,
	categoryID, search string) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		return []domain.Product{}, nil
	}

	var where []string
	var args []any
	if categoryID != "" && categoryID != domain.CategoryAll {
		where = append(where, "category_id = ?")
		args = append(args, categoryID)
	}
	if search = strings.TrimSpace(search); search != "" {
		where = append(where, "(name LIKE ? ESCAPE '\\' OR brand LIKE ? ESCAPE '\\')")
		pattern := "%" + escapeLike(search) + "%"
		args = append(args, pattern, pattern)
	}

	query := "SELECT * FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + orderBy(sort) + " LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	var rows []productSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("fetch products page %d: %w", page, err)
	}

	res := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// Newest returns the most recently added products
func (r *ProductRepository) Newest(ctx context.Context, limit int) ([]domain.Product, error) {
	return r.FetchPage(ctx, 1, limit, domain.SortNewest, domain.CategoryAll, "")
}

// BumpPopularity increases product popularity, used when products are added to carts
func (r *ProductRepository) BumpPopularity(ctx context.Context, id int64, delta int) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE products SET popularity = popularity + ? WHERE id = ?", delta, id); err != nil {
		return fmt.Errorf("bump popularity of %d: %w", id, err)
	}
	return nil
}

// Count returns the number of stored products
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func orderBy(sort domain.SortOption) string {
	switch sort {
	case domain.SortPriceAsc:
		return "price ASC, id ASC"
	case domain.SortPriceDesc:
		return "price DESC, id ASC"
	case domain.SortNewest:
		return "created_at DESC, id DESC"
	case domain.SortOldest:
		return "created_at ASC, id ASC"
	default:
		return "popularity DESC, id ASC"
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func toProductSQL(p domain.Product) productSQL {
	return productSQL{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Image:              p.Image,
		DiscountPercentage: p.DiscountPercentage,
		Unit:               p.Unit,
		Brand:              p.Brand,
		CategoryID:         p.CategoryID,
		Sizes:              sizesSQL(p.Sizes),
		Options:            optionsSQL(p.Options),
		Price:              p.Price(),
	}
}

func (p productSQL) toDomain() domain.Product {
	return domain.Product{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Image:              p.Image,
		DiscountPercentage: p.DiscountPercentage,
		Unit:               p.Unit,
		Brand:              p.Brand,
		CategoryID:         p.CategoryID,
		Sizes:              []domain.ProductSize(p.Sizes),
		Options:            []domain.ProductOption(p.Options),
		CreatedAt:          p.CreatedAt,
	}
}
