package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/storefront/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// GetSettings returns all stored settings
func (r *SettingRepository) GetSettings(ctx context.Context) ([]domain.Setting, error) {
	var rows []struct {
		Key       string    `db:"key"`
		Value     string    `db:"value"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT key, value, updated_at FROM settings ORDER BY key"); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	res := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Setting{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt})
	}
	return res, nil
}

// LastSync returns time and product count of the last catalog sync, zero time if never synced
func (r *SettingRepository) LastSync(ctx context.Context) (time.Time, int, error) {
	ts, err := r.GetSetting(ctx, domain.SettingLastSync)
	if err != nil || ts == "" {
		return time.Time{}, 0, err
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("parse last sync time %q: %w", ts, err)
	}
	cnt, err := r.GetSetting(ctx, domain.SettingLastSyncCount)
	if err != nil {
		return t, 0, err
	}
	n, _ := strconv.Atoi(cnt)
	return t, n, nil
}

// SetLastSync records a completed catalog sync
func (r *SettingRepository) SetLastSync(ctx context.Context, t time.Time, count int) error {
	if err := r.SetSetting(ctx, domain.SettingLastSync, t.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return r.SetSetting(ctx, domain.SettingLastSyncCount, strconv.Itoa(count))
}
