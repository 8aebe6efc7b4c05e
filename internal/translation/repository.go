// AngelaMos | 2026
// repository.go

package translation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	Create(ctx context.Context, k *Key) error
	CreateIfAbsent(ctx context.Context, k *Key) (bool, error)
	GetByID(ctx context.Context, id string) (*Key, error)
	List(ctx context.Context, limit int) ([]Key, error)
	Update(ctx context.Context, k *Key) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, k *Key) error {
	query := `
		INSERT INTO translation_keys (id, "key", value, lang, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		k.ID,
		k.Key,
		k.Value,
		k.Lang,
		k.UpdatedBy,
		k.UpdatedAt,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create translation: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create translation: %w", err)
	}

	return nil
}

// CreateIfAbsent inserts k unless its key already exists for the language.
// It reports whether a row was written.
func (r *repository) CreateIfAbsent(ctx context.Context, k *Key) (bool, error) {
	query := `
		INSERT INTO translation_keys (id, "key", value, lang, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ("key", lang) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		k.ID,
		k.Key,
		k.Value,
		k.Lang,
		k.UpdatedBy,
		k.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("seed translation: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("seed translation: %w", err)
	}

	return n > 0, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Key, error) {
	query := `
		SELECT id, "key", value, lang, updated_by, updated_at
		FROM translation_keys
		WHERE id = $1`

	var k Key
	err := r.db.GetContext(ctx, &k, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get translation: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get translation: %w", err)
	}

	return &k, nil
}

func (r *repository) List(ctx context.Context, limit int) ([]Key, error) {
	query := `
		SELECT id, "key", value, lang, updated_by, updated_at
		FROM translation_keys
		ORDER BY lang, "key"
		LIMIT $1`

	var keys []Key
	if err := r.db.SelectContext(ctx, &keys, query, limit); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	return keys, nil
}

func (r *repository) Update(ctx context.Context, k *Key) error {
	query := `
		UPDATE translation_keys
		SET "key" = $2, value = $3, lang = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		k.ID,
		k.Key,
		k.Value,
		k.Lang,
		k.UpdatedBy,
		k.UpdatedAt,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update translation: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update translation: %w", err)
	}

	return core.RequireAffected(result, "update translation")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translation_keys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}

	return core.RequireAffected(result, "delete translation")
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM translation_keys`); err != nil {
		return 0, fmt.Errorf("count translations: %w", err)
	}

	return count, nil
}
