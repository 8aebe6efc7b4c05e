// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	Create(ctx context.Context, session *Session) error
	FindActive(
		ctx context.Context,
		tokenHash string,
		now time.Time,
	) (*Session, error)
	RevokeByToken(ctx context.Context, tokenHash string) (int64, error)
	DeleteForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO user_sessions (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt.UTC(),
		session.CreatedAt.UTC(),
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("create session: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// FindActive only matches sessions whose expiry is strictly after now.
func (r *repository) FindActive(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (*Session, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM user_sessions
		WHERE token_hash = $1 AND expires_at > $2`

	var session Session
	err := r.db.GetContext(ctx, &session, query, tokenHash, now.UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *repository) RevokeByToken(
	ctx context.Context,
	tokenHash string,
) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_sessions WHERE token_hash = $1`,
		tokenHash,
	)
	if err != nil {
		return 0, fmt.Errorf("revoke session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("revoke session: %w", err)
	}
	return n, nil
}

func (r *repository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_sessions WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

func (r *repository) DeleteExpired(
	ctx context.Context,
	before time.Time,
) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_sessions WHERE expires_at <= $1`,
		before.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}
