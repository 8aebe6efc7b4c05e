// AngelaMos | 2026
// revocation.go

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:jti:"

// Revocations is a Redis deny list for signed tokens presented at logout.
// A nil client disables it; lookups fail open on Redis errors.
type Revocations struct {
	redis *redis.Client
}

func NewRevocations(client *redis.Client) *Revocations {
	return &Revocations{redis: client}
}

func (r *Revocations) Enabled() bool {
	return r != nil && r.redis != nil
}

func (r *Revocations) Revoke(
	ctx context.Context,
	jti string,
	until time.Duration,
) error {
	if !r.Enabled() || jti == "" || until <= 0 {
		return nil
	}

	if err := r.redis.Set(ctx, revokedKeyPrefix+jti, "1", until).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *Revocations) IsRevoked(ctx context.Context, jti string) bool {
	if !r.Enabled() || jti == "" {
		return false
	}

	n, err := r.redis.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		slog.WarnContext(ctx, "revocation lookup failed, allowing token",
			"error", err,
		)
		return false
	}
	return n > 0
}
