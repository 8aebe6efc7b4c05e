// AngelaMos | 2026
// revocation_test.go

package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/auth"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

func newRedisClient(t *testing.T, addr string) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestLogoutRevokesSignedTokenUntilExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	f := newFixtureWithRevocations(t, nil, auth.NewRevocations(newRedisClient(t, mr.Addr())))
	ctx := context.Background()

	resp, err := f.service.Register(ctx, auth.RegisterRequest{
		Email: "chloe@als.fr", Password: "password1", Name: "Chloé",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := f.service.Resolve(ctx, resp.Token); err != nil {
		t.Fatalf("Resolve before logout: %v", err)
	}

	if err := f.service.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := f.service.Resolve(ctx, resp.Token); !errors.Is(err, core.ErrTokenRevoked) {
		t.Fatalf("Resolve after logout = %v, want ErrTokenRevoked", err)
	}

	keys := mr.Keys()
	if len(keys) != 1 || !strings.HasPrefix(keys[0], "revoked:jti:") {
		t.Fatalf("redis keys = %v", keys)
	}
	ttl := mr.TTL(keys[0])
	if ttl <= 7*24*time.Hour-time.Minute || ttl > 7*24*time.Hour {
		t.Fatalf("revocation ttl = %v, want token lifetime", ttl)
	}

	mr.FastForward(ttl + time.Second)
	if len(mr.Keys()) != 0 {
		t.Fatal("revocation outlived the token")
	}
}

func TestRevocationsFailOpenWithoutRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	revs := auth.NewRevocations(newRedisClient(t, mr.Addr()))
	ctx := context.Background()

	if err := revs.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if !revs.IsRevoked(ctx, "jti-1") {
		t.Fatal("revoked jti not found")
	}
	if revs.IsRevoked(ctx, "jti-2") {
		t.Fatal("unknown jti reported revoked")
	}

	mr.Close()

	if revs.IsRevoked(ctx, "jti-1") {
		t.Fatal("lookup with redis down must allow the token")
	}
	if err := revs.Revoke(ctx, "jti-3", time.Minute); err == nil {
		t.Fatal("Revoke with redis down returned nil")
	}
}
