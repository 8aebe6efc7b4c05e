// AngelaMos | 2026
// ratelimit_internal_test.go

package middleware

import (
	"testing"
	"time"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
)

func TestLocalLimiterSweep(t *testing.T) {
	l := newLocalLimiter()
	defer l.stop()

	limit := FromConfig(config.RateLimitConfig{Requests: 10, Window: time.Minute})
	for _, key := range []string{"stale", "fresh"} {
		if _, err := l.allow(key, limit); err != nil {
			t.Fatalf("allow %s: %v", key, err)
		}
	}

	v, _ := l.limiters.Load("stale")
	v.(*limiterEntry).lastAccess.Store(time.Now().Add(-time.Hour).Unix())

	l.sweep(time.Now().Add(-entryTTL).Unix())

	if _, ok := l.limiters.Load("stale"); ok {
		t.Fatal("stale entry survived sweep")
	}
	if _, ok := l.limiters.Load("fresh"); !ok {
		t.Fatal("fresh entry removed by sweep")
	}
}
