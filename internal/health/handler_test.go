// AngelaMos | 2026
// handler_test.go

package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/health"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(h *health.Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadiness(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name       string
		db         health.Checker
		redis      health.Checker
		wantCode   int
		wantStatus string
		wantChecks int
	}{
		{"db only", pinger{}, nil, http.StatusOK, "ok", 1},
		{"db and redis", pinger{}, pinger{}, http.StatusOK, "ok", 2},
		{"redis down", pinger{}, pinger{err: down}, http.StatusOK, "degraded", 2},
		{"db down", pinger{err: down}, pinger{}, http.StatusServiceUnavailable, "unavailable", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(health.NewHandler(tt.db, tt.redis), "/readyz")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var body health.ReadinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantStatus || len(body.Checks) != tt.wantChecks {
				t.Fatalf("body = %+v", body)
			}
		})
	}
}

func TestShutdownFailsProbes(t *testing.T) {
	h := health.NewHandler(pinger{}, nil)

	if rec := serve(h, "/livez"); rec.Code != http.StatusOK {
		t.Fatalf("livez = %d", rec.Code)
	}

	h.SetShutdown(true)
	for _, path := range []string{"/healthz", "/livez", "/readyz"} {
		if rec := serve(h, path); rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s during shutdown = %d, want 503", path, rec.Code)
		}
	}
}
