// AngelaMos | 2026
// service_test.go

package translation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/translation"
)

const seededLabels = 52

var admin = policy.Principal{ID: "admin-1", Role: core.RoleAdminDirecteur}

func newService(t *testing.T) *translation.Service {
	t.Helper()
	db := testdb.New(t)
	return translation.NewService(db.DB, translation.NewRepository(db.DB))
}

func TestInitIsIdempotent(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Init(ctx, admin)
	if err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if first.Inserted != seededLabels || first.Count != seededLabels {
		t.Fatalf("first Init = %+v", first)
	}

	second, err := svc.Init(ctx, admin)
	if err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if second.Inserted != 0 || second.Count != seededLabels {
		t.Fatalf("second Init = %+v", second)
	}

	keys, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != seededLabels {
		t.Fatalf("stored %d keys, want %d", len(keys), seededLabels)
	}
	for _, k := range keys {
		if k.Lang != core.LangFR || k.UpdatedBy != admin.ID {
			t.Fatalf("seeded key = %+v", k)
		}
	}
}

func TestInitSkipsPopulatedTable(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, admin, translation.CreateKeyRequest{
		Key: "custom.title", Value: "Titre", Lang: core.LangEN,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.Init(ctx, admin)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if resp.Inserted != 0 || resp.Count != 1 {
		t.Fatalf("Init = %+v", resp)
	}
}

func TestCreateAndUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	k, err := svc.Create(ctx, admin, translation.CreateKeyRequest{Key: "nav.home", Value: "Accueil"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if k.Lang != core.LangFR {
		t.Fatalf("default lang = %q", k.Lang)
	}

	_, err = svc.Create(ctx, admin, translation.CreateKeyRequest{Key: "nav.home", Value: "Maison"})
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("duplicate key/lang = %v, want ErrDuplicateKey", err)
	}
	if _, err := svc.Create(ctx, admin, translation.CreateKeyRequest{
		Key: "nav.home", Value: "Home", Lang: core.LangEN,
	}); err != nil {
		t.Fatalf("same key other lang: %v", err)
	}

	editor := policy.Principal{ID: "admin-2", Role: core.RoleAdminDirecteur}
	value := "Page d'accueil"
	updated, err := svc.Update(ctx, editor, k.ID, translation.UpdateKeyRequest{Value: &value})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Value != value || updated.Key != "nav.home" || updated.UpdatedBy != editor.ID {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.UpdatedAt.Before(k.UpdatedAt) {
		t.Fatal("updated_at not refreshed")
	}

	if _, err := svc.Update(ctx, editor, "missing", translation.UpdateKeyRequest{Value: &value}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update missing = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, k.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, k.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestRoutesRequireAdmin(t *testing.T) {
	svc := newService(t)

	as := func(p policy.Principal) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithPrincipal(r.Context(), p)))
			})
		}
	}

	tests := []struct {
		name  string
		actor policy.Principal
		want  int
	}{
		{"admin", admin, http.StatusOK},
		{"direction", policy.Principal{ID: "d", Role: core.RoleDirectriceClientele}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			translation.NewHandler(svc).RegisterAdminRoutes(r, as(tt.actor))

			req := httptest.NewRequest(http.MethodGet, "/admin/translations/init", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	r := chi.NewRouter()
	translation.NewHandler(svc).RegisterAdminRoutes(r, as(admin))
	body := `{"key":"app.title","value":"Autre titre"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/translations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
}

func TestCreateIfAbsentSkipsExistingKey(t *testing.T) {
	db := testdb.New(t)
	repo := translation.NewRepository(db.DB)
	ctx := context.Background()

	key := func(id, value string) *translation.Key {
		return &translation.Key{
			ID: id, Key: "nav.comptes", Value: value, Lang: core.LangFR,
			UpdatedBy: admin.ID, UpdatedAt: core.Now(),
		}
	}

	created, err := repo.CreateIfAbsent(ctx, key("k-1", "Clients / Prospects"))
	if err != nil || !created {
		t.Fatalf("first CreateIfAbsent = %v, %v", created, err)
	}
	created, err = repo.CreateIfAbsent(ctx, key("k-2", "Comptes"))
	if err != nil || created {
		t.Fatalf("second CreateIfAbsent = %v, %v, want skipped", created, err)
	}

	stored, err := repo.GetByID(ctx, "k-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Value != "Clients / Prospects" {
		t.Fatalf("value overwritten to %q", stored.Value)
	}
}

func TestInitConcurrentCalls(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
		errs     []error
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.Init(ctx, admin)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			inserted += resp.Inserted
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("concurrent Init errors: %v", errs)
	}
	if inserted != seededLabels {
		t.Fatalf("inserted %d labels in total, want %d", inserted, seededLabels)
	}
}
