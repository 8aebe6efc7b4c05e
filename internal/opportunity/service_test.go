// AngelaMos | 2026
// service_test.go

package opportunity_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/account"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/opportunity"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
)

var (
	admin     = policy.Principal{ID: "admin-1", Role: core.RoleAdminDirecteur}
	devIDF    = policy.Principal{ID: "dev-idf", Role: core.RoleDevCoIDF, Region: core.RegionIDF}
	devHDF    = policy.Principal{ID: "dev-hdf", Role: core.RoleDevCoHDF, Region: core.RegionHDF}
	direction = policy.Principal{ID: "dir-1", Role: core.RoleDirectriceClientele, Region: core.RegionIDF}
)

type fixture struct {
	service  *opportunity.Service
	accounts *account.Service
	compteID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	accounts := account.NewService(db.DB, account.NewRepository(db.DB))
	compte, err := accounts.Create(context.Background(), admin, account.CreateAccountRequest{
		RaisonSociale: "Marée du Nord",
		Division:      core.DivisionFreshFood,
		Region:        core.RegionHDF,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	return &fixture{
		service:  opportunity.NewService(opportunity.NewRepository(db.DB), accounts),
		accounts: accounts,
		compteID: compte.ID,
	}
}

func TestCreateDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	opp, err := f.service.Create(ctx, devIDF, opportunity.CreateOpportunityRequest{
		CompteID: f.compteID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if opp.Statut != core.OpportunityProspected {
		t.Fatalf("statut = %q, want %q", opp.Statut, core.OpportunityProspected)
	}
	if opp.CommercialResponsable != devIDF.ID {
		t.Fatalf("commercial_responsable = %q", opp.CommercialResponsable)
	}

	_, err = f.service.Create(ctx, devIDF, opportunity.CreateOpportunityRequest{CompteID: "missing"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Create with unknown account = %v, want ErrNotFound", err)
	}
}

func TestListScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, actor := range []policy.Principal{devIDF, devIDF, devHDF} {
		if _, err := f.service.Create(ctx, actor, opportunity.CreateOpportunityRequest{
			CompteID: f.compteID,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tests := []struct {
		name  string
		actor policy.Principal
		want  int
	}{
		{"devco idf", devIDF, 2},
		{"devco hdf", devHDF, 1},
		{"direction", direction, 3},
		{"admin", admin, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opps, err := f.service.List(ctx, tt.actor, "")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(opps) != tt.want {
				t.Fatalf("got %d opportunities, want %d", len(opps), tt.want)
			}
		})
	}

	opps, err := f.service.List(ctx, admin, "other-account")
	if err != nil {
		t.Fatalf("List by account: %v", err)
	}
	if len(opps) != 0 {
		t.Fatalf("compte_id filter returned %d rows", len(opps))
	}
}

func TestUpdateAndDeleteRequireOwnerOrAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	opp, err := f.service.Create(ctx, devIDF, opportunity.CreateOpportunityRequest{
		CompteID: f.compteID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	montant := 1250.5
	update := opportunity.UpdateOpportunityRequest{
		Statut:  core.OpportunitySigned,
		Details: opportunity.Details{MontantEstime: &montant, Canal: "Salon"},
	}

	if _, err := f.service.Update(ctx, devHDF, opp.ID, update); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("Update by other devco = %v, want ErrForbidden", err)
	}

	updated, err := f.service.Update(ctx, devIDF, opp.ID, update)
	if err != nil {
		t.Fatalf("Update by owner: %v", err)
	}
	if updated.Statut != core.OpportunitySigned || updated.MontantEstime == nil || *updated.MontantEstime != montant {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.CompteID != f.compteID || updated.CommercialResponsable != devIDF.ID {
		t.Fatal("update changed immutable fields")
	}

	if err := f.service.Delete(ctx, devHDF, opp.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("Delete by other devco = %v, want ErrForbidden", err)
	}
	if err := f.service.Delete(ctx, admin, opp.ID); err != nil {
		t.Fatalf("Delete by admin: %v", err)
	}
	if err := f.service.Delete(ctx, admin, opp.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestCreateHandlerAcceptsDateInputs(t *testing.T) {
	f := newFixture(t)

	asDev := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithPrincipal(r.Context(), devIDF)))
		})
	}
	r := chi.NewRouter()
	opportunity.NewHandler(f.service).RegisterRoutes(r, asDev)

	body := `{"compte_id":"` + f.compteID + `","statut":"Négociation",` +
		`"date_premier_contact":"2026-02-10","prochaine_relance":"2026-03-01T09:30:00Z",` +
		`"montant_estime":4200}`
	req := httptest.NewRequest(http.MethodPost, "/opportunites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	opps, err := f.service.List(context.Background(), devIDF, f.compteID)
	if err != nil || len(opps) != 1 {
		t.Fatalf("List = %d, %v", len(opps), err)
	}
	got := opps[0]
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if got.DatePremierContact == nil || !got.DatePremierContact.Equal(want) {
		t.Fatalf("date_premier_contact = %v, want %v", got.DatePremierContact, want)
	}
	if got.Statut != core.OpportunityNegotiation {
		t.Fatalf("statut = %q", got.Statut)
	}

	bad := httptest.NewRequest(http.MethodPost, "/opportunites",
		strings.NewReader(`{"compte_id":"`+f.compteID+`","statut":"Gagné"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, bad)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid statut = %d, want 400", rec.Code)
	}
}
