// AngelaMos | 2026
// survey_test.go

package survey_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/survey"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
)

func newService(t *testing.T) *survey.Service {
	t.Helper()
	db := testdb.New(t)
	return survey.NewService(db.DB, survey.NewRepository(db.DB))
}

func intPtr(n int) *int { return &n }

// requireHeader stands in for the session authenticator.
func requireHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			core.Unauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func TestPublicSubmissionProtectedReads(t *testing.T) {
	svc := newService(t)
	r := chi.NewRouter()
	survey.NewHandler(svc).RegisterRoutes(r, requireHeader)

	body := `{"compte_id":"c-1","division":"ALS FRESH FOOD","periode":"2026-S1","note_globale":8}`
	req := httptest.NewRequest(http.MethodPost, "/surveys/responses", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit = %d %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data survey.Response `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	score := `{"response_id":"` + created.Data.ID + `","theme":"Conducteurs","item_key":"ponctualite","score":0}`
	req = httptest.NewRequest(http.MethodPost, "/surveys/scores", strings.NewReader(score))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("score = %d %s", rec.Code, rec.Body.String())
	}

	orphan := `{"response_id":"missing","theme":"Matériel","item_key":"proprete","score":5}`
	req = httptest.NewRequest(http.MethodPost, "/surveys/scores", strings.NewReader(orphan))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("orphan score = %d, want 404", rec.Code)
	}

	outOfRange := `{"compte_id":"c-1","division":"ALS FRESH FOOD","periode":"2026-S1","note_globale":10}`
	req = httptest.NewRequest(http.MethodPost, "/surveys/responses", strings.NewReader(outOfRange))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("note 10 = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/surveys/responses", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list = %d, want 401", rec.Code)
	}

	req.Header.Set("Authorization", "Bearer x")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), created.Data.ID) {
		t.Fatalf("list = %d %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteResponseCascadesScores(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	resp, err := svc.SubmitResponse(ctx, survey.CreateResponseRequest{
		CompteID: "c-1",
		Division: core.DivisionPharma,
		Periode:  "2026-S1",
	})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	other, err := svc.SubmitResponse(ctx, survey.CreateResponseRequest{
		CompteID: "c-2",
		Division: core.DivisionPharma,
		Periode:  "2026-S1",
	})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	for i, responseID := range []string{resp.ID, resp.ID, other.ID} {
		if _, err := svc.SubmitScore(ctx, survey.CreateScoreRequest{
			ResponseID: responseID,
			Theme:      "Tournées",
			ItemKey:    "item",
			Score:      intPtr(i + 5),
		}); err != nil {
			t.Fatalf("SubmitScore: %v", err)
		}
	}

	if err := svc.DeleteResponse(ctx, resp.ID); err != nil {
		t.Fatalf("DeleteResponse: %v", err)
	}

	scores, err := svc.ListScores(ctx, "")
	if err != nil {
		t.Fatalf("ListScores: %v", err)
	}
	if len(scores) != 1 || scores[0].ResponseID != other.ID {
		t.Fatalf("remaining scores = %+v", scores)
	}

	if err := svc.DeleteResponse(ctx, resp.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second DeleteResponse = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteScore(ctx, scores[0].ID); err != nil {
		t.Fatalf("DeleteScore: %v", err)
	}
	if err := svc.DeleteScore(ctx, scores[0].ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second DeleteScore = %v, want ErrNotFound", err)
	}
}
