// AngelaMos | 2026
// service_test.go

package dashboard_test

import (
	"context"
	"testing"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/dashboard"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/testdb"
)

func exec(t *testing.T, db *core.Database, query string, args ...any) {
	t.Helper()
	if _, err := db.DB.ExecContext(context.Background(), query, args...); err != nil {
		t.Fatalf("exec: %v", err)
	}
}

func TestEmptyStats(t *testing.T) {
	db := testdb.New(t)
	svc := dashboard.NewService(dashboard.NewRepository(db.DB))

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Commercial != (dashboard.CommercialStats{}) || stats.Qualite != (dashboard.QualityStats{}) {
		t.Fatalf("stats on empty store = %+v", stats)
	}
}

func TestStatsAggregates(t *testing.T) {
	db := testdb.New(t)
	svc := dashboard.NewService(dashboard.NewRepository(db.DB))
	now := core.Now()

	exec(t, db, `INSERT INTO comptes (id, raison_sociale, division, region, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		"c-1", "Primeurs", core.DivisionFreshFood, core.RegionIDF, "u-1", now)

	opportunities := []struct {
		id      string
		statut  string
		montant any
	}{
		{"o-1", core.OpportunitySigned, 1000.0},
		{"o-2", core.OpportunitySigned, 2500.0},
		{"o-3", core.OpportunityLost, 500.0},
		{"o-4", core.OpportunitySigned, nil},
	}
	for _, o := range opportunities {
		exec(t, db, `INSERT INTO opportunites
			(id, compte_id, commercial_responsable, statut, montant_estime, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			o.id, "c-1", "u-1", o.statut, o.montant, now)
	}

	scores := []struct {
		id    string
		score any
	}{
		{"q-1", 8.0},
		{"q-2", 6.0},
		{"q-3", nil},
	}
	for _, q := range scores {
		exec(t, db, `INSERT INTO quality_records
			(id, compte_id, division, region, periode, score_satisfaction, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			q.id, "c-1", core.DivisionFreshFood, core.RegionIDF, "2026-01", q.score, now)
	}

	for i, statut := range []string{core.IncidentOpen, core.IncidentOpen, core.IncidentClosed} {
		exec(t, db, `INSERT INTO incidents
			(id, quality_record_id, type, gravite, description, statut, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			string(rune('a'+i)), "q-1", "Retard", core.GraviteLow, "x", statut, now)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	wantCommercial := dashboard.CommercialStats{
		TotalComptes:        1,
		TotalOpportunites:   4,
		OpportunitesSignees: 3,
		CaSigne:             3500,
	}
	if stats.Commercial != wantCommercial {
		t.Fatalf("commercial = %+v, want %+v", stats.Commercial, wantCommercial)
	}

	wantQuality := dashboard.QualityStats{
		TotalQualityRecords:    3,
		TotalIncidents:         3,
		IncidentsOuverts:       2,
		ScoreSatisfactionMoyen: 7.0,
	}
	if stats.Qualite != wantQuality {
		t.Fatalf("qualite = %+v, want %+v", stats.Qualite, wantQuality)
	}

	counts, err := svc.TableCounts(context.Background())
	if err != nil {
		t.Fatalf("TableCounts: %v", err)
	}
	if counts["opportunites"] != 4 || counts["users"] != 0 {
		t.Fatalf("counts = %v", counts)
	}
}

func TestRounding(t *testing.T) {
	db := testdb.New(t)
	svc := dashboard.NewService(dashboard.NewRepository(db.DB))
	now := core.Now()

	exec(t, db, `INSERT INTO comptes (id, raison_sociale, division, region, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		"c-1", "Pharma", core.DivisionPharma, core.RegionHDF, "u-1", now)

	for i, montant := range []float64{100.125, 0.004} {
		exec(t, db, `INSERT INTO opportunites
			(id, compte_id, commercial_responsable, statut, montant_estime, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			string(rune('a'+i)), "c-1", "u-1", core.OpportunitySigned, montant, now)
	}
	for i, score := range []float64{7, 8, 8} {
		exec(t, db, `INSERT INTO quality_records
			(id, compte_id, division, region, periode, score_satisfaction, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			string(rune('a'+i)), "c-1", core.DivisionPharma, core.RegionHDF, "2026-02", score, now)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Commercial.CaSigne != 100.13 {
		t.Fatalf("ca_signe = %v, want 100.13", stats.Commercial.CaSigne)
	}
	if stats.Qualite.ScoreSatisfactionMoyen != 7.7 {
		t.Fatalf("score_satisfaction_moyen = %v, want 7.7", stats.Qualite.ScoreSatisfactionMoyen)
	}
}
