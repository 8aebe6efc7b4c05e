// AngelaMos | 2026
// repository.go

package dashboard

import (
	"context"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	Commercial(ctx context.Context) (CommercialStats, error)
	Quality(ctx context.Context) (QualityStats, error)
	TableCounts(ctx context.Context) (map[string]int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Commercial(ctx context.Context) (CommercialStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM comptes) AS total_comptes,
			(SELECT COUNT(*) FROM opportunites) AS total_opportunites,
			(SELECT COUNT(*) FROM opportunites WHERE statut = $1) AS opportunites_signees,
			(SELECT COALESCE(SUM(COALESCE(montant_estime, 0)), 0)
			   FROM opportunites WHERE statut = $1) AS ca_signe`

	var stats CommercialStats
	if err := r.db.GetContext(ctx, &stats, query, core.OpportunitySigned); err != nil {
		return CommercialStats{}, fmt.Errorf("commercial stats: %w", err)
	}

	return stats, nil
}

// Quality averages satisfaction over the records that carry a score.
func (r *repository) Quality(ctx context.Context) (QualityStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM quality_records) AS total_quality_records,
			(SELECT COUNT(*) FROM incidents) AS total_incidents,
			(SELECT COUNT(*) FROM incidents WHERE statut = $1) AS incidents_ouverts,
			(SELECT COALESCE(AVG(score_satisfaction), 0)
			   FROM quality_records) AS score_satisfaction_moyen`

	var stats QualityStats
	if err := r.db.GetContext(ctx, &stats, query, core.IncidentOpen); err != nil {
		return QualityStats{}, fmt.Errorf("quality stats: %w", err)
	}

	return stats, nil
}

var countedTables = []string{
	"users",
	"user_sessions",
	"comptes",
	"opportunites",
	"quality_records",
	"incidents",
	"survey_responses",
	"survey_scores",
	"translation_keys",
}

// TableCounts returns the row count of every application table.
func (r *repository) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(countedTables))

	for _, table := range countedTables {
		var n int
		if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}

	return counts, nil
}
