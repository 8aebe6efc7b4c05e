// AngelaMos | 2026
// repository.go

package quality

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	CreateRecord(ctx context.Context, rec *Record) error
	GetRecord(ctx context.Context, id string) (*Record, error)
	ListRecords(ctx context.Context, compteID string, limit int) ([]Record, error)
	DeleteRecord(ctx context.Context, id string) error

	CreateIncident(ctx context.Context, inc *Incident) error
	ListIncidents(ctx context.Context, recordID string, limit int) ([]Incident, error)
	DeleteIncident(ctx context.Context, id string) error
	DeleteIncidentsForRecord(ctx context.Context, recordID string) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const recordColumns = `id, compte_id, division, region, periode, type_prestation,
		       taux_service, nb_incidents, score_satisfaction, commentaires, created_at`

const incidentColumns = `id, quality_record_id, type, gravite, description, statut,
		       action_corrective, closed_at, created_at`

func (r *repository) CreateRecord(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO quality_records (
			id, compte_id, division, region, periode, type_prestation,
			taux_service, nb_incidents, score_satisfaction, commentaires, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.CompteID,
		rec.Division,
		rec.Region,
		rec.Periode,
		rec.TypePrestation,
		rec.TauxService,
		rec.NbIncidents,
		rec.ScoreSatisfaction,
		rec.Commentaires,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create quality record: %w", err)
	}

	return nil
}

func (r *repository) GetRecord(ctx context.Context, id string) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM quality_records WHERE id = $1`

	var rec Record
	err := r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get quality record: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quality record: %w", err)
	}

	return &rec, nil
}

func (r *repository) ListRecords(
	ctx context.Context,
	compteID string,
	limit int,
) ([]Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM quality_records
		WHERE ($1 = '' OR compte_id = $1)
		ORDER BY created_at, id
		LIMIT $2`

	var records []Record
	if err := r.db.SelectContext(ctx, &records, query, compteID, limit); err != nil {
		return nil, fmt.Errorf("list quality records: %w", err)
	}

	return records, nil
}

func (r *repository) DeleteRecord(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quality_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quality record: %w", err)
	}

	return core.RequireAffected(result, "delete quality record")
}

func (r *repository) CreateIncident(ctx context.Context, inc *Incident) error {
	query := `
		INSERT INTO incidents (
			id, quality_record_id, type, gravite, description, statut,
			action_corrective, closed_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		inc.ID,
		inc.QualityRecordID,
		inc.Type,
		inc.Gravite,
		inc.Description,
		inc.Statut,
		inc.ActionCorrective,
		inc.ClosedAt,
		inc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create incident: %w", err)
	}

	return nil
}

func (r *repository) ListIncidents(
	ctx context.Context,
	recordID string,
	limit int,
) ([]Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($1 = '' OR quality_record_id = $1)
		ORDER BY created_at, id
		LIMIT $2`

	var incidents []Incident
	if err := r.db.SelectContext(ctx, &incidents, query, recordID, limit); err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}

	return incidents, nil
}

func (r *repository) DeleteIncident(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}

	return core.RequireAffected(result, "delete incident")
}

func (r *repository) DeleteIncidentsForRecord(
	ctx context.Context,
	recordID string,
) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM incidents WHERE quality_record_id = $1`, recordID)
	if err != nil {
		return 0, fmt.Errorf("delete record incidents: %w", err)
	}

	return result.RowsAffected()
}
