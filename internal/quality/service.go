// AngelaMos | 2026
// service.go

package quality

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

// AccountChecker reports core.ErrNotFound for an unknown account.
type AccountChecker interface {
	Exists(ctx context.Context, id string) error
}

type Service struct {
	db       *sqlx.DB
	repo     Repository
	accounts AccountChecker
}

func NewService(db *sqlx.DB, repo Repository, accounts AccountChecker) *Service {
	return &Service{db: db, repo: repo, accounts: accounts}
}

func (s *Service) CreateRecord(
	ctx context.Context,
	req CreateRecordRequest,
) (*Record, error) {
	if err := s.accounts.Exists(ctx, req.CompteID); err != nil {
		return nil, fmt.Errorf("quality record account: %w", err)
	}

	rec := req.toRecord(uuid.New().String(), core.Now())
	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *Service) ListRecords(ctx context.Context, compteID string) ([]Record, error) {
	return s.repo.ListRecords(ctx, compteID, core.ListLimit)
}

// DeleteRecord removes the record and its incidents in one transaction.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewRepository(tx)
		if _, err := repo.GetRecord(ctx, id); err != nil {
			return err
		}

		removed, err := repo.DeleteIncidentsForRecord(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeleteRecord(ctx, id); err != nil {
			return err
		}

		slog.DebugContext(ctx, "quality record deleted",
			"record_id", id,
			"incidents", removed,
		)
		return nil
	})
}

// CreateIncident defaults the status to open. A resolved or closed
// incident without closed_at is stamped now; an open one never carries it.
func (s *Service) CreateIncident(
	ctx context.Context,
	req CreateIncidentRequest,
) (*Incident, error) {
	if _, err := s.repo.GetRecord(ctx, req.QualityRecordID); err != nil {
		return nil, fmt.Errorf("incident quality record: %w", err)
	}

	now := core.Now()
	inc := &Incident{
		ID:               uuid.New().String(),
		QualityRecordID:  req.QualityRecordID,
		Type:             req.Type,
		Gravite:          req.Gravite,
		Description:      req.Description,
		Statut:           req.Statut,
		ActionCorrective: core.NullString(req.ActionCorrective),
		CreatedAt:        now,
	}
	if inc.Statut == "" {
		inc.Statut = core.IncidentOpen
	}

	if core.IsIncidentClosed(inc.Statut) {
		inc.ClosedAt = req.ClosedAt.Ptr()
		if inc.ClosedAt == nil {
			inc.ClosedAt = &now
		}
	}

	if err := s.repo.CreateIncident(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}

func (s *Service) ListIncidents(ctx context.Context, recordID string) ([]Incident, error) {
	return s.repo.ListIncidents(ctx, recordID, core.ListLimit)
}

func (s *Service) DeleteIncident(ctx context.Context, id string) error {
	return s.repo.DeleteIncident(ctx, id)
}
