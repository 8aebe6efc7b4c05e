// AngelaMos | 2026
// service.go

package opportunity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

// AccountChecker reports core.ErrNotFound for an unknown account.
type AccountChecker interface {
	Exists(ctx context.Context, id string) error
}

type Service struct {
	repo     Repository
	accounts AccountChecker
}

func NewService(repo Repository, accounts AccountChecker) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// Create makes the caller the responsible commercial.
func (s *Service) Create(
	ctx context.Context,
	actor policy.Principal,
	req CreateOpportunityRequest,
) (*Opportunity, error) {
	if err := s.accounts.Exists(ctx, req.CompteID); err != nil {
		return nil, fmt.Errorf("opportunity account: %w", err)
	}

	opp := &Opportunity{
		ID:                    uuid.New().String(),
		CompteID:              req.CompteID,
		CommercialResponsable: actor.ID,
		Statut:                req.Statut,
		CreatedAt:             core.Now(),
	}
	if opp.Statut == "" {
		opp.Statut = core.OpportunityProspected
	}
	req.Details.applyTo(opp)

	if err := s.repo.Create(ctx, opp); err != nil {
		return nil, err
	}

	return opp, nil
}

func (s *Service) List(
	ctx context.Context,
	actor policy.Principal,
	compteID string,
) ([]Opportunity, error) {
	f := Filter{
		Owner:    policy.OpportunityOwner(actor),
		CompteID: compteID,
	}
	return s.repo.List(ctx, f, core.ListLimit)
}

func (s *Service) Update(
	ctx context.Context,
	actor policy.Principal,
	id string,
	req UpdateOpportunityRequest,
) (*Opportunity, error) {
	opp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanModifyOpportunity(actor, opp.CommercialResponsable); err != nil {
		return nil, err
	}

	opp.Statut = req.Statut
	req.Details.applyTo(opp)

	if err := s.repo.Update(ctx, opp); err != nil {
		return nil, err
	}

	return opp, nil
}

func (s *Service) Delete(
	ctx context.Context,
	actor policy.Principal,
	id string,
) error {
	opp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.CanModifyOpportunity(actor, opp.CommercialResponsable); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
