// AngelaMos | 2026
// service.go

package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	actor policy.Principal,
	req CreateAccountRequest,
) (*Account, error) {
	account := req.toAccount(uuid.New().String(), actor.ID)

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// List returns the accounts the principal may see, restricted to their
// region unless their role is region-wide.
func (s *Service) List(
	ctx context.Context,
	actor policy.Principal,
) ([]Account, error) {
	return s.repo.List(ctx, Filter{Region: policy.AccountRegion(actor)}, core.ListLimit)
}

func (s *Service) Get(
	ctx context.Context,
	actor policy.Principal,
	id string,
) (*Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanViewAccount(actor, account.Region); err != nil {
		return nil, err
	}

	return account, nil
}

// Exists reports core.ErrNotFound for an unknown account id.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.repo.GetByID(ctx, id)
	return err
}

// Delete removes the account with its opportunities, quality records and
// their incidents in one transaction. The region check runs inside it.
func (s *Service) Delete(
	ctx context.Context,
	actor policy.Principal,
	id string,
) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewRepository(tx)
		account, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := policy.CanModifyAccount(actor, account.Region); err != nil {
			return err
		}
		if err := repo.DeleteDependents(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}
