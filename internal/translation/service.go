// AngelaMos | 2026
// service.go

package translation

import (
	"context"
	"fmt"

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

func (s *Service) List(ctx context.Context) ([]Key, error) {
	return s.repo.List(ctx, core.ListLimit)
}

func (s *Service) Create(
	ctx context.Context,
	actor policy.Principal,
	req CreateKeyRequest,
) (*Key, error) {
	k := &Key{
		ID:        uuid.New().String(),
		Key:       req.Key,
		Value:     req.Value,
		Lang:      req.Lang,
		UpdatedBy: actor.ID,
		UpdatedAt: core.Now(),
	}
	if k.Lang == "" {
		k.Lang = core.LangFR
	}

	if err := s.repo.Create(ctx, k); err != nil {
		return nil, err
	}

	return k, nil
}

func (s *Service) Update(
	ctx context.Context,
	actor policy.Principal,
	id string,
	req UpdateKeyRequest,
) (*Key, error) {
	k, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Key != nil {
		k.Key = *req.Key
	}
	if req.Value != nil {
		k.Value = *req.Value
	}
	if req.Lang != nil {
		k.Lang = *req.Lang
	}
	k.UpdatedBy = actor.ID
	k.UpdatedAt = core.Now()

	if err := s.repo.Update(ctx, k); err != nil {
		return nil, err
	}

	return k, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Init seeds the default labels when no translation exists yet. It never
// touches a populated table, and a key inserted by a concurrent Init is
// skipped rather than reported as a conflict.
func (s *Service) Init(
	ctx context.Context,
	actor policy.Principal,
) (*InitResponse, error) {
	var resp InitResponse

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewRepository(tx)

		existing, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if existing > 0 {
			resp = InitResponse{
				Message: "translations already initialised",
				Count:   existing,
			}
			return nil
		}

		now := core.Now()
		inserted := 0
		for _, label := range defaultLabels {
			created, err := repo.CreateIfAbsent(ctx, &Key{
				ID:        uuid.New().String(),
				Key:       label.Key,
				Value:     label.Value,
				Lang:      core.LangFR,
				UpdatedBy: actor.ID,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("seed %s: %w", label.Key, err)
			}
			if created {
				inserted++
			}
		}

		resp = InitResponse{
			Message:  fmt.Sprintf("%d translations initialised", inserted),
			Count:    len(defaultLabels),
			Inserted: inserted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
