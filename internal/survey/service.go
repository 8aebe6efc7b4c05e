// AngelaMos | 2026
// service.go

package survey

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

func (s *Service) SubmitResponse(
	ctx context.Context,
	req CreateResponseRequest,
) (*Response, error) {
	resp := &Response{
		ID:           uuid.New().String(),
		CompteID:     req.CompteID,
		Division:     req.Division,
		Periode:      req.Periode,
		NoteGlobale:  req.NoteGlobale,
		Commentaires: core.NullString(req.Commentaires),
		SubmittedAt:  core.Now(),
	}

	if err := s.repo.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// SubmitScore attaches a score to an existing response.
func (s *Service) SubmitScore(
	ctx context.Context,
	req CreateScoreRequest,
) (*Score, error) {
	if _, err := s.repo.GetResponse(ctx, req.ResponseID); err != nil {
		return nil, fmt.Errorf("survey score response: %w", err)
	}

	score := &Score{
		ID:         uuid.New().String(),
		ResponseID: req.ResponseID,
		Theme:      req.Theme,
		ItemKey:    req.ItemKey,
		Score:      *req.Score,
	}

	if err := s.repo.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	return score, nil
}

func (s *Service) ListResponses(ctx context.Context) ([]Response, error) {
	return s.repo.ListResponses(ctx, core.ListLimit)
}

func (s *Service) ListScores(ctx context.Context, responseID string) ([]Score, error) {
	return s.repo.ListScores(ctx, responseID, core.ListLimit)
}

// DeleteResponse removes the response and its scores in one transaction.
func (s *Service) DeleteResponse(ctx context.Context, id string) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		repo := NewRepository(tx)
		if _, err := repo.GetResponse(ctx, id); err != nil {
			return err
		}
		if err := repo.DeleteScoresForResponse(ctx, id); err != nil {
			return err
		}
		return repo.DeleteResponse(ctx, id)
	})
}

func (s *Service) DeleteScore(ctx context.Context, id string) error {
	return s.repo.DeleteScore(ctx, id)
}
