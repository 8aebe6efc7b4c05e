// AngelaMos | 2026
// repository.go

package survey

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	CreateResponse(ctx context.Context, resp *Response) error
	GetResponse(ctx context.Context, id string) (*Response, error)
	ListResponses(ctx context.Context, limit int) ([]Response, error)
	DeleteResponse(ctx context.Context, id string) error

	CreateScore(ctx context.Context, score *Score) error
	ListScores(ctx context.Context, responseID string, limit int) ([]Score, error)
	DeleteScore(ctx context.Context, id string) error
	DeleteScoresForResponse(ctx context.Context, responseID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const responseColumns = `id, compte_id, division, periode, note_globale, commentaires, submitted_at`

func (r *repository) CreateResponse(ctx context.Context, resp *Response) error {
	query := `
		INSERT INTO survey_responses (
			id, compte_id, division, periode, note_globale, commentaires, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		resp.ID,
		resp.CompteID,
		resp.Division,
		resp.Periode,
		resp.NoteGlobale,
		resp.Commentaires,
		resp.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("create survey response: %w", err)
	}

	return nil
}

func (r *repository) GetResponse(ctx context.Context, id string) (*Response, error) {
	query := `SELECT ` + responseColumns + ` FROM survey_responses WHERE id = $1`

	var resp Response
	err := r.db.GetContext(ctx, &resp, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get survey response: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get survey response: %w", err)
	}

	return &resp, nil
}

func (r *repository) ListResponses(ctx context.Context, limit int) ([]Response, error) {
	query := `SELECT ` + responseColumns + `
		FROM survey_responses
		ORDER BY submitted_at, id
		LIMIT $1`

	var responses []Response
	if err := r.db.SelectContext(ctx, &responses, query, limit); err != nil {
		return nil, fmt.Errorf("list survey responses: %w", err)
	}

	return responses, nil
}

func (r *repository) DeleteResponse(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM survey_responses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete survey response: %w", err)
	}

	return core.RequireAffected(result, "delete survey response")
}

func (r *repository) CreateScore(ctx context.Context, score *Score) error {
	query := `
		INSERT INTO survey_scores (id, response_id, theme, item_key, score)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		score.ID,
		score.ResponseID,
		score.Theme,
		score.ItemKey,
		score.Score,
	)
	if err != nil {
		return fmt.Errorf("create survey score: %w", err)
	}

	return nil
}

func (r *repository) ListScores(
	ctx context.Context,
	responseID string,
	limit int,
) ([]Score, error) {
	query := `
		SELECT id, response_id, theme, item_key, score
		FROM survey_scores
		WHERE ($1 = '' OR response_id = $1)
		ORDER BY response_id, theme, item_key
		LIMIT $2`

	var scores []Score
	if err := r.db.SelectContext(ctx, &scores, query, responseID, limit); err != nil {
		return nil, fmt.Errorf("list survey scores: %w", err)
	}

	return scores, nil
}

func (r *repository) DeleteScore(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM survey_scores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete survey score: %w", err)
	}

	return core.RequireAffected(result, "delete survey score")
}

func (r *repository) DeleteScoresForResponse(ctx context.Context, responseID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM survey_scores WHERE response_id = $1`, responseID)
	if err != nil {
		return fmt.Errorf("delete response scores: %w", err)
	}

	return nil
}
