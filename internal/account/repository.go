// AngelaMos | 2026
// repository.go

package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, f Filter, limit int) ([]Account, error)
	Delete(ctx context.Context, id string) error
	DeleteDependents(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const accountColumns = `id, raison_sociale, division, adresse, ville, code_postal,
		       region, secteur, taille, contact_nom, contact_poste,
		       contact_email, contact_telephone, source, created_by, created_at`

func (r *repository) Create(ctx context.Context, a *Account) error {
	query := `
		INSERT INTO comptes (
			id, raison_sociale, division, adresse, ville, code_postal,
			region, secteur, taille, contact_nom, contact_poste,
			contact_email, contact_telephone, source, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.RaisonSociale,
		a.Division,
		a.Adresse,
		a.Ville,
		a.CodePostal,
		a.Region,
		a.Secteur,
		a.Taille,
		a.ContactNom,
		a.ContactPoste,
		a.ContactEmail,
		a.ContactTelephone,
		a.Source,
		a.CreatedBy,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM comptes WHERE id = $1`

	var a Account
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get account: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &a, nil
}

// List filters on region when f.Region is set.
func (r *repository) List(
	ctx context.Context,
	f Filter,
	limit int,
) ([]Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM comptes
		WHERE ($1 = '' OR region = $1)
		ORDER BY created_at, id
		LIMIT $2`

	var accounts []Account
	if err := r.db.SelectContext(ctx, &accounts, query, f.Region, limit); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comptes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	return core.RequireAffected(result, "delete account")
}

// DeleteDependents removes the opportunities and quality records of an
// account, incidents of those records first.
func (r *repository) DeleteDependents(ctx context.Context, id string) error {
	statements := []struct {
		op    string
		query string
	}{
		{"delete account incidents", `
			DELETE FROM incidents
			WHERE quality_record_id IN (
				SELECT id FROM quality_records WHERE compte_id = $1
			)`},
		{"delete account quality records", `DELETE FROM quality_records WHERE compte_id = $1`},
		{"delete account opportunities", `DELETE FROM opportunites WHERE compte_id = $1`},
	}

	for _, st := range statements {
		if _, err := r.db.ExecContext(ctx, st.query, id); err != nil {
			return fmt.Errorf("%s: %w", st.op, err)
		}
	}

	return nil
}
