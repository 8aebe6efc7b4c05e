// AngelaMos | 2026
// repository.go

package opportunity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type Repository interface {
	Create(ctx context.Context, o *Opportunity) error
	GetByID(ctx context.Context, id string) (*Opportunity, error)
	List(ctx context.Context, f Filter, limit int) ([]Opportunity, error)
	Update(ctx context.Context, o *Opportunity) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const opportunityColumns = `id, compte_id, type_besoin, volumes_estimes, temperatures,
		       frequence, marchandises, depart, arrivee, contraintes_horaires,
		       urgence, commercial_responsable, date_premier_contact, canal,
		       statut, montant_estime, prochaine_relance, commentaires, created_at`

func (r *repository) Create(ctx context.Context, o *Opportunity) error {
	query := `
		INSERT INTO opportunites (
			id, compte_id, type_besoin, volumes_estimes, temperatures,
			frequence, marchandises, depart, arrivee, contraintes_horaires,
			urgence, commercial_responsable, date_premier_contact, canal,
			statut, montant_estime, prochaine_relance, commentaires, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.CompteID,
		o.TypeBesoin,
		o.VolumesEstimes,
		o.Temperatures,
		o.Frequence,
		o.Marchandises,
		o.Depart,
		o.Arrivee,
		o.ContraintesHoraires,
		o.Urgence,
		o.CommercialResponsable,
		o.DatePremierContact,
		o.Canal,
		o.Statut,
		o.MontantEstime,
		o.ProchaineRelance,
		o.Commentaires,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create opportunity: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunites WHERE id = $1`

	var o Opportunity
	err := r.db.GetContext(ctx, &o, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get opportunity: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}

	return &o, nil
}

func (r *repository) List(
	ctx context.Context,
	f Filter,
	limit int,
) ([]Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
		FROM opportunites
		WHERE ($1 = '' OR commercial_responsable = $1)
		  AND ($2 = '' OR compte_id = $2)
		ORDER BY created_at, id
		LIMIT $3`

	var opportunities []Opportunity
	err := r.db.SelectContext(ctx, &opportunities, query, f.Owner, f.CompteID, limit)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}

	return opportunities, nil
}

func (r *repository) Update(ctx context.Context, o *Opportunity) error {
	query := `
		UPDATE opportunites SET
			type_besoin = $2,
			volumes_estimes = $3,
			temperatures = $4,
			frequence = $5,
			marchandises = $6,
			depart = $7,
			arrivee = $8,
			contraintes_horaires = $9,
			urgence = $10,
			date_premier_contact = $11,
			canal = $12,
			statut = $13,
			montant_estime = $14,
			prochaine_relance = $15,
			commentaires = $16
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.TypeBesoin,
		o.VolumesEstimes,
		o.Temperatures,
		o.Frequence,
		o.Marchandises,
		o.Depart,
		o.Arrivee,
		o.ContraintesHoraires,
		o.Urgence,
		o.DatePremierContact,
		o.Canal,
		o.Statut,
		o.MontantEstime,
		o.ProchaineRelance,
		o.Commentaires,
	)
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}

	return core.RequireAffected(result, "update opportunity")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM opportunites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}

	return core.RequireAffected(result, "delete opportunity")
}
