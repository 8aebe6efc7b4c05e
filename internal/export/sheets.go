// AngelaMos | 2026
// sheets.go

package export

import (
	"context"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/account"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/opportunity"
)

var userHeaders = []string{
	"ID", "Nom", "Email", "Rôle", "Division", "Région", "Date création",
}

var accountHeaders = []string{
	"ID", "Raison Sociale", "Division", "Région", "Adresse", "Ville", "Code Postal",
	"Secteur", "Taille", "Contact Nom", "Contact Poste", "Contact Email",
	"Contact Téléphone", "Source", "Créé par", "Date création",
}

var opportunityHeaders = []string{
	"ID", "Compte ID", "Type Besoin", "Volumes Estimés", "Températures", "Fréquence",
	"Marchandises", "Départ", "Arrivée", "Contraintes Horaires", "Urgence",
	"Commercial Responsable", "Date Premier Contact", "Canal", "Statut",
	"Montant Estimé", "Prochaine Relance", "Commentaires", "Date création",
}

var recordHeaders = []string{
	"ID", "Compte ID", "Division", "Région", "Période", "Type Prestation",
	"Taux Service", "Nb Incidents", "Score Satisfaction", "Commentaires", "Date création",
}

var incidentHeaders = []string{
	"ID", "Quality Record ID", "Type", "Gravité", "Description", "Statut",
	"Action Corrective", "Date Clôture", "Date création",
}

var surveyHeaders = []string{
	"ID", "Compte ID", "Division", "Période", "Note Globale",
	"Commentaires", "Date soumission",
}

// userRows leaves the password hash out of the workbook.
func (e *Exporter) userRows(ctx context.Context) ([][]any, error) {
	users, err := e.src.Users.List(ctx, core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{
			u.ID,
			u.Name,
			u.Email,
			u.Role,
			text(u.Division),
			text(u.Region),
			created(u.CreatedAt),
		})
	}
	return rows, nil
}

func (e *Exporter) accountRows(ctx context.Context) ([][]any, error) {
	accounts, err := e.src.Accounts.List(ctx, account.Filter{}, core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []any{
			a.ID,
			a.RaisonSociale,
			a.Division,
			a.Region,
			text(a.Adresse),
			text(a.Ville),
			text(a.CodePostal),
			text(a.Secteur),
			text(a.Taille),
			text(a.ContactNom),
			text(a.ContactPoste),
			text(a.ContactEmail),
			text(a.ContactTelephone),
			text(a.Source),
			a.CreatedBy,
			created(a.CreatedAt),
		})
	}
	return rows, nil
}

func (e *Exporter) opportunityRows(ctx context.Context) ([][]any, error) {
	opps, err := e.src.Opportunities.List(ctx, opportunity.Filter{}, core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(opps))
	for _, o := range opps {
		rows = append(rows, []any{
			o.ID,
			o.CompteID,
			text(o.TypeBesoin),
			text(o.VolumesEstimes),
			text(o.Temperatures),
			text(o.Frequence),
			text(o.Marchandises),
			text(o.Depart),
			text(o.Arrivee),
			text(o.ContraintesHoraires),
			text(o.Urgence),
			o.CommercialResponsable,
			timestamp(o.DatePremierContact),
			text(o.Canal),
			o.Statut,
			number(o.MontantEstime),
			timestamp(o.ProchaineRelance),
			text(o.Commentaires),
			created(o.CreatedAt),
		})
	}
	return rows, nil
}

func (e *Exporter) recordRows(ctx context.Context) ([][]any, error) {
	records, err := e.src.Quality.ListRecords(ctx, "", core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(records))
	for _, q := range records {
		rows = append(rows, []any{
			q.ID,
			q.CompteID,
			q.Division,
			q.Region,
			q.Periode,
			text(q.TypePrestation),
			number(q.TauxService),
			q.NbIncidents,
			number(q.ScoreSatisfaction),
			text(q.Commentaires),
			created(q.CreatedAt),
		})
	}
	return rows, nil
}

func (e *Exporter) incidentRows(ctx context.Context) ([][]any, error) {
	incidents, err := e.src.Quality.ListIncidents(ctx, "", core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(incidents))
	for _, i := range incidents {
		rows = append(rows, []any{
			i.ID,
			i.QualityRecordID,
			i.Type,
			i.Gravite,
			i.Description,
			i.Statut,
			text(i.ActionCorrective),
			timestamp(i.ClosedAt),
			created(i.CreatedAt),
		})
	}
	return rows, nil
}

func (e *Exporter) surveyRows(ctx context.Context) ([][]any, error) {
	responses, err := e.src.Surveys.ListResponses(ctx, core.ListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(responses))
	for _, s := range responses {
		rows = append(rows, []any{
			s.ID,
			s.CompteID,
			s.Division,
			s.Periode,
			integer(s.NoteGlobale),
			text(s.Commentaires),
			created(s.SubmittedAt),
		})
	}
	return rows, nil
}
