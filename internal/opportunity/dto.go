// AngelaMos | 2026
// dto.go

package opportunity

import (
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

// Details are the fields a commercial may edit after creation.
type Details struct {
	TypeBesoin          string         `json:"type_besoin"          validate:"max=255"`
	VolumesEstimes      string         `json:"volumes_estimes"      validate:"max=255"`
	Temperatures        string         `json:"temperatures"         validate:"max=255"`
	Frequence           string         `json:"frequence"            validate:"max=255"`
	Marchandises        string         `json:"marchandises"         validate:"max=500"`
	Depart              string         `json:"depart"               validate:"max=255"`
	Arrivee             string         `json:"arrivee"              validate:"max=255"`
	ContraintesHoraires string         `json:"contraintes_horaires" validate:"max=500"`
	Urgence             string         `json:"urgence"              validate:"max=60"`
	DatePremierContact  *core.FlexTime `json:"date_premier_contact"`
	Canal               string         `json:"canal"                validate:"max=120"`
	MontantEstime       *float64       `json:"montant_estime"       validate:"omitempty,gte=0"`
	ProchaineRelance    *core.FlexTime `json:"prochaine_relance"`
	Commentaires        string         `json:"commentaires"         validate:"max=5000"`
}

type CreateOpportunityRequest struct {
	CompteID string `json:"compte_id" validate:"required"`
	Statut   string `json:"statut"    validate:"omitempty,opp_status"`
	Details
}

// UpdateOpportunityRequest replaces every mutable field. The account and
// the responsible commercial cannot change.
type UpdateOpportunityRequest struct {
	Statut string `json:"statut" validate:"required,opp_status"`
	Details
}

func (d Details) applyTo(o *Opportunity) {
	o.TypeBesoin = core.NullString(d.TypeBesoin)
	o.VolumesEstimes = core.NullString(d.VolumesEstimes)
	o.Temperatures = core.NullString(d.Temperatures)
	o.Frequence = core.NullString(d.Frequence)
	o.Marchandises = core.NullString(d.Marchandises)
	o.Depart = core.NullString(d.Depart)
	o.Arrivee = core.NullString(d.Arrivee)
	o.ContraintesHoraires = core.NullString(d.ContraintesHoraires)
	o.Urgence = core.NullString(d.Urgence)
	o.DatePremierContact = d.DatePremierContact.Ptr()
	o.Canal = core.NullString(d.Canal)
	o.MontantEstime = d.MontantEstime
	o.ProchaineRelance = d.ProchaineRelance.Ptr()
	o.Commentaires = core.NullString(d.Commentaires)
}

type DeleteResponse struct {
	Message string `json:"message"`
}
