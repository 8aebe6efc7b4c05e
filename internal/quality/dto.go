// AngelaMos | 2026
// dto.go

package quality

import (
	"time"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type CreateRecordRequest struct {
	CompteID          string   `json:"compte_id"          validate:"required"`
	Division          string   `json:"division"           validate:"required,division"`
	Region            string   `json:"region"             validate:"required,region"`
	Periode           string   `json:"periode"            validate:"required,max=60"`
	TypePrestation    string   `json:"type_prestation"    validate:"max=255"`
	TauxService       *float64 `json:"taux_service"       validate:"omitempty,gte=0,lte=100"`
	NbIncidents       int      `json:"nb_incidents"       validate:"gte=0"`
	ScoreSatisfaction *float64 `json:"score_satisfaction" validate:"omitempty,gte=0,lte=10"`
	Commentaires      string   `json:"commentaires"       validate:"max=5000"`
}

func (r CreateRecordRequest) toRecord(id string, now time.Time) *Record {
	return &Record{
		ID:                id,
		CompteID:          r.CompteID,
		Division:          r.Division,
		Region:            r.Region,
		Periode:           r.Periode,
		TypePrestation:    core.NullString(r.TypePrestation),
		TauxService:       r.TauxService,
		NbIncidents:       r.NbIncidents,
		ScoreSatisfaction: r.ScoreSatisfaction,
		Commentaires:      core.NullString(r.Commentaires),
		CreatedAt:         now,
	}
}

type CreateIncidentRequest struct {
	QualityRecordID  string         `json:"quality_record_id" validate:"required"`
	Type             string         `json:"type"              validate:"required,max=120"`
	Gravite          string         `json:"gravite"           validate:"required,gravite"`
	Description      string         `json:"description"       validate:"required,max=5000"`
	Statut           string         `json:"statut"            validate:"omitempty,incident_status"`
	ActionCorrective string         `json:"action_corrective" validate:"max=5000"`
	ClosedAt         *core.FlexTime `json:"closed_at"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
