// AngelaMos | 2026
// entity.go

package quality

import (
	"time"
)

// Record is a periodic quality sheet ("fiche qualité") for one account.
type Record struct {
	ID                string    `db:"id"                 json:"id"`
	CompteID          string    `db:"compte_id"          json:"compte_id"`
	Division          string    `db:"division"           json:"division"`
	Region            string    `db:"region"             json:"region"`
	Periode           string    `db:"periode"            json:"periode"`
	TypePrestation    *string   `db:"type_prestation"    json:"type_prestation"`
	TauxService       *float64  `db:"taux_service"       json:"taux_service"`
	NbIncidents       int       `db:"nb_incidents"       json:"nb_incidents"`
	ScoreSatisfaction *float64  `db:"score_satisfaction" json:"score_satisfaction"`
	Commentaires      *string   `db:"commentaires"       json:"commentaires"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
}

type Incident struct {
	ID               string     `db:"id"                json:"id"`
	QualityRecordID  string     `db:"quality_record_id" json:"quality_record_id"`
	Type             string     `db:"type"              json:"type"`
	Gravite          string     `db:"gravite"           json:"gravite"`
	Description      string     `db:"description"       json:"description"`
	Statut           string     `db:"statut"            json:"statut"`
	ActionCorrective *string    `db:"action_corrective" json:"action_corrective"`
	ClosedAt         *time.Time `db:"closed_at"         json:"closed_at"`
	CreatedAt        time.Time  `db:"created_at"        json:"created_at"`
}
