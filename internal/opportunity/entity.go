// AngelaMos | 2026
// entity.go

package opportunity

import (
	"time"
)

type Opportunity struct {
	ID                    string     `db:"id"                     json:"id"`
	CompteID              string     `db:"compte_id"              json:"compte_id"`
	TypeBesoin            *string    `db:"type_besoin"            json:"type_besoin"`
	VolumesEstimes        *string    `db:"volumes_estimes"        json:"volumes_estimes"`
	Temperatures          *string    `db:"temperatures"           json:"temperatures"`
	Frequence             *string    `db:"frequence"              json:"frequence"`
	Marchandises          *string    `db:"marchandises"           json:"marchandises"`
	Depart                *string    `db:"depart"                 json:"depart"`
	Arrivee               *string    `db:"arrivee"                json:"arrivee"`
	ContraintesHoraires   *string    `db:"contraintes_horaires"   json:"contraintes_horaires"`
	Urgence               *string    `db:"urgence"                json:"urgence"`
	CommercialResponsable string     `db:"commercial_responsable" json:"commercial_responsable"`
	DatePremierContact    *time.Time `db:"date_premier_contact"   json:"date_premier_contact"`
	Canal                 *string    `db:"canal"                  json:"canal"`
	Statut                string     `db:"statut"                 json:"statut"`
	MontantEstime         *float64   `db:"montant_estime"         json:"montant_estime"`
	ProchaineRelance      *time.Time `db:"prochaine_relance"      json:"prochaine_relance"`
	Commentaires          *string    `db:"commentaires"           json:"commentaires"`
	CreatedAt             time.Time  `db:"created_at"             json:"created_at"`
}

type Filter struct {
	Owner    string
	CompteID string
}
