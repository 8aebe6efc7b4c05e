// AngelaMos | 2026
// entity.go

package account

import (
	"time"
)

// Account is a client or prospect organisation (a "compte").
type Account struct {
	ID               string    `db:"id"                json:"id"`
	RaisonSociale    string    `db:"raison_sociale"    json:"raison_sociale"`
	Division         string    `db:"division"          json:"division"`
	Adresse          *string   `db:"adresse"           json:"adresse"`
	Ville            *string   `db:"ville"             json:"ville"`
	CodePostal       *string   `db:"code_postal"       json:"code_postal"`
	Region           string    `db:"region"            json:"region"`
	Secteur          *string   `db:"secteur"           json:"secteur"`
	Taille           *string   `db:"taille"            json:"taille"`
	ContactNom       *string   `db:"contact_nom"       json:"contact_nom"`
	ContactPoste     *string   `db:"contact_poste"     json:"contact_poste"`
	ContactEmail     *string   `db:"contact_email"     json:"contact_email"`
	ContactTelephone *string   `db:"contact_telephone" json:"contact_telephone"`
	Source           *string   `db:"source"            json:"source"`
	CreatedBy        string    `db:"created_by"        json:"created_by"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`
}

type Filter struct {
	Region string
}
