// AngelaMos | 2026
// dto.go

package account

import (
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
)

type CreateAccountRequest struct {
	RaisonSociale    string `json:"raison_sociale"    validate:"required,min=1,max=255"`
	Division         string `json:"division"          validate:"required,division"`
	Adresse          string `json:"adresse"           validate:"max=500"`
	Ville            string `json:"ville"             validate:"max=120"`
	CodePostal       string `json:"code_postal"       validate:"max=20"`
	Region           string `json:"region"            validate:"required,region"`
	Secteur          string `json:"secteur"           validate:"max=120"`
	Taille           string `json:"taille"            validate:"max=60"`
	ContactNom       string `json:"contact_nom"       validate:"max=255"`
	ContactPoste     string `json:"contact_poste"     validate:"max=255"`
	ContactEmail     string `json:"contact_email"     validate:"omitempty,email,max=255"`
	ContactTelephone string `json:"contact_telephone" validate:"max=40"`
	Source           string `json:"source"            validate:"max=120"`
}

func (r CreateAccountRequest) toAccount(id, createdBy string) *Account {
	return &Account{
		ID:               id,
		RaisonSociale:    r.RaisonSociale,
		Division:         r.Division,
		Adresse:          core.NullString(r.Adresse),
		Ville:            core.NullString(r.Ville),
		CodePostal:       core.NullString(r.CodePostal),
		Region:           r.Region,
		Secteur:          core.NullString(r.Secteur),
		Taille:           core.NullString(r.Taille),
		ContactNom:       core.NullString(r.ContactNom),
		ContactPoste:     core.NullString(r.ContactPoste),
		ContactEmail:     core.NullString(r.ContactEmail),
		ContactTelephone: core.NullString(r.ContactTelephone),
		Source:           core.NullString(r.Source),
		CreatedBy:        createdBy,
		CreatedAt:        core.Now(),
	}
}

type DeleteResponse struct {
	Message string `json:"message"`
}
