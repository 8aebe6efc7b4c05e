// AngelaMos | 2026
// enums.go

package core

import "slices"

const ListLimit = 1000

const (
	RoleAdminDirecteur      = "Admin_Directeur"
	RoleAssistanteDirection = "Assistante_Direction"
	RoleDirectriceClientele = "Directrice_Clientele"
	RoleAssistanteClientele = "Assistante_Clientele"
	RoleDevCoIDF            = "DevCo_IDF"
	RoleDevCoHDF            = "DevCo_HDF"
)

const (
	DivisionFreshFood = "ALS FRESH FOOD"
	DivisionPharma    = "ALS PHARMA"
)

const (
	RegionIDF = "IDF"
	RegionHDF = "HDF"
)

const (
	OpportunityProspected  = "Prospecté"
	OpportunityDiscussion  = "En discussion"
	OpportunityQuoteSent   = "Devis envoyé"
	OpportunityNegotiation = "Négociation"
	OpportunitySigned      = "Signé"
	OpportunityLost        = "Perdu"
)

const (
	GraviteLow      = "Faible"
	GraviteMedium   = "Moyen"
	GraviteCritical = "Critique"
)

const (
	IncidentOpen       = "Ouvert"
	IncidentInProgress = "En cours"
	IncidentResolved   = "Résolu"
	IncidentClosed     = "Clos"
)

const (
	LangFR = "fr-FR"
	LangEN = "en-GB"
)

var Roles = []string{
	RoleAdminDirecteur,
	RoleAssistanteDirection,
	RoleDirectriceClientele,
	RoleAssistanteClientele,
	RoleDevCoIDF,
	RoleDevCoHDF,
}

var OpportunityStatuses = []string{
	OpportunityProspected,
	OpportunityDiscussion,
	OpportunityQuoteSent,
	OpportunityNegotiation,
	OpportunitySigned,
	OpportunityLost,
}

var IncidentStatuses = []string{
	IncidentOpen,
	IncidentInProgress,
	IncidentResolved,
	IncidentClosed,
}

var (
	Divisions = []string{DivisionFreshFood, DivisionPharma}
	Regions   = []string{RegionIDF, RegionHDF}
	Gravites  = []string{GraviteLow, GraviteMedium, GraviteCritical}
	Langs     = []string{LangFR, LangEN}
)

func IsIncidentClosed(statut string) bool {
	return statut == IncidentResolved || statut == IncidentClosed
}

func oneOf(values []string) func(string) bool {
	return func(v string) bool {
		return slices.Contains(values, v)
	}
}
