// AngelaMos | 2026
// stats.go

package dashboard

type CommercialStats struct {
	TotalComptes        int     `db:"total_comptes"        json:"total_comptes"`
	TotalOpportunites   int     `db:"total_opportunites"   json:"total_opportunites"`
	OpportunitesSignees int     `db:"opportunites_signees" json:"opportunites_signees"`
	CaSigne             float64 `db:"ca_signe"             json:"ca_signe"`
}

type QualityStats struct {
	TotalQualityRecords    int     `db:"total_quality_records"    json:"total_quality_records"`
	TotalIncidents         int     `db:"total_incidents"          json:"total_incidents"`
	IncidentsOuverts       int     `db:"incidents_ouverts"        json:"incidents_ouverts"`
	ScoreSatisfactionMoyen float64 `db:"score_satisfaction_moyen" json:"score_satisfaction_moyen"`
}

type Stats struct {
	Commercial CommercialStats `json:"commercial"`
	Qualite    QualityStats    `json:"qualite"`
}
