// AngelaMos | 2026
// defaults.go

package translation

// defaultLabels seeds the fr-FR interface texts on first initialisation.
var defaultLabels = []struct {
	Key   string
	Value string
}{
	{"app.title", "Suivi Activité Commerciale"},
	{"app.subtitle", "ALS FRESH FOOD • ALS PHARMA"},
	{"login.title", "Connexion"},
	{"login.description", "Accédez à votre espace commercial et qualité"},
	{"login.email", "Email"},
	{"login.password", "Mot de passe"},
	{"login.submit", "Se connecter"},
	{"login.google", "Continuer avec Google"},
	{"nav.dashboard", "Tableau de bord"},
	{"nav.comptes", "Clients / Prospects"},
	{"nav.opportunites", "Opportunités"},
	{"nav.qualite", "Qualité Service"},
	{"nav.incidents", "Incidents"},
	{"nav.satisfaction", "Satisfaction"},
	{"nav.admin", "Administration"},
	{"nav.logout", "Déconnexion"},
	{"dashboard.welcome", "Bienvenue"},
	{"dashboard.commercial", "Module Commercial"},
	{"dashboard.qualite", "Module Qualité & Service Clientèle"},
	{"dashboard.ca_signe", "CA Signé"},
	{"dashboard.clients_prospects", "Clients / Prospects"},
	{"dashboard.opportunites", "Opportunités"},
	{"dashboard.opportunites_signees", "Opportunités Signées"},
	{"dashboard.score_satisfaction", "Score Satisfaction"},
	{"dashboard.fiches_qualite", "Fiches Qualité"},
	{"dashboard.incidents_total", "Incidents Total"},
	{"dashboard.incidents_ouverts", "Incidents Ouverts"},
	{"comptes.title", "Clients / Prospects"},
	{"comptes.description", "Gestion de la base clients et prospects"},
	{"comptes.add", "Nouveau Compte"},
	{"comptes.search", "Rechercher par raison sociale, ville, contact..."},
	{"opportunites.title", "Opportunités Commerciales"},
	{"opportunites.description", "Pipeline de vente et suivi des opportunités"},
	{"opportunites.add", "Nouvelle Opportunité"},
	{"qualite.title", "Qualité de Service"},
	{"qualite.description", "Suivi de la satisfaction client et taux de service"},
	{"qualite.add", "Nouvelle Fiche Qualité"},
	{"incidents.title", "Incidents Qualité"},
	{"incidents.description", "Suivi et résolution des incidents"},
	{"incidents.add", "Nouvel Incident"},
	{"admin.title", "Administration"},
	{"admin.description", "Gestion des utilisateurs, textes et paramètres"},
	{"admin.tab_translations", "Textes & Libellés"},
	{"admin.tab_users", "Utilisateurs"},
	{"admin.tab_settings", "Paramètres"},
	{"admin.add_translation", "Nouvelle Clé"},
	{"admin.add_user", "Nouvel Utilisateur"},
	{"common.save", "Enregistrer"},
	{"common.delete", "Supprimer"},
	{"common.cancel", "Annuler"},
	{"common.create", "Créer"},
	{"common.edit", "Modifier"},
}
