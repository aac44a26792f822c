package app

// IntentExample documents one supported intent with sample phrasings.
type IntentExample struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

// Catalog returns the static discovery list of supported intents. It is a
// fixed catalog for documentation purposes, not derived from the classifier.
func Catalog() []IntentExample {
	return []IntentExample{
		{Name: "greeting", Examples: []string{"Bonjour", "Salut", "Hello"}},
		{Name: "help", Examples: []string{"Aide", "Help", "Comment faire"}},
		{Name: "list_properties", Examples: []string{"Voir les propriétés", "Liste des logements"}},
		{Name: "make_reservation", Examples: []string{"Je veux réserver", "Réserver"}},
		{Name: "my_reservations", Examples: []string{"Mes réservations", "Mon historique"}},
		{Name: "check_availability", Examples: []string{"Vérifier disponibilité", "Est-ce libre"}},
		{Name: "cancel_info", Examples: []string{"Comment annuler", "Annulation"}},
		{Name: "price_info", Examples: []string{"Prix", "Combien ça coûte"}},
		{Name: "reviews_info", Examples: []string{"Avis", "Commentaires"}},
		{Name: "account_info", Examples: []string{"Mon compte", "Inscription"}},
		{Name: "contact", Examples: []string{"Contact", "Support"}},
	}
}
