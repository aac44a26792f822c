package app

import (
	"strings"

	"resabot/internal/domain"
)

// Keyword sets are the literal vocabulary of the platform's users
// (French-first with English synonyms). Matching is case-insensitive
// substring membership, not word-boundary matching.
var (
	greetingWords = []string{"bonjour", "salut", "hello", "hi", "hey", "bonsoir"}
	helpWords     = []string{"aide", "help", "aider", "quoi faire", "que peux-tu", "que peux tu", "commandes"}
	siteInfoWords = []string{
		"comment fonctionne", "comment ça marche", "comment ca marche",
		"c'est quoi", "qu'est-ce que", "présentation", "presentation",
		"fonctionnement", "à quoi sert", "a quoi sert",
		"expliquer le site", "explique le site",
	}
	thanksWords   = []string{"merci", "thanks", "parfait", "super", "génial", "excellent"}
	goodbyeWords  = []string{"bye", "au revoir", "à bientôt", "ciao", "bonne journée", "bonne nuit"}
	propertyWords = []string{
		"propriété", "propriétés", "proprietes", "logement", "logements",
		"appartement", "maison", "liste", "voir les", "afficher",
	}
	myResWords      = []string{"mes réservation", "mes reservation", "mes reservations", "mes réservations", "mon historique", "mes locations"}
	allWords        = []string{"toutes", "all", "tout"}
	resWords        = []string{"réservation", "reservation"}
	deleteWords     = []string{"supprimer", "effacer", "delete"}
	cancelVerbWords = []string{"supprimer", "effacer", "delete", "annuler"}
	bookWords       = []string{"réserver", "reserver", "reservation", "réservation", "book", "louer"}
	priceWords      = []string{"prix", "coût", "cout", "tarif", "combien", "payer", "paiement"}
	cancelWords     = []string{"annuler", "annulation", "cancel", "rembours"}
	reviewWords     = []string{"avis", "review", "commentaire", "note", "évaluation", "evaluation"}
	accountWords    = []string{"compte", "profil", "inscription", "connexion", "mot de passe", "password", "login", "signup"}
	contactWords    = []string{"contact", "contacter", "téléphone", "telephone", "email", "support", "joindre"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

type ruleInput struct {
	text string // lower-cased message
	ents domain.Entities
}

type rule struct {
	match  func(in ruleInput) bool
	intent domain.Intent
}

// rules is evaluated top to bottom with short-circuit on first match.
// Order carries the precedence semantics: overlapping vocabularies (e.g.
// "réservation" + "supprimer") must resolve to the more specific intent.
var rules = []rule{
	{func(in ruleInput) bool { return containsAny(in.text, greetingWords) }, domain.IntentGreeting},
	{func(in ruleInput) bool { return containsAny(in.text, helpWords) }, domain.IntentHelp},
	{func(in ruleInput) bool { return containsAny(in.text, siteInfoWords) }, domain.IntentSiteInfo},
	{func(in ruleInput) bool { return containsAny(in.text, thanksWords) }, domain.IntentThanks},
	{func(in ruleInput) bool { return containsAny(in.text, goodbyeWords) }, domain.IntentGoodbye},
	{func(in ruleInput) bool {
		return containsAny(in.text, propertyWords) && containsAny(in.text, deleteWords)
	}, domain.IntentAdminDeleteProperty},
	{func(in ruleInput) bool { return containsAny(in.text, propertyWords) }, domain.IntentListProperties},
	{func(in ruleInput) bool { return containsAny(in.text, myResWords) }, domain.IntentMyReservations},
	{func(in ruleInput) bool {
		return containsAny(in.text, allWords) && containsAny(in.text, resWords)
	}, domain.IntentAdminAllRes},
	{func(in ruleInput) bool {
		return containsAny(in.text, cancelVerbWords) && containsAny(in.text, resWords)
	}, domain.IntentAdminDeleteRes},
	{func(in ruleInput) bool { return containsAny(in.text, bookWords) }, domain.IntentMakeReservation},
	{func(in ruleInput) bool { return in.ents.Complete() }, domain.IntentCreateReservation},
	{func(in ruleInput) bool {
		return in.ents.PropertyID != "" && containsAny(in.text, deleteWords) && containsAny(in.text, resWords)
	}, domain.IntentAdminDeleteRes},
	{func(in ruleInput) bool {
		return in.ents.PropertyID != "" && containsAny(in.text, deleteWords)
	}, domain.IntentAdminDeleteProperty},
	{func(in ruleInput) bool { return containsAny(in.text, priceWords) }, domain.IntentPriceInfo},
	{func(in ruleInput) bool { return containsAny(in.text, cancelWords) }, domain.IntentCancelInfo},
	{func(in ruleInput) bool { return containsAny(in.text, reviewWords) }, domain.IntentReviewsInfo},
	{func(in ruleInput) bool { return containsAny(in.text, accountWords) }, domain.IntentAccountInfo},
	{func(in ruleInput) bool { return containsAny(in.text, contactWords) }, domain.IntentContact},
}

// Classify maps a message to exactly one intent. It is total and pure:
// no rule matching means out_of_scope. The caller role does not influence
// the decision; authorization happens later in the engine, so a non-admin
// asking for "toutes les réservations" still lands on the admin intent and
// is refused there.
func Classify(message, role string) domain.Intent {
	_ = role
	in := ruleInput{text: strings.ToLower(message), ents: Extract(message)}
	for _, r := range rules {
		if r.match(in) {
			return r.intent
		}
	}
	return domain.IntentOutOfScope
}
