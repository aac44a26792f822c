package app

import (
	"fmt"
	"strings"

	"resabot/internal/domain"
)

// Reply templates are fixed product copy (source locale), reproduced as-is.

const msgGreetingAdmin = "👋 Bonjour Administrateur! Je peux vous aider à:\n\n• Voir toutes les propriétés\n• Supprimer une propriété\n• Voir toutes les réservations\n• Supprimer une réservation\n\nTapez 'aide' pour voir les commandes."

const msgGreeting = "👋 Bonjour! Je suis l'assistant de réservation. Je peux vous aider à:\n\n• Voir les propriétés disponibles\n• Faire une réservation\n• Consulter vos réservations\n\nTapez 'aide' pour voir les commandes."

const msgHelpAdmin = `🤖 **Commandes Admin:**

📋 **Propriétés**
• "Voir les propriétés" - Liste toutes les propriétés
• "Supprimer propriété [ID]" - Supprime une propriété

📅 **Réservations**
• "Toutes les réservations" - Liste toutes les réservations
• "Supprimer réservation [ID]" - Supprime une réservation

💡 Exemple: "Supprimer propriété 507f1f77bcf86cd799439011"`

const msgHelp = `🤖 **Commandes disponibles:**

📋 **Propriétés**
• "Voir les propriétés" - Liste les propriétés disponibles

📅 **Réservations**
• "Réserver [ID] [date-début] [date-fin]" - Faire une réservation
• "Mes réservations" - Voir vos réservations

💡 Exemple: "Réserver 507f1f77bcf86cd799439011 2024-01-15 2024-01-20"`

const msgSiteInfo = `🏠 **Bienvenue sur notre plateforme de réservation!**

**Comment ça marche:**

1️⃣ **Parcourez les propriétés**
   Tapez "voir les propriétés" pour découvrir les logements disponibles

2️⃣ **Réservez un logement**
   Choisissez vos dates et réservez en ligne instantanément

3️⃣ **Gérez vos réservations**
   Consultez et gérez vos réservations depuis votre compte

**Types d'utilisateurs:**
• 👤 **Locataire** - Réservez des propriétés
• 🏠 **Propriétaire** - Publiez vos logements

Tapez 'aide' pour voir les commandes disponibles!`

const msgMakeReservation = "📅 **Pour réserver, envoyez:**\n\n`[ID propriété] [date-arrivée] [date-départ]`\n\n📝 Format des dates: AAAA-MM-JJ\n\n💡 Exemple: `507f1f77bcf86cd799439011 2024-01-15 2024-01-20`\n\nTapez \"voir les propriétés\" pour obtenir les IDs."

const msgPriceInfo = `💰 **Informations sur les prix:**

• Les prix affichés sont **par nuit**
• Des frais de service de 10% s'appliquent
• Le paiement se fait à la réservation

Consultez une propriété pour voir le prix exact.`

const msgCancelInfo = `❌ **Politique d'annulation:**

• Annulation **gratuite** jusqu'à 48h avant l'arrivée
• Annulation tardive: remboursement de 50%
• Non-présentation: aucun remboursement

Pour annuler, allez dans "Mes réservations".`

const msgReviewsInfo = `⭐ **Avis et évaluations:**

• Vous pouvez laisser un avis après votre séjour
• Les notes vont de 1 à 5 étoiles
• Les avis aident les autres utilisateurs`

const msgAccountInfo = `👤 **Gestion du compte:**

• **Inscription**: Cliquez sur "S'inscrire"
• **Connexion**: Cliquez sur "Se connecter"
• **Profil**: Modifiez vos informations dans votre profil`

const msgContact = "📞 **Contact:**\n\n• Email: support@reservations.com\n• Horaires: Lun-Ven, 9h-18h"

const (
	msgThanks        = "😊 Avec plaisir! N'hésitez pas si vous avez d'autres questions sur le site!"
	msgGoodbye       = "👋 Au revoir! À bientôt sur notre plateforme!"
	msgOutOfScope    = "❌ **Désolé, je ne peux répondre qu'aux questions concernant le site.**\n\nTapez 'aide' pour voir ce que je peux faire."
	msgNoProperties  = "😕 Aucune propriété disponible pour le moment."
	msgNoUserRes     = "📭 Vous n'avez aucune réservation pour le moment."
	msgNoRes         = "📭 Aucune réservation dans le système."
	msgLoginToView   = "🔐 Vous devez être connecté pour voir vos réservations."
	msgLoginToBook   = "🔐 Vous devez être connecté pour réserver.\n\nConnectez-vous puis réessayez!"
	msgAdminOnly     = "🚫 Cette commande est réservée aux administrateurs."
	msgTokenRequired = "🔐 Vous devez être connecté."
	msgNeedPropID    = "❌ Veuillez spécifier l'ID de la propriété à supprimer.\n\n💡 Exemple: `supprimer propriété 507f1f77bcf86cd799439011`"
	msgNeedResID     = "❌ Veuillez spécifier l'ID de la réservation à supprimer.\n\n💡 Exemple: `supprimer réservation 507f1f77bcf86cd799439011`"
)

// shortID abbreviates a 24-hex identifier for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

// truncDate keeps the YYYY-MM-DD prefix of a possibly longer timestamp.
func truncDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	if s == "" {
		return "N/A"
	}
	return s
}

func formatPropertyList(ps []domain.Property) string {
	lines := make([]string, 0, len(ps))
	for _, p := range ps {
		lines = append(lines, fmt.Sprintf("🏠 **%s** - %v$/nuit\n   📍 %s\n   🔑 ID: `%s`",
			orDefault(p.Title, "Sans titre"), p.Price, orDefault(p.Location, "Non spécifié"), p.ID))
	}
	return "📋 **Propriétés disponibles:**\n\n" + strings.Join(lines, "\n")
}

func formatUserReservations(rs []domain.Reservation) string {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, fmt.Sprintf("📅 **Réservation** `%s`\n   Du %s au %s\n   Statut: %s",
			shortID(r.ID), truncDate(r.StartDate), truncDate(r.EndDate), orDefault(r.Status, "N/A")))
	}
	return "📋 **Vos réservations:**\n\n" + strings.Join(lines, "\n")
}

func formatAllReservations(rs []domain.Reservation) string {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, fmt.Sprintf("📅 `%s`\n   Du %s au %s | Statut: %s",
			r.ID, truncDate(r.StartDate), truncDate(r.EndDate), orDefault(r.Status, "N/A")))
	}
	return "📋 **Toutes les réservations:**\n\n" + strings.Join(lines, "\n") +
		"\n\n💡 Pour supprimer: `supprimer réservation [ID]`"
}

func formatReservationCreated(e domain.Entities) string {
	return fmt.Sprintf("✅ **Réservation créée!**\n\n📅 Du %s au %s\n🏠 Propriété: `%s`\n\nTapez 'mes réservations' pour voir vos réservations.",
		e.CheckIn, e.CheckOut, shortID(e.PropertyID))
}

func formatError(msg, fallback string) string {
	return "❌ Erreur: " + orDefault(msg, fallback)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
