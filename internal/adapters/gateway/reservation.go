package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"resabot/internal/domain"
)

// ReservationClient implements domain.ReservationGateway against the
// reservation service, under the same normalization contract as the
// property client.
type ReservationClient struct{ c *client }

func NewReservationClient(base string, rps int) *ReservationClient {
	return &ReservationClient{c: newClient("reservation", base, rps)}
}

func (r *ReservationClient) FetchForUser(ctx context.Context, userID, token string) []domain.Reservation {
	b, err := r.c.get(ctx, "/api/reservations", token)
	if err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("reservation service: list failed")
		return nil
	}
	return unwrapList[domain.Reservation](b)
}

func (r *ReservationClient) FetchForProperty(ctx context.Context, propertyID string) []domain.Reservation {
	b, err := r.c.get(ctx, "/api/reservations/property/"+propertyID, "")
	if err != nil {
		log.Warn().Err(err).Str("property", propertyID).Msg("reservation service: list by property failed")
		return nil
	}
	return unwrapList[domain.Reservation](b)
}

func (r *ReservationClient) FetchAll(ctx context.Context, token string) []domain.Reservation {
	b, err := r.c.get(ctx, "/api/reservations/all", token)
	if err != nil {
		log.Warn().Err(err).Msg("reservation service: list all failed")
		return nil
	}
	return unwrapList[domain.Reservation](b)
}

// CheckAvailability scans the property's confirmed and pending reservations
// for a date conflict. Ranges are half-open: a request starting exactly on
// an existing end date (or ending on its start date) does not conflict.
// When the existing reservations cannot be fetched the check fails open and
// reports available with an indeterminate message.
func (r *ReservationClient) CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) domain.Availability {
	b, err := r.c.get(ctx, "/api/reservations/property/"+propertyID, "")
	if err != nil {
		log.Warn().Err(err).Str("property", propertyID).Msg("reservation service: availability indeterminate")
		return domain.Availability{Available: true, Message: "Impossible de vérifier la disponibilité."}
	}
	for _, res := range unwrapList[domain.Reservation](b) {
		if res.Status != domain.StatusConfirmed && res.Status != domain.StatusPending {
			continue
		}
		// Dates compare lexicographically (fixed-width YYYY-MM-DD).
		start, end := truncDate(res.StartDate), truncDate(res.EndDate)
		if !(checkOut <= start || checkIn >= end) {
			return domain.Availability{Available: false, Message: "Cette propriété n'est pas disponible pour ces dates."}
		}
	}
	return domain.Availability{Available: true, Message: "La propriété est disponible!"}
}

func (r *ReservationClient) Create(ctx context.Context, nr domain.NewReservation, token string) domain.MutationResult {
	status, body, err := r.c.do(ctx, http.MethodPost, "/api/reservations", token, nr)
	if err != nil {
		log.Warn().Err(err).Str("property", nr.PropertyID).Msg("reservation service: create failed")
		return domain.MutationResult{Success: false, Message: err.Error()}
	}
	if status != http.StatusCreated {
		return domain.MutationResult{Success: false, Message: "Erreur lors de la réservation"}
	}
	var data any
	_ = json.Unmarshal(body, &data)
	return domain.MutationResult{Success: true, Data: data, Message: "Réservation créée avec succès!"}
}

func (r *ReservationClient) Delete(ctx context.Context, id, token string) domain.MutationResult {
	status, _, err := r.c.do(ctx, http.MethodDelete, "/api/reservations/"+id, token, nil)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("reservation service: delete failed")
		return domain.MutationResult{Success: false, Message: err.Error()}
	}
	if status == http.StatusOK || status == http.StatusNoContent {
		return domain.MutationResult{Success: true, Message: "Réservation supprimée avec succès!"}
	}
	return domain.MutationResult{Success: false, Message: "Erreur lors de la suppression"}
}

// truncDate keeps the date prefix of a possibly longer timestamp string.
func truncDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
