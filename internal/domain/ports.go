package domain

import (
	"context"
	"time"
)

// PropertyGateway talks to the property service. Methods return normalized
// results only: transport failures and non-2xx statuses are absorbed at the
// adapter boundary (empty slice, ok=false, Success=false) so the fulfillment
// engine never sees an error.
type PropertyGateway interface {
	FetchAll(ctx context.Context) []Property
	Fetch(ctx context.Context, id string) (Property, bool)
	Delete(ctx context.Context, id, token string) MutationResult
}

// ReservationGateway talks to the reservation service under the same
// normalization contract. CheckAvailability fails open: when the existing
// reservations cannot be fetched it reports Available=true with an
// indeterminate message rather than blocking the user.
type ReservationGateway interface {
	FetchForUser(ctx context.Context, userID, token string) []Reservation
	FetchForProperty(ctx context.Context, propertyID string) []Reservation
	FetchAll(ctx context.Context, token string) []Reservation
	CheckAvailability(ctx context.Context, propertyID, checkIn, checkOut string) Availability
	Create(ctx context.Context, r NewReservation, token string) MutationResult
	Delete(ctx context.Context, id, token string) MutationResult
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// ChatLog is one handled exchange, kept for audit/ops only. It is written
// by the transport layer and never read back into classification.
type ChatLog struct {
	ID        int64     `json:"id"`
	UserID    *string   `json:"user_id"`
	Role      *string   `json:"role"`
	Intent    string    `json:"intent"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatLogRepository interface {
	Record(ctx context.Context, e ChatLog) error
	ListRecent(ctx context.Context, limit int) ([]ChatLog, error)
}
