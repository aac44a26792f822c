package domain

// Reservation statuses used by the reservation service. Only pending and
// confirmed block availability.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
)

type Property struct {
	ID       string  `json:"_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
}

// Reservation dates are ISO `YYYY-MM-DD` strings; the fixed-width zero-padded
// format makes lexicographic comparison valid.
type Reservation struct {
	ID         string `json:"_id"`
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

// NewReservation is the creation payload sent to the reservation service.
type NewReservation struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// MutationResult is the normalized outcome of a mutating gateway call.
type MutationResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// Availability is the normalized outcome of an availability check.
type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
