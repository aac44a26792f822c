package app

import (
	"regexp"

	"resabot/internal/domain"
)

// Patterns match anywhere in the text, not on word boundaries; a hex run
// longer than 24 chars still yields its first 24 chars. The reservation
// services use Mongo-style 24-hex identifiers.
var (
	idPattern   = regexp.MustCompile(`[a-fA-F0-9]{24}`)
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Extract pulls a property id and up to two ISO dates out of raw text.
// First id wins, first two dates become check-in then check-out; anything
// beyond that is ignored. Dates are not validated for calendar correctness.
func Extract(message string) domain.Entities {
	var e domain.Entities
	if id := idPattern.FindString(message); id != "" {
		e.PropertyID = id
	}
	dates := datePattern.FindAllString(message, 2)
	if len(dates) >= 1 {
		e.CheckIn = dates[0]
	}
	if len(dates) >= 2 {
		e.CheckOut = dates[1]
	}
	return e
}
