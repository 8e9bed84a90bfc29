package model

import "time"

// LocationUnknown is the advisory placeholder stored when the best-effort
// geolocation lookup is disabled or fails. It never affects settlement.
const LocationUnknown = "Location N/A"

// Transaction represents one money movement entered by a user.
// Records are immutable once created; edits and deletions happen through
// whole-collection replacement at the storage boundary, never in place.
type Transaction struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"`
	Category        Category  `json:"category"`
	PaidBy          Party     `json:"paidBy"`
	TransactionDate time.Time `json:"transactionDate"`
	EnteredBy       Party     `json:"enteredBy"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	OriginLocation  string    `json:"originLocation,omitempty"`
}
