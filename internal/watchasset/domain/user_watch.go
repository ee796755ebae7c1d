package domain

import "time"

// UserWatch is one entry in a user's collection. PurchasePrice and
// PurchaseDate are optional: people track watches they don't own yet.
type UserWatch struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	WatchID       string     `json:"watchId"`
	PurchasePrice *float64   `json:"purchasePrice"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	CreatedAt     time.Time  `json:"createdAt"`

	// Populated on reads so the collection page can render without a
	// second round trip.
	Watch *Watch `json:"watch,omitempty"`
}
