package domain

import "time"

// Watch is a tracked reference with its market price history.
type Watch struct {
	ID        string       `json:"id"`
	Brand     string       `json:"brand"`
	Model     string       `json:"model"`
	Reference string       `json:"reference"`
	ImageURL  string       `json:"imageUrl,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Prices    []PricePoint `json:"prices"`

	// Derived from the two most recent price points, see service.ComputeQuote.
	CurrentPrice       float64 `json:"currentPrice"`
	PriceChange        float64 `json:"priceChange"`
	PriceChangePercent float64 `json:"priceChangePercent"`
}

// PricePoint is one observed market price for a watch.
type PricePoint struct {
	ID      string    `json:"id"`
	WatchID string    `json:"watchId"`
	Price   float64   `json:"price"`
	Source  string    `json:"source"`
	Date    time.Time `json:"date"`
}
