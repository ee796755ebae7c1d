package service

import (
	"math"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
)

// Quote is the market summary derived from a watch's price history.
type Quote struct {
	CurrentPrice       float64
	PriceChange        float64
	PriceChangePercent float64
}

// ComputeQuote derives the market summary from a price history ordered
// newest-first. With fewer than two points there is nothing to compare
// against, so change and percent stay zero. The percent is rounded to two
// decimals for display.
func ComputeQuote(prices []domain.PricePoint) Quote {
	if len(prices) == 0 {
		return Quote{}
	}

	current := prices[0].Price
	if len(prices) < 2 {
		return Quote{CurrentPrice: current}
	}

	previous := prices[1].Price
	change := current - previous

	var percent float64
	if previous != 0 {
		percent = round2(change / previous * 100)
	}

	return Quote{
		CurrentPrice:       current,
		PriceChange:        change,
		PriceChangePercent: percent,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
