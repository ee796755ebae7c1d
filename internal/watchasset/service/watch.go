package service

import (
	"context"
	"errors"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
	"github.com/watchasset/watchasset/internal/watchasset/store"
)

var ErrWatchNotFound = errors.New("service: watch not found")

// WatchService serves the public watch catalogue with derived pricing.
type WatchService struct {
	store store.Store
}

func NewWatchService(st store.Store) *WatchService {
	return &WatchService{store: st}
}

// ListWatches returns every watch with its price history and market summary.
func (s *WatchService) ListWatches(ctx context.Context) ([]domain.Watch, error) {
	watches, err := s.store.Watches().ListWatches(ctx)
	if err != nil {
		return nil, err
	}

	for i := range watches {
		applyQuote(&watches[i])
	}
	return watches, nil
}

// GetWatch returns one watch with its full price history and market summary.
func (s *WatchService) GetWatch(ctx context.Context, id string) (domain.Watch, error) {
	w, err := s.store.Watches().GetWatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Watch{}, ErrWatchNotFound
		}
		return domain.Watch{}, err
	}

	applyQuote(&w)
	return w, nil
}

func applyQuote(w *domain.Watch) {
	// An empty history serializes as [] rather than null.
	if w.Prices == nil {
		w.Prices = []domain.PricePoint{}
	}

	q := ComputeQuote(w.Prices)
	w.CurrentPrice = q.CurrentPrice
	w.PriceChange = q.PriceChange
	w.PriceChangePercent = q.PriceChangePercent
}
