package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
	"github.com/watchasset/watchasset/internal/watchasset/store"
	"github.com/watchasset/watchasset/pkg/idx"
)

var (
	ErrMissingWatchID       = errors.New("service: watchId is required")
	ErrInvalidPurchasePrice = errors.New("service: purchasePrice must be a number")
	ErrInvalidPurchaseDate  = errors.New("service: purchaseDate must be an ISO date")
	ErrDuplicateUserWatch   = errors.New("service: watch already in collection")
	ErrUserWatchNotFound    = errors.New("service: watch not found in collection")
)

// UserWatchService manages a user's personal collection.
type UserWatchService struct {
	store store.Store
}

func NewUserWatchService(st store.Store) *UserWatchService {
	return &UserWatchService{store: st}
}

// ListCollection returns the user's entries, newest first, with watch details
// joined in.
func (s *UserWatchService) ListCollection(ctx context.Context, userID string) ([]domain.UserWatch, error) {
	entries, err := s.store.UserWatches().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.UserWatch{}
	}
	return entries, nil
}

// AddToCollection validates and creates a collection entry. purchasePrice and
// purchaseDate arrive as the raw strings the form submitted and may be empty.
func (s *UserWatchService) AddToCollection(
	ctx context.Context,
	userID, watchID, purchasePrice, purchaseDate string,
) (domain.UserWatch, error) {
	if watchID == "" {
		return domain.UserWatch{}, ErrMissingWatchID
	}

	entry := domain.UserWatch{
		ID:        idx.New().String(),
		UserID:    userID,
		WatchID:   watchID,
		CreatedAt: time.Now().UTC(),
	}

	if purchasePrice != "" {
		price, err := strconv.ParseFloat(purchasePrice, 64)
		if err != nil {
			return domain.UserWatch{}, ErrInvalidPurchasePrice
		}
		entry.PurchasePrice = &price
	}

	if purchaseDate != "" {
		date, err := parseDate(purchaseDate)
		if err != nil {
			return domain.UserWatch{}, ErrInvalidPurchaseDate
		}
		entry.PurchaseDate = &date
	}

	if err := s.store.UserWatches().Create(ctx, entry); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.UserWatch{}, ErrDuplicateUserWatch
		case errors.Is(err, store.ErrNotFound):
			return domain.UserWatch{}, ErrWatchNotFound
		}
		return domain.UserWatch{}, err
	}

	return entry, nil
}

// RemoveFromCollection deletes an entry owned by the user.
func (s *UserWatchService) RemoveFromCollection(ctx context.Context, id, userID string) error {
	err := s.store.UserWatches().Delete(ctx, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserWatchNotFound
	}
	return err
}

// parseDate accepts a bare ISO date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
