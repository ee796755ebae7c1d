package store

import (
	"context"
	"errors"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Watches() Watches
	UserWatches() UserWatches

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Watches interface {
	// ListWatches returns all watches with their price history ordered
	// newest-first.
	ListWatches(ctx context.Context) ([]domain.Watch, error)

	// GetWatchByID returns a single watch with its full price history.
	GetWatchByID(ctx context.Context, id string) (domain.Watch, error)

	// CreateWatch inserts a new watch (id provided by the app via ULID).
	CreateWatch(ctx context.Context, w domain.Watch) error

	// AddPricePoint appends a market price observation for a watch.
	AddPricePoint(ctx context.Context, p domain.PricePoint) error
}

type UserWatches interface {
	// ListByUser returns a user's collection entries, newest first, with
	// the referenced watch joined in.
	ListByUser(ctx context.Context, userID string) ([]domain.UserWatch, error)

	// Create inserts a collection entry. Returns ErrAlreadyExists when the
	// user already tracks the watch and ErrNotFound when the watch id does
	// not exist.
	Create(ctx context.Context, uw domain.UserWatch) error

	// Delete removes an entry scoped to its owner. Returns ErrNotFound when
	// no row matches both id and user.
	Delete(ctx context.Context, id, userID string) error
}
