package service

import (
	"context"
	"testing"
	"time"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
	"github.com/watchasset/watchasset/internal/watchasset/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestWatchServiceListWatches(t *testing.T) {
	ctx := context.Background()
	svc := NewWatchService(newTestStore(t))

	watches, err := svc.ListWatches(ctx)
	require.NoError(t, err)
	require.Len(t, watches, 3)

	byID := make(map[string]int, len(watches))
	for i, w := range watches {
		byID[w.ID] = i
	}
	require.Contains(t, byID, "watch1")
	require.Contains(t, byID, "watch2")
	require.Contains(t, byID, "watch3")

	sub := watches[byID["watch1"]]
	require.Equal(t, "Rolex", sub.Brand)
	require.Len(t, sub.Prices, 3)

	// History is newest first and the summary is derived from the top two.
	require.Equal(t, 14850.0, sub.Prices[0].Price)
	require.Equal(t, 14850.0, sub.CurrentPrice)
	require.Equal(t, 650.0, sub.PriceChange)
	require.Equal(t, 4.58, sub.PriceChangePercent)
}

func TestWatchServiceGetWatch(t *testing.T) {
	ctx := context.Background()
	svc := NewWatchService(newTestStore(t))

	t.Run("returns watch with quote", func(t *testing.T) {
		w, err := svc.GetWatch(ctx, "watch2")
		require.NoError(t, err)
		require.Equal(t, "Patek Philippe", w.Brand)
		require.Equal(t, 122000.0, w.CurrentPrice)
		require.Equal(t, 7000.0, w.PriceChange)
		require.Equal(t, 6.09, w.PriceChangePercent)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetWatch(ctx, "nope")
		require.ErrorIs(t, err, ErrWatchNotFound)
	})
}

func TestWatchServiceEmptyHistoryIsNotNull(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewWatchService(st)

	require.NoError(t, st.Watches().CreateWatch(ctx, domain.Watch{
		ID:        "watch-unpriced",
		Brand:     "Tudor",
		Model:     "Black Bay 58",
		Reference: "79030N",
		CreatedAt: time.Now().UTC(),
	}))

	w, err := svc.GetWatch(ctx, "watch-unpriced")
	require.NoError(t, err)

	// Prices must marshal as [] rather than null when there is no history.
	require.NotNil(t, w.Prices)
	require.Empty(t, w.Prices)
	require.Zero(t, w.CurrentPrice)

	watches, err := svc.ListWatches(ctx)
	require.NoError(t, err)
	for _, got := range watches {
		require.NotNil(t, got.Prices, "watch %s", got.ID)
	}
}
