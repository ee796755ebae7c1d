package watchasset_test

import (
	"context"
	"testing"

	"github.com/watchasset/watchasset/pkg/watchsdk"
	"github.com/stretchr/testify/require"
)

func TestPublicWatchCatalogue(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := watchsdk.New(baseURL, watchsdk.NewMemoryStore())

	t.Run("catalogue is seeded and priced", func(t *testing.T) {
		watches, err := client.Watches(ctx)
		require.NoError(t, err)
		require.Len(t, watches, 3)

		for _, w := range watches {
			require.NotEmpty(t, w.ID)
			require.NotEmpty(t, w.Brand)
			require.NotEmpty(t, w.Prices, "every seeded watch has history")
			require.Equal(t, w.Prices[0].Price, w.CurrentPrice,
				"current price is the newest observation")
		}
	})

	t.Run("watch by id carries full history", func(t *testing.T) {
		w, err := client.Watch(ctx, "watch1")
		require.NoError(t, err)
		require.Equal(t, "Rolex", w.Brand)
		require.Len(t, w.Prices, 3)
		require.NotZero(t, w.PriceChange)
		require.NotZero(t, w.PriceChangePercent)
	})

	t.Run("unknown watch id", func(t *testing.T) {
		_, err := client.Watch(ctx, "does-not-exist")

		var apiErr *watchsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 404, apiErr.StatusCode)
	})
}
