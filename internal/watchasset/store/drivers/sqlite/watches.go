package sqlite

import (
	"context"
	"database/sql"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
)

type watchesRepo struct {
	db *sql.DB
}

func (r *watchesRepo) ListWatches(ctx context.Context) ([]domain.Watch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, brand, model, reference, image_url, created_at
		FROM watches
		ORDER BY brand, model`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var watches []domain.Watch
	for rows.Next() {
		w, err := scanWatch(rows)
		if err != nil {
			return nil, err
		}
		watches = append(watches, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach price history in one pass rather than a query per watch.
	prices, err := r.listAllPrices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range watches {
		watches[i].Prices = prices[watches[i].ID]
	}

	return watches, nil
}

func (r *watchesRepo) GetWatchByID(ctx context.Context, id string) (domain.Watch, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, brand, model, reference, image_url, created_at
		FROM watches
		WHERE id = ?`, id)

	w, err := scanWatch(row)
	if err != nil {
		return domain.Watch{}, mapNotFound(err)
	}

	w.Prices, err = r.listPrices(ctx, id)
	if err != nil {
		return domain.Watch{}, err
	}
	return w, nil
}

func (r *watchesRepo) CreateWatch(ctx context.Context, w domain.Watch) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watches (id, brand, model, reference, image_url)
		VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Brand, w.Model, w.Reference, mapStringNull(w.ImageURL))
	return err
}

func (r *watchesRepo) AddPricePoint(ctx context.Context, p domain.PricePoint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO watch_prices (id, watch_id, price, source, date)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.WatchID, p.Price, p.Source, p.Date)
	return err
}

// listPrices returns the price history for one watch, newest first.
func (r *watchesRepo) listPrices(ctx context.Context, watchID string) ([]domain.PricePoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, watch_id, price, source, date
		FROM watch_prices
		WHERE watch_id = ?
		ORDER BY date DESC`, watchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.ID, &p.WatchID, &p.Price, &p.Source, &p.Date); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// listAllPrices returns every price point grouped by watch id, newest first
// within each group.
func (r *watchesRepo) listAllPrices(ctx context.Context) (map[string][]domain.PricePoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, watch_id, price, source, date
		FROM watch_prices
		ORDER BY watch_id, date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[string][]domain.PricePoint)
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.ID, &p.WatchID, &p.Price, &p.Source, &p.Date); err != nil {
			return nil, err
		}
		grouped[p.WatchID] = append(grouped[p.WatchID], p)
	}
	return grouped, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWatch(row rowScanner) (domain.Watch, error) {
	var (
		w        domain.Watch
		imageURL sql.NullString
	)
	if err := row.Scan(&w.ID, &w.Brand, &w.Model, &w.Reference, &imageURL, &w.CreatedAt); err != nil {
		return domain.Watch{}, err
	}
	w.ImageURL = mapNullString(imageURL)
	return w, nil
}
