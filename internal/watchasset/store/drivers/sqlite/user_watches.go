package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
	"github.com/watchasset/watchasset/internal/watchasset/store"
)

type userWatchesRepo struct {
	db *sql.DB
}

func (r *userWatchesRepo) ListByUser(ctx context.Context, userID string) ([]domain.UserWatch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uw.id, uw.user_id, uw.watch_id, uw.purchase_price, uw.purchase_date, uw.created_at,
		       w.id, w.brand, w.model, w.reference, w.image_url, w.created_at
		FROM user_watches uw
		JOIN watches w ON w.id = uw.watch_id
		WHERE uw.user_id = ?
		ORDER BY uw.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.UserWatch
	for rows.Next() {
		var (
			uw            domain.UserWatch
			w             domain.Watch
			purchasePrice sql.NullFloat64
			purchaseDate  sql.NullTime
			imageURL      sql.NullString
		)
		if err := rows.Scan(
			&uw.ID, &uw.UserID, &uw.WatchID, &purchasePrice, &purchaseDate, &uw.CreatedAt,
			&w.ID, &w.Brand, &w.Model, &w.Reference, &imageURL, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		uw.PurchasePrice = mapNullFloatPtr(purchasePrice)
		uw.PurchaseDate = mapNullTimePtr(purchaseDate)
		w.ImageURL = mapNullString(imageURL)
		uw.Watch = &w
		entries = append(entries, uw)
	}
	return entries, rows.Err()
}

func (r *userWatchesRepo) Create(ctx context.Context, uw domain.UserWatch) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_watches (id, user_id, watch_id, purchase_price, purchase_date)
		VALUES (?, ?, ?, ?, ?)`,
		uw.ID, uw.UserID, uw.WatchID,
		mapOptionalFloat(uw.PurchasePrice), mapOptionalTime(uw.PurchaseDate))
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *userWatchesRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_watches
		WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// mapConstraint translates sqlite constraint violations into store sentinels:
// a UNIQUE(user_id, watch_id) violation means the entry already exists, an FK
// violation means the referenced watch does not.
func mapConstraint(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return store.ErrAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return store.ErrNotFound
	}
	return err
}
