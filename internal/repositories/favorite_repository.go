package repositories

import (
	"context"
	"database/sql"

	"menageBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, cleanerID, listingID int) error {
	query := `
INSERT INTO favorites (cleaner_id, listing_id, created_at)
VALUES (?, ?, NOW())
ON DUPLICATE KEY UPDATE created_at = created_at
	`
	_, err := r.DB.ExecContext(ctx, query, cleanerID, listingID)
	return err
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, cleanerID, listingID int) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE cleaner_id = ? AND listing_id = ?`, cleanerID, listingID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, cleanerID, listingID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE cleaner_id = ? AND listing_id = ?`,
		cleanerID, listingID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FavoriteRepository) GetFavoritesByCleanerID(ctx context.Context, cleanerID int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM favorites f
		JOIN listings l ON f.listing_id = l.id
		WHERE f.cleaner_id = ?
		ORDER BY f.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, cleanerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}
