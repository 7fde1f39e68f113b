package repositories

import (
	"context"
	"database/sql"

	"menageBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE host_id = ? AND booking_id = ?`,
		rev.HostID, rev.BookingID,
	).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	query := `
INSERT INTO reviews (booking_id, host_id, cleaner_id, rating, review, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.BookingID, rev.HostID, rev.CleanerID, rev.Rating, rev.Review,
	)
	if err != nil {
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	rev.ID = int(id)
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByCleanerID(ctx context.Context, cleanerID int) ([]models.Review, error) {
	query := `
		SELECT r.id, r.booking_id, r.host_id, r.cleaner_id, r.rating, r.review,
		       u.name, u.surname, u.avatar_path,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON r.host_id = u.id
		WHERE r.cleaner_id = ?
		ORDER BY r.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, cleanerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.BookingID, &rev.HostID, &rev.CleanerID, &rev.Rating, &rev.Review,
			&rev.HostName, &rev.HostSurname, &rev.HostAvatarPath,
			&rev.CreatedAt, &rev.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if rev.HostAvatarPath != nil && *rev.HostAvatarPath == "" {
			rev.HostAvatarPath = nil
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// CleanerRating recomputes the aggregate the users table caches.
func (r *ReviewRepository) CleanerRating(ctx context.Context, cleanerID int) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT AVG(rating), COUNT(*) FROM reviews WHERE cleaner_id = ?`, cleanerID,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, rev models.Review) error {
	query := `
		UPDATE reviews
		SET rating = ?, review = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, rev.Rating, rev.Review, rev.ID)
	return err
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	return err
}
