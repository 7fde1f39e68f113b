package repositories

import (
	"context"
	"database/sql"
	"errors"

	"menageBack/internal/models"
)

type ApplicationRepository struct {
	DB *sql.DB
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app models.Application) (models.Application, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications WHERE cleaner_id = ? AND listing_id = ?`,
		app.CleanerID, app.ListingID,
	).Scan(&count); err != nil {
		return models.Application{}, err
	}
	if count > 0 {
		return models.Application{}, models.ErrAlreadyApplied
	}

	query := `
INSERT INTO applications (listing_id, cleaner_id, message, status, created_at, updated_at)
VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		app.ListingID, app.CleanerID, app.Message, models.ApplicationPending,
	)
	if err != nil {
		return models.Application{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Application{}, err
	}
	app.ID = int(id)
	app.Status = models.ApplicationPending
	return app, nil
}

func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int) (models.Application, error) {
	query := `
		SELECT a.id, a.listing_id, a.cleaner_id, a.message, a.status,
		       u.name, u.surname, u.review_rating, a.created_at, a.updated_at
		FROM applications a
		JOIN users u ON a.cleaner_id = u.id
		WHERE a.id = ?
	`
	var a models.Application
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.ListingID, &a.CleanerID, &a.Message, &a.Status,
		&a.CleanerName, &a.CleanerSurname, &a.CleanerRating, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Application{}, models.ErrApplicationNotFound
	}
	return a, err
}

func (r *ApplicationRepository) GetApplicationsByListingID(ctx context.Context, listingID int) ([]models.Application, error) {
	query := `
		SELECT a.id, a.listing_id, a.cleaner_id, a.message, a.status,
		       u.name, u.surname, u.review_rating, a.created_at, a.updated_at
		FROM applications a
		JOIN users u ON a.cleaner_id = u.id
		WHERE a.listing_id = ?
		ORDER BY a.created_at ASC
	`
	return r.collect(ctx, query, listingID)
}

func (r *ApplicationRepository) GetApplicationsByCleanerID(ctx context.Context, cleanerID int) ([]models.Application, error) {
	query := `
		SELECT a.id, a.listing_id, a.cleaner_id, a.message, a.status,
		       u.name, u.surname, u.review_rating, a.created_at, a.updated_at
		FROM applications a
		JOIN users u ON a.cleaner_id = u.id
		WHERE a.cleaner_id = ?
		ORDER BY a.created_at DESC
	`
	return r.collect(ctx, query, cleanerID)
}

func (r *ApplicationRepository) UpdateApplicationStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	return err
}

func (r *ApplicationRepository) collect(ctx context.Context, query string, args ...interface{}) ([]models.Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		var a models.Application
		err := rows.Scan(&a.ID, &a.ListingID, &a.CleanerID, &a.Message, &a.Status,
			&a.CleanerName, &a.CleanerSurname, &a.CleanerRating, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}
