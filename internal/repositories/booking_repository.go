package repositories

import (
	"context"
	"database/sql"
	"errors"

	"menageBack/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	query := `
INSERT INTO bookings (listing_id, application_id, host_id, cleaner_id, status, total_price, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		booking.ListingID, booking.ApplicationID, booking.HostID, booking.CleanerID,
		models.BookingBooked, booking.TotalPrice,
	)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	booking.ID = int(id)
	booking.Status = models.BookingBooked
	return booking, nil
}

const bookingColumns = `
	b.id, b.listing_id, b.application_id, b.host_id, b.cleaner_id, b.status, b.total_price,
	l.title, l.date, l.start_time, l.end_time, b.created_at, b.updated_at
`

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.ListingID, &b.ApplicationID, &b.HostID, &b.CleanerID, &b.Status, &b.TotalPrice,
		&b.ListingTitle, &b.Date, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b JOIN listings l ON b.listing_id = l.id
		WHERE b.id = ?`
	booking, err := scanBooking(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return booking, err
}

func (r *BookingRepository) GetBookingsByHostID(ctx context.Context, hostID int) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b JOIN listings l ON b.listing_id = l.id
		WHERE b.host_id = ?
		ORDER BY b.created_at DESC`
	return r.collect(ctx, query, hostID)
}

func (r *BookingRepository) GetBookingsByCleanerID(ctx context.Context, cleanerID int) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b JOIN listings l ON b.listing_id = l.id
		WHERE b.cleaner_id = ?
		ORDER BY b.created_at DESC`
	return r.collect(ctx, query, cleanerID)
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) collect(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
