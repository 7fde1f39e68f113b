package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"menageBack/internal/models"
)

type ListingRepository struct {
	DB *sql.DB
}

// listingColumns is the SELECT list shared by every query returning full rows.
const listingColumns = `
	l.id, l.host_id, l.title, l.address, l.city, l.postal_code, l.latitude, l.longitude,
	l.accommodation_type, l.date, l.start_time, l.end_time, l.person_count, l.square_meters,
	l.services, l.equipment, l.notes, l.base_price, l.commission, l.total_price,
	l.status, l.booked_cleaners, l.created_at, l.updated_at
`

func (r *ListingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	services, err := json.Marshal(listing.Services)
	if err != nil {
		return models.Listing{}, err
	}
	equipment, err := json.Marshal(listing.Equipment)
	if err != nil {
		return models.Listing{}, err
	}

	query := `
INSERT INTO listings (host_id, title, address, city, postal_code, latitude, longitude,
                      accommodation_type, date, start_time, end_time, person_count, square_meters,
                      services, equipment, notes, base_price, commission, total_price,
                      status, booked_cleaners, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '[]', NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		listing.HostID, listing.Title,
		listing.Location.Address, listing.Location.City, listing.Location.PostalCode,
		coordinate(listing.Location.Coordinates, 0), coordinate(listing.Location.Coordinates, 1),
		listing.AccommodationType, listing.Date, listing.StartTime, listing.EndTime,
		listing.PersonCount, listing.SquareMeters,
		string(services), string(equipment), listing.Notes,
		listing.BasePrice, listing.Commission, listing.TotalPrice,
		listing.Status,
	)
	if err != nil {
		return models.Listing{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Listing{}, err
	}
	listing.ID = int(id)
	return listing, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = ?`
	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}

	applications, err := r.applicationsForListing(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}
	listing.Applications = applications
	return listing, nil
}

func (r *ListingRepository) GetListings(ctx context.Context, status string, page, limit int) ([]models.Listing, error) {
	if limit <= 0 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	query := `SELECT ` + listingColumns + `
		FROM listings l
		WHERE l.status = ?
		ORDER BY l.created_at DESC
		LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *ListingRepository) GetListingsByHostID(ctx context.Context, hostID int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.host_id = ? ORDER BY l.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (r *ListingRepository) GetFilteredListings(ctx context.Context, filter models.ListingFilterRequest) ([]models.Listing, float64, float64, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.status = 'published'`
	args := []interface{}{}

	if len(filter.Cities) > 0 {
		query += ` AND l.city IN (` + placeholders(len(filter.Cities)) + `)`
		for _, c := range filter.Cities {
			args = append(args, c)
		}
	}
	if len(filter.AccommodationTypes) > 0 {
		query += ` AND l.accommodation_type IN (` + placeholders(len(filter.AccommodationTypes)) + `)`
		for _, a := range filter.AccommodationTypes {
			args = append(args, a)
		}
	}
	if filter.PriceFrom > 0 {
		query += ` AND l.total_price >= ?`
		args = append(args, filter.PriceFrom)
	}
	if filter.PriceTo > 0 {
		query += ` AND l.total_price <= ?`
		args = append(args, filter.PriceTo)
	}
	if !filter.DateFrom.IsZero() {
		query += ` AND l.date >= ?`
		args = append(args, filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		query += ` AND l.date <= ?`
		args = append(args, filter.DateTo)
	}

	switch filter.Sorting {
	case 2:
		query += ` ORDER BY l.total_price DESC`
	case 3:
		query += ` ORDER BY l.total_price ASC`
	default:
		query += ` ORDER BY l.created_at DESC`
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, (page-1)*limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()
	listings, err := collectListings(rows)
	if err != nil {
		return nil, 0, 0, err
	}

	// Services are stored as JSON arrays, so that part of the filter is
	// applied after scanning.
	if len(filter.Services) > 0 {
		filtered := listings[:0]
		for _, l := range listings {
			if containsAll(l.Services, filter.Services) {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	var minPrice, maxPrice float64
	err = r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(MIN(total_price), 0), COALESCE(MAX(total_price), 0) FROM listings WHERE status = 'published'`,
	).Scan(&minPrice, &maxPrice)
	if err != nil {
		return nil, 0, 0, err
	}
	return listings, minPrice, maxPrice, nil
}

func (r *ListingRepository) UpdateListing(ctx context.Context, listing models.Listing) error {
	services, err := json.Marshal(listing.Services)
	if err != nil {
		return err
	}
	equipment, err := json.Marshal(listing.Equipment)
	if err != nil {
		return err
	}

	query := `
UPDATE listings
SET title = ?, address = ?, city = ?, postal_code = ?, accommodation_type = ?,
    date = ?, start_time = ?, end_time = ?, person_count = ?, square_meters = ?,
    services = ?, equipment = ?, notes = ?, base_price = ?, commission = ?, total_price = ?,
    updated_at = NOW()
WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		listing.Title,
		listing.Location.Address, listing.Location.City, listing.Location.PostalCode,
		listing.AccommodationType, listing.Date, listing.StartTime, listing.EndTime,
		listing.PersonCount, listing.SquareMeters,
		string(services), string(equipment), listing.Notes,
		listing.BasePrice, listing.Commission, listing.TotalPrice,
		listing.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) UpdateListingStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE listings SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	return err
}

func (r *ListingRepository) AddBookedCleaner(ctx context.Context, listingID, cleanerID int) error {
	listing, err := r.GetListingByID(ctx, listingID)
	if err != nil {
		return err
	}
	for _, id := range listing.BookedCleaners {
		if id == cleanerID {
			return models.ErrAlreadyBooked
		}
	}
	booked, err := json.Marshal(append(listing.BookedCleaners, cleanerID))
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `UPDATE listings SET booked_cleaners = ?, updated_at = NOW() WHERE id = ?`, string(booked), listingID)
	return err
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) AddListingPhoto(ctx context.Context, listingID int, url string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO listing_photos (listing_id, url, created_at) VALUES (?, ?, NOW())`,
		listingID, url)
	return err
}

func (r *ListingRepository) GetListingPhotos(ctx context.Context, listingID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT url FROM listing_photos WHERE listing_id = ? ORDER BY created_at ASC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

func (r *ListingRepository) DeleteListingPhoto(ctx context.Context, listingID int, url string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM listing_photos WHERE listing_id = ? AND url = ?`, listingID, url)
	return err
}

func (r *ListingRepository) applicationsForListing(ctx context.Context, listingID int) ([]models.Application, error) {
	query := `
		SELECT a.id, a.listing_id, a.cleaner_id, a.message, a.status,
		       u.name, u.surname, u.review_rating, a.created_at, a.updated_at
		FROM applications a
		JOIN users u ON a.cleaner_id = u.id
		WHERE a.listing_id = ?
		ORDER BY a.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, listingID)
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

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	var services, equipment, booked []byte
	var lat, lng float64
	err := row.Scan(&l.ID, &l.HostID, &l.Title,
		&l.Location.Address, &l.Location.City, &l.Location.PostalCode, &lat, &lng,
		&l.AccommodationType, &l.Date, &l.StartTime, &l.EndTime, &l.PersonCount, &l.SquareMeters,
		&services, &equipment, &l.Notes, &l.BasePrice, &l.Commission, &l.TotalPrice,
		&l.Status, &booked, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return models.Listing{}, err
	}
	l.Location.Coordinates = []float64{lat, lng}
	if err := json.Unmarshal(services, &l.Services); err != nil {
		l.Services = []string{}
	}
	if err := json.Unmarshal(equipment, &l.Equipment); err != nil {
		l.Equipment = models.EquipmentSet{}
	}
	if err := json.Unmarshal(booked, &l.BookedCleaners); err != nil {
		l.BookedCleaners = []int{}
	}
	return l, nil
}

func collectListings(rows *sql.Rows) ([]models.Listing, error) {
	listings := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func coordinate(coords []float64, idx int) float64 {
	if idx < len(coords) {
		return coords[idx]
	}
	return 0
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	out := "?"
	for i := 1; i < n; i++ {
		out += ", ?"
	}
	return out
}

func containsAll(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[h] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
