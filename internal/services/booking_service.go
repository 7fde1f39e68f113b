package services

import (
	"context"
	"fmt"
	"strings"

	"menageBack/internal/models"
	"menageBack/internal/repositories"

	"github.com/google/uuid"
)

type BookingService struct {
	BookingRepo     *repositories.BookingRepository
	ApplicationRepo *repositories.ApplicationRepository
	ListingRepo     *repositories.ListingRepository
	InvoiceRepo     *repositories.InvoiceRepository
	Notifier        Notifier
}

// AcceptApplication turns a pending application into a booking. The listing
// moves to "booked" and the cleaner is recorded on it; other cleaners can
// still see the listing in their history but can no longer apply.
func (s *BookingService) AcceptApplication(ctx context.Context, applicationID, hostID int) (models.Booking, error) {
	app, err := s.ApplicationRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return models.Booking{}, err
	}
	if app.Status != models.ApplicationPending {
		return models.Booking{}, models.ErrInvalidStatus
	}

	listing, err := s.ListingRepo.GetListingByID(ctx, app.ListingID)
	if err != nil {
		return models.Booking{}, err
	}
	if listing.HostID != hostID {
		return models.Booking{}, models.ErrListingNotFound
	}

	booking := models.Booking{
		ListingID:     listing.ID,
		ApplicationID: app.ID,
		HostID:        listing.HostID,
		CleanerID:     app.CleanerID,
		Status:        models.BookingBooked,
		Date:          listing.Date,
		StartTime:     listing.StartTime,
		EndTime:       listing.EndTime,
	}
	if listing.TotalPrice != nil {
		booking.TotalPrice = *listing.TotalPrice
	}

	created, err := s.BookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return models.Booking{}, err
	}

	if err := s.ApplicationRepo.UpdateApplicationStatus(ctx, app.ID, models.ApplicationAccepted); err != nil {
		return models.Booking{}, err
	}
	if err := s.ListingRepo.AddBookedCleaner(ctx, listing.ID, app.CleanerID); err != nil {
		return models.Booking{}, err
	}
	if err := s.ListingRepo.UpdateListingStatus(ctx, listing.ID, models.ListingBooked); err != nil {
		return models.Booking{}, err
	}

	s.notify(ctx, models.Notification{
		UserID: app.CleanerID,
		Title:  "Candidature acceptée",
		Body:   fmt.Sprintf("Vous êtes réservé pour « %s »", listing.Title),
		Link:   fmt.Sprintf("/bookings/%d", created.ID),
	})
	return created, nil
}

// CompleteBooking marks the booking and its listing completed and issues the
// host an invoice carrying the listing's price breakdown.
func (s *BookingService) CompleteBooking(ctx context.Context, bookingID, hostID int) (models.Invoice, error) {
	booking, err := s.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Invoice{}, err
	}
	if booking.HostID != hostID {
		return models.Invoice{}, models.ErrBookingNotFound
	}
	if booking.Status != models.BookingBooked {
		return models.Invoice{}, models.ErrInvalidStatus
	}

	listing, err := s.ListingRepo.GetListingByID(ctx, booking.ListingID)
	if err != nil {
		return models.Invoice{}, err
	}

	if err := s.BookingRepo.UpdateBookingStatus(ctx, booking.ID, models.BookingCompleted); err != nil {
		return models.Invoice{}, err
	}
	if err := s.ListingRepo.UpdateListingStatus(ctx, listing.ID, models.ListingCompleted); err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		Number:    invoiceNumber(),
		BookingID: booking.ID,
		UserID:    booking.HostID,
		Status:    models.InvoiceIssued,
	}
	if listing.BasePrice != nil {
		invoice.BasePrice = *listing.BasePrice
	}
	if listing.Commission != nil {
		invoice.Commission = *listing.Commission
	}
	if listing.TotalPrice != nil {
		invoice.TotalPrice = *listing.TotalPrice
	} else {
		invoice.TotalPrice = booking.TotalPrice
	}

	created, err := s.InvoiceRepo.CreateInvoice(ctx, invoice)
	if err != nil {
		return models.Invoice{}, err
	}

	s.notify(ctx, models.Notification{
		UserID: booking.CleanerID,
		Title:  "Mission terminée",
		Body:   "Le ménage a été marqué comme terminé par l'hôte",
		Link:   fmt.Sprintf("/bookings/%d", booking.ID),
	})
	return created, nil
}

// CancelBooking can be called by either side of the booking. The listing
// returns to "published" so the host can take new applications.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID int) error {
	booking, err := s.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.HostID != userID && booking.CleanerID != userID {
		return models.ErrBookingNotFound
	}
	if booking.Status != models.BookingBooked {
		return models.ErrInvalidStatus
	}

	if err := s.BookingRepo.UpdateBookingStatus(ctx, booking.ID, models.BookingCancelled); err != nil {
		return err
	}
	if err := s.ListingRepo.UpdateListingStatus(ctx, booking.ListingID, models.ListingPublished); err != nil {
		return err
	}

	other := booking.CleanerID
	if userID == booking.CleanerID {
		other = booking.HostID
	}
	s.notify(ctx, models.Notification{
		UserID: other,
		Title:  "Réservation annulée",
		Body:   "La réservation a été annulée",
		Link:   fmt.Sprintf("/bookings/%d", booking.ID),
	})
	return nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	return s.BookingRepo.GetBookingByID(ctx, id)
}

func (s *BookingService) GetBookingsByHostID(ctx context.Context, hostID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByHostID(ctx, hostID)
}

func (s *BookingService) GetBookingsByCleanerID(ctx context.Context, cleanerID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByCleanerID(ctx, cleanerID)
}

func (s *BookingService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, n)
}

func invoiceNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "FA-" + id[:12]
}
