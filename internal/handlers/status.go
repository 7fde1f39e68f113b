package handlers

import (
	"errors"
	"net/http"

	"menageBack/internal/models"
)

// statusFor maps the service-layer sentinel errors to HTTP status codes.
// Anything unmapped is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrListingNotFound),
		errors.Is(err, models.ErrApplicationNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrInvoiceNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoRecord):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicatePhone),
		errors.Is(err, models.ErrAlreadyApplied),
		errors.Is(err, models.ErrAlreadyReviewed),
		errors.Is(err, models.ErrAlreadyBooked),
		errors.Is(err, models.ErrInvoicePaid),
		errors.Is(err, models.ErrInvalidStatus):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidPassword),
		errors.Is(err, models.ErrInvalidResetCode):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
