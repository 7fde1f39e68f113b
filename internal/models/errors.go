package models

import (
	"errors"
)

var ErrListingNotFound = errors.New("models: listing not found")
var ErrApplicationNotFound = errors.New("models: application not found")
var ErrBookingNotFound = errors.New("models: booking not found")
var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicatePhone     = errors.New("models: duplicate phone number")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidPassword    = errors.New("models: invalid password")
	ErrAlreadyApplied     = errors.New("models: user already applied to listing")
	ErrAlreadyReviewed    = errors.New("models: user already reviewed booking")
	ErrAlreadyBooked      = errors.New("models: cleaner already booked for listing")
	ErrInvoiceNotFound    = errors.New("models: invoice not found")
	ErrInvoicePaid        = errors.New("models: invoice already paid")
	ErrReviewNotFound     = errors.New("models: review not found")
	ErrInvalidResetCode   = errors.New("models: invalid or expired reset code")
	ErrInvalidStatus      = errors.New("models: invalid status transition")
)
