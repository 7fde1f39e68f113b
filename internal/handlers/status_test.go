package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"menageBack/internal/models"
)

func TestStatusFor(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		for _, err := range []error{models.ErrListingNotFound, models.ErrBookingNotFound, models.ErrUserNotFound} {
			if status := statusFor(err); status != http.StatusNotFound {
				t.Fatalf("expected %d for %v, got %d", http.StatusNotFound, err, status)
			}
		}
	})

	t.Run("conflict", func(t *testing.T) {
		for _, err := range []error{models.ErrAlreadyApplied, models.ErrInvoicePaid, models.ErrInvalidStatus} {
			if status := statusFor(err); status != http.StatusConflict {
				t.Fatalf("expected %d for %v, got %d", http.StatusConflict, err, status)
			}
		}
	})

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		wrapped := fmt.Errorf("accepting: %w", models.ErrApplicationNotFound)
		if status := statusFor(wrapped); status != http.StatusNotFound {
			t.Fatalf("expected %d, got %d", http.StatusNotFound, status)
		}
	})

	t.Run("defaults to 500", func(t *testing.T) {
		if status := statusFor(errors.New("boom")); status != http.StatusInternalServerError {
			t.Fatalf("expected %d, got %d", http.StatusInternalServerError, status)
		}
	})
}

func TestGetParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/listings?:id=42", nil)
	if got := getParam(r, "id"); got != "42" {
		t.Fatalf("expected colon param, got %q", got)
	}

	r = httptest.NewRequest(http.MethodGet, "/listings?id=7", nil)
	if got := getParam(r, "id"); got != "7" {
		t.Fatalf("expected plain param, got %q", got)
	}

	id, err := intParam(r, "id")
	if err != nil || id != 7 {
		t.Fatalf("expected 7, got %d (err %v)", id, err)
	}
}
