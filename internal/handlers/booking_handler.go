package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"menageBack/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) AcceptApplication(w http.ResponseWriter, r *http.Request) {
	applicationID, err := intParam(r, "application_id")
	if err != nil {
		http.Error(w, "Invalid application ID", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.AcceptApplication(r.Context(), applicationID, userID(r))
	if err != nil {
		log.Printf("AcceptApplication error: %v", err)
		http.Error(w, "Failed to accept application", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	invoice, err := h.Service.CompleteBooking(r.Context(), id, userID(r))
	if err != nil {
		log.Printf("CompleteBooking error: %v", err)
		http.Error(w, "Failed to complete booking", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(invoice)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.CancelBooking(r.Context(), id, userID(r)); err != nil {
		http.Error(w, "Failed to cancel booking", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.GetBookingByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to get booking", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetHostBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsByHostID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get bookings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetCleanerBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsByCleanerID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get bookings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(bookings)
}
