package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"menageBack/internal/models"
	"menageBack/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func (h *PaymentHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := intParam(r, "invoice_id")
	if err != nil {
		http.Error(w, "Invalid invoice ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Provider string `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Provider == "" {
		req.Provider = "card"
	}
	payment, err := h.Service.PayInvoice(r.Context(), invoiceID, userID(r), req.Provider)
	if err != nil {
		if errors.Is(err, models.ErrInvoicePaid) {
			http.Error(w, "invoice already paid", http.StatusConflict)
			return
		}
		log.Printf("PayInvoice error: %v", err)
		http.Error(w, "Failed to pay invoice", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payment)
}

func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Service.GetPaymentHistory(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get payment history", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(history)
}
