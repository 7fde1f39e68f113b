package handlers

import (
	"encoding/json"
	"net/http"

	"menageBack/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid invoice ID", http.StatusBadRequest)
		return
	}
	invoice, err := h.Service.GetInvoiceByID(r.Context(), id, userID(r))
	if err != nil {
		http.Error(w, "Failed to get invoice", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(invoice)
}

func (h *InvoiceHandler) GetMyInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.GetInvoicesByUserID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get invoices", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(invoices)
}
