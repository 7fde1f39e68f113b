package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"menageBack/internal/models"
	"menageBack/internal/services"
)

type ApplicationHandler struct {
	Service *services.ApplicationService
}

func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var app models.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	app.CleanerID = userID(r)
	created, err := h.Service.CreateApplication(r.Context(), app)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyApplied) {
			http.Error(w, "already applied to this listing", http.StatusConflict)
			return
		}
		log.Printf("CreateApplication error: %v", err)
		http.Error(w, "Failed to create application", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ApplicationHandler) GetApplicationsByListingID(w http.ResponseWriter, r *http.Request) {
	listingID, err := intParam(r, "listing_id")
	if err != nil {
		http.Error(w, "Invalid listing_id", http.StatusBadRequest)
		return
	}
	applications, err := h.Service.GetApplicationsByListingID(r.Context(), listingID)
	if err != nil {
		http.Error(w, "Failed to get applications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(applications)
}

func (h *ApplicationHandler) GetMyApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.Service.GetApplicationsByCleanerID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get applications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(applications)
}

func (h *ApplicationHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid application ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.RejectApplication(r.Context(), id); err != nil {
		http.Error(w, "Failed to reject application", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ApplicationHandler) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid application ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.WithdrawApplication(r.Context(), id, userID(r)); err != nil {
		http.Error(w, "Failed to withdraw application", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
