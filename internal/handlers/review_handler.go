package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"menageBack/internal/models"
	"menageBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var rev models.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	rev.HostID = userID(r)
	created, err := h.Service.CreateReview(r.Context(), rev)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyReviewed) {
			http.Error(w, "booking already reviewed", http.StatusConflict)
			return
		}
		log.Printf("CreateReview error: %v", err)
		http.Error(w, "Failed to create review", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByCleanerID(w http.ResponseWriter, r *http.Request) {
	cleanerID, err := intParam(r, "cleaner_id")
	if err != nil {
		http.Error(w, "Invalid cleaner_id", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.GetReviewsByCleanerID(r.Context(), cleanerID)
	if err != nil {
		http.Error(w, "Failed to get reviews", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := intParam(r, "id")
	if err != nil || reviewID == 0 {
		http.Error(w, "Invalid or missing review ID", http.StatusBadRequest)
		return
	}

	var rev models.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rev.ID = reviewID
	rev.HostID = userID(r)
	if err := h.Service.UpdateReview(r.Context(), rev); err != nil {
		http.Error(w, "Failed to update review", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	cleanerID, err := intParam(r, "cleaner_id")
	if err != nil {
		http.Error(w, "Invalid cleaner_id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteReview(r.Context(), reviewID, cleanerID); err != nil {
		http.Error(w, "Failed to delete review", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
