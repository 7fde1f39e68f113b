package handlers

import (
	"encoding/json"
	"net/http"

	"menageBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	listingID, err := intParam(r, "listing_id")
	if err != nil {
		http.Error(w, "Invalid listing_id", http.StatusBadRequest)
		return
	}
	if err := h.Service.AddToFavorites(r.Context(), userID(r), listingID); err != nil {
		http.Error(w, "Failed to add favorite", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	listingID, err := intParam(r, "listing_id")
	if err != nil {
		http.Error(w, "Invalid listing_id", http.StatusBadRequest)
		return
	}
	if err := h.Service.RemoveFromFavorites(r.Context(), userID(r), listingID); err != nil {
		http.Error(w, "Failed to remove favorite", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	listingID, err := intParam(r, "listing_id")
	if err != nil {
		http.Error(w, "Invalid listing_id", http.StatusBadRequest)
		return
	}
	fav, err := h.Service.IsFavorite(r.Context(), userID(r), listingID)
	if err != nil {
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"favorite": fav})
}

func (h *FavoriteHandler) GetMyFavorites(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.GetFavoritesByCleanerID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}
