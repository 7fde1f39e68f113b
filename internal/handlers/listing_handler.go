package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"menageBack/internal/models"
	"menageBack/internal/services"
)

const maxPhotoSize = 10 << 20 // 10 MB

type ListingHandler struct {
	Service *services.ListingService
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var frontend models.FrontendListing
	if err := json.NewDecoder(r.Body).Decode(&frontend); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateListing(r.Context(), userID(r), frontend)
	if err != nil {
		log.Printf("CreateListing error: %v", err)
		http.Error(w, "Failed to create listing", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	listing, err := h.Service.GetListingByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to get listing", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	listings, err := h.Service.GetListings(r.Context(), page, limit)
	if err != nil {
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.GetListingsByHostID(r.Context(), userID(r))
	if err != nil {
		http.Error(w, "Failed to get listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) GetFilteredListings(w http.ResponseWriter, r *http.Request) {
	var filter models.ListingFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.GetFilteredListings(r.Context(), filter)
	if err != nil {
		log.Printf("GetFilteredListings error: %v", err)
		http.Error(w, "Failed to filter listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	var frontend models.FrontendListing
	if err := json.NewDecoder(r.Body).Decode(&frontend); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateListing(r.Context(), id, userID(r), frontend)
	if err != nil {
		http.Error(w, "Failed to update listing", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteListing(r.Context(), id, userID(r)); err != nil {
		http.Error(w, "Failed to delete listing", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Quote prices the posted listing draft without saving it.
func (h *ListingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var frontend models.FrontendListing
	if err := json.NewDecoder(r.Body).Decode(&frontend); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(h.Service.Quote(r.Context(), frontend))
}

func (h *ListingHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]int64{"views": h.Service.Views(r.Context(), id)})
}

func (h *ListingHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "Missing photo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	url, err := h.Service.AddPhoto(r.Context(), id, userID(r), data, filepath.Ext(header.Filename))
	if err != nil {
		log.Printf("UploadPhoto error: %v", err)
		http.Error(w, "Failed to upload photo", statusFor(err))
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

func (h *ListingHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.RemovePhoto(r.Context(), id, userID(r), req.URL); err != nil {
		http.Error(w, "Failed to delete photo", statusFor(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
