package services

import (
	"context"

	"menageBack/internal/listing/shape"
	"menageBack/internal/models"
	"menageBack/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
	ListingRepo  *repositories.ListingRepository
}

func (s *FavoriteService) AddToFavorites(ctx context.Context, cleanerID, listingID int) error {
	if _, err := s.ListingRepo.GetListingByID(ctx, listingID); err != nil {
		return err
	}
	return s.FavoriteRepo.AddToFavorites(ctx, cleanerID, listingID)
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, cleanerID, listingID int) error {
	return s.FavoriteRepo.RemoveFromFavorites(ctx, cleanerID, listingID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, cleanerID, listingID int) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, cleanerID, listingID)
}

func (s *FavoriteService) GetFavoritesByCleanerID(ctx context.Context, cleanerID int) ([]models.FrontendListing, error) {
	listings, err := s.FavoriteRepo.GetFavoritesByCleanerID(ctx, cleanerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.FrontendListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, shape.ToFrontend(l))
	}
	return out, nil
}
