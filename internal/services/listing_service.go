package services

import (
	"context"
	"path"

	"menageBack/internal/listing/pricing"
	"menageBack/internal/listing/shape"
	"menageBack/internal/models"
	"menageBack/internal/repositories"
	"menageBack/utils"

	"github.com/google/uuid"
)

// ListingService accepts listings in the shape the mobile app produces,
// normalizes them through the adapter and prices them when the payload
// carries no breakdown.
type ListingService struct {
	ListingRepo *repositories.ListingRepository
	ViewsRepo   *repositories.ViewCounterRepository
}

func (s *ListingService) CreateListing(ctx context.Context, hostID int, frontend models.FrontendListing) (models.FrontendListing, error) {
	listing := shape.ToBackend(frontend)
	listing.HostID = hostID
	listing.Status = models.ListingPublished

	if listing.TotalPrice == nil {
		breakdown := pricing.Compute(frontend)
		listing.BasePrice = &breakdown.BaseAmount
		listing.Commission = &breakdown.Commission
		listing.TotalPrice = &breakdown.TotalAmount
	}

	created, err := s.ListingRepo.CreateListing(ctx, listing)
	if err != nil {
		return models.FrontendListing{}, err
	}
	return shape.ToFrontend(created), nil
}

func (s *ListingService) GetListingByID(ctx context.Context, id int) (models.FrontendListing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.FrontendListing{}, err
	}
	if s.ViewsRepo != nil {
		// view counts are best-effort
		_, _ = s.ViewsRepo.IncrementViews(ctx, id)
	}
	frontend := shape.ToFrontend(listing)
	frontend.Photos, _ = s.ListingRepo.GetListingPhotos(ctx, id)
	return frontend, nil
}

func (s *ListingService) GetListings(ctx context.Context, page, limit int) ([]models.FrontendListing, error) {
	listings, err := s.ListingRepo.GetListings(ctx, models.ListingPublished, page, limit)
	if err != nil {
		return nil, err
	}
	return toFrontendList(listings), nil
}

func (s *ListingService) GetListingsByHostID(ctx context.Context, hostID int) ([]models.FrontendListing, error) {
	listings, err := s.ListingRepo.GetListingsByHostID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return toFrontendList(listings), nil
}

func (s *ListingService) GetFilteredListings(ctx context.Context, filter models.ListingFilterRequest) (models.ListingListResponse, error) {
	listings, minPrice, maxPrice, err := s.ListingRepo.GetFilteredListings(ctx, filter)
	if err != nil {
		return models.ListingListResponse{}, err
	}
	return models.ListingListResponse{
		Listings: toFrontendList(listings),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Total:    len(listings),
	}, nil
}

func (s *ListingService) UpdateListing(ctx context.Context, id, hostID int, frontend models.FrontendListing) (models.FrontendListing, error) {
	existing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.FrontendListing{}, err
	}
	if existing.HostID != hostID {
		return models.FrontendListing{}, models.ErrListingNotFound
	}

	listing := shape.ToBackend(frontend)
	listing.ID = id
	listing.HostID = hostID
	if listing.TotalPrice == nil {
		breakdown := pricing.Compute(frontend)
		listing.BasePrice = &breakdown.BaseAmount
		listing.Commission = &breakdown.Commission
		listing.TotalPrice = &breakdown.TotalAmount
	}

	if err := s.ListingRepo.UpdateListing(ctx, listing); err != nil {
		return models.FrontendListing{}, err
	}
	updated, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return models.FrontendListing{}, err
	}
	return shape.ToFrontend(updated), nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id, hostID int) error {
	existing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.HostID != hostID {
		return models.ErrListingNotFound
	}
	return s.ListingRepo.DeleteListing(ctx, id)
}

// AddPhoto uploads a listing photo to object storage under a generated name
// and records its URL. Only the listing's host may add photos.
func (s *ListingService) AddPhoto(ctx context.Context, id, hostID int, data []byte, ext string) (string, error) {
	existing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return "", err
	}
	if existing.HostID != hostID {
		return "", models.ErrListingNotFound
	}

	name := uuid.New().String() + ext
	url, err := utils.UploadFileToS3(data, name, "listings")
	if err != nil {
		return "", err
	}
	if err := s.ListingRepo.AddListingPhoto(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *ListingService) RemovePhoto(ctx context.Context, id, hostID int, url string) error {
	existing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.HostID != hostID {
		return models.ErrListingNotFound
	}
	if err := s.ListingRepo.DeleteListingPhoto(ctx, id, url); err != nil {
		return err
	}
	// best-effort: the DB row is the source of truth
	_ = utils.DeleteFileFromS3(path.Base(url), "listings")
	return nil
}

// Quote prices a draft listing without persisting anything; the app's form
// calls this while the host is still editing.
func (s *ListingService) Quote(ctx context.Context, frontend models.FrontendListing) models.PriceBreakdown {
	return pricing.Compute(frontend)
}

func (s *ListingService) Views(ctx context.Context, id int) int64 {
	if s.ViewsRepo == nil {
		return 0
	}
	count, err := s.ViewsRepo.Views(ctx, id)
	if err != nil {
		return 0
	}
	return count
}

func toFrontendList(listings []models.Listing) []models.FrontendListing {
	out := make([]models.FrontendListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, shape.ToFrontend(l))
	}
	return out
}
