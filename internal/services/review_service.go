package services

import (
	"context"

	"menageBack/internal/models"
	"menageBack/internal/repositories"
)

type ReviewService struct {
	ReviewRepo  *repositories.ReviewRepository
	BookingRepo *repositories.BookingRepository
	UserRepo    *repositories.UserRepository
	Notifier    Notifier
}

// CreateReview lets a host rate the cleaner of a completed booking, then
// refreshes the cleaner's aggregated rating.
func (s *ReviewService) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	booking, err := s.BookingRepo.GetBookingByID(ctx, rev.BookingID)
	if err != nil {
		return models.Review{}, err
	}
	if booking.HostID != rev.HostID {
		return models.Review{}, models.ErrBookingNotFound
	}
	if booking.Status != models.BookingCompleted {
		return models.Review{}, models.ErrInvalidStatus
	}
	rev.CleanerID = booking.CleanerID

	created, err := s.ReviewRepo.CreateReview(ctx, rev)
	if err != nil {
		return models.Review{}, err
	}

	if err := s.refreshRating(ctx, rev.CleanerID); err != nil {
		return models.Review{}, err
	}

	s.notify(ctx, models.Notification{
		UserID: rev.CleanerID,
		Title:  "Nouvel avis",
		Body:   "Un hôte a laissé un avis sur votre travail",
	})
	return created, nil
}

func (s *ReviewService) GetReviewsByCleanerID(ctx context.Context, cleanerID int) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByCleanerID(ctx, cleanerID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, rev models.Review) error {
	if err := s.ReviewRepo.UpdateReview(ctx, rev); err != nil {
		return err
	}
	return s.refreshRating(ctx, rev.CleanerID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id, cleanerID int) error {
	if err := s.ReviewRepo.DeleteReview(ctx, id); err != nil {
		return err
	}
	return s.refreshRating(ctx, cleanerID)
}

func (s *ReviewService) refreshRating(ctx context.Context, cleanerID int) error {
	rating, count, err := s.ReviewRepo.CleanerRating(ctx, cleanerID)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdateUserRating(ctx, cleanerID, rating, count)
}

func (s *ReviewService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, n)
}
