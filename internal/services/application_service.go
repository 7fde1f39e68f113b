package services

import (
	"context"
	"fmt"

	"menageBack/internal/models"
	"menageBack/internal/repositories"
)

type ApplicationService struct {
	ApplicationRepo *repositories.ApplicationRepository
	ListingRepo     *repositories.ListingRepository
	Notifier        Notifier
}

func (s *ApplicationService) CreateApplication(ctx context.Context, app models.Application) (models.Application, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, app.ListingID)
	if err != nil {
		return models.Application{}, err
	}

	created, err := s.ApplicationRepo.CreateApplication(ctx, app)
	if err != nil {
		return models.Application{}, err
	}

	s.notify(ctx, models.Notification{
		UserID: listing.HostID,
		Title:  "Nouvelle candidature",
		Body:   fmt.Sprintf("Un agent de ménage a postulé à « %s »", listing.Title),
		Link:   fmt.Sprintf("/listings/%d/applications", listing.ID),
	})
	return created, nil
}

func (s *ApplicationService) GetApplicationsByListingID(ctx context.Context, listingID int) ([]models.Application, error) {
	return s.ApplicationRepo.GetApplicationsByListingID(ctx, listingID)
}

func (s *ApplicationService) GetApplicationsByCleanerID(ctx context.Context, cleanerID int) ([]models.Application, error) {
	return s.ApplicationRepo.GetApplicationsByCleanerID(ctx, cleanerID)
}

func (s *ApplicationService) RejectApplication(ctx context.Context, id int) error {
	app, err := s.ApplicationRepo.GetApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ApplicationRepo.UpdateApplicationStatus(ctx, id, models.ApplicationRejected); err != nil {
		return err
	}
	s.notify(ctx, models.Notification{
		UserID: app.CleanerID,
		Title:  "Candidature refusée",
		Body:   "Votre candidature n'a pas été retenue",
	})
	return nil
}

func (s *ApplicationService) WithdrawApplication(ctx context.Context, id, cleanerID int) error {
	app, err := s.ApplicationRepo.GetApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if app.CleanerID != cleanerID {
		return models.ErrApplicationNotFound
	}
	return s.ApplicationRepo.DeleteApplication(ctx, id)
}

func (s *ApplicationService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, n)
}
