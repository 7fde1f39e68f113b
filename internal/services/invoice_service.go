package services

import (
	"context"

	"menageBack/internal/models"
	"menageBack/internal/repositories"
)

type InvoiceService struct {
	InvoiceRepo *repositories.InvoiceRepository
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id, userID int) (models.Invoice, error) {
	invoice, err := s.InvoiceRepo.GetInvoiceByID(ctx, id)
	if err != nil {
		return models.Invoice{}, err
	}
	if invoice.UserID != userID {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return invoice, nil
}

func (s *InvoiceService) GetInvoicesByUserID(ctx context.Context, userID int) ([]models.Invoice, error) {
	return s.InvoiceRepo.GetInvoicesByUserID(ctx, userID)
}
