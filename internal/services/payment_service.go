package services

import (
	"context"

	"menageBack/internal/models"
	"menageBack/internal/repositories"
)

type PaymentService struct {
	PaymentRepo *repositories.PaymentRepository
	InvoiceRepo *repositories.InvoiceRepository
	Notifier    Notifier
}

// PayInvoice records a payment against an issued invoice and marks it paid.
func (s *PaymentService) PayInvoice(ctx context.Context, invoiceID, userID int, provider string) (models.Payment, error) {
	invoice, err := s.InvoiceRepo.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return models.Payment{}, err
	}
	if invoice.UserID != userID {
		return models.Payment{}, models.ErrInvoiceNotFound
	}

	if err := s.InvoiceRepo.MarkInvoicePaid(ctx, invoiceID); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.PaymentRepo.CreatePayment(ctx, models.Payment{
		InvoiceID: invoiceID,
		UserID:    userID,
		Amount:    invoice.TotalPrice,
		Provider:  provider,
	})
	if err != nil {
		return models.Payment{}, err
	}

	s.notify(ctx, models.Notification{
		UserID: userID,
		Title:  "Paiement confirmé",
		Body:   "Votre facture " + invoice.Number + " a été réglée",
	})
	return payment, nil
}

func (s *PaymentService) GetPaymentHistory(ctx context.Context, userID int) ([]models.PaymentHistoryItem, error) {
	return s.PaymentRepo.GetPaymentHistoryByUserID(ctx, userID)
}

func (s *PaymentService) notify(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(ctx, n)
}
