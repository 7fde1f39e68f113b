package repositories

import (
	"context"
	"database/sql"

	"menageBack/internal/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	query := `
INSERT INTO payments (invoice_id, user_id, amount, provider, created_at)
VALUES (?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		payment.InvoiceID, payment.UserID, payment.Amount, payment.Provider,
	)
	if err != nil {
		return models.Payment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Payment{}, err
	}
	payment.ID = int(id)
	return payment, nil
}

func (r *PaymentRepository) GetPaymentHistoryByUserID(ctx context.Context, userID int) ([]models.PaymentHistoryItem, error) {
	query := `
		SELECT p.id, p.invoice_id, p.user_id, p.amount, p.provider, p.created_at,
		       i.id, i.number, i.booking_id, i.user_id, i.base_price, i.commission, i.total_price,
		       i.status, i.created_at, i.paid_at
		FROM payments p
		JOIN invoices i ON p.invoice_id = i.id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.PaymentHistoryItem{}
	for rows.Next() {
		var item models.PaymentHistoryItem
		var invoice models.Invoice
		err := rows.Scan(&item.Payment.ID, &item.Payment.InvoiceID, &item.Payment.UserID,
			&item.Payment.Amount, &item.Payment.Provider, &item.Payment.CreatedAt,
			&invoice.ID, &invoice.Number, &invoice.BookingID, &invoice.UserID,
			&invoice.BasePrice, &invoice.Commission, &invoice.TotalPrice,
			&invoice.Status, &invoice.CreatedAt, &invoice.PaidAt)
		if err != nil {
			return nil, err
		}
		item.Invoice = &invoice
		history = append(history, item)
	}
	return history, rows.Err()
}
