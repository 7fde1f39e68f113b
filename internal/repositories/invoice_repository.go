package repositories

import (
	"context"
	"database/sql"
	"errors"

	"menageBack/internal/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r *InvoiceRepository) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	query := `
INSERT INTO invoices (number, booking_id, user_id, base_price, commission, total_price, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		invoice.Number, invoice.BookingID, invoice.UserID,
		invoice.BasePrice, invoice.Commission, invoice.TotalPrice, models.InvoiceIssued,
	)
	if err != nil {
		return models.Invoice{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Invoice{}, err
	}
	invoice.ID = int(id)
	invoice.Status = models.InvoiceIssued
	return invoice, nil
}

const invoiceColumns = `
	i.id, i.number, i.booking_id, i.user_id, i.base_price, i.commission, i.total_price,
	i.status, i.created_at, i.paid_at
`

func scanInvoice(row rowScanner) (models.Invoice, error) {
	var i models.Invoice
	err := row.Scan(&i.ID, &i.Number, &i.BookingID, &i.UserID, &i.BasePrice, &i.Commission, &i.TotalPrice,
		&i.Status, &i.CreatedAt, &i.PaidAt)
	return i, err
}

func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, id int) (models.Invoice, error) {
	invoice, err := scanInvoice(r.DB.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices i WHERE i.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return invoice, err
}

func (r *InvoiceRepository) GetInvoicesByUserID(ctx context.Context, userID int) ([]models.Invoice, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices i WHERE i.user_id = ? ORDER BY i.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) MarkInvoicePaid(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE invoices SET status = ?, paid_at = NOW() WHERE id = ? AND status = ?`,
		models.InvoicePaid, id, models.InvoiceIssued)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		invoice, err := r.GetInvoiceByID(ctx, id)
		if err != nil {
			return err
		}
		if invoice.Status == models.InvoicePaid {
			return models.ErrInvoicePaid
		}
		return models.ErrInvoiceNotFound
	}
	return nil
}
