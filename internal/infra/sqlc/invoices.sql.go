package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const nextInvoiceNumber = `-- name: NextInvoiceNumber :one
SELECT nextval('invoice_number_seq')::bigint
`

func (q *Queries) NextInvoiceNumber(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRow(ctx, nextInvoiceNumber)
	var seq int64
	err := row.Scan(&seq)
	return seq, err
}

const createInvoice = `-- name: CreateInvoice :exec
INSERT INTO invoices (
    id, booking_id, number, issued_on, subtotal, tax, total, tax_rate,
    line_items, payment_method, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateInvoiceParams struct {
	ID            uuid.UUID          `json:"id"`
	BookingID     uuid.UUID          `json:"booking_id"`
	Number        string             `json:"number"`
	IssuedOn      pgtype.Date        `json:"issued_on"`
	Subtotal      pgtype.Numeric     `json:"subtotal"`
	Tax           pgtype.Numeric     `json:"tax"`
	Total         pgtype.Numeric     `json:"total"`
	TaxRate       pgtype.Numeric     `json:"tax_rate"`
	LineItems     []byte             `json:"line_items"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateInvoice(ctx context.Context, db DBTX, arg CreateInvoiceParams) error {
	_, err := db.Exec(ctx, createInvoice,
		arg.ID,
		arg.BookingID,
		arg.Number,
		arg.IssuedOn,
		arg.Subtotal,
		arg.Tax,
		arg.Total,
		arg.TaxRate,
		arg.LineItems,
		arg.PaymentMethod,
		arg.CreatedAt,
	)
	return err
}

const invoiceColumns = `id, booking_id, number, issued_on, subtotal, tax, total, tax_rate,
       line_items, payment_method, created_at`

const getInvoiceByID = `-- name: GetInvoiceByID :one
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Invoices, error) {
	row := db.QueryRow(ctx, getInvoiceByID, id)
	return scanInvoice(row)
}

const getInvoiceByBookingID = `-- name: GetInvoiceByBookingID :one
SELECT ` + invoiceColumns + `
FROM invoices
WHERE booking_id = $1
`

func (q *Queries) GetInvoiceByBookingID(ctx context.Context, db DBTX, bookingID uuid.UUID) (Invoices, error) {
	row := db.QueryRow(ctx, getInvoiceByBookingID, bookingID)
	return scanInvoice(row)
}

const listInvoices = `-- name: ListInvoices :many
SELECT ` + invoiceColumns + `
FROM invoices
WHERE ($1::date IS NULL OR issued_on >= $1::date)
  AND ($2::date IS NULL OR issued_on < $2::date)
ORDER BY issued_on DESC, number DESC
LIMIT $3
`

type ListInvoicesParams struct {
	From  pgtype.Date `json:"from"`
	To    pgtype.Date `json:"to"`
	Limit int32       `json:"limit"`
}

func (q *Queries) ListInvoices(ctx context.Context, db DBTX, arg ListInvoicesParams) ([]Invoices, error) {
	rows, err := db.Query(ctx, listInvoices, arg.From, arg.To, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoices
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanInvoice(row rowScanner) (Invoices, error) {
	var i Invoices
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.Number,
		&i.IssuedOn,
		&i.Subtotal,
		&i.Tax,
		&i.Total,
		&i.TaxRate,
		&i.LineItems,
		&i.PaymentMethod,
		&i.CreatedAt,
	)
	return i, err
}
