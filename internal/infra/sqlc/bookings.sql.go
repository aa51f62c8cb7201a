package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, room_id, client_id, client_name, start_date, end_date, status,
       price_per_night, notes, email, created_at, updated_at`

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (
    id, room_id, client_id, client_name, start_date, end_date, status,
    price_per_night, notes, email, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
`

type CreateBookingParams struct {
	ID            uuid.UUID          `json:"id"`
	RoomID        uuid.UUID          `json:"room_id"`
	ClientID      pgtype.UUID        `json:"client_id"`
	ClientName    string             `json:"client_name"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	Status        string             `json:"status"`
	PricePerNight pgtype.Numeric     `json:"price_per_night"`
	Notes         pgtype.Text        `json:"notes"`
	Email         pgtype.Text        `json:"email"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.RoomID,
		arg.ClientID,
		arg.ClientName,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.PricePerNight,
		arg.Notes,
		arg.Email,
		arg.CreatedAt,
	)
	return err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	return scanBooking(row)
}

const getBookingByIDForUpdate = `-- name: GetBookingByIDForUpdate :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByIDForUpdate, id)
	return scanBooking(row)
}

const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings
SET client_id = $2,
    client_name = $3,
    start_date = $4,
    end_date = $5,
    status = $6,
    notes = $7,
    email = $8,
    updated_at = $9
WHERE id = $1
`

type UpdateBookingParams struct {
	ID         uuid.UUID          `json:"id"`
	ClientID   pgtype.UUID        `json:"client_id"`
	ClientName string             `json:"client_name"`
	StartDate  pgtype.Date        `json:"start_date"`
	EndDate    pgtype.Date        `json:"end_date"`
	Status     string             `json:"status"`
	Notes      pgtype.Text        `json:"notes"`
	Email      pgtype.Text        `json:"email"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.ClientID,
		arg.ClientName,
		arg.StartDate,
		arg.EndDate,
		arg.Status,
		arg.Notes,
		arg.Email,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listRoomReservedIntervals = `-- name: ListRoomReservedIntervals :many
SELECT id, start_date, end_date
FROM bookings
WHERE room_id = $1
  AND status = ANY($2::text[])
  AND start_date < $4
  AND end_date > $3
ORDER BY start_date, id
`

type ListRoomReservedIntervalsParams struct {
	RoomID     uuid.UUID   `json:"room_id"`
	Statuses   []string    `json:"statuses"`
	WindowFrom pgtype.Date `json:"window_from"`
	WindowTo   pgtype.Date `json:"window_to"`
}

type ListRoomReservedIntervalsRow struct {
	ID        uuid.UUID   `json:"id"`
	StartDate pgtype.Date `json:"start_date"`
	EndDate   pgtype.Date `json:"end_date"`
}

// ListRoomReservedIntervals returns the room's bookings in the given statuses
// that touch [WindowFrom, WindowTo).
func (q *Queries) ListRoomReservedIntervals(ctx context.Context, db DBTX, arg ListRoomReservedIntervalsParams) ([]ListRoomReservedIntervalsRow, error) {
	rows, err := db.Query(ctx, listRoomReservedIntervals, arg.RoomID, arg.Statuses, arg.WindowFrom, arg.WindowTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRoomReservedIntervalsRow
	for rows.Next() {
		var i ListRoomReservedIntervalsRow
		if err := rows.Scan(&i.ID, &i.StartDate, &i.EndDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const bookingViewSelect = `SELECT b.id, b.room_id, r.name AS room_name, b.client_id, b.client_name,
       b.start_date, b.end_date, b.status, b.price_per_night, b.notes, b.email,
       i.id AS invoice_id, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
LEFT JOIN invoices i ON i.booking_id = b.id
`

type BookingViewRow struct {
	ID            uuid.UUID          `json:"id"`
	RoomID        uuid.UUID          `json:"room_id"`
	RoomName      string             `json:"room_name"`
	ClientID      pgtype.UUID        `json:"client_id"`
	ClientName    string             `json:"client_name"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	Status        string             `json:"status"`
	PricePerNight pgtype.Numeric     `json:"price_per_night"`
	Notes         pgtype.Text        `json:"notes"`
	Email         pgtype.Text        `json:"email"`
	InvoiceID     pgtype.UUID        `json:"invoice_id"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
` + bookingViewSelect + `WHERE b.id = $1
`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	return scanBookingView(row)
}

const listBookingViews = `-- name: ListBookingViews :many
` + bookingViewSelect + `WHERE ($1::uuid IS NULL OR b.room_id = $1::uuid)
  AND ($2::date IS NULL OR b.end_date > $2::date)
  AND ($3::date IS NULL OR b.start_date < $3::date)
  AND ($4::text IS NULL OR b.status = $4::text)
ORDER BY b.start_date, r.name, b.id
LIMIT $5
`

type ListBookingViewsParams struct {
	RoomID pgtype.UUID `json:"room_id"`
	From   pgtype.Date `json:"from"`
	To     pgtype.Date `json:"to"`
	Status pgtype.Text `json:"status"`
	Limit  int32       `json:"limit"`
}

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX, arg ListBookingViewsParams) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookingViews, arg.RoomID, arg.From, arg.To, arg.Status, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingView(rows)
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

func scanBooking(row rowScanner) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.RoomID,
		&i.ClientID,
		&i.ClientName,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.PricePerNight,
		&i.Notes,
		&i.Email,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanBookingView(row rowScanner) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.RoomID,
		&i.RoomName,
		&i.ClientID,
		&i.ClientName,
		&i.StartDate,
		&i.EndDate,
		&i.Status,
		&i.PricePerNight,
		&i.Notes,
		&i.Email,
		&i.InvoiceID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
