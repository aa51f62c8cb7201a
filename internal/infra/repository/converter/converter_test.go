//go:build unit

package converter_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra/repository/converter"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRowRoundTrip(t *testing.T) {
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	email := "guest@example.com"
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(uuid.New(), booking.Details{ClientName: "Guest", Email: &email}, dates, booking.StatusReserved, decimal.RequireFromString("99.90"), now)
	require.NoError(t, err)

	params := converter.BookingToCreateParams(b)
	row := sqlc.Bookings{
		ID:            params.ID,
		RoomID:        params.RoomID,
		ClientID:      params.ClientID,
		ClientName:    params.ClientName,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Status:        params.Status,
		PricePerNight: params.PricePerNight,
		Notes:         params.Notes,
		Email:         params.Email,
		CreatedAt:     params.CreatedAt,
		UpdatedAt:     params.CreatedAt,
	}

	got, err := converter.BookingFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, b.ID(), got.ID())
	assert.Equal(t, b.Dates(), got.Dates())
	assert.Equal(t, booking.StatusReserved, got.Status())
	assert.True(t, b.PricePerNight().Equal(got.PricePerNight()))
	require.NotNil(t, got.Email())
	assert.Equal(t, email, *got.Email())
	assert.Nil(t, got.ClientID())
}

func TestBookingFromRowRejectsCorruptRows(t *testing.T) {
	base := sqlc.Bookings{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		ClientName:    "x",
		StartDate:     pgconv.DateToPgtype(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		EndDate:       pgconv.DateToPgtype(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
		Status:        "reserved",
		PricePerNight: pgconv.DecimalToNumeric(decimal.NewFromInt(10)),
	}

	bad := base
	bad.Status = "cancelled"
	_, err := converter.BookingFromRow(bad)
	assert.Error(t, err)

	bad = base
	bad.EndDate = bad.StartDate
	_, err = converter.BookingFromRow(bad)
	assert.Error(t, err)

	bad = base
	bad.PricePerNight = pgtype.Numeric{NaN: true, Valid: true}
	_, err = converter.BookingFromRow(bad)
	assert.Error(t, err)
}

func TestInvoiceLineItemsJSON(t *testing.T) {
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), nil, "Guest", dates, booking.StatusCheckedOut, decimal.NewFromInt(100), nil, nil, time.Now(), time.Now())
	inv, err := invoice.Issue(b, "101", nil, decimal.RequireFromString("0.21"), "INV-2024-000001", invoice.PaymentCash, time.Now())
	require.NoError(t, err)

	params, err := converter.InvoiceToCreateParams(inv)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"stay","description":"101: 3 nights (2024-03-01 to 2024-03-04)","amount":"300"}]`, string(params.LineItems))

	items, err := converter.LineItemsFromJSON(params.LineItems)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.NewFromInt(300).Equal(items[0].Amount))
}
