//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

func newBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.New(), booking.Details{ClientName: "Ada Lovelace"}, dates, booking.StatusReserved, decimal.RequireFromString("100"), now)
	require.NoError(t, err)
	if status != booking.StatusReserved {
		return booking.ReconstructBooking(b.ID(), b.RoomID(), nil, b.ClientName(), b.Dates(), status, b.PricePerNight(), nil, nil, now, now)
	}
	return b
}

func TestNewBooking(t *testing.T) {
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	price := decimal.RequireFromString("100")

	t.Run("defaults to reserved", func(t *testing.T) {
		notes := "  late arrival  "
		empty := "   "
		b, err := booking.NewBooking(uuid.New(), booking.Details{ClientName: " Ada ", Notes: &notes, Email: &empty}, dates, "", price, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusReserved, b.Status())
		assert.Equal(t, "Ada", b.ClientName())
		require.NotNil(t, b.Notes())
		assert.Equal(t, "late arrival", *b.Notes())
		assert.Nil(t, b.Email())
		assert.Equal(t, 3, b.StayCost().Nights)
		assert.True(t, decimal.RequireFromString("300").Equal(b.StayCost().Amount))
	})

	tests := []struct {
		name    string
		details booking.Details
		status  booking.Status
		price   decimal.Decimal
		errIs   error
	}{
		{name: "blank client name", details: booking.Details{ClientName: "  "}, price: price, errIs: booking.ErrEmptyClientName},
		{name: "negative price", details: booking.Details{ClientName: "x"}, price: decimal.RequireFromString("-1"), errIs: booking.ErrNegativePrice},
		{name: "unknown status", details: booking.Details{ClientName: "x"}, status: "cancelled", price: price, errIs: booking.ErrInvalidStatus},
		{name: "checked-out at creation", details: booking.Details{ClientName: "x"}, status: booking.StatusCheckedOut, price: price, errIs: booking.ErrInitialStatus},
		{name: "blocked at creation", details: booking.Details{ClientName: "maintenance"}, status: booking.StatusBlocked, price: decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewBooking(uuid.New(), tt.details, dates, tt.status, tt.price, now)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.errIs))
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		from booking.Status
		to   booking.Status
		ok   bool
	}{
		{booking.StatusLiberated, booking.StatusReserved, true},
		{booking.StatusReserved, booking.StatusOccupied, true},
		{booking.StatusOccupied, booking.StatusCheckedOut, true},
		{booking.StatusLiberated, booking.StatusBlocked, true},
		{booking.StatusReserved, booking.StatusBlocked, true},
		{booking.StatusOccupied, booking.StatusBlocked, true},
		{booking.StatusReserved, booking.StatusLiberated, true},
		{booking.StatusBlocked, booking.StatusLiberated, true},
		{booking.StatusBlocked, booking.StatusReserved, true},
		{booking.StatusReserved, booking.StatusCheckedOut, false},
		{booking.StatusLiberated, booking.StatusOccupied, false},
		{booking.StatusOccupied, booking.StatusReserved, false},
		{booking.StatusCheckedOut, booking.StatusBlocked, false},
		{booking.StatusCheckedOut, booking.StatusReserved, false},
		{booking.StatusReserved, booking.StatusReserved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			b := newBooking(t, tt.from)
			later := now.Add(time.Hour)
			err := b.TransitionTo(tt.to, later)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, b.Status())
				assert.Equal(t, later, b.UpdatedAt())
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidStatusTransition))
			assert.Equal(t, tt.from, b.Status())
		})
	}

	t.Run("unknown target status", func(t *testing.T) {
		b := newBooking(t, booking.StatusReserved)
		err := b.TransitionTo("cancelled", now)
		assert.True(t, errs.Is(err, booking.ErrInvalidStatus))
	})
}

func TestEnsureDeletable(t *testing.T) {
	for _, st := range []booking.Status{booking.StatusLiberated, booking.StatusReserved} {
		assert.NoError(t, newBooking(t, st).EnsureDeletable(), st)
	}
	for _, st := range []booking.Status{booking.StatusOccupied, booking.StatusCheckedOut, booking.StatusBlocked} {
		err := newBooking(t, st).EnsureDeletable()
		assert.True(t, errs.Is(err, errs.ErrBookingNotDeletable), st)
	}
}

func TestHolds(t *testing.T) {
	assert.False(t, booking.StatusLiberated.Holds())
	for _, st := range booking.HoldingStatuses() {
		assert.True(t, st.Holds(), st)
	}
}

func TestReschedule(t *testing.T) {
	later, err := stay.ParseDateRange("2024-03-10", "2024-03-12")
	require.NoError(t, err)

	t.Run("keeps price snapshot", func(t *testing.T) {
		b := newBooking(t, booking.StatusReserved)
		require.NoError(t, b.Reschedule(later, now))
		assert.Equal(t, later, b.Dates())
		assert.True(t, decimal.RequireFromString("200").Equal(b.StayCost().Amount))
	})

	t.Run("checked-out booking is frozen", func(t *testing.T) {
		b := newBooking(t, booking.StatusCheckedOut)
		err := b.Reschedule(later, now)
		assert.True(t, errs.Is(err, errs.ErrBookingAlreadyCheckedOut))
	})
}

func TestReservedInterval(t *testing.T) {
	b := newBooking(t, booking.StatusReserved)

	iv := b.ReservedInterval()
	assert.Equal(t, b.ID(), iv.BookingID)
	assert.Equal(t, b.Dates(), iv.Range)

	// A booking never conflicts with its own stored interval.
	assert.False(t, stay.HasConflict([]stay.ReservedInterval{iv}, iv.Range, &iv.BookingID))
}

func TestNewBooking_ClientNameLengthInCharacters(t *testing.T) {
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	price := decimal.RequireFromString("100")

	longest := strings.Repeat("é", booking.MaxClientNameLength)
	_, err = booking.NewBooking(uuid.New(), booking.Details{ClientName: longest}, dates, "", price, now)
	require.NoError(t, err)

	_, err = booking.NewBooking(uuid.New(), booking.Details{ClientName: longest + "é"}, dates, "", price, now)
	assert.ErrorIs(t, err, booking.ErrClientNameLong)
}
