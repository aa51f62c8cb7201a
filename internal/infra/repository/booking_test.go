//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockBookingWriteQueries) GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) ListRoomReservedIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomReservedIntervalsParams) ([]sqlc.ListRoomReservedIntervalsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListRoomReservedIntervalsRow), args.Error(1)
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	dates, err := stay.ParseDateRange("2024-03-01", "2024-03-04")
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.New(), booking.Details{ClientName: "Ada Guest"}, dates, booking.StatusReserved, decimal.NewFromInt(100), testNow)
	require.NoError(t, err)
	return b
}

func TestBookingRepository_ReservedIntervals(t *testing.T) {
	roomID := uuid.New()
	window, err := stay.ParseDateRange("2024-03-01", "2024-04-01")
	require.NoError(t, err)

	existingID := uuid.New()
	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("ListRoomReservedIntervals", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListRoomReservedIntervalsParams) bool {
		return p.RoomID == roomID &&
			len(p.Statuses) == 4 &&
			p.WindowFrom == pgconv.DateToPgtype(window.Start()) &&
			p.WindowTo == pgconv.DateToPgtype(window.End())
	})).Return([]sqlc.ListRoomReservedIntervalsRow{
		{
			ID:        existingID,
			StartDate: pgconv.DateToPgtype(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
			EndDate:   pgconv.DateToPgtype(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
		},
	}, nil)

	repo := NewBookingRepository(discardLogger(), mockQueries, nil)

	got, err := repo.ReservedIntervals(context.Background(), roomID, window)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, existingID, got[0].BookingID)
	assert.Equal(t, 2, got[0].Range.Nights())
	mockQueries.AssertExpectations(t)
}

func TestBookingRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", rows: 1},
		{name: "missing row", rows: 0, wantKind: infra.KindNotFound},
		{name: "overlap rejected by constraint", dbErr: &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, wantKind: infra.KindExclusionViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBooking(t)
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("UpdateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateBookingParams) bool {
				return p.ID == b.ID()
			})).Return(tt.rows, tt.dbErr)

			repo := NewBookingRepository(discardLogger(), mockQueries, nil)
			err := repo.Update(context.Background(), b)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, infra.KindOf(err))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("GetBookingByIDForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

	repo := NewBookingRepository(discardLogger(), mockQueries, nil)
	got, err := repo.FindByIDForUpdate(context.Background(), id)

	assert.Nil(t, got)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
