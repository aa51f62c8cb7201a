//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomQueries_Availability(t *testing.T) {
	ctx := context.Background()
	window, err := stay.ParseDateRange("2024-03-04", "2024-03-08")
	require.NoError(t, err)

	setup := func(t *testing.T) (queries.RoomQueries, *queriesmock.MockRoomReadStore) {
		store := queriesmock.NewMockRoomReadStore(gomock.NewController(t))
		return queries.NewRoomQueries(store), store
	}

	t.Run("back-to-back stay is free", func(t *testing.T) {
		sut, store := setup(t)
		rv := builder.NewRoomBuilder().BuildView()
		before := builder.NewBookingBuilder().WithRoomID(rv.ID).WithDates("2024-03-01", "2024-03-04").BuildInterval()
		after := builder.NewBookingBuilder().WithRoomID(rv.ID).WithDates("2024-03-08", "2024-03-10").BuildInterval()

		store.EXPECT().FindByID(gomock.Any(), rv.ID).Return(rv, nil)
		store.EXPECT().ReservedIntervals(gomock.Any(), rv.ID, window).Return([]stay.ReservedInterval{before, after}, nil)

		got, err := sut.Availability(ctx, rv.ID, window)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Equal(t, 4, got.Nights)
		assert.Empty(t, got.ConflictIDs)
	})

	t.Run("overlap lists the blocking booking", func(t *testing.T) {
		sut, store := setup(t)
		rv := builder.NewRoomBuilder().BuildView()
		blocking := builder.NewBookingBuilder().WithRoomID(rv.ID).WithDates("2024-03-07", "2024-03-09").BuildInterval()

		store.EXPECT().FindByID(gomock.Any(), rv.ID).Return(rv, nil)
		store.EXPECT().ReservedIntervals(gomock.Any(), rv.ID, window).Return([]stay.ReservedInterval{blocking}, nil)

		got, err := sut.Availability(ctx, rv.ID, window)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, []uuid.UUID{blocking.BookingID}, got.ConflictIDs)
	})

	t.Run("unknown room", func(t *testing.T) {
		sut, store := setup(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := sut.Availability(ctx, id, window)
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}
