//go:build unit

package room_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom(t *testing.T) {
	now := time.Now()

	t.Run("new room starts clean", func(t *testing.T) {
		r, err := room.NewRoom(" 101 ", "double", decimal.RequireFromString("85.50"), now)
		require.NoError(t, err)
		assert.Equal(t, "101", r.Name())
		assert.Equal(t, room.CleaningClean, r.CleaningStatus())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := room.NewRoom("", "double", decimal.Zero, now)
		assert.True(t, errs.Is(err, room.ErrEmptyName))
		_, err = room.NewRoom("101", " ", decimal.Zero, now)
		assert.True(t, errs.Is(err, room.ErrEmptyCategory))
		_, err = room.NewRoom("101", "double", decimal.RequireFromString("-0.01"), now)
		assert.True(t, errs.Is(err, room.ErrNegativePrice))
	})

	t.Run("price and cleaning updates", func(t *testing.T) {
		r, err := room.NewRoom("101", "double", decimal.RequireFromString("85"), now)
		require.NoError(t, err)

		require.NoError(t, r.ChangePrice(decimal.RequireFromString("90"), now))
		assert.Equal(t, "90", r.PricePerNight().String())
		assert.Error(t, r.ChangePrice(decimal.RequireFromString("-1"), now))

		require.NoError(t, r.SetCleaningStatus(room.CleaningDirty, now))
		assert.Equal(t, room.CleaningDirty, r.CleaningStatus())
		assert.True(t, errs.Is(r.SetCleaningStatus("sparkling", now), room.ErrCleaningStatus))
	})
}
