//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a clean room", func(t *testing.T) {
		m := newUowMocks(t)
		req := builder.NewRoomBuilder().WithName("204").BuildCreateRequestDTO()

		var stored *room.Room
		m.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				stored = r
				return nil
			})

		id, err := commands.NewRoomCommands(m.uow, m.clock).Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.Equal(t, "204", stored.Name())
		assert.Equal(t, room.CleaningClean, stored.CleaningStatus())
	})

	t.Run("duplicate name", func(t *testing.T) {
		m := newUowMocks(t)
		m.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr(infra.KindDuplicateKey))

		_, err := commands.NewRoomCommands(m.uow, m.clock).Create(ctx, builder.NewRoomBuilder().BuildCreateRequestDTO())
		assert.True(t, errs.Is(err, commands.ErrRoomNameTaken))
	})

	t.Run("negative price", func(t *testing.T) {
		m := newUowMocks(t)
		req := builder.NewRoomBuilder().WithPrice("-1").BuildCreateRequestDTO()

		_, err := commands.NewRoomCommands(m.uow, m.clock).Create(ctx, req)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestRoomCommands_ChangePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the nightly price", func(t *testing.T) {
		m := newUowMocks(t)
		r := builder.NewRoomBuilder().BuildDomain()

		m.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), r.ID()).Return(r, nil)
		m.rooms.EXPECT().Update(gomock.Any(), r).Return(nil)

		err := commands.NewRoomCommands(m.uow, m.clock).
			ChangePrice(ctx, r.ID(), reqdto.UpdateRoomPriceRequest{PricePerNight: decimal.RequireFromString("149.90")})
		require.NoError(t, err)
		assert.Equal(t, "149.90", r.PricePerNight().StringFixed(2))
	})

	t.Run("unknown room", func(t *testing.T) {
		m := newUowMocks(t)
		id := uuid.New()
		m.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, repoErr(infra.KindNotFound))

		err := commands.NewRoomCommands(m.uow, m.clock).
			ChangePrice(ctx, id, reqdto.UpdateRoomPriceRequest{PricePerNight: decimal.RequireFromString("10")})
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})
}

func TestRoomCommands_SetCleaningStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("dirty room becomes clean", func(t *testing.T) {
		m := newUowMocks(t)
		r := builder.NewRoomBuilder().AsDirty().BuildDomain()

		m.rooms.EXPECT().FindByIDForUpdate(gomock.Any(), r.ID()).Return(r, nil)
		m.rooms.EXPECT().Update(gomock.Any(), r).Return(nil)

		err := commands.NewRoomCommands(m.uow, m.clock).
			SetCleaningStatus(ctx, r.ID(), reqdto.UpdateCleaningStatusRequest{CleaningStatus: "clean"})
		require.NoError(t, err)
		assert.Equal(t, room.CleaningClean, r.CleaningStatus())
	})

	t.Run("unknown status never opens a transaction", func(t *testing.T) {
		m := newUowMocks(t)

		err := commands.NewRoomCommands(m.uow, m.clock).
			SetCleaningStatus(ctx, uuid.New(), reqdto.UpdateCleaningStatusRequest{CleaningStatus: "sparkling"})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
