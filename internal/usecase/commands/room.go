package commands

import (
	"context"

	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error)
	// ChangePrice affects bookings created afterwards only; existing bookings keep their snapshot.
	ChangePrice(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomPriceRequest) error
	SetCleaningStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateCleaningStatusRequest) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, clock: clk}
}

func (c *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
	r, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrRoomNameTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID(), nil
}

func (c *roomCommandsImpl) ChangePrice(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomPriceRequest) error {
	return c.update(ctx, id, func(r *room.Room) error {
		return r.ChangePrice(req.PricePerNight, c.clock.Now())
	})
}

func (c *roomCommandsImpl) SetCleaningStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateCleaningStatusRequest) error {
	status, err := room.ParseCleaningStatus(req.CleaningStatus)
	if err != nil {
		return err
	}
	return c.update(ctx, id, func(r *room.Room) error {
		return r.SetCleaningStatus(status, c.clock.Now())
	})
}

func (c *roomCommandsImpl) update(ctx context.Context, id uuid.UUID, mutate func(*room.Room) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByIDForUpdate(ctx, id)
		if err != nil {
			return markRepoErr(err, errs.ErrRoomNotFound)
		}
		if err := mutate(r); err != nil {
			return err
		}
		return markRepoErr(tx.Rooms().Update(ctx, r), errs.ErrRoomNotFound)
	})
}
