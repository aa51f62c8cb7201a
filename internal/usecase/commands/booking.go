package commands

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/domain/stay"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error
	ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.ChangeBookingStatusRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	dates, err := req.Dates()
	if err != nil {
		return uuid.Nil, err
	}
	var status booking.Status
	if req.Status != "" {
		if status, err = booking.ParseStatus(req.Status); err != nil {
			return uuid.Nil, err
		}
	}
	details := req.Details()

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockRoom(ctx, req.RoomID); err != nil {
			return err
		}

		r, err := tx.Rooms().FindByID(ctx, req.RoomID)
		if err != nil {
			return markRepoErr(err, errs.ErrRoomNotFound)
		}
		if err := ensureClient(ctx, tx, details.ClientID); err != nil {
			return err
		}

		b, err := booking.NewBooking(r.ID(), details, dates, status, r.PricePerNight(), c.clock.Now())
		if err != nil {
			return err
		}
		if err := ensureAvailable(ctx, tx, b); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return markRepoErr(err, errs.ErrRoomNotFound)
		}
		id = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		dates, details, err := req.Apply(b)
		if err != nil {
			return err
		}
		now := c.clock.Now()

		if req.ClientID != nil {
			if err := ensureClient(ctx, tx, details.ClientID); err != nil {
				return err
			}
		}
		if err := b.UpdateDetails(details, now); err != nil {
			return err
		}
		if req.ChangesDates() {
			if err := b.Reschedule(dates, now); err != nil {
				return err
			}
			if err := ensureAvailable(ctx, tx, b); err != nil {
				return err
			}
		}

		return markRepoErr(tx.Bookings().Update(ctx, b), errs.ErrBookingNotFound)
	})
}

// ChangeStatus moves a booking along the status graph. Leaving liberated
// re-checks the room; checking out marks the room dirty.
func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req reqdto.ChangeBookingStatusRequest) error {
	next, err := booking.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		wasHolding := b.Status().Holds()
		if err := b.TransitionTo(next, now); err != nil {
			return err
		}
		if !wasHolding && next.Holds() {
			if err := ensureAvailable(ctx, tx, b); err != nil {
				return err
			}
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return markRepoErr(err, errs.ErrBookingNotFound)
		}

		if next == booking.StatusCheckedOut {
			return c.markRoomDirty(ctx, tx, b.RoomID(), now)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := b.EnsureDeletable(); err != nil {
			return err
		}
		return markRepoErr(tx.Bookings().Delete(ctx, b.ID()), errs.ErrBookingNotFound)
	})
}

// lockBooking loads the booking for update and takes its room's lock.
func (c *bookingCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, markRepoErr(err, errs.ErrBookingNotFound)
	}
	if err := tx.LockRoom(ctx, b.RoomID()); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *bookingCommandsImpl) markRoomDirty(ctx context.Context, tx shared.Tx, roomID uuid.UUID, now time.Time) error {
	r, err := tx.Rooms().FindByIDForUpdate(ctx, roomID)
	if err != nil {
		return markRepoErr(err, errs.ErrRoomNotFound)
	}
	if err := r.SetCleaningStatus(room.CleaningDirty, now); err != nil {
		return err
	}
	return markRepoErr(tx.Rooms().Update(ctx, r), errs.ErrRoomNotFound)
}

// ensureAvailable rejects b when a holding booking of the same room overlaps it.
// Liberated bookings hold nothing and always pass.
func ensureAvailable(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if !b.Status().Holds() {
		return nil
	}
	intervals, err := tx.Bookings().ReservedIntervals(ctx, b.RoomID(), b.Dates())
	if err != nil {
		return err
	}
	candidate := b.ReservedInterval()
	conflicts := stay.Conflicts(intervals, candidate.Range, &candidate.BookingID)
	if len(conflicts) > 0 {
		return errs.Mark(
			errs.Newf("room %s is taken for %s by booking %s", b.RoomID(), b.Dates(), conflicts[0].BookingID),
			errs.ErrBookingConflict,
		)
	}
	return nil
}

func ensureClient(ctx context.Context, tx shared.Tx, clientID *uuid.UUID) error {
	if clientID == nil {
		return nil
	}
	ok, err := tx.Clients().Exists(ctx, *clientID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Mark(errs.New("client "+clientID.String()+" does not exist"), errs.ErrClientNotFound)
	}
	return nil
}
