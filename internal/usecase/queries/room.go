package queries

import (
	"context"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	Availability(ctx context.Context, roomID uuid.UUID, dates stay.DateRange) (*AvailabilityView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	// ReservedIntervals lists the room's holding bookings touching window.
	ReservedIntervals(ctx context.Context, roomID uuid.UUID, window stay.DateRange) ([]stay.ReservedInterval, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrRoomNotFound)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	return q.store.List(ctx, filter)
}

// Availability is a read-only preview. It takes no lock, so a booking made
// right after may still be rejected by the command side.
func (q *roomQueriesImpl) Availability(ctx context.Context, roomID uuid.UUID, dates stay.DateRange) (*AvailabilityView, error) {
	if _, err := q.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	intervals, err := q.store.ReservedIntervals(ctx, roomID, dates)
	if err != nil {
		return nil, err
	}

	conflicts := stay.Conflicts(intervals, dates, nil)
	view := &AvailabilityView{
		RoomID:    roomID,
		Start:     dates.Start(),
		End:       dates.End(),
		Available: len(conflicts) == 0,
		Nights:    dates.Nights(),
	}
	for _, c := range conflicts {
		view.ConflictIDs = append(view.ConflictIDs, c.BookingID)
	}
	return view, nil
}

// notFoundAs marks a repository not-found error with the given domain sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
