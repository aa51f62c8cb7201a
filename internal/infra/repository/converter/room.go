package converter

import (
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:             r.ID(),
		Name:           r.Name(),
		Category:       r.Category(),
		PricePerNight:  pgconv.DecimalToNumeric(r.PricePerNight()),
		CleaningStatus: r.CleaningStatus().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:             r.ID(),
		PricePerNight:  pgconv.DecimalToNumeric(r.PricePerNight()),
		CleaningStatus: r.CleaningStatus().String(),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomFromRow(row sqlc.Rooms) (*room.Room, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrap(err, "stored room has an invalid price")
	}
	status, err := room.ParseCleaningStatus(row.CleaningStatus)
	if err != nil {
		return nil, errs.Wrap(err, "stored room has an unknown cleaning status")
	}
	return room.ReconstructRoom(
		row.ID,
		row.Name,
		row.Category,
		price,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
