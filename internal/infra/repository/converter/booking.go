package converter

import (
	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		RoomID:        b.RoomID(),
		ClientID:      pgconv.UUIDPtrToPgtype(b.ClientID()),
		ClientName:    b.ClientName(),
		StartDate:     pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:       pgconv.DateToPgtype(b.Dates().End()),
		Status:        b.Status().String(),
		PricePerNight: pgconv.DecimalToNumeric(b.PricePerNight()),
		Notes:         pgconv.StringPtrToPgtype(b.Notes()),
		Email:         pgconv.StringPtrToPgtype(b.Email()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:         b.ID(),
		ClientID:   pgconv.UUIDPtrToPgtype(b.ClientID()),
		ClientName: b.ClientName(),
		StartDate:  pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:    pgconv.DateToPgtype(b.Dates().End()),
		Status:     b.Status().String(),
		Notes:      pgconv.StringPtrToPgtype(b.Notes()),
		Email:      pgconv.StringPtrToPgtype(b.Email()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	dates, err := stay.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has an invalid range")
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has an unknown status")
	}
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has an invalid price")
	}
	return booking.ReconstructBooking(
		row.ID,
		row.RoomID,
		pgconv.UUIDPtrFromPgtype(row.ClientID),
		row.ClientName,
		dates,
		status,
		price,
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.StringPtrFromPgtype(row.Email),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservedIntervalFromRow(row sqlc.ListRoomReservedIntervalsRow) (stay.ReservedInterval, error) {
	dates, err := stay.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return stay.ReservedInterval{}, errs.Wrap(err, "stored booking has an invalid range")
	}
	return stay.ReservedInterval{BookingID: row.ID, Range: dates}, nil
}
