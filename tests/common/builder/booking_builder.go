//go:build unit || e2e

package builder

import (
	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	RoomName      string
	ClientID      *uuid.UUID
	ClientName    string
	StartDate     string
	EndDate       string
	Status        booking.Status
	PricePerNight decimal.Decimal
	Notes         *string
	Email         *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		RoomID:        uuid.New(),
		RoomName:      "101",
		ClientName:    "Ada Lovelace",
		StartDate:     "2024-03-01",
		EndDate:       "2024-03-04",
		Status:        booking.StatusReserved,
		PricePerNight: decimal.RequireFromString("100.00"),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

// Dates panics on an invalid range; builders only carry valid fixtures.
func (b *BookingBuilder) Dates() stay.DateRange {
	r, err := stay.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.RoomID, b.ClientID, b.ClientName, b.Dates(), b.Status,
		b.PricePerNight, b.Notes, b.Email, fixedNow, fixedNow,
	)
}

func (b *BookingBuilder) BuildInterval() stay.ReservedInterval {
	return stay.ReservedInterval{BookingID: b.ID, Range: b.Dates()}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:     b.RoomID,
		ClientID:   b.ClientID,
		ClientName: b.ClientName,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Notes:      b.Notes,
		Email:      b.Email,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	dates := b.Dates()
	return &queries.BookingView{
		ID:            b.ID,
		RoomID:        b.RoomID,
		RoomName:      b.RoomName,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		StartDate:     dates.Start(),
		EndDate:       dates.End(),
		Nights:        dates.Nights(),
		Status:        b.Status.String(),
		PricePerNight: b.PricePerNight,
		Notes:         b.Notes,
		Email:         b.Email,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = &email
	return b
}

func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = &id
	return b
}
