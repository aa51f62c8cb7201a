package request

import (
	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     uuid.UUID  `json:"room_id" binding:"required"`
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	ClientName string     `json:"client_name" binding:"required,max=200"`
	StartDate  string     `json:"start_date" binding:"required,isodate"`
	EndDate    string     `json:"end_date" binding:"required,isodate"`
	Status     string     `json:"status,omitempty" binding:"omitempty,oneof=liberated reserved occupied blocked"`
	Notes      *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Email      *string    `json:"email,omitempty" binding:"omitempty,email"`
}

func (r *CreateBookingRequest) Dates() (stay.DateRange, error) {
	return stay.ParseDateRange(r.StartDate, r.EndDate)
}

func (r *CreateBookingRequest) Details() booking.Details {
	return booking.Details{
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Notes:      r.Notes,
		Email:      r.Email,
	}
}

// UpdateBookingRequest is a partial update; omitted fields keep their stored value.
type UpdateBookingRequest struct {
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	ClientName *string    `json:"client_name,omitempty" binding:"omitempty,min=1,max=200"`
	StartDate  *string    `json:"start_date,omitempty" binding:"omitempty,isodate"`
	EndDate    *string    `json:"end_date,omitempty" binding:"omitempty,isodate"`
	Notes      *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Email      *string    `json:"email,omitempty" binding:"omitempty,email"`
}

// Apply merges the request into the stored booking's values.
func (r *UpdateBookingRequest) Apply(current *booking.Booking) (stay.DateRange, booking.Details, error) {
	start := patch.Coalesce(r.StartDate, current.Dates().Start().Format(stay.DateLayout))
	end := patch.Coalesce(r.EndDate, current.Dates().End().Format(stay.DateLayout))
	dates, err := stay.ParseDateRange(start, end)
	if err != nil {
		return stay.DateRange{}, booking.Details{}, err
	}
	details := booking.Details{
		ClientID:   patch.CoalescePtr(r.ClientID, current.ClientID()),
		ClientName: patch.Coalesce(r.ClientName, current.ClientName()),
		Notes:      patch.CoalescePtr(r.Notes, current.Notes()),
		Email:      patch.CoalescePtr(r.Email, current.Email()),
	}
	return dates, details, nil
}

func (r *UpdateBookingRequest) ChangesDates() bool {
	return r.StartDate != nil || r.EndDate != nil
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=liberated reserved occupied checked-out blocked"`
}

type ListBookingsQuery struct {
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	From   string `form:"from" binding:"omitempty,isodate"`
	To     string `form:"to" binding:"omitempty,isodate"`
	Status string `form:"status" binding:"omitempty,oneof=liberated reserved occupied checked-out blocked"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
