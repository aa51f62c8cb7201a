package request

import (
	"time"

	"hotel-backoffice/internal/domain/room"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Name          string          `json:"name" binding:"required,max=50"`
	Category      string          `json:"category" binding:"required,max=50"`
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"decimalgte0"`
}

func (r *CreateRoomRequest) ToDomain(now time.Time) (*room.Room, error) {
	return room.NewRoom(r.Name, r.Category, r.PricePerNight, now)
}

type UpdateRoomPriceRequest struct {
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"decimalgte0"`
}

type UpdateCleaningStatusRequest struct {
	CleaningStatus string `json:"cleaning_status" binding:"required,oneof=clean dirty servicing"`
}

type ListRoomsQuery struct {
	Category       string `form:"category" binding:"omitempty,max=50"`
	CleaningStatus string `form:"cleaning_status" binding:"omitempty,oneof=clean dirty servicing"`
}

type AvailabilityQuery struct {
	Start string `form:"start" binding:"required,isodate"`
	End   string `form:"end" binding:"required,isodate"`
}
