//go:build unit || e2e

package builder

import (
	"hotel-backoffice/internal/domain/room"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	ID             uuid.UUID
	Name           string
	Category       string
	PricePerNight  decimal.Decimal
	CleaningStatus room.CleaningStatus
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:             uuid.New(),
		Name:           "101",
		Category:       "double",
		PricePerNight:  decimal.RequireFromString("100.00"),
		CleaningStatus: room.CleaningClean,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.Name, r.Category, r.PricePerNight, r.CleaningStatus, fixedNow, fixedNow)
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:          r.Name,
		Category:      r.Category,
		PricePerNight: r.PricePerNight,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:             r.ID,
		Name:           r.Name,
		Category:       r.Category,
		PricePerNight:  r.PricePerNight,
		CleaningStatus: r.CleaningStatus.String(),
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithPrice(price string) *RoomBuilder {
	r.PricePerNight = decimal.RequireFromString(price)
	return r
}

func (r *RoomBuilder) AsDirty() *RoomBuilder {
	r.CleaningStatus = room.CleaningDirty
	return r
}
