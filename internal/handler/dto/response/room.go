package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	PricePerNight  string    `json:"price_per_night"`
	CleaningStatus string    `json:"cleaning_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	RoomID      uuid.UUID   `json:"room_id"`
	Start       string      `json:"start"`
	End         string      `json:"end"`
	Available   bool        `json:"available"`
	Nights      int         `json:"nights"`
	ConflictIDs []uuid.UUID `json:"conflict_ids"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]RoomResponse, error) {
	out := make([]RoomResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	out := AvailabilityResponse{ConflictIDs: []uuid.UUID{}}
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	if out.ConflictIDs == nil {
		out.ConflictIDs = []uuid.UUID{}
	}
	return &out, nil
}
