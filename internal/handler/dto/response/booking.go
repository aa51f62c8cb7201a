package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"room_id"`
	RoomName      string     `json:"room_name"`
	ClientID      *uuid.UUID `json:"client_id,omitempty"`
	ClientName    string     `json:"client_name"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	Nights        int        `json:"nights"`
	Status        string     `json:"status"`
	PricePerNight string     `json:"price_per_night"`
	Notes         *string    `json:"notes,omitempty"`
	Email         *string    `json:"email,omitempty"`
	InvoiceID     *uuid.UUID `json:"invoice_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type QuoteResponse struct {
	BookingID uuid.UUID          `json:"booking_id"`
	Nights    int                `json:"nights"`
	Subtotal  string             `json:"subtotal"`
	Tax       string             `json:"tax"`
	Total     string             `json:"total"`
	TaxRate   string             `json:"tax_rate"`
	LineItems []LineItemResponse `json:"line_items"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		BookingID: v.BookingID,
		Nights:    v.Nights,
		Subtotal:  v.Subtotal.StringFixed(2),
		Tax:       v.Tax.StringFixed(2),
		Total:     v.Total.StringFixed(2),
		TaxRate:   v.TaxRate.String(),
		LineItems: fromLineItems(v.LineItems),
	}
}
