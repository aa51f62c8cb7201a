package response

import (
	"time"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConsumptionResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	ConsumedOn  string    `json:"consumed_on"`
	CreatedAt   time.Time `json:"created_at"`
}

type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	BookingID     uuid.UUID          `json:"booking_id"`
	Number        string             `json:"number"`
	IssuedOn      string             `json:"issued_on"`
	Subtotal      string             `json:"subtotal"`
	Tax           string             `json:"tax"`
	Total         string             `json:"total"`
	TaxRate       string             `json:"tax_rate"`
	LineItems     []LineItemResponse `json:"line_items"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
}

func FromConsumptionViews(vs []*queries.ConsumptionView) ([]ConsumptionResponse, error) {
	out := make([]ConsumptionResponse, 0, len(vs))
	if err := copyInto(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            v.ID,
		BookingID:     v.BookingID,
		Number:        v.Number,
		IssuedOn:      v.IssuedOn.Format(stay.DateLayout),
		Subtotal:      v.Subtotal.StringFixed(2),
		Tax:           v.Tax.StringFixed(2),
		Total:         v.Total.StringFixed(2),
		TaxRate:       v.TaxRate.String(),
		LineItems:     fromLineItems(v.LineItems),
		PaymentMethod: v.PaymentMethod,
		CreatedAt:     v.CreatedAt,
	}
}

func FromInvoiceViews(vs []*queries.InvoiceView) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, *FromInvoiceView(v))
	}
	return out
}
