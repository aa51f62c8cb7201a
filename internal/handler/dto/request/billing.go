package request

import (
	"time"

	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddConsumptionRequest struct {
	Description string          `json:"description" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"decimalgt0"`
	ConsumedOn  string          `json:"consumed_on,omitempty" binding:"omitempty,isodate"`
}

func (r *AddConsumptionRequest) ToDomain(bookingID uuid.UUID, now time.Time) (*consumption.Consumption, error) {
	var consumedOn time.Time
	if r.ConsumedOn != "" {
		d, err := stay.ParseDate(r.ConsumedOn)
		if err != nil {
			return nil, err
		}
		consumedOn = d
	}
	return consumption.NewConsumption(bookingID, r.Description, r.Amount, consumedOn, now)
}

type IssueInvoiceRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card transfer"`
}

type DateWindowQuery struct {
	From  string `form:"from" binding:"omitempty,isodate"`
	To    string `form:"to" binding:"omitempty,isodate"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
