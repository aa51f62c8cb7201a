package response

import (
	"time"

	"hotel-backoffice/internal/domain/stay"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals; calendar dates as YYYY-MM-DD.
// Timestamps keep time.Time and are copied as is.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(stay.DateLayout), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}

type LineItemResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func fromLineItems(items []stay.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = LineItemResponse{
			Kind:        li.Kind,
			Description: li.Description,
			Amount:      li.Amount.StringFixed(2),
		}
	}
	return out
}

type CreatedResponse struct {
	ID string `json:"id"`
}
