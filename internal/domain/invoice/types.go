package invoice

import (
	"fmt"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	switch pm {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return pm, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (p PaymentMethod) String() string { return string(p) }

// FormatNumber renders PREFIX-YYYY-NNNNNN.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%06d", prefix, year, seq)
}
