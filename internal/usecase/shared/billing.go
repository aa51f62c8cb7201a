package shared

import (
	"hotel-backoffice/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// BillingPolicy carries the invoice settings shared by quoting and issuing.
type BillingPolicy struct {
	TaxRate       decimal.Decimal
	InvoicePrefix string
}

func NewBillingPolicy(cfg config.Config) (BillingPolicy, error) {
	rate, err := cfg.Billing.TaxRateDecimal()
	if err != nil {
		return BillingPolicy{}, err
	}
	prefix := cfg.Billing.InvoicePrefix
	if prefix == "" {
		prefix = "INV"
	}
	return BillingPolicy{TaxRate: rate, InvoicePrefix: prefix}, nil
}
