package stay

import (
	"github.com/shopspring/decimal"
)

const (
	LineKindStay        = "stay"
	LineKindConsumption = "consumption"
)

type LineItem struct {
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceTotals struct {
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	TaxRate   decimal.Decimal
	LineItems []LineItem
}

// BuildInvoice sums the stay line and the consumption lines and applies taxRate.
// Line items keep their input order with the stay first. Totals are exact;
// use Rounded for the 2-decimal figures that get stored and shown.
func BuildInvoice(stayLine LineItem, consumptions []LineItem, taxRate decimal.Decimal) InvoiceTotals {
	if stayLine.Kind == "" {
		stayLine.Kind = LineKindStay
	}

	lines := make([]LineItem, 0, len(consumptions)+1)
	lines = append(lines, stayLine)

	subtotal := stayLine.Amount
	for _, c := range consumptions {
		if c.Kind == "" {
			c.Kind = LineKindConsumption
		}
		lines = append(lines, c)
		subtotal = subtotal.Add(c.Amount)
	}

	tax := subtotal.Mul(taxRate)
	return InvoiceTotals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		TaxRate:   taxRate,
		LineItems: lines,
	}
}

// Rounded returns a copy with every amount rounded to 2 decimals.
// The total is recomputed from the rounded parts so subtotal + tax == total holds.
func (t InvoiceTotals) Rounded() InvoiceTotals {
	lines := make([]LineItem, len(t.LineItems))
	for i, li := range t.LineItems {
		li.Amount = RoundMoney(li.Amount)
		lines[i] = li
	}
	subtotal := RoundMoney(t.Subtotal)
	tax := RoundMoney(t.Tax)
	return InvoiceTotals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		TaxRate:   t.TaxRate,
		LineItems: lines,
	}
}
