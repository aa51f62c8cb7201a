package converter

import (
	"encoding/json"

	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/infra/sqlc"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func ConsumptionToCreateParams(c *consumption.Consumption) sqlc.CreateConsumptionParams {
	return sqlc.CreateConsumptionParams{
		ID:          c.ID(),
		BookingID:   c.BookingID(),
		Description: c.Description(),
		Amount:      pgconv.DecimalToNumeric(c.Amount()),
		ConsumedOn:  pgconv.DateToPgtype(c.ConsumedOn()),
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ConsumptionFromRow(row sqlc.Consumptions) (*consumption.Consumption, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "stored consumption has an invalid amount")
	}
	return consumption.ReconstructConsumption(
		row.ID,
		row.BookingID,
		row.Description,
		amount,
		pgconv.DateFromPgtype(row.ConsumedOn),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func InvoiceToCreateParams(inv *invoice.Invoice) (sqlc.CreateInvoiceParams, error) {
	lines, err := json.Marshal(inv.LineItems())
	if err != nil {
		return sqlc.CreateInvoiceParams{}, errs.Wrap(err, "encode invoice line items")
	}
	return sqlc.CreateInvoiceParams{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		Number:        inv.Number(),
		IssuedOn:      pgconv.DateToPgtype(inv.IssuedOn()),
		Subtotal:      pgconv.DecimalToNumeric(inv.Subtotal()),
		Tax:           pgconv.DecimalToNumeric(inv.Tax()),
		Total:         pgconv.DecimalToNumeric(inv.Total()),
		TaxRate:       pgconv.DecimalToNumeric(inv.TaxRate()),
		LineItems:     lines,
		PaymentMethod: inv.PaymentMethod().String(),
		CreatedAt:     pgconv.TimeToPgtype(inv.CreatedAt()),
	}, nil
}

// LineItemsFromJSON decodes the stored line_items column.
func LineItemsFromJSON(raw []byte) ([]stay.LineItem, error) {
	var items []stay.LineItem
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Wrap(err, "decode invoice line items")
	}
	return items, nil
}

func InvoiceFromRow(row sqlc.Invoices) (*invoice.Invoice, error) {
	amounts := make([]decimal.Decimal, 4)
	for i, n := range []pgtype.Numeric{row.Subtotal, row.Tax, row.Total, row.TaxRate} {
		d, err := pgconv.DecimalFromNumeric(n)
		if err != nil {
			return nil, errs.Wrap(err, "stored invoice has an invalid amount")
		}
		amounts[i] = d
	}
	lines, err := LineItemsFromJSON(row.LineItems)
	if err != nil {
		return nil, err
	}
	return invoice.ReconstructInvoice(
		row.ID,
		row.BookingID,
		row.Number,
		pgconv.DateFromPgtype(row.IssuedOn),
		amounts[0], amounts[1], amounts[2], amounts[3],
		lines,
		invoice.PaymentMethod(row.PaymentMethod),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
