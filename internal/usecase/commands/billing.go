package commands

import (
	"context"
	"encoding/json"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/invoice"
	"hotel-backoffice/internal/domain/stay"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type BillingCommands interface {
	AddConsumption(ctx context.Context, bookingID uuid.UUID, req reqdto.AddConsumptionRequest) (uuid.UUID, error)
	IssueInvoice(ctx context.Context, bookingID uuid.UUID, req reqdto.IssueInvoiceRequest) (uuid.UUID, error)
}

type billingCommandsImpl struct {
	uow    shared.UnitOfWork
	policy shared.BillingPolicy
	clock  clock.Clock
}

func NewBillingCommands(uow shared.UnitOfWork, policy shared.BillingPolicy, clk clock.Clock) BillingCommands {
	return &billingCommandsImpl{uow: uow, policy: policy, clock: clk}
}

// AddConsumption records an extra charge. Invoiced bookings are frozen.
func (c *billingCommandsImpl) AddConsumption(ctx context.Context, bookingID uuid.UUID, req reqdto.AddConsumptionRequest) (uuid.UUID, error) {
	item, err := req.ToDomain(bookingID, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.uninvoicedBooking(ctx, tx, bookingID); err != nil {
			return err
		}
		return markRepoErr(tx.Consumptions().Create(ctx, item), errs.ErrBookingNotFound)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return item.ID(), nil
}

// IssueInvoice freezes the totals of a checked-out booking under the next
// invoice number and queues the client email when the booking has one.
func (c *billingCommandsImpl) IssueInvoice(ctx context.Context, bookingID uuid.UUID, req reqdto.IssueInvoiceRequest) (uuid.UUID, error) {
	method, err := invoice.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.uninvoicedBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		// nextval is not rolled back, so refuse before a number is drawn.
		if err := invoice.EnsureInvoiceable(b); err != nil {
			return err
		}
		r, err := tx.Rooms().FindByID(ctx, b.RoomID())
		if err != nil {
			return markRepoErr(err, errs.ErrRoomNotFound)
		}
		items, err := tx.Consumptions().ListByBooking(ctx, b.ID())
		if err != nil {
			return err
		}

		now := c.clock.Now()
		seq, err := tx.Invoices().NextSequence(ctx)
		if err != nil {
			return err
		}
		number := invoice.FormatNumber(c.policy.InvoicePrefix, now.Year(), seq)

		inv, err := invoice.Issue(b, r.Name(), items, c.policy.TaxRate, number, method, now)
		if err != nil {
			return err
		}
		if err := tx.Invoices().Create(ctx, inv); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == infra.ConstraintInvoiceBooking {
				return errs.Mark(err, errs.ErrDuplicateInvoice)
			}
			return err
		}

		if b.Email() != nil {
			if err := enqueueInvoiceIssued(ctx, tx, b, inv); err != nil {
				return err
			}
		}
		id = inv.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *billingCommandsImpl) uninvoicedBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
	if err != nil {
		return nil, markRepoErr(err, errs.ErrBookingNotFound)
	}
	invoiced, err := tx.Invoices().ExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if invoiced {
		return nil, errs.Mark(errs.New("booking "+bookingID.String()+" is already invoiced"), errs.ErrDuplicateInvoice)
	}
	return b, nil
}

func enqueueInvoiceIssued(ctx context.Context, tx shared.Tx, b *booking.Booking, inv *invoice.Invoice) error {
	payload, err := json.Marshal(shared.InvoiceIssuedPayload{
		InvoiceID:  inv.ID(),
		BookingID:  b.ID(),
		Number:     inv.Number(),
		ClientName: b.ClientName(),
		Email:      *b.Email(),
		Total:      inv.Total().StringFixed(2),
		IssuedOn:   inv.IssuedOn().Format(stay.DateLayout),
	})
	if err != nil {
		return errs.Wrap(err, "marshal invoice_issued payload")
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationKindInvoiceIssued, *b.Email(), payload, inv.CreatedAt())
}
