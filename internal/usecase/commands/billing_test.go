//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/booking"
	"hotel-backoffice/internal/domain/consumption"
	"hotel-backoffice/internal/domain/invoice"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/shared"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPolicy = shared.BillingPolicy{TaxRate: decimal.RequireFromString("0.21"), InvoicePrefix: "INV"}

func TestBillingCommands_AddConsumption(t *testing.T) {
	ctx := context.Background()
	req := reqdto.AddConsumptionRequest{Description: "Minibar", Amount: decimal.RequireFromString("12.50")}

	t.Run("stores the charge", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusOccupied).BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)

		var stored *consumption.Consumption
		m.consumptions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *consumption.Consumption) error {
				stored = c
				return nil
			})

		id, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).AddConsumption(ctx, b.ID(), req)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.Equal(t, b.ID(), stored.BookingID())
		assert.Equal(t, "2024-03-10", stored.ConsumedOn().Format("2006-01-02"))
	})

	t.Run("invoiced booking is frozen", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(true, nil)

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).AddConsumption(ctx, b.ID(), req)
		assert.True(t, errs.Is(err, errs.ErrDuplicateInvoice))
	})

	t.Run("non-positive amount never reaches the store", func(t *testing.T) {
		m := newUowMocks(t)
		bad := reqdto.AddConsumptionRequest{Description: "Minibar", Amount: decimal.Zero}

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).AddConsumption(ctx, uuid.New(), bad)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestBillingCommands_IssueInvoice(t *testing.T) {
	ctx := context.Background()
	req := reqdto.IssueInvoiceRequest{PaymentMethod: "card"}

	t.Run("freezes totals and queues the client email", func(t *testing.T) {
		m := newUowMocks(t)
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).WithEmail("ada@example.com")
		b := bb.BuildDomain()
		r := builder.NewRoomBuilder().With(func(rb *builder.RoomBuilder) { rb.ID = b.RoomID() }).BuildDomain()
		minibar := consumption.ReconstructConsumption(uuid.New(), b.ID(), "Minibar", decimal.RequireFromString("30"), testNow, testNow)

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)
		m.rooms.EXPECT().FindByID(gomock.Any(), b.RoomID()).Return(r, nil)
		m.consumptions.EXPECT().ListByBooking(gomock.Any(), b.ID()).Return([]*consumption.Consumption{minibar}, nil)
		m.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)

		var stored *invoice.Invoice
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
				stored = inv
				return nil
			})

		var payload []byte
		m.notifications.EXPECT().
			CreateJob(gomock.Any(), shared.NotificationKindInvoiceIssued, "ada@example.com", gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _, _ string, p []byte, _ time.Time) error {
				payload = p
				return nil
			})

		id, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), id)
		assert.Equal(t, "INV-2024-000007", stored.Number())
		assert.Equal(t, "330.00", stored.Subtotal().StringFixed(2))
		assert.Equal(t, "69.30", stored.Tax().StringFixed(2))
		assert.Equal(t, "399.30", stored.Total().StringFixed(2))
		assert.Len(t, stored.LineItems(), 2)

		var p shared.InvoiceIssuedPayload
		require.NoError(t, json.Unmarshal(payload, &p))
		assert.Equal(t, stored.ID(), p.InvoiceID)
		assert.Equal(t, "INV-2024-000007", p.Number)
		assert.Equal(t, "399.30", p.Total)
		assert.Equal(t, "2024-03-10", p.IssuedOn)
	})

	t.Run("no email means no notification", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).BuildDomain()
		r := builder.NewRoomBuilder().BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)
		m.rooms.EXPECT().FindByID(gomock.Any(), b.RoomID()).Return(r, nil)
		m.consumptions.EXPECT().ListByBooking(gomock.Any(), b.ID()).Return(nil, nil)
		m.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		require.NoError(t, err)
	})

	t.Run("booking must be checked out", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusOccupied).BuildDomain()

		// No NextSequence expectation: an early refusal must not draw an invoice number.
		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		assert.True(t, errs.Is(err, errs.ErrPreconditionFailed))
	})

	t.Run("second invoice for the same booking", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(true, nil)

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		assert.True(t, errs.Is(err, errs.ErrDuplicateInvoice))
	})

	t.Run("unique index race maps to duplicate", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).BuildDomain()
		r := builder.NewRoomBuilder().BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)
		m.rooms.EXPECT().FindByID(gomock.Any(), b.RoomID()).Return(r, nil)
		m.consumptions.EXPECT().ListByBooking(gomock.Any(), b.ID()).Return(nil, nil)
		m.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(2), nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: infra.ConstraintInvoiceBooking})

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		assert.True(t, errs.Is(err, errs.ErrDuplicateInvoice))
	})

	t.Run("number collision is not a duplicate invoice", func(t *testing.T) {
		m := newUowMocks(t)
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedOut).BuildDomain()
		r := builder.NewRoomBuilder().BuildDomain()

		m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), b.ID()).Return(b, nil)
		m.invoices.EXPECT().ExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)
		m.rooms.EXPECT().FindByID(gomock.Any(), b.RoomID()).Return(r, nil)
		m.consumptions.EXPECT().ListByBooking(gomock.Any(), b.ID()).Return(nil, nil)
		m.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(3), nil)
		m.invoices.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "invoices_number_key"})

		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, b.ID(), req)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrDuplicateInvoice))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		m := newUowMocks(t)
		_, err := commands.NewBillingCommands(m.uow, testPolicy, m.clock).IssueInvoice(ctx, uuid.New(), reqdto.IssueInvoiceRequest{PaymentMethod: "barter"})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
