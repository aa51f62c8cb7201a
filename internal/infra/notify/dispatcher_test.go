//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-backoffice/internal/infra/notify"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase/shared"
	notifymock "hotel-backoffice/tests/mock/notify"
	sharedmock "hotel-backoffice/tests/mock/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	jobs       *sharedmock.MockNotificationRepository
	sender     *notifymock.MockSender
	dispatcher *notify.Dispatcher

	// txs counts committed or rolled back transactions; inTx is set while one is open.
	txs  int
	inTx bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	f := &fixture{
		jobs:   sharedmock.NewMockNotificationRepository(ctrl),
		sender: notifymock.NewMockSender(ctrl),
	}
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			f.inTx = true
			defer func() {
				f.inTx = false
				f.txs++
			}()
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Notifications().Return(f.jobs).AnyTimes()

	cfg := config.NewTestConfig()
	cfg.Notify.Interval = time.Minute
	cfg.Notify.MaxAttempts = 3
	cfg.Notify.Lease = 5 * time.Minute
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.dispatcher = notify.NewDispatcher(uow, f.sender, cfg, clock.NewMockClock(now), logger)
	return f
}

func invoiceJob(t *testing.T, attempts int32) (shared.NotificationJob, shared.InvoiceIssuedPayload) {
	t.Helper()
	p := shared.InvoiceIssuedPayload{
		InvoiceID:  uuid.New(),
		BookingID:  uuid.New(),
		Number:     "INV-2024-000001",
		ClientName: "Ada Lovelace",
		Email:      "ada@example.com",
		Total:      "399.30",
		IssuedOn:   "2024-03-10",
	}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     shared.NotificationKindInvoiceIssued,
		Topic:    p.Email,
		Payload:  raw,
		RunAt:    now,
		Attempts: attempts,
	}, p
}

func TestDispatcher_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sent job is marked sent", func(t *testing.T) {
		f := newFixture(t)
		job, p := invoiceJob(t, 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), int32(10), now.Add(5*time.Minute)).Return([]shared.NotificationJob{job}, nil)
		f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), p).
			DoAndReturn(func(context.Context, shared.InvoiceIssuedPayload) error {
				assert.False(t, f.inTx, "send must not hold a transaction open")
				return nil
			})
		f.jobs.EXPECT().MarkSent(gomock.Any(), job.ID).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Sent: 1}, res)
		assert.Equal(t, 2, f.txs)
	})

	t.Run("failed send is retried with backoff", func(t *testing.T) {
		f := newFixture(t)
		job, _ := invoiceJob(t, 1)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), gomock.Any()).Return(errors.New("smtp unavailable"))
		f.jobs.EXPECT().MarkFailed(gomock.Any(), job.ID, "smtp unavailable", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, retryAt *time.Time) error {
				require.NotNil(t, retryAt)
				assert.Equal(t, now.Add(2*time.Minute), *retryAt)
				return nil
			})

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Retried: 1}, res)
	})

	t.Run("last attempt fails for good", func(t *testing.T) {
		f := newFixture(t)
		job, _ := invoiceJob(t, 2)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), gomock.Any()).Return(errors.New("mailbox full"))
		f.jobs.EXPECT().MarkFailed(gomock.Any(), job.ID, "mailbox full", (*time.Time)(nil)).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Failed: 1}, res)
	})

	t.Run("unknown kind is never retried", func(t *testing.T) {
		f := newFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Kind: "carrier_pigeon", Payload: []byte(`{}`)}

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.jobs.EXPECT().MarkFailed(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Failed: 1}, res)
	})

	t.Run("undecodable payload is never retried", func(t *testing.T) {
		f := newFixture(t)
		job, _ := invoiceJob(t, 0)
		job.Payload = []byte(`{"invoice_id":`)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{job}, nil)
		f.jobs.EXPECT().MarkFailed(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Failed: 1}, res)
	})

	t.Run("failed status write leaves other jobs recorded", func(t *testing.T) {
		f := newFixture(t)
		first, p1 := invoiceJob(t, 0)
		second, p2 := invoiceJob(t, 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{first, second}, nil)
		f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), p1).Return(nil)
		f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), p2).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), first.ID).Return(errors.New("serialization failure"))
		f.jobs.EXPECT().MarkSent(gomock.Any(), second.ID).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.Error(t, err)
		assert.Equal(t, notify.Result{Sent: 1}, res)
		assert.Equal(t, 3, f.txs, "claim plus one transaction per job")
	})

	t.Run("one bad job does not block the batch", func(t *testing.T) {
		f := newFixture(t)
		bad, _ := invoiceJob(t, 0)
		good, p := invoiceJob(t, 0)

		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.NotificationJob{bad, good}, nil)
		gomock.InOrder(
			f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), gomock.Not(p)).Return(errors.New("timeout")),
			f.sender.EXPECT().SendInvoiceIssued(gomock.Any(), p).Return(nil),
		)
		f.jobs.EXPECT().MarkFailed(gomock.Any(), bad.ID, "timeout", gomock.Not(gomock.Nil())).Return(nil)
		f.jobs.EXPECT().MarkSent(gomock.Any(), good.ID).Return(nil)

		res, err := f.dispatcher.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, notify.Result{Sent: 1, Retried: 1}, res)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		f := newFixture(t)
		f.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.dispatcher.RunOnce(ctx)
		assert.Error(t, err)
	})
}
