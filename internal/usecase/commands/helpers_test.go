//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/shared"
	sharedmock "hotel-backoffice/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// uowMocks wires a mocked Tx into a mocked UnitOfWork that runs fn directly.
type uowMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	rooms         *sharedmock.MockRoomRepository
	bookings      *sharedmock.MockBookingRepository
	consumptions  *sharedmock.MockConsumptionRepository
	invoices      *sharedmock.MockInvoiceRepository
	clients       *sharedmock.MockClientRepository
	staff         *sharedmock.MockStaffRepository
	expenses      *sharedmock.MockExpenseRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	clock         *clock.MockClock
}

func newUowMocks(t *testing.T) *uowMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &uowMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		rooms:         sharedmock.NewMockRoomRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		consumptions:  sharedmock.NewMockConsumptionRepository(ctrl),
		invoices:      sharedmock.NewMockInvoiceRepository(ctrl),
		clients:       sharedmock.NewMockClientRepository(ctrl),
		staff:         sharedmock.NewMockStaffRepository(ctrl),
		expenses:      sharedmock.NewMockExpenseRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Consumptions().Return(m.consumptions).AnyTimes()
	m.tx.EXPECT().Invoices().Return(m.invoices).AnyTimes()
	m.tx.EXPECT().Clients().Return(m.clients).AnyTimes()
	m.tx.EXPECT().Staff().Return(m.staff).AnyTimes()
	m.tx.EXPECT().Expenses().Return(m.expenses).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	return m
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.RepositoryError{Kind: kind}
}
