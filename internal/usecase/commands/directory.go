package commands

import (
	"context"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// DirectoryCommands writes the flat back-office records: clients, staff and expenses.
type DirectoryCommands interface {
	CreateClient(ctx context.Context, req reqdto.CreateClientRequest) (uuid.UUID, error)
	CreateEmployee(ctx context.Context, req reqdto.CreateEmployeeRequest) (uuid.UUID, error)
	CreateShift(ctx context.Context, req reqdto.CreateShiftRequest) (uuid.UUID, error)
	CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest) (uuid.UUID, error)
}

type directoryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDirectoryCommands(uow shared.UnitOfWork, clk clock.Clock) DirectoryCommands {
	return &directoryCommandsImpl{uow: uow, clock: clk}
}

func (c *directoryCommandsImpl) CreateClient(ctx context.Context, req reqdto.CreateClientRequest) (uuid.UUID, error) {
	cl, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Clients().Create(ctx, cl)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cl.ID(), nil
}

func (c *directoryCommandsImpl) CreateEmployee(ctx context.Context, req reqdto.CreateEmployeeRequest) (uuid.UUID, error) {
	e, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Staff().CreateEmployee(ctx, e)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return e.ID(), nil
}

func (c *directoryCommandsImpl) CreateShift(ctx context.Context, req reqdto.CreateShiftRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		employee, err := tx.Staff().FindEmployeeByID(ctx, req.EmployeeID)
		if err != nil {
			return markRepoErr(err, errs.ErrEmployeeNotFound)
		}
		s, err := req.ToDomain(employee, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Staff().CreateShift(ctx, s); err != nil {
			return markRepoErr(err, errs.ErrEmployeeNotFound)
		}
		id = s.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *directoryCommandsImpl) CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest) (uuid.UUID, error) {
	e, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Expenses().Create(ctx, e)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return e.ID(), nil
}
