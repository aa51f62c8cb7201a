package staff

import (
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errs.Mark(errs.New("employee name is required"), errs.ErrDomainValidation)
	ErrEmptyRole     = errs.Mark(errs.New("employee role is required"), errs.ErrDomainValidation)
	ErrInvalidShift  = errs.Mark(errs.New("shift must end after it starts"), errs.ErrDomainValidation)
	ErrInactiveStaff = errs.Mark(errs.New("employee is not active"), errs.ErrDomainValidation)
)

type Employee struct {
	id        uuid.UUID
	fullName  string
	role      string
	email     *string
	isActive  bool
	createdAt time.Time
}

func NewEmployee(fullName, role string, email *string, now time.Time) (*Employee, error) {
	fullName = strings.TrimSpace(fullName)
	role = strings.TrimSpace(role)
	if fullName == "" {
		return nil, ErrEmptyName
	}
	if role == "" {
		return nil, ErrEmptyRole
	}
	return &Employee{
		id:        uuid.New(),
		fullName:  fullName,
		role:      role,
		email:     email,
		isActive:  true,
		createdAt: now,
	}, nil
}

func ReconstructEmployee(id uuid.UUID, fullName, role string, email *string, isActive bool, createdAt time.Time) *Employee {
	return &Employee{id: id, fullName: fullName, role: role, email: email, isActive: isActive, createdAt: createdAt}
}

func (e *Employee) ID() uuid.UUID        { return e.id }
func (e *Employee) FullName() string     { return e.fullName }
func (e *Employee) Role() string         { return e.role }
func (e *Employee) Email() *string       { return e.email }
func (e *Employee) IsActive() bool       { return e.isActive }
func (e *Employee) CreatedAt() time.Time { return e.createdAt }
