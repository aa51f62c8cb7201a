package staff

import (
	"strings"
	"time"

	"hotel-backoffice/internal/domain/stay"

	"github.com/google/uuid"
)

// Shift is one employee's working window on a given day.
type Shift struct {
	id         uuid.UUID
	employeeID uuid.UUID
	shiftDate  time.Time
	startsAt   time.Time
	endsAt     time.Time
	notes      *string
	createdAt  time.Time
}

func NewShift(employee *Employee, startsAt, endsAt time.Time, notes *string, now time.Time) (*Shift, error) {
	if !employee.IsActive() {
		return nil, ErrInactiveStaff
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidShift
	}
	if notes != nil {
		n := strings.TrimSpace(*notes)
		if n == "" {
			notes = nil
		} else {
			notes = &n
		}
	}
	return &Shift{
		id:         uuid.New(),
		employeeID: employee.ID(),
		shiftDate:  stay.Midnight(startsAt.UTC()),
		startsAt:   startsAt.UTC(),
		endsAt:     endsAt.UTC(),
		notes:      notes,
		createdAt:  now,
	}, nil
}

func ReconstructShift(id, employeeID uuid.UUID, shiftDate, startsAt, endsAt time.Time, notes *string, createdAt time.Time) *Shift {
	return &Shift{
		id:         id,
		employeeID: employeeID,
		shiftDate:  shiftDate,
		startsAt:   startsAt,
		endsAt:     endsAt,
		notes:      notes,
		createdAt:  createdAt,
	}
}

func (s *Shift) Duration() time.Duration { return s.endsAt.Sub(s.startsAt) }

func (s *Shift) ID() uuid.UUID         { return s.id }
func (s *Shift) EmployeeID() uuid.UUID { return s.employeeID }
func (s *Shift) ShiftDate() time.Time  { return s.shiftDate }
func (s *Shift) StartsAt() time.Time   { return s.startsAt }
func (s *Shift) EndsAt() time.Time     { return s.endsAt }
func (s *Shift) Notes() *string        { return s.notes }
func (s *Shift) CreatedAt() time.Time  { return s.createdAt }
