package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel-backoffice/internal/domain/stay"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxClientNameLength = 200
	MaxNotesLength      = 2000
)

var (
	ErrInvalidStatus   = errs.Mark(errs.New("invalid booking status"), errs.ErrDomainValidation)
	ErrEmptyClientName = errs.Mark(errs.New("client name is required"), errs.ErrDomainValidation)
	ErrClientNameLong  = errs.Mark(errs.New("client name is too long"), errs.ErrDomainValidation)
	ErrNotesTooLong    = errs.Mark(errs.New("notes are too long"), errs.ErrDomainValidation)
	ErrNegativePrice   = errs.Mark(errs.New("price per night cannot be negative"), errs.ErrDomainValidation)
	ErrInitialStatus   = errs.Mark(errs.New("booking cannot be created as checked-out"), errs.ErrDomainValidation)
)

// Booking holds a room for a half-open range of dates.
// The nightly price is snapshotted from the room when the booking is created.
type Booking struct {
	id            uuid.UUID
	roomID        uuid.UUID
	clientID      *uuid.UUID
	clientName    string
	dates         stay.DateRange
	status        Status
	pricePerNight decimal.Decimal
	notes         *string
	email         *string
	createdAt     time.Time
	updatedAt     time.Time
}

type Details struct {
	ClientID   *uuid.UUID
	ClientName string
	Notes      *string
	Email      *string
}

func NewBooking(
	roomID uuid.UUID,
	details Details,
	dates stay.DateRange,
	status Status,
	pricePerNight decimal.Decimal,
	now time.Time,
) (*Booking, error) {
	if status == "" {
		status = StatusReserved
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if status.IsTerminal() {
		return nil, ErrInitialStatus
	}
	if pricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}

	b := &Booking{
		id:            uuid.New(),
		roomID:        roomID,
		dates:         dates,
		status:        status,
		pricePerNight: pricePerNight,
		createdAt:     now,
		updatedAt:     now,
	}
	if err := b.applyDetails(details); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	clientID *uuid.UUID,
	clientName string,
	dates stay.DateRange,
	status Status,
	pricePerNight decimal.Decimal,
	notes, email *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		roomID:        roomID,
		clientID:      clientID,
		clientName:    clientName,
		dates:         dates,
		status:        status,
		pricePerNight: pricePerNight,
		notes:         notes,
		email:         email,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Reschedule moves the booking to new dates. The price snapshot is kept.
func (b *Booking) Reschedule(dates stay.DateRange, now time.Time) error {
	if b.status.IsTerminal() {
		return errs.ErrBookingAlreadyCheckedOut
	}
	b.dates = dates
	b.updatedAt = now
	return nil
}

func (b *Booking) UpdateDetails(details Details, now time.Time) error {
	if err := b.applyDetails(details); err != nil {
		return err
	}
	b.updatedAt = now
	return nil
}

// TransitionTo moves the booking along the status graph.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return errs.Mark(
			errs.New("cannot move booking from "+b.status.String()+" to "+next.String()),
			errs.ErrInvalidStatusTransition,
		)
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) EnsureDeletable() error {
	if !b.status.IsDeletable() {
		return errs.ErrBookingNotDeletable
	}
	return nil
}

// StayCost prices the booking at its snapshotted nightly price.
func (b *Booking) StayCost() stay.StayCost {
	return stay.ComputeStay(b.dates.Start(), b.dates.End(), b.pricePerNight)
}

func (b *Booking) ReservedInterval() stay.ReservedInterval {
	return stay.ReservedInterval{BookingID: b.id, Range: b.dates}
}

func (b *Booking) applyDetails(d Details) error {
	name := strings.TrimSpace(d.ClientName)
	if name == "" {
		return ErrEmptyClientName
	}
	if utf8.RuneCountInString(name) > MaxClientNameLength {
		return ErrClientNameLong
	}
	notes := trimmedPtr(d.Notes)
	if notes != nil && utf8.RuneCountInString(*notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	b.clientID = d.ClientID
	b.clientName = name
	b.notes = notes
	b.email = trimmedPtr(d.Email)
	return nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) RoomID() uuid.UUID              { return b.roomID }
func (b *Booking) ClientID() *uuid.UUID           { return b.clientID }
func (b *Booking) ClientName() string             { return b.clientName }
func (b *Booking) Dates() stay.DateRange          { return b.dates }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) PricePerNight() decimal.Decimal { return b.pricePerNight }
func (b *Booking) Notes() *string                 { return b.notes }
func (b *Booking) Email() *string                 { return b.email }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
