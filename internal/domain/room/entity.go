package room

import (
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName      = errs.Mark(errs.New("room name is required"), errs.ErrDomainValidation)
	ErrEmptyCategory  = errs.Mark(errs.New("room category is required"), errs.ErrDomainValidation)
	ErrNegativePrice  = errs.Mark(errs.New("price per night cannot be negative"), errs.ErrDomainValidation)
	ErrCleaningStatus = errs.Mark(errs.New("invalid cleaning status"), errs.ErrDomainValidation)
)

type CleaningStatus string

const (
	CleaningClean     CleaningStatus = "clean"
	CleaningDirty     CleaningStatus = "dirty"
	CleaningServicing CleaningStatus = "servicing"
)

func ParseCleaningStatus(s string) (CleaningStatus, error) {
	cs := CleaningStatus(s)
	switch cs {
	case CleaningClean, CleaningDirty, CleaningServicing:
		return cs, nil
	default:
		return "", ErrCleaningStatus
	}
}

func (c CleaningStatus) String() string { return string(c) }

type Room struct {
	id             uuid.UUID
	name           string
	category       string
	pricePerNight  decimal.Decimal
	cleaningStatus CleaningStatus
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRoom(name, category string, pricePerNight decimal.Decimal, now time.Time) (*Room, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if pricePerNight.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Room{
		id:             uuid.New(),
		name:           name,
		category:       category,
		pricePerNight:  pricePerNight,
		cleaningStatus: CleaningClean,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name, category string,
	pricePerNight decimal.Decimal,
	cleaningStatus CleaningStatus,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:             id,
		name:           name,
		category:       category,
		pricePerNight:  pricePerNight,
		cleaningStatus: cleaningStatus,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ChangePrice affects future bookings only; existing bookings keep their snapshot.
func (r *Room) ChangePrice(price decimal.Decimal, now time.Time) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	r.pricePerNight = price
	r.updatedAt = now
	return nil
}

func (r *Room) SetCleaningStatus(status CleaningStatus, now time.Time) error {
	if _, err := ParseCleaningStatus(string(status)); err != nil {
		return err
	}
	r.cleaningStatus = status
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID                  { return r.id }
func (r *Room) Name() string                   { return r.name }
func (r *Room) Category() string               { return r.category }
func (r *Room) PricePerNight() decimal.Decimal { return r.pricePerNight }
func (r *Room) CleaningStatus() CleaningStatus { return r.cleaningStatus }
func (r *Room) CreatedAt() time.Time           { return r.createdAt }
func (r *Room) UpdatedAt() time.Time           { return r.updatedAt }
