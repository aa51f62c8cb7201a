package stay

import (
	"fmt"
	"time"

	"hotel-backoffice/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open range of calendar dates [Start, End).
// Both ends are normalised to midnight UTC.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange rejects zero-night and reversed ranges with errs.ErrInvalidRange.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := Midnight(start), Midnight(end)
	if !e.After(s) {
		return DateRange{}, errs.Mark(
			errs.Newf("end date %s must be after start date %s", e.Format(DateLayout), s.Format(DateLayout)),
			errs.ErrInvalidRange,
		)
	}
	return DateRange{start: s, end: e}, nil
}

// ParseDateRange builds a range from two YYYY-MM-DD strings.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "parse date"), errs.ErrInvalidRange)
	}
	return t, nil
}

// Midnight drops the time-of-day, keeping the calendar date as seen in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Nights() int {
	return NightsBetween(r.start, r.end)
}

// Overlaps uses the half-open rule: back-to-back ranges sharing a boundary do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(DateLayout), r.end.Format(DateLayout))
}
