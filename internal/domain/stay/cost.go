package stay

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// StayCost is the base cost of a stay. Amount keeps full precision.
type StayCost struct {
	Nights int
	Amount decimal.Decimal
}

// NightsBetween counts whole nights between two dates taken at midnight UTC.
// Reversed or equal dates give zero.
func NightsBetween(start, end time.Time) int {
	diff := Midnight(end).Sub(Midnight(start)).Hours() / hoursPerDay
	n := int(math.Round(diff))
	if n < 0 {
		return 0
	}
	return n
}

// ComputeStay prices a stay at pricePerNight. A range with end <= start costs
// nothing; rejecting such a range for a real booking is the caller's job.
func ComputeStay(start, end time.Time, pricePerNight decimal.Decimal) StayCost {
	nights := NightsBetween(start, end)
	if nights == 0 {
		return StayCost{Nights: 0, Amount: decimal.Zero}
	}
	return StayCost{
		Nights: nights,
		Amount: pricePerNight.Mul(decimal.NewFromInt(int64(nights))),
	}
}

func (c StayCost) Rounded() decimal.Decimal {
	return RoundMoney(c.Amount)
}

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
