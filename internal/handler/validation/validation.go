package validation

import (
	"reflect"
	"sync"

	"hotel-backoffice/internal/domain/stay"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var once sync.Once

// Register adds the custom tags used by the request DTOs to gin's validator.
// Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// decimal.Decimal is a struct; validate it as its string form.
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("isodate", isoDate)
		_ = v.RegisterValidation("decimalgt0", decimalGreaterThanZero)
		_ = v.RegisterValidation("decimalgte0", decimalNotNegative)
	})
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := stay.ParseDate(fl.Field().String())
	return err == nil
}

// Money columns are NUMERIC(12,2): at most two decimals and ten integer digits.
const moneyScale = 2

var moneyLimit = decimal.New(1, 10)

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl)
	return ok && d.IsPositive()
}

func decimalNotNegative(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl)
	return ok && !d.IsNegative()
}

// parseMoney rejects amounts the database would round or overflow.
func parseMoney(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	if !d.Equal(d.Truncate(moneyScale)) || d.Abs().GreaterThanOrEqual(moneyLimit) {
		return decimal.Decimal{}, false
	}
	return d, true
}
