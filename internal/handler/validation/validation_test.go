//go:build unit

package validation_test

import (
	"testing"

	"hotel-backoffice/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type charge struct {
	Amount decimal.Decimal `binding:"decimalgt0"`
}

type price struct {
	Amount decimal.Decimal `binding:"decimalgte0"`
}

func TestMoneyTags(t *testing.T) {
	validation.Register()

	tests := []struct {
		name     string
		amount   string
		positive bool
		nonNeg   bool
	}{
		{name: "two decimals", amount: "10.01", positive: true, nonNeg: true},
		{name: "trailing zeros", amount: "10.500", positive: true, nonNeg: true},
		{name: "whole number", amount: "300", positive: true, nonNeg: true},
		{name: "zero", amount: "0", positive: false, nonNeg: true},
		{name: "negative", amount: "-1", positive: false, nonNeg: false},
		{name: "three decimals would be rounded", amount: "10.005", positive: false, nonNeg: false},
		{name: "sub-cent would become zero", amount: "0.004", positive: false, nonNeg: false},
		{name: "largest storable", amount: "9999999999.99", positive: true, nonNeg: true},
		{name: "overflows the column", amount: "10000000000", positive: false, nonNeg: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.positive, binding.Validator.ValidateStruct(&charge{Amount: d}) == nil)
			assert.Equal(t, tt.nonNeg, binding.Validator.ValidateStruct(&price{Amount: d}) == nil)
		})
	}
}

func TestISODateTag(t *testing.T) {
	validation.Register()

	type window struct {
		From string `binding:"isodate"`
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&window{From: "2024-02-29"}))
	assert.Error(t, binding.Validator.ValidateStruct(&window{From: "2023-02-29"}))
	assert.Error(t, binding.Validator.ValidateStruct(&window{From: "01/03/2024"}))
}
