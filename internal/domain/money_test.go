package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{30000, "$300.00"},
		{70000, "$700.00"},
		{100000, "$1,000.00"},
		{123456789, "$1,234,567.89"},
		{-70000, "-$700.00"},
		{-5, "-$0.05"},
		{math.MinInt64, "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCents(tt.cents))
		})
	}
}

func TestCentsToDecimal(t *testing.T) {
	assert.True(t, CentsToDecimal(12345).Equal(decimal.RequireFromString("123.45")))
	assert.True(t, CentsToDecimal(-1).Equal(decimal.RequireFromString("-0.01")))
	assert.Equal(t, 1000.0, CentsToDecimal(100000).InexactFloat64())
}

func TestNewMoney(t *testing.T) {
	m := NewMoney(250075)

	assert.Equal(t, int64(250075), m.Cents)
	assert.Equal(t, "2500.75", m.Value.String())
	assert.Equal(t, "$2,500.75", m.Display)
}
