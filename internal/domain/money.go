package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CentsToDecimal converts minor units into an exact two-place decimal.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents as a dollar string with thousands separators,
// e.g. 100000 -> "$1,000.00" and -70000 -> "-$700.00".
func FormatCents(cents int64) string {
	sign := ""
	u := uint64(cents)
	if cents < 0 {
		sign = "-"
		u = uint64(-(cents + 1)) + 1
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(int64(u/100)), u%100)
}

// Money is the JSON shape of an amount: raw cents, decimal value and display text.
type Money struct {
	Cents   int64           `json:"cents"`
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
}

func NewMoney(cents int64) Money {
	return Money{
		Cents:   cents,
		Value:   CentsToDecimal(cents),
		Display: FormatCents(cents),
	}
}
