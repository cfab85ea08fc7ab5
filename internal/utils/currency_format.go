package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayPrecision is the number of fraction digits shown for money.
const DisplayPrecision = 2

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR formats an amount the way the console displays totals,
// with Indonesian grouping. Example: 500000 returns "500.000,00".
func FormatIDR(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}

// FormatWithPrecision formats an amount with Indonesian separators and a fixed
// number of fraction digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	rounded := amount.Round(int32(precision))
	return idPrinter.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}
