// Package money renders currency amounts the way the storefront displays them.
package money

import (
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits caps the fractional digits of any rendered amount.
const MaxFractionDigits = 2

type formatter struct {
	printer *message.Printer
}

// NewFormatter returns an en-US style formatter: symbol prefix, grouped digits,
// and the currency's standard scale capped at MaxFractionDigits.
func NewFormatter() service.PriceFormatter {
	return &formatter{printer: message.NewPrinter(language.AmericanEnglish)}
}

// Format renders amount, which must already be in code.
func (f *formatter) Format(amount decimal.Decimal, code entity.CurrencyCode) string {
	scale := Scale(code)
	rounded := amount.Round(int32(scale))

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	return sign + f.symbol(code) + f.digits(rounded, scale)
}

// symbol is the CLDR symbol for ISO codes. Other codes are shown as the code
// followed by a space.
func (f *formatter) symbol(code entity.CurrencyCode) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return string(code) + " "
	}

	return f.printer.Sprint(currency.Symbol(unit))
}

// digits groups the integer part with the printer and keeps the fraction exact.
// Amounts beyond int64 are rendered ungrouped.
func (f *formatter) digits(amount decimal.Decimal, scale int) string {
	fixed := amount.StringFixed(int32(scale))
	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fixed
	}

	grouped := f.printer.Sprint(number.Decimal(n))
	if frac == "" {
		return grouped
	}

	return grouped + "." + frac
}

// Scale returns the number of fractional digits used for code.
// Codes unknown to ISO 4217 use MaxFractionDigits.
func Scale(code entity.CurrencyCode) int {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return MaxFractionDigits
	}
	scale, _ := currency.Standard.Rounding(unit)

	return min(scale, MaxFractionDigits)
}
