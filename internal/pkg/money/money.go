// Package money renders decimal amounts as localized currency strings for
// reports and tool output.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter prints amounts of one currency with the conventions of one locale.
//
// Example:
//
//	f, err := money.NewFormatter("BRL", "pt-BR")
//	f.Format(decimal.NewFromInt(3500)) // "R$ 3.500,00"
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter parses an ISO 4217 code and a BCP 47 locale.
func NewFormatter(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO code.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format rounds amount to cents and prefixes the currency symbol.
func (f Formatter) Format(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()
	return f.printer.Sprintf("%v %v",
		currency.Symbol(f.unit),
		number.Decimal(value, number.Scale(2)),
	)
}
