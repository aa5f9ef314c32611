package insights

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts for a locale and currency.
type Money struct {
	tag       language.Tag
	printer   *message.Printer
	unit      currency.Unit
	separator string
}

// NewMoney returns a formatter for the BCP 47 locale and the ISO 4217
// currency code.
func NewMoney(locale, code string) (Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Money{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	printer := message.NewPrinter(tag)

	// 0.5 is exact as a float, only its separator is kept
	separator := strings.TrimFunc(printer.Sprintf("%v", number.Decimal(0.5, number.Scale(1))), unicode.IsDigit)

	return Money{tag: tag, printer: printer, unit: unit, separator: separator}, nil
}

// Format returns the amount with the currency symbol and two decimals.
//
// Integer and fractional part are printed separately as integers, amounts
// never pass through a float.
func (m Money) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	units := rounded.Abs().Truncate(0)
	cents := rounded.Abs().Sub(units).Shift(2).IntPart()

	return m.printer.Sprintf("%v %s%v%s%v",
		currency.Symbol(m.unit),
		sign,
		number.Decimal(units.IntPart()),
		m.separator,
		number.Decimal(cents, number.MinIntegerDigits(2)),
	)
}

// Language returns the English name of the locale's language.
func (m Money) Language() string {
	base, _ := m.tag.Base()
	return display.English.Languages().Name(base)
}
