package division

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a fee amount held in minor units (cents) so fee tables compare
// exactly.
type Money int64

// Cents builds a Money value from minor units.
func Cents(c int64) Money {
	return Money(c)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float64 returns the amount in major units (50.0 for 5000 cents).
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// String returns the plain decimal form, e.g. "50.00".
func (m Money) String() string {
	sign := ""
	c := int64(m)
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Format renders the amount in the given currency using the locale
// conventions of tag, e.g. "$ 50.00" for USD in English.
func (m Money) Format(unit currency.Unit, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(m.Float64())))
}
