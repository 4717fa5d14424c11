package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Month is a billing month token in yyyy-MM form, kept exactly as supplied.
type Month string

func (m Month) String() string { return string(m) }

// Hours is a whole number of hours worked in the month, zero or above.
type Hours int32

// Rate is an hourly pay rate, zero or above, with exact decimal precision.
type Rate decimal.Decimal

func (r Rate) Decimal() decimal.Decimal { return decimal.Decimal(r) }

func (r Rate) String() string { return decimal.Decimal(r).String() }

// Earnings is the pay for a month, hours times rate. It is only ever derived,
// never constructed from user input.
type Earnings decimal.Decimal

func (e Earnings) Decimal() decimal.Decimal { return decimal.Decimal(e) }

// String renders the amount for display. Whole amounts keep one decimal
// place so a 150-hour month at rate 30 reads 4500.0, not 4500.
func (e Earnings) String() string {
	s := decimal.Decimal(e).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RawInput carries the three opaque argument tokens, built once from argv.
type RawInput struct {
	Month string
	Hours string
	Rate  string
}

// ValidatedFields holds the three typed values after a successful
// composition. Each component has already passed its field predicate; the
// typed values only come out of the validators, so a ValidatedFields cannot
// hold an unchecked token.
type ValidatedFields struct {
	Month Month
	Hours Hours
	Rate  Rate
}
