package budget

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseAmount parses a user supplied amount. Anything that is not a valid,
// non-negative number is read as zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return nonNegative(d)
}

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount formats an amount in rupees for display, with Indian digit
// grouping and at most two fraction digits.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%v%v", currency.Symbol(currency.INR), number.Decimal(f, number.MaxFractionDigits(2)))
}
