// Package core implements the tax worksheet arithmetic: the calculation
// formula, input parsing, summary aggregation, and currency formatting.
package core

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency-style numbers for a fixed locale, with grouping
// separators and exactly two fraction digits (e.g. "7,850.00" for en).
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a Formatter for the given BCP 47 locale tag.
// Unparsable tags fall back to English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

// Format renders v with the locale's grouping separators and two decimals.
// Any finite number is valid input; non-finite values render however the
// underlying number formatter prints them.
func (f Formatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// ParseAmount reads a numeric worksheet form value. Blank or unparsable
// input is treated as zero rather than rejected.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
