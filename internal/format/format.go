// Package format renders numeric metrics as display strings with magnitude
// suffixes. Absent or non-finite values always render as the "N/A" marker,
// never as an error.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// NotAvailable marks a missing or non-finite value.
const NotAvailable = "N/A"

// Financial renders a statement figure scaled to thousands, millions or
// billions with two decimal places.
func Financial(v *float64) string {
	if !finite(v) {
		return NotAvailable
	}
	n := *v
	switch {
	case math.Abs(n) >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case math.Abs(n) >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("%.2fK", n/1e3)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// Currency renders a dollar amount with magnitude suffixes. Headline
// metrics like market capitalization reach into the trillions.
func Currency(v *float64) string {
	if !finite(v) {
		return NotAvailable
	}
	n := *v
	switch {
	case math.Abs(n) >= 1e12:
		return fmt.Sprintf("$%.2fT", n/1e12)
	case math.Abs(n) >= 1e9:
		return fmt.Sprintf("$%.2fB", n/1e9)
	case math.Abs(n) >= 1e6:
		return fmt.Sprintf("$%.2fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("$%.2fK", n/1e3)
	default:
		return fmt.Sprintf("$%.2f", n)
	}
}

// Percent renders a percentage with two decimal places. The input is already
// in percent form (e.g. 12.34 → "12.34%").
func Percent(v *float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// Ratio renders a unitless ratio (P/E, beta, PEG) with two decimal places.
func Ratio(v *float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

// Comma renders a whole count (shares, employees) with thousands separators.
func Comma(v *int64) string {
	if v == nil {
		return NotAvailable
	}
	return humanize.Comma(*v)
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
