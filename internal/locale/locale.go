// Package locale converts German statement notation (DD.MM. dates,
// decimal-comma amounts) into canonical values.
package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatError reports a token that does not follow the expected German
// date or amount notation.
type FormatError struct {
	Token string
	Kind  string // "date" or "amount"
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s token %q: %v", e.Kind, e.Token, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

var shortDateRe = regexp.MustCompile(`^(\d{2})\.(\d{2})\.$`)

// ParseDate converts a "DD.MM." token plus an externally supplied year into
// a calendar date.
func ParseDate(token string, year int) (time.Time, error) {
	m := shortDateRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return time.Time{}, &FormatError{Token: token, Kind: "date", Err: fmt.Errorf("want DD.MM.")}
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, &FormatError{Token: token, Kind: "date", Err: fmt.Errorf("month %d out of range", month)}
	}
	if day < 1 || day > daysIn(month, year) {
		return time.Time{}, &FormatError{Token: token, Kind: "date", Err: fmt.Errorf("day %d out of range", day)}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseFullDate converts a "DD.MM.YYYY" token (used by balance lines) into a
// calendar date.
func ParseFullDate(token string) (time.Time, error) {
	d, err := time.Parse("02.01.2006", strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, &FormatError{Token: token, Kind: "date", Err: err}
	}
	return d, nil
}

// ParseAmount converts a German-notation amount ("." thousands separator,
// "," decimal separator, e.g. "1.234,56") into a decimal. The raw text is
// always non-negative; the caller applies the sign from the S/H indicator.
func ParseAmount(token string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(token), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, &FormatError{Token: token, Kind: "amount", Err: err}
	}
	if d.IsNegative() {
		return decimal.Zero, &FormatError{Token: token, Kind: "amount", Err: fmt.Errorf("raw amount must be non-negative")}
	}
	return d, nil
}

// FormatAmount renders a decimal back into German notation with two decimal
// places and "." thousands separators.
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "," + fracPart
}

func daysIn(month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
