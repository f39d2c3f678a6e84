package cli

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders an ISO calendar date as M/D/YYYY for display. Invalid
// or empty dates render as an empty string.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatCurrency renders an amount as a USD currency string with thousands
// separators, e.g. $1,234.56.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("$%s.%02d", strings.Join(groups, ","), cents)
	if negative {
		return "-" + out
	}
	return out
}

// MonthLabel renders a 'YYYY-MM' key as a human heading, e.g. "January 2025".
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
