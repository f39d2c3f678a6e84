package model

import (
	"strconv"
	"strings"
	"time"
)

// Client represents a single renewal opportunity.
type Client struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CloseDate     string `json:"closeDate"`
	RenewalDate   string `json:"renewalDate,omitempty"`
	SentDate      string `json:"sentDate,omitempty"`
	OpportunityID string `json:"opportunityId,omitempty"`
	Notes         string `json:"notes"`
	Amount        Amount `json:"amount"`
	IsChecked     bool   `json:"isChecked"`
}

// Year extracts the calendar year from the close date. Records with a
// missing or malformed close date report ok=false and are excluded from
// year discovery and monthly grouping.
func (c Client) Year() (int, bool) {
	if len(c.CloseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(c.CloseDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// MonthKey returns the 'YYYY-MM' grouping key for the record's close date.
func (c Client) MonthKey() (string, bool) {
	if len(c.CloseDate) < 7 || c.CloseDate[4] != '-' {
		return "", false
	}
	if _, err := strconv.Atoi(c.CloseDate[5:7]); err != nil {
		return "", false
	}
	if _, ok := c.Year(); !ok {
		return "", false
	}
	return c.CloseDate[:7], true
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Amount is a non-negative currency value. It unmarshals from either a JSON
// number or a legacy currency string ("USD 1,234.56"); unparsable input
// coerces to 0 rather than failing the whole record.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(ParseAmount(unquoted))
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(value)
	return nil
}

// ParseAmount parses a currency string such as "USD 1,234.56" or "$500"
// into a float, returning 0 for anything unparseable.
func ParseAmount(s string) float64 {
	cleaned := strings.NewReplacer("USD", "", "$", "", ",", "", " ", "").Replace(s)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
