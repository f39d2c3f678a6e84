package model

import "time"

// SortField identifies the record field that orders the rendered list.
type SortField string

// Sortable record fields.
const (
	SortByName          SortField = "name"
	SortByRenewalDate   SortField = "renewalDate"
	SortBySentDate      SortField = "sentDate"
	SortByCloseDate     SortField = "closeDate"
	SortByAmount        SortField = "amount"
	SortByOpportunityID SortField = "opportunityId"
)

// ParseSortField validates a user-supplied sort field name.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByName, SortByRenewalDate, SortBySentDate, SortByCloseDate, SortByAmount, SortByOpportunityID:
		return SortField(s), true
	}
	return "", false
}

// SortDirection is the display order direction.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortPreference governs display order. It is persisted independently of
// record data under its own slot.
type SortPreference struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortPreference orders records chronologically by close date.
func DefaultSortPreference() SortPreference {
	return SortPreference{Field: SortByCloseDate, Direction: SortAscending}
}

// Settings holds the scalar state that accompanies the record list.
type Settings struct {
	SearchTerm     string
	AvailableYears []int
	CheckedRows    []string
	Sort           SortPreference
	ReceiptsGoal   int
	ActiveYear     int
}

// DefaultSettings returns the initial settings for an empty store: the
// current calendar year is the sole available year.
func DefaultSettings() Settings {
	year := time.Now().Year()
	return Settings{
		ActiveYear:     year,
		AvailableYears: []int{year},
		Sort:           DefaultSortPreference(),
	}
}
