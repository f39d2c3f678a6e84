// Package report derives statistics and groupings from record subsets.
// Everything here is a pure function: no I/O, no mutation of inputs.
package report

import (
	"sort"
	"time"

	"github.com/renewtrack/renewtrack/internal/model"
)

// DiscoverYears returns the ascending set of years present in the records.
// Records with a malformed close date are skipped. The result is never
// empty: with no data the current calendar year stands in, and activeYear
// is always a member.
func DiscoverYears(records []model.Client, activeYear int) []int {
	seen := make(map[int]struct{})
	for _, record := range records {
		if year, ok := record.Year(); ok {
			seen[year] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	if len(years) == 0 {
		years = append(years, time.Now().Year())
	}
	if _, ok := seen[activeYear]; !ok && activeYear != 0 {
		years = append(years, activeYear)
	}

	sort.Ints(years)
	// Discovery can double-add when the fallback year equals activeYear.
	return dedupeSorted(years)
}

func dedupeSorted(years []int) []int {
	out := years[:0]
	for i, year := range years {
		if i == 0 || year != years[i-1] {
			out = append(out, year)
		}
	}
	return out
}

// PartitionByMonth groups records by their 'YYYY-MM' close-month key.
// Records with a malformed close date are excluded.
func PartitionByMonth(records []model.Client) map[string][]model.Client {
	groups := make(map[string][]model.Client)
	for _, record := range records {
		key, ok := record.MonthKey()
		if !ok {
			continue
		}
		groups[key] = append(groups[key], record)
	}
	return groups
}

// FilterByYear returns the records whose close date falls in the given year.
func FilterByYear(records []model.Client, year int) []model.Client {
	var out []model.Client
	for _, record := range records {
		if y, ok := record.Year(); ok && y == year {
			out = append(out, record)
		}
	}
	return out
}
