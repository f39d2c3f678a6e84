// Package view rebuilds the renderable grouped record list from the store.
// The view is strictly derived output: it is regenerated in full from the
// record list and settings, and is never read back as a data source.
package view

import (
	"sort"
	"strings"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/model"
	"github.com/renewtrack/renewtrack/internal/report"
)

// MonthGroup is one close-month section of the rendered list.
type MonthGroup struct {
	Key      string // YYYY-MM
	Label    string // e.g. "January 2025"
	Records  []model.Client
	Subtotal float64 // confirmed amount for the month
}

// Rebuild regenerates the grouped view for the active year: year filter,
// search filter, chronological month groups, and a stable in-group sort by
// the active sort preference. Months with no surviving records are omitted.
func Rebuild(records []model.Client, settings model.Settings) []MonthGroup {
	yearRecords := report.FilterByYear(records, settings.ActiveYear)
	filtered := applySearch(yearRecords, settings.SearchTerm)

	partitions := report.PartitionByMonth(filtered)
	keys := make([]string, 0, len(partitions))
	for key := range partitions {
		keys = append(keys, key)
	}
	sort.Strings(keys) // YYYY-MM keys order chronologically as strings

	groups := make([]MonthGroup, 0, len(keys))
	for _, key := range keys {
		members := partitions[key]
		sortRecords(members, settings.Sort)
		groups = append(groups, MonthGroup{
			Key:      key,
			Label:    cli.MonthLabel(key),
			Records:  members,
			Subtotal: report.ConfirmedAmount(members),
		})
	}
	return groups
}

// applySearch filters by case-insensitive substring match across the
// displayed fields. If the term matches nothing the filter is not applied,
// so a typo never blanks the whole list.
func applySearch(records []model.Client, term string) []model.Client {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	var matched []model.Client
	for _, record := range records {
		if strings.Contains(searchText(record), term) {
			matched = append(matched, record)
		}
	}
	if len(matched) == 0 {
		return records
	}
	return matched
}

// searchText joins the fields a user sees for a record, as displayed.
func searchText(record model.Client) string {
	fields := []string{
		record.Name,
		record.OpportunityID,
		cli.FormatDate(record.RenewalDate),
		cli.FormatDate(record.SentDate),
		cli.FormatDate(record.CloseDate),
		cli.FormatCurrency(float64(record.Amount)),
	}
	return strings.ToLower(strings.Join(fields, "\x00"))
}

// sortRecords orders a month's records by the active preference. The sort
// is stable: records with equal keys keep their original relative order.
func sortRecords(records []model.Client, pref model.SortPreference) {
	desc := pref.Direction == model.SortDescending
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return recordLess(records[j], records[i], pref.Field)
		}
		return recordLess(records[i], records[j], pref.Field)
	})
}

func recordLess(a, b model.Client, field model.SortField) bool {
	switch field {
	case model.SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case model.SortByRenewalDate:
		return a.RenewalDate < b.RenewalDate
	case model.SortBySentDate:
		return a.SentDate < b.SentDate
	case model.SortByAmount:
		return a.Amount < b.Amount
	case model.SortByOpportunityID:
		return strings.ToLower(a.OpportunityID) < strings.ToLower(b.OpportunityID)
	case model.SortByCloseDate:
		return a.CloseDate < b.CloseDate
	default:
		return a.CloseDate < b.CloseDate
	}
}
