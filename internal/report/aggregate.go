package report

import "github.com/renewtrack/renewtrack/internal/model"

// TotalAmount sums the amount of every given record, confirmed or not.
func TotalAmount(records []model.Client) float64 {
	var total float64
	for _, record := range records {
		total += float64(record.Amount)
	}
	return total
}

// ConfirmedAmount sums the amount of confirmed (checked) records only.
func ConfirmedAmount(records []model.Client) float64 {
	var total float64
	for _, record := range records {
		if record.IsChecked {
			total += float64(record.Amount)
		}
	}
	return total
}

// ConfirmedCount counts confirmed records.
func ConfirmedCount(records []model.Client) int {
	count := 0
	for _, record := range records {
		if record.IsChecked {
			count++
		}
	}
	return count
}

// AverageConfirmedAmount is the mean confirmed deal size, 0 when nothing
// is confirmed.
func AverageConfirmedAmount(records []model.Client) float64 {
	count := ConfirmedCount(records)
	if count == 0 {
		return 0
	}
	return ConfirmedAmount(records) / float64(count)
}

// MonthlySubtotals maps each 'YYYY-MM' close-month to the confirmed amount
// of that month's records. Confirmation is determined solely by the checked
// flag.
func MonthlySubtotals(records []model.Client) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range records {
		if !record.IsChecked {
			continue
		}
		key, ok := record.MonthKey()
		if !ok {
			continue
		}
		totals[key] += float64(record.Amount)
	}
	return totals
}

// ProgressPercentage reports confirmed progress against the receipts goal,
// 0 when no goal is set.
func ProgressPercentage(confirmedCount, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(confirmedCount) / float64(goal) * 100
}
