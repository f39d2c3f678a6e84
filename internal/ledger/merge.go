package ledger

import (
	"context"

	"github.com/renewtrack/renewtrack/internal/model"
	"github.com/renewtrack/renewtrack/internal/report"
)

// ApplyPayload reconciles an externally supplied record set with the store.
//
// With initialLoad, the whole store is replaced from the payload, with
// type-checked fallbacks to the current value for any absent field. This
// runs exactly once at startup from persisted storage.
//
// Otherwise the import is scoped to the active year: incoming records for
// that year replace the existing ones, records of all other years are left
// untouched, and the checked-id set is re-derived. Returns the number of
// records taken from the payload.
//
// The payload has already passed schema validation; no mutation happens
// before this point, so a malformed document can never leave partial state.
func (l *Ledger) ApplyPayload(ctx context.Context, payload *model.Payload, initialLoad bool) int {
	if initialLoad {
		return l.replaceAll(ctx, payload)
	}
	return l.replaceYear(ctx, payload)
}

func (l *Ledger) replaceAll(ctx context.Context, payload *model.Payload) int {
	l.clients = normalizeRecords(payload.Clients, nil)

	if payload.ReceiptsGoal != nil {
		l.settings.ReceiptsGoal = *payload.ReceiptsGoal
	}
	if payload.SearchTerm != nil {
		l.settings.SearchTerm = *payload.SearchTerm
	}
	if payload.ActiveYear != nil {
		l.settings.ActiveYear = *payload.ActiveYear
	}
	if payload.AvailableYears != nil {
		l.settings.AvailableYears = append([]int(nil), payload.AvailableYears...)
	}

	// The checked flags on the records are authoritative; the persisted
	// checked-id list is only a cache and may be stale.
	l.syncCheckedRows()
	l.discoverYears()
	l.commit(ctx)
	return len(l.clients)
}

func (l *Ledger) replaceYear(ctx context.Context, payload *model.Payload) int {
	year := l.settings.ActiveYear

	var kept []model.Client
	keptIDs := make(map[string]struct{})
	for _, record := range l.clients {
		if y, ok := record.Year(); ok && y == year {
			continue
		}
		kept = append(kept, record)
		keptIDs[record.ID] = struct{}{}
	}

	incoming := normalizeRecords(report.FilterByYear(payload.Clients, year), func(id string) bool {
		_, clash := keptIDs[id]
		return clash
	})

	l.clients = append(kept, incoming...)

	if payload.ReceiptsGoal != nil {
		l.settings.ReceiptsGoal = *payload.ReceiptsGoal
	}
	if payload.SearchTerm != nil {
		l.settings.SearchTerm = *payload.SearchTerm
	}

	l.syncCheckedRows()
	l.discoverYears()
	l.commit(ctx)
	return len(incoming)
}

// normalizeRecords defaults notes, assigns ids to records arriving without
// one, and drops in-batch duplicate ids so store-wide uniqueness holds.
// clashes reports whether an id already exists outside the batch; clashing
// records get a fresh id rather than corrupting an unrelated year.
func normalizeRecords(records []model.Client, clashes func(string) bool) []model.Client {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.Client, 0, len(records))
	for _, record := range records {
		if record.ID == "" || (clashes != nil && clashes(record.ID)) {
			record.ID = newRecordID()
		}
		if _, dup := seen[record.ID]; dup {
			continue
		}
		seen[record.ID] = struct{}{}
		out = append(out, record)
	}
	return out
}
