package ledger

import (
	"context"
	"reflect"
	"testing"

	"github.com/renewtrack/renewtrack/internal/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestApplyPayload_InitialLoad(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()

	payload := &model.Payload{
		Clients: []model.Client{
			{ID: "r1", Name: "Acme", CloseDate: "2025-01-10", Amount: 100, IsChecked: true},
			{ID: "r2", Name: "Globex", CloseDate: "2024-06-01", Amount: 50},
		},
		ReceiptsGoal: intPtr(40),
		SearchTerm:   strPtr("acme"),
		ActiveYear:   intPtr(2024),
		// Stale cache on purpose: r2 is not actually confirmed.
		CheckedRows: []string{"r2"},
	}

	if got := l.ApplyPayload(ctx, payload, true); got != 2 {
		t.Fatalf("ApplyPayload() = %d, want 2", got)
	}

	settings := l.Settings()
	if settings.ReceiptsGoal != 40 || settings.SearchTerm != "acme" || settings.ActiveYear != 2024 {
		t.Errorf("settings not restored: %+v", settings)
	}
	// Confirmed flags win over the persisted checked-id cache.
	if !reflect.DeepEqual(settings.CheckedRows, []string{"r1"}) {
		t.Errorf("CheckedRows = %v, want [r1]", settings.CheckedRows)
	}
	if !reflect.DeepEqual(settings.AvailableYears, []int{2024, 2025}) {
		t.Errorf("AvailableYears = %v, want [2024 2025]", settings.AvailableYears)
	}
}

func TestApplyPayload_InitialLoad_AbsentFieldsKeepDefaults(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	before := l.Settings()

	payload := &model.Payload{Clients: []model.Client{}}
	if got := l.ApplyPayload(ctx, payload, true); got != 0 {
		t.Fatalf("ApplyPayload() = %d, want 0", got)
	}

	after := l.Settings()
	if after.ReceiptsGoal != before.ReceiptsGoal || after.ActiveYear != before.ActiveYear {
		t.Errorf("absent fields must keep current values: %+v", after)
	}
	if len(after.AvailableYears) == 0 {
		t.Error("available years must never be empty")
	}
}

func TestApplyPayload_ScopedToActiveYear(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	_, _ = l.Add(ctx, model.Client{Name: "Old 2025", CloseDate: "2025-04-01", Amount: 10})
	other, _ := l.Add(ctx, model.Client{Name: "Other Year", CloseDate: "2024-04-01", Amount: 99})
	_ = l.SetChecked(ctx, other.ID, true)

	payload := &model.Payload{
		Clients: []model.Client{
			{ID: "in1", Name: "New 2025", CloseDate: "2025-07-01", Amount: 500, IsChecked: true},
			{ID: "ignored", Name: "Wrong Year", CloseDate: "2023-07-01", Amount: 1},
		},
	}

	if got := l.ApplyPayload(ctx, payload, false); got != 1 {
		t.Fatalf("ApplyPayload() = %d, want 1 imported record", got)
	}

	clients := l.Clients()
	if len(clients) != 2 {
		t.Fatalf("store has %d records, want 2", len(clients))
	}
	// The 2024 record is untouched; the 2025 records were replaced; the
	// out-of-year payload record was dropped.
	if _, ok := l.Find(other.ID); !ok {
		t.Error("record of another year was lost")
	}
	if _, ok := l.Find("in1"); !ok {
		t.Error("imported active-year record missing")
	}
	if _, ok := l.Find("ignored"); ok {
		t.Error("out-of-year payload record must not be imported")
	}

	// Checked set reflects the post-import flags of both years.
	got := make(map[string]bool)
	for _, id := range l.Settings().CheckedRows {
		got[id] = true
	}
	if !got[other.ID] || !got["in1"] || len(got) != 2 {
		t.Errorf("CheckedRows = %v, want {%s, in1}", l.Settings().CheckedRows, other.ID)
	}
}

func TestApplyPayload_ScopedImport_EmptiesYear(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	_, _ = l.Add(ctx, model.Client{Name: "Doomed", CloseDate: "2025-04-01"})

	// A payload with no active-year records legitimately empties the year.
	if got := l.ApplyPayload(ctx, &model.Payload{Clients: []model.Client{}}, false); got != 0 {
		t.Fatalf("ApplyPayload() = %d, want 0", got)
	}
	if len(l.Clients()) != 0 {
		t.Errorf("store has %d records, want 0", len(l.Clients()))
	}
	if len(l.Settings().AvailableYears) == 0 {
		t.Error("available years must never be empty")
	}
}

func TestApplyPayload_ScopedImport_Settings(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	_ = l.SetGoal(ctx, 10)

	payload := &model.Payload{
		Clients:      []model.Client{},
		ReceiptsGoal: intPtr(77),
		SearchTerm:   strPtr("globex"),
	}
	l.ApplyPayload(ctx, payload, false)

	settings := l.Settings()
	if settings.ReceiptsGoal != 77 {
		t.Errorf("ReceiptsGoal = %d, want 77", settings.ReceiptsGoal)
	}
	if settings.SearchTerm != "globex" {
		t.Errorf("SearchTerm = %q, want globex", settings.SearchTerm)
	}
}

func TestApplyPayload_IDHygiene(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger()
	kept, _ := l.Add(ctx, model.Client{ID: "stable", Name: "Other Year", CloseDate: "2024-01-01"})

	payload := &model.Payload{
		Clients: []model.Client{
			// Clashes with a kept record from another year: gets a fresh id.
			{ID: "stable", Name: "Clash", CloseDate: "2025-01-01"},
			// No id at all: gets one assigned.
			{Name: "Anonymous", CloseDate: "2025-02-01"},
			// In-batch duplicate: dropped.
			{ID: "twin", Name: "First Twin", CloseDate: "2025-03-01"},
			{ID: "twin", Name: "Second Twin", CloseDate: "2025-03-02"},
		},
	}

	if got := l.ApplyPayload(ctx, payload, false); got != 3 {
		t.Fatalf("ApplyPayload() = %d, want 3", got)
	}

	seen := make(map[string]int)
	for _, record := range l.Clients() {
		if record.ID == "" {
			t.Errorf("record %q has no id", record.Name)
		}
		seen[record.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("id %q appears %d times", id, n)
		}
	}
	if got, _ := l.Find(kept.ID); got.Name != "Other Year" {
		t.Errorf("kept record was overwritten by a clashing import: %+v", got)
	}
}
