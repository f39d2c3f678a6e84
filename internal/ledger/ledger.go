// Package ledger owns the in-memory record store: the ordered list of
// renewal records plus scalar settings, with persistence write-through on
// every mutation. The store is the single source of truth; rendered views
// are derived from it and never read back.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/renewtrack/renewtrack/internal/common"
	"github.com/renewtrack/renewtrack/internal/model"
	"github.com/renewtrack/renewtrack/internal/report"
)

// Persister flushes store state to durable storage. Save failures are
// logged, not raised: the in-memory mutation has already happened, so the
// worst case is that the last change misses the next reload.
type Persister interface {
	SaveState(ctx context.Context, snapshot model.Snapshot) error
	SaveSortPreference(ctx context.Context, pref model.SortPreference) error
}

// Ledger is the record store. It is owned by a single goroutine; mutations
// run to completion one at a time, so no locking is required.
type Ledger struct {
	persister Persister
	newID     func() string
	clients   []model.Client
	settings  model.Settings
	dirty     bool
}

// New creates an empty ledger backed by the given persister. A nil
// persister is allowed for detached (in-memory only) use.
func New(persister Persister) *Ledger {
	return &Ledger{
		persister: persister,
		newID:     newRecordID,
		settings:  model.DefaultSettings(),
	}
}

// newRecordID generates an opaque unique record id. Ids are never reused.
func newRecordID() string {
	return uuid.NewString()
}

// Clients returns a copy of the ordered record list.
func (l *Ledger) Clients() []model.Client {
	out := make([]model.Client, len(l.clients))
	copy(out, l.clients)
	return out
}

// Settings returns a copy of the current settings.
func (l *Ledger) Settings() model.Settings {
	s := l.settings
	s.AvailableYears = append([]int(nil), l.settings.AvailableYears...)
	s.CheckedRows = append([]string(nil), l.settings.CheckedRows...)
	return s
}

// Snapshot returns the persisted shape of the full store.
func (l *Ledger) Snapshot() model.Snapshot {
	return model.Snapshot{
		Clients:        l.Clients(),
		ReceiptsGoal:   l.settings.ReceiptsGoal,
		CheckedRows:    append([]string(nil), l.settings.CheckedRows...),
		SearchTerm:     l.settings.SearchTerm,
		ActiveYear:     l.settings.ActiveYear,
		AvailableYears: append([]int(nil), l.settings.AvailableYears...),
	}
}

// Dirty reports whether the store changed since the last ClearDirty.
func (l *Ledger) Dirty() bool {
	return l.dirty
}

// ClearDirty marks the current state as rendered.
func (l *Ledger) ClearDirty() {
	l.dirty = false
}

// Find returns the record with the given id.
func (l *Ledger) Find(id string) (model.Client, bool) {
	for _, record := range l.clients {
		if record.ID == id {
			return record, true
		}
	}
	return model.Client{}, false
}

// Add validates and appends a new record. A fresh id is assigned when the
// record carries none; notes default to empty and the record starts
// unconfirmed. The record's year joins the available set if new.
func (l *Ledger) Add(ctx context.Context, record model.Client) (model.Client, error) {
	if strings.TrimSpace(record.Name) == "" {
		return model.Client{}, common.NewValidationError("account name is required")
	}
	if !model.ValidDate(record.CloseDate) {
		return model.Client{}, common.NewValidationError("close date is required (YYYY-MM-DD)")
	}
	if record.Amount < 0 {
		return model.Client{}, common.NewValidationError("amount cannot be negative")
	}
	if record.ID == "" {
		record.ID = l.newID()
	} else if _, exists := l.Find(record.ID); exists {
		return model.Client{}, fmt.Errorf("%w: %s", common.ErrDuplicateID, record.ID)
	}
	record.IsChecked = false

	l.clients = append(l.clients, record)
	l.discoverYears()
	l.commit(ctx)
	return record, nil
}

// Patch is a partial record update; nil fields are left unchanged.
type Patch struct {
	Name          *string
	CloseDate     *string
	RenewalDate   *string
	SentDate      *string
	OpportunityID *string
	Notes         *string
	Amount        *float64
}

// Update merges a patch into the record with the given id.
func (l *Ledger) Update(ctx context.Context, id string, patch Patch) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	record := l.clients[idx]
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return common.NewValidationError("account name cannot be empty")
		}
		record.Name = *patch.Name
	}
	if patch.CloseDate != nil {
		if !model.ValidDate(*patch.CloseDate) {
			return common.NewValidationError("close date must be YYYY-MM-DD")
		}
		record.CloseDate = *patch.CloseDate
	}
	if patch.RenewalDate != nil {
		record.RenewalDate = *patch.RenewalDate
	}
	if patch.SentDate != nil {
		record.SentDate = *patch.SentDate
	}
	if patch.OpportunityID != nil {
		record.OpportunityID = *patch.OpportunityID
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return common.NewValidationError("amount cannot be negative")
		}
		record.Amount = model.Amount(*patch.Amount)
	}

	l.clients[idx] = record
	l.discoverYears()
	l.commit(ctx)
	return nil
}

// Remove deletes the record with the given id, drops its id from the
// checked set, and re-derives the available years from what remains.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	l.clients = append(l.clients[:idx], l.clients[idx+1:]...)
	l.syncCheckedRows()
	// Re-derive rather than decrement, so the year set cannot drift.
	l.discoverYears()
	l.commit(ctx)
	return nil
}

// SetChecked toggles the confirmed flag and the checked-id set atomically:
// both change or neither does.
func (l *Ledger) SetChecked(ctx context.Context, id string, checked bool) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	l.clients[idx].IsChecked = checked
	l.syncCheckedRows()
	l.commit(ctx)
	return nil
}

// SetGoal updates the receipts goal.
func (l *Ledger) SetGoal(ctx context.Context, goal int) error {
	if goal < 0 {
		return common.NewValidationError("goal cannot be negative")
	}
	l.settings.ReceiptsGoal = goal
	l.commit(ctx)
	return nil
}

// SetSearchTerm updates the persisted search filter.
func (l *Ledger) SetSearchTerm(ctx context.Context, term string) {
	l.settings.SearchTerm = term
	l.commit(ctx)
}

// SetActiveYear switches the displayed year partition, registering the
// year if it is not yet available.
func (l *Ledger) SetActiveYear(ctx context.Context, year int) error {
	if year < 1900 || year > 2100 {
		return common.NewValidationError("year must be between 1900 and 2100")
	}
	l.settings.ActiveYear = year
	l.discoverYears()
	l.commit(ctx)
	return nil
}

// AddYear registers a year with no records yet. Returns false when the
// year is already present.
func (l *Ledger) AddYear(ctx context.Context, year int) (bool, error) {
	if year < 1900 || year > 2100 {
		return false, common.NewValidationError("year must be between 1900 and 2100")
	}
	for _, existing := range l.settings.AvailableYears {
		if existing == year {
			return false, nil
		}
	}
	l.settings.AvailableYears = insertSorted(l.settings.AvailableYears, year)
	l.commit(ctx)
	return true, nil
}

// SetSortPreference updates the display order, persisted under its own slot.
func (l *Ledger) SetSortPreference(ctx context.Context, pref model.SortPreference) {
	l.settings.Sort = pref
	l.dirty = true
	if l.persister == nil {
		return
	}
	if err := l.persister.SaveSortPreference(ctx, pref); err != nil {
		common.LogError(err, "failed to persist sort preference", nil)
	}
}

// RestoreSortPreference seeds the sort preference at startup without
// triggering a write-back.
func (l *Ledger) RestoreSortPreference(pref model.SortPreference) {
	l.settings.Sort = pref
}

func (l *Ledger) indexOf(id string) int {
	for i, record := range l.clients {
		if record.ID == id {
			return i
		}
	}
	return -1
}

// syncCheckedRows rebuilds the checked-id set from the records' confirmed
// flags. The set is a redundant cache; the flags are authoritative.
func (l *Ledger) syncCheckedRows() {
	var rows []string
	for _, record := range l.clients {
		if record.IsChecked {
			rows = append(rows, record.ID)
		}
	}
	l.settings.CheckedRows = rows
}

func (l *Ledger) discoverYears() {
	l.settings.AvailableYears = report.DiscoverYears(l.clients, l.settings.ActiveYear)
}

// commit marks the store dirty and writes through to persistence. Failures
// are logged and swallowed: the mutation already happened in memory.
func (l *Ledger) commit(ctx context.Context) {
	l.dirty = true
	if l.persister == nil {
		return
	}
	if err := l.persister.SaveState(ctx, l.Snapshot()); err != nil {
		common.LogError(err, "save failed; state retained in memory", nil)
	}
}

// Flush forces a persistence write, returning the error to the caller.
// Used by the periodic auto-save and at teardown.
func (l *Ledger) Flush(ctx context.Context) error {
	if l.persister == nil {
		return nil
	}
	if err := l.persister.SaveState(ctx, l.Snapshot()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrSaveFailed, err)
	}
	return nil
}

func insertSorted(years []int, year int) []int {
	years = append(years, year)
	for i := len(years) - 1; i > 0 && years[i] < years[i-1]; i-- {
		years[i], years[i-1] = years[i-1], years[i]
	}
	return years
}
