package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renewtrack/renewtrack/internal/ledger"
	"github.com/renewtrack/renewtrack/internal/model"
)

func newBrowserFixture(t *testing.T) (*ledger.Ledger, Model) {
	t.Helper()
	ctx := context.Background()
	l := ledger.New(nil)

	year := l.Settings().ActiveYear
	for _, name := range []string{"Acme", "Globex"} {
		if _, err := l.Add(ctx, model.Client{
			Name:      name,
			CloseDate: yearDate(year),
			Amount:    100,
		}); err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
	}
	return l, NewModel(l)
}

func yearDate(year int) string {
	return fmt.Sprintf("%04d-06-01", year)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ToggleConfirmsRecord(t *testing.T) {
	l, m := newBrowserFixture(t)

	updated, _ := m.Update(keyMsg("space"))
	m = updated.(Model)

	record, ok := m.recordAt(0)
	if !ok {
		t.Fatal("no record under cursor")
	}
	if !record.IsChecked {
		t.Error("space did not confirm the selected record")
	}
	if got := len(l.Settings().CheckedRows); got != 1 {
		t.Errorf("checked set size = %d, want 1", got)
	}

	// Toggling again unconfirms.
	updated, _ = m.Update(keyMsg("space"))
	m = updated.(Model)
	record, _ = m.recordAt(0)
	if record.IsChecked {
		t.Error("second space did not unconfirm")
	}
}

func TestModel_CursorMovement(t *testing.T) {
	_, m := newBrowserFixture(t)

	if m.cursor != 0 {
		t.Fatalf("cursor starts at %d", m.cursor)
	}
	updated, _ := m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}
	// Clamped at the last row.
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamp at 1", m.cursor)
	}
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}
}

func TestModel_SearchCommit(t *testing.T) {
	l, m := newBrowserFixture(t)

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if !m.searching {
		t.Fatal("slash did not enter search mode")
	}

	for _, r := range "acme" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.searching {
		t.Error("enter did not leave search mode")
	}
	if got := l.Settings().SearchTerm; got != "acme" {
		t.Errorf("SearchTerm = %q, want acme", got)
	}
	if got := m.rowCount(); got != 1 {
		t.Errorf("visible rows = %d, want 1", got)
	}
}

func TestModel_SearchEscapeClears(t *testing.T) {
	l, m := newBrowserFixture(t)
	l.SetSearchTerm(context.Background(), "acme")
	m.rebuild()

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if got := l.Settings().SearchTerm; got != "" {
		t.Errorf("SearchTerm = %q after esc, want empty", got)
	}
	if got := m.rowCount(); got != 2 {
		t.Errorf("visible rows = %d, want 2", got)
	}
}

func TestModel_YearCycling(t *testing.T) {
	l, m := newBrowserFixture(t)
	start := l.Settings().ActiveYear
	if _, err := l.AddYear(context.Background(), start+1); err != nil {
		t.Fatalf("AddYear() error = %v", err)
	}

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	if got := l.Settings().ActiveYear; got != start+1 {
		t.Errorf("ActiveYear = %d after tab, want %d", got, start+1)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after year switch, want 0", m.cursor)
	}

	// Cycles back around.
	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	if got := l.Settings().ActiveYear; got != start {
		t.Errorf("ActiveYear = %d after second tab, want %d", got, start)
	}
}

func TestModel_ViewRendersGroupsAndFooter(t *testing.T) {
	_, m := newBrowserFixture(t)
	out := m.View()

	for _, want := range []string{"Acme", "Globex", "confirmed", "$100.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestNextYear(t *testing.T) {
	tests := []struct {
		name   string
		years  []int
		active int
		want   int
	}{
		{name: "advances", years: []int{2024, 2025, 2026}, active: 2024, want: 2025},
		{name: "wraps", years: []int{2024, 2025, 2026}, active: 2026, want: 2024},
		{name: "active missing", years: []int{2024, 2025}, active: 1999, want: 2024},
		{name: "empty set", years: nil, active: 2025, want: 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextYear(tt.years, tt.active); got != tt.want {
				t.Errorf("nextYear(%v, %d) = %d, want %d", tt.years, tt.active, got, tt.want)
			}
		})
	}
}
