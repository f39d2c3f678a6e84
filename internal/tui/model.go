// Package tui provides the interactive grouped record browser. Every
// keypress runs to completion inside the single Update loop, so store
// mutations never interleave; the rendered list is torn down and rebuilt
// from the store after each change.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renewtrack/renewtrack/internal/cli"
	"github.com/renewtrack/renewtrack/internal/ledger"
	"github.com/renewtrack/renewtrack/internal/model"
	"github.com/renewtrack/renewtrack/internal/report"
	"github.com/renewtrack/renewtrack/internal/view"
)

// autoSaveInterval is the periodic safety-net flush; every mutation also
// writes through immediately.
const autoSaveInterval = 30 * time.Second

type autoSaveMsg time.Time

// Model holds the browser TUI state.
type Model struct {
	ledger    *ledger.Ledger
	status    string
	groups    []view.MonthGroup
	search    textinput.Model
	keymap    KeyMap
	cursor    int
	width     int
	height    int
	searching bool
	quitting  bool
}

// NewModel creates a browser over the given ledger.
func NewModel(l *ledger.Ledger) Model {
	input := textinput.New()
	input.Placeholder = "search"
	input.Prompt = "/"
	input.CharLimit = 64

	m := Model{
		ledger: l,
		keymap: DefaultKeyMap(),
		search: input,
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return autoSaveTick()
}

func autoSaveTick() tea.Cmd {
	return tea.Tick(autoSaveInterval, func(t time.Time) tea.Msg {
		return autoSaveMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case autoSaveMsg:
		if err := m.ledger.Flush(context.Background()); err != nil {
			m.status = cli.FormatError("auto-save failed")
		}
		return m, autoSaveTick()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.ledger.SetSearchTerm(context.Background(), m.search.Value())
		m.rebuild()
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.ledger.SetSearchTerm(context.Background(), "")
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		if err := m.ledger.Flush(context.Background()); err != nil {
			m.status = cli.FormatError("save failed; latest change may be lost")
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		record, ok := m.recordAt(m.cursor)
		if !ok {
			return m, nil
		}
		if err := m.ledger.SetChecked(context.Background(), record.ID, !record.IsChecked); err != nil {
			m.status = cli.FormatError(err.Error())
		} else {
			m.status = ""
		}
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.search.SetValue(m.ledger.Settings().SearchTerm)
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.NextYear):
		settings := m.ledger.Settings()
		next := nextYear(settings.AvailableYears, settings.ActiveYear)
		if err := m.ledger.SetActiveYear(context.Background(), next); err != nil {
			m.status = cli.FormatError(err.Error())
		}
		m.cursor = 0
		m.rebuild()
		return m, nil
	}

	return m, nil
}

// nextYear cycles through the available years in ascending order.
func nextYear(years []int, active int) int {
	if len(years) == 0 {
		return active
	}
	for i, year := range years {
		if year == active {
			return years[(i+1)%len(years)]
		}
	}
	return years[0]
}

// rebuild regenerates the grouped view from the store.
func (m *Model) rebuild() {
	m.groups = view.Rebuild(m.ledger.Clients(), m.ledger.Settings())
	if count := m.rowCount(); m.cursor >= count && count > 0 {
		m.cursor = count - 1
	}
	m.ledger.ClearDirty()
}

func (m Model) rowCount() int {
	count := 0
	for _, group := range m.groups {
		count += len(group.Records)
	}
	return count
}

func (m Model) recordAt(index int) (model.Client, bool) {
	for _, group := range m.groups {
		if index < len(group.Records) {
			return group.Records[index], true
		}
		index -= len(group.Records)
	}
	return model.Client{}, false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	settings := m.ledger.Settings()
	var b strings.Builder

	b.WriteString(cli.FormatTitle(fmt.Sprintf("Renewals %d", settings.ActiveYear)))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if settings.SearchTerm != "" {
		b.WriteString(cli.SubtleStyle.Render("filter: " + settings.SearchTerm))
		b.WriteString("\n\n")
	}

	row := 0
	for _, group := range m.groups {
		header := fmt.Sprintf("%s  %s confirmed", group.Label, cli.FormatCurrency(group.Subtotal))
		b.WriteString(cli.MonthHeaderStyle.Render(header))
		b.WriteString("\n")

		for _, record := range group.Records {
			b.WriteString(m.renderRow(record, row == m.cursor))
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}

	if len(m.groups) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No records for this year."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.footer(settings))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	return b.String()
}

func (m Model) renderRow(record model.Client, selected bool) string {
	mark := cli.OpenMark
	if record.IsChecked {
		mark = cli.CheckedMark
	}

	line := fmt.Sprintf("%s %-30s %10s  close %s  %s",
		mark,
		record.Name,
		cli.FormatCurrency(float64(record.Amount)),
		cli.FormatDate(record.CloseDate),
		record.OpportunityID,
	)

	switch {
	case selected:
		return cli.BoldStyle.Render("> " + line)
	case record.IsChecked:
		return cli.CheckedStyle.Render("  " + line)
	default:
		return "  " + line
	}
}

func (m Model) footer(settings model.Settings) string {
	records := report.FilterByYear(m.ledger.Clients(), settings.ActiveYear)
	confirmed := report.ConfirmedCount(records)
	progress := report.ProgressPercentage(confirmed, settings.ReceiptsGoal)

	summary := fmt.Sprintf("%d confirmed / %d records  %s confirmed  goal %d (%.0f%%)",
		confirmed,
		len(records),
		cli.FormatCurrency(report.ConfirmedAmount(records)),
		settings.ReceiptsGoal,
		progress,
	)

	help := "space confirm · / search · tab year · q quit"
	return cli.InfoStyle.Render(summary) + "\n" + cli.SubtleStyle.Render(help)
}
