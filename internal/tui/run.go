package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renewtrack/renewtrack/internal/ledger"
)

// Run starts the interactive browser over the given ledger and blocks
// until the user quits. The final state is flushed before returning.
func Run(ctx context.Context, l *ledger.Ledger) error {
	program := tea.NewProgram(NewModel(l), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return l.Flush(ctx)
}
