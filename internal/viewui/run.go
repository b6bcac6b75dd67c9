package viewui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/internal/logstore"
)

// Run opens the log store read-only and drives the viewer until the user
// quits. An in-flight query at quit time is allowed to finish in the
// background; its result is simply never applied.
func Run(cfg *contract.Config) error {
	reader, err := logstore.OpenReader(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("cannot open log store for viewing: %w", err)
	}
	defer func() { _ = reader.Close() }()

	model := NewModel(cfg, reader, time.Now)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer terminated abnormally: %w", err)
	}
	return nil
}
