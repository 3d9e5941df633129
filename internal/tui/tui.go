package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/crewlog/internal/agent"
)

// RunSessionTUI starts the interactive timesheet session TUI
func RunSessionTUI(assistant *agent.Agent) error {
	model := NewSessionModel(assistant)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(SessionModel); ok {
		if m.cancelled {
			fmt.Println("❌ Session cancelled.")
		} else if m.finished {
			fmt.Println("✅ Session complete.")
		}
	}

	return nil
}
