package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/crewlog/internal/agent"
	"github.com/balkashynov/crewlog/internal/hours"
)

// maxTranscriptLines caps the conversation history kept on screen.
const maxTranscriptLines = 12

// SessionModel is the TUI model for an interactive timesheet session.
// One text input drives the whole conversation: freeform lines are parsed
// into the pending entry, directives like "confirm" and "done" move the
// session along, and the right panel mirrors the entry being built.
type SessionModel struct {
	assistant *agent.Agent
	input     textinput.Model
	width     int
	height    int

	// Shimmer effect for the listening status
	shimmer *Shimmer

	// Conversation state
	transcript   []string
	assistantMsg string
	problems     []string

	// State
	finished      bool
	cancelled     bool
	validationErr string

	// Quit confirmation modal
	showQuitModal   bool
	quitModalChoice bool // true for Finish, false for Stay
}

// NewSessionModel creates a session TUI model bound to an assistant.
func NewSessionModel(assistant *agent.Agent) SessionModel {
	input := textinput.New()
	input.Width = 60
	input.CharLimit = 200
	input.Placeholder = `Who worked, when, for how long? ("Alex Doe 7.5 hours on 2025-09-01")`
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	m := SessionModel{
		assistant: assistant,
		input:     input,
		shimmer:   NewShimmer(),
	}
	m.assistantMsg = payloadMessage(assistant.Start())

	return m
}

// shimmerTickMsg is sent when the shimmer should advance a frame
type shimmerTickMsg struct{}

// Init initializes the model
func (m SessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.shimmer.Active() {
		cmds = append(cmds, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		// Keep the shimmer running while the session is live
		if m.shimmer.Active() && !m.finished && !m.cancelled {
			return m, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update input field width based on available space
		maxInputWidth := (m.width * 2 / 3) - 10 // Left panel width minus borders/padding
		if maxInputWidth < 30 {
			maxInputWidth = 30
		}
		if maxInputWidth > 80 {
			maxInputWidth = 80
		}
		m.input.Width = maxInputWidth

		return m, nil

	case tea.KeyMsg:
		// Handle quit modal keys if modal is shown
		if m.showQuitModal {
			switch msg.String() {
			case "left", "right":
				m.quitModalChoice = !m.quitModalChoice
				return m, nil
			case "y", "Y":
				m.quitModalChoice = true
				return m.handleQuitChoice()
			case "n", "N":
				m.quitModalChoice = false
				return m.handleQuitChoice()
			case "enter":
				return m.handleQuitChoice()
			case "esc":
				// Close modal and go back to the conversation
				m.showQuitModal = false
				return m, nil
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			// An unconfirmed entry is lost on exit, so ask first
			if _, hasPending := m.assistant.Pending(); hasPending {
				m.showQuitModal = true
				m.quitModalChoice = true // Default to "Finish"
				return m, nil
			}

			m.finished = true
			return m, tea.Quit

		case "enter":
			return m.handleSubmit()
		}
	}

	// Route everything else to the text input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// handleSubmit routes one submitted line: directives first, then the
// assistant. The directive set matches the line-by-line run loop.
func (m SessionModel) handleSubmit() (SessionModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.validationErr = ""

	lower := strings.ToLower(line)
	switch lower {
	case "done", "/done":
		m.finished = true
		return m, tea.Quit

	case "confirm", "/confirm", "yes", "y":
		return m.apply(m.assistant.Confirm()), nil
	}

	switch {
	case strings.HasPrefix(lower, "set "):
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			m.validationErr = "Usage: set <field> <value>"
			return m, nil
		}
		return m.apply(m.assistant.Revise(parts[1], parts[2])), nil

	case strings.HasPrefix(lower, "date "):
		return m.apply(m.assistant.Revise("date", line[len("date "):])), nil
	}

	return m.apply(m.assistant.Input(line)), nil
}

// apply folds assistant events into the view state. The "parsed" event is
// skipped: the preview panel reads the same entry straight from Pending.
func (m SessionModel) apply(events []agent.Event) SessionModel {
	for _, ev := range events {
		switch ev.Type {
		case "user_input":
			if text, ok := ev.Payload["text"].(string); ok {
				m.pushTranscript("› " + text)
			}

		case "needs_confirmation":
			m.problems = nil
			m.assistantMsg = payloadMessage(ev)

		case "needs_revision":
			m.problems = payloadProblems(ev)
			m.assistantMsg = payloadMessage(ev)

		case "confirmed":
			if entry, ok := ev.Payload["entry"].(map[string]any); ok {
				m.pushTranscript("✓ " + summarizeEntry(entry))
			}
			m.problems = nil
			m.shimmer.Reset() // fresh sweep once the card is listening again

		case "ready_for_next":
			m.assistantMsg = payloadMessage(ev)

		case "error":
			m.validationErr = payloadMessage(ev)
		}
	}
	return m
}

// handleQuitChoice handles the quit confirmation modal response
func (m SessionModel) handleQuitChoice() (SessionModel, tea.Cmd) {
	m.showQuitModal = false

	if m.quitModalChoice {
		// User chose "Finish", drop the pending entry and exit
		m.finished = true
		return m, tea.Quit
	}

	// User chose "Stay", keep editing
	return m, nil
}

func (m *SessionModel) pushTranscript(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscriptLines {
		m.transcript = m.transcript[len(m.transcript)-maxTranscriptLines:]
	}
}

// View renders the TUI
func (m SessionModel) View() string {
	if m.cancelled || m.finished {
		return "" // Don't show anything, let TUI handle exit message
	}

	// Handle very small terminals
	if m.width < 85 {
		return m.renderSmallLayout()
	}

	// Calculate adaptive column widths
	rightWidth := (m.width * 30) / 100 // Start with 30%
	if rightWidth < 50 {
		// Need more space, take up to 70%
		maxRightWidth := (m.width * 70) / 100
		if maxRightWidth >= 50 {
			rightWidth = 50
		} else {
			// Fallback to small layout
			return m.renderSmallLayout()
		}
	}

	leftWidth := m.width - rightWidth - 4 // Account for margins
	if leftWidth < 30 {
		leftWidth = 30
		rightWidth = m.width - leftWidth - 4
	}

	leftStyle := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	rightStyle := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1)

	// Left side: conversation, right side: live entry preview
	leftPanel := leftStyle.Render(m.renderConversation())
	rightPanel := rightStyle.Render(m.renderPreview())

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		" ",
		rightPanel,
	)

	// Add quit modal overlay if shown
	if m.showQuitModal {
		return m.renderQuitModal(mainView)
	}

	return mainView
}

// renderConversation renders the left panel: transcript, prompt, input
func (m SessionModel) renderConversation() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)

	b.WriteString(titleStyle.Render("⏱ Timesheet Session"))
	b.WriteString("\n\n")

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(idStyle.Render("session " + shortID(m.assistant.Session().ID)))
	b.WriteString("\n\n")

	if len(m.transcript) > 0 {
		lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		for _, line := range m.transcript {
			b.WriteString(lineStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.assistantMsg != "" {
		msgStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText))
		b.WriteString(msgStyle.Render(m.assistantMsg))
		b.WriteString("\n")
	}

	if len(m.problems) > 0 {
		problemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		for _, problem := range m.problems {
			b.WriteString(problemStyle.Render("• " + problem))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())

	// Show directive errors if any
	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}

	b.WriteString("\n\n")

	// Help text
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Send | confirm: Commit entry | set <field> <value>: Fix | done: Finish | Esc: Exit"))

	return b.String()
}

// renderPreview renders the live entry preview card
func (m SessionModel) renderPreview() string {
	var b strings.Builder

	// Handle very small terminals with fallback
	if m.width < 85 {
		return m.renderSmallPreview()
	}

	// Calculate adaptive width for right panel
	rightPanelWidth := (m.width * 30) / 100 // Start with 30%
	if rightPanelWidth < 50 {
		maxRightWidth := (m.width * 70) / 100
		if maxRightWidth >= 50 {
			rightPanelWidth = 50
		} else {
			// Terminal too small for proper layout
			return m.renderSmallPreview()
		}
	}

	// Calculate vertical centering
	availableHeight := m.height - 8
	if availableHeight < 1 {
		availableHeight = 1
	}

	// Card dimensions
	cardWidth := 36
	if rightPanelWidth > 45 {
		cardWidth = 42
	}

	verticalPadding := (availableHeight - 16) / 2 // Approximate card height
	if verticalPadding < 0 {
		verticalPadding = 0
	}

	for i := 0; i < verticalPadding; i++ {
		b.WriteString("\n")
	}

	// Build card content first
	var cardContent strings.Builder

	// CREW ASCII logo
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center)

	logo := `
  ██████╗██████╗ ███████╗██╗    ██╗
 ██╔════╝██╔══██╗██╔════╝██║    ██║
 ██║     ██████╔╝█████╗  ██║ █╗ ██║
 ██║     ██╔══██╗██╔══╝  ██║███╗██║
 ╚██████╗██║  ██║███████╗╚███╔███╔╝
  ╚═════╝╚═╝  ╚═╝╚══════╝ ╚══╝╚══╝`

	cardContent.WriteString(logoStyle.Render(logo))
	cardContent.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Align(lipgloss.Center)
	cardContent.WriteString(separatorStyle.Render("════════════════════════════════════"))
	cardContent.WriteString("\n")

	pending, hasPending := m.assistant.Pending()

	// Employee box
	nameText := "No entry yet"
	if hasPending && strings.TrimSpace(pending.Employee) != "" {
		nameText = pending.Employee
	}

	nameBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(cardWidth - 4) // Fit within card

	cardContent.WriteString(nameBoxStyle.Render("👷 " + nameText))
	cardContent.WriteString("\n")

	// Status line
	statusStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	switch {
	case !hasPending:
		// Shimmer while waiting for the first line of the next entry
		cardContent.WriteString(statusStyle.Render(m.shimmer.Render("● listening")))
	case len(m.problems) > 0:
		cardContent.WriteString(statusStyle.Foreground(lipgloss.Color(ColorWarning)).Render("● needs detail"))
	default:
		cardContent.WriteString(statusStyle.Foreground(lipgloss.Color(ColorSuccess)).Render("● ready to confirm"))
	}
	cardContent.WriteString("\n")

	cardContent.WriteString(separatorStyle.Render("─────────────────────────────────────"))
	cardContent.WriteString("\n")

	// Metadata section
	metadataStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		Padding(0, 1)

	var metadata strings.Builder

	if hasPending {
		if pending.Date != "" {
			metadata.WriteString(fmt.Sprintf("📅 Date: %s\n", pending.Date))
		}

		if pending.Hours > 0 {
			metadata.WriteString(fmt.Sprintf("⏱ Hours: %s\n", strconv.FormatFloat(pending.Hours, 'f', -1, 64)))

			// Flag short and long days against the configured full day
			if flag := hours.Classify(pending.Hours, m.assistant.Session().FullDay()); flag != nil {
				flagStyle := lipgloss.NewStyle().
					Foreground(lipgloss.Color(ColorWarning)).
					Bold(true)
				metadata.WriteString(flagStyle.Render("⚠ " + *flag))
				metadata.WriteString("\n")
			}
		}

		if pending.Project != nil && *pending.Project != "" {
			metadata.WriteString(fmt.Sprintf("📁 Project: %s\n", *pending.Project))
		}

		if pending.Notes != nil && *pending.Notes != "" {
			noteStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Italic(true)
			metadata.WriteString(fmt.Sprintf("📝 Notes: %s\n", noteStyle.Render(*pending.Notes)))
		}
	}

	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	metadata.WriteString(countStyle.Render(fmt.Sprintf("✅ Recorded this session: %d", len(m.assistant.Session().Entries))))
	metadata.WriteString("\n")

	cardContent.WriteString(metadataStyle.Render(metadata.String()))

	// Create the card with static teal border
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(cardWidth).
		Padding(1).
		Align(lipgloss.Center)

	// Center the card within the right panel
	cardContainer := lipgloss.NewStyle().
		Width(rightPanelWidth).
		Align(lipgloss.Center)

	card := cardStyle.Render(cardContent.String())
	b.WriteString(cardContainer.Render(card))

	return b.String()
}

// renderSmallPreview renders a compact preview for small terminals
func (m SessionModel) renderSmallPreview() string {
	var b strings.Builder

	// Simple compact preview with terminal size hint
	b.WriteString("═══ ENTRY ═══\n")
	b.WriteString("💡 Tip: Stretch terminal for better UI\n")

	pending, hasPending := m.assistant.Pending()
	if hasPending {
		if pending.Employee != "" {
			b.WriteString(fmt.Sprintf("👷 %s\n", pending.Employee))
		}

		if pending.Date != "" {
			b.WriteString(fmt.Sprintf("📅 %s\n", pending.Date))
		}

		if pending.Hours > 0 {
			b.WriteString(fmt.Sprintf("⏱ %sh\n", strconv.FormatFloat(pending.Hours, 'f', -1, 64)))
			if flag := hours.Classify(pending.Hours, m.assistant.Session().FullDay()); flag != nil {
				b.WriteString(fmt.Sprintf("⚠ %s\n", *flag))
			}
		}

		if pending.Project != nil && *pending.Project != "" {
			b.WriteString(fmt.Sprintf("📁 %s\n", *pending.Project))
		}

		if pending.Notes != nil && *pending.Notes != "" {
			b.WriteString(fmt.Sprintf("📝 %s\n", *pending.Notes))
		}
	}

	b.WriteString(fmt.Sprintf("✅ Recorded: %d\n", len(m.assistant.Session().Entries)))
	b.WriteString("═══════════════\n")
	return b.String()
}

// renderSmallLayout renders entire TUI for very small terminals
func (m SessionModel) renderSmallLayout() string {
	// Single column layout for small terminals
	style := lipgloss.NewStyle().
		Width(m.width - 2).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)

	conversation := m.renderConversation()
	preview := m.renderSmallPreview()

	// Combine vertically
	content := conversation + "\n" + preview

	return style.Render(content)
}

// renderQuitModal renders the quit confirmation modal overlay
func (m SessionModel) renderQuitModal(background string) string {
	// Modal dimensions
	modalWidth := 50
	modalHeight := 7

	// Modal content
	var modalContent strings.Builder
	modalContent.WriteString("Finish without confirming the current entry?\n\n")

	// Finish/Stay options with highlighting
	finishStyle := lipgloss.NewStyle().Padding(0, 2)
	stayStyle := lipgloss.NewStyle().Padding(0, 2)

	if m.quitModalChoice {
		// "Finish" is selected
		finishStyle = finishStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		// "Stay" is selected
		stayStyle = stayStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	finishButton := finishStyle.Render("Finish")
	stayButton := stayStyle.Render("Stay")

	modalContent.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		finishButton,
		"   ",
		stayButton,
	))
	modalContent.WriteString("\n\n")
	modalContent.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to keep editing")

	// Create modal box
	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center)

	modal := modalStyle.Render(modalContent.String())

	// Position the modal with same background
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// shortID trims a session UUID down to a display prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func payloadMessage(ev agent.Event) string {
	if msg, ok := ev.Payload["message"].(string); ok {
		return msg
	}
	return ""
}

func payloadProblems(ev agent.Event) []string {
	if problems, ok := ev.Payload["problems"].([]string); ok {
		return problems
	}
	return nil
}

// summarizeEntry renders a committed entry as one transcript line.
func summarizeEntry(entry map[string]any) string {
	employee, _ := entry["employee"].(string)
	date, _ := entry["date"].(string)

	summary := fmt.Sprintf("%s %s", employee, date)
	if worked, ok := entry["hours"].(float64); ok {
		summary += " " + strconv.FormatFloat(worked, 'f', -1, 64) + "h"
	}
	if project, ok := entry["project"].(string); ok && project != "" {
		summary += " for " + project
	}
	return summary
}
