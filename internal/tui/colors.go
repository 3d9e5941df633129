package tui

// Color constants for crewlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#14201C" // Dark green-slate
	ColorBorder         = "#39554B" // Muted teal-grey

	// Text Colors
	ColorPrimaryText   = "#E8F0EC" // Primary text (labels, user input, headings)
	ColorSecondaryText = "#A7BDB2" // Secondary text - soft sage grey
	ColorDisabledText  = "#68796F" // Disabled/muted text
	ColorPlaceholder   = "#A7BDB2" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#14B8A6" // Logo, accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, the field being edited

	// State Colors
	ColorError   = "#EF4444" // Validation problems
	ColorSuccess = "#22C55E" // Committed entries
	ColorWarning = "#F59E0B" // Overtime and partial-day flags
)
