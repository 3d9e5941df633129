package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Show what the parser makes of one freeform line",
	Long: `Run the freeform extractor and validator on a single line without
touching a session. Useful for checking how an utterance will land
before filing it.

Example:
  crewlog parse "Alex Doe 7.5 hours on 2025-09-01 for Project A"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		candidate := parser.Extract(text)
		entry := forms.FromCandidate(candidate)

		fmt.Printf("Employee: %s\n", orNone(entry.Employee))
		fmt.Printf("Date:     %s\n", orNone(entry.Date))
		if candidate.Hours != nil {
			fmt.Printf("Hours:    %s\n", hours.FormatThreshold(*candidate.Hours))
		} else {
			fmt.Printf("Hours:    (none)\n")
		}
		if entry.Project != nil {
			fmt.Printf("Project:  %s\n", *entry.Project)
		} else {
			fmt.Printf("Project:  (none)\n")
		}
		if entry.Notes != nil {
			fmt.Printf("Notes:    %s\n", *entry.Notes)
		} else {
			fmt.Printf("Notes:    (none)\n")
		}

		problems := forms.Validate(entry)
		if len(problems) == 0 {
			fmt.Println("✅ Entry looks complete.")
			return
		}
		fmt.Println("Problems:")
		for _, problem := range problems {
			fmt.Printf("  - %s\n", problem)
		}
	},
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
