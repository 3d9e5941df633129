package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/settings"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase>",
	Short: "Resolve a date phrase to YYYY-MM-DD",
	Long: `Resolve relative and natural-language dates the way the assistant
does. The timezone and anchor day follow --timezone/--base-date, or
TIMESHEET_TZ and TIMESHEET_BASE_DATE.

Examples:
  crewlog resolve today
  crewlog resolve "next friday"
  crewlog resolve "September 9 2025"
  crewlog resolve yesterday --base-date 2025-09-09`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := settings.FromViper()
		phrase := strings.Join(args, " ")

		resolved := parser.ResolvePhrase(phrase, cfg.Timezone, cfg.BaseDate)
		if resolved == "" {
			fmt.Printf("Could not resolve %q to a date.\n", phrase)
			return
		}
		fmt.Println(resolved)
	},
}
