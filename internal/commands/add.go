package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/session"
	"github.com/balkashynov/crewlog/internal/settings"
)

var addCmd = &cobra.Command{
	Use:   "add [freeform entry]",
	Short: "Parse, confirm and export a single entry",
	Long: `Quick mode: parse one freeform line, confirm it, and print the
resulting CSV without starting a full session.

Flags override whatever the parser extracted, so a garbled line can be
fixed without retyping it. The date flag accepts phrases ("yesterday",
"next friday") as well as literal dates.

Examples:
  crewlog add "Alex Doe 7.5 hours on 2025-09-01 for Project A"
  crewlog add "Alex Doe 8h for HQP" --date yesterday
  crewlog add --yes "Sam Lee 8h on 2025-09-02 for M567 notes: night shift"`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runQuickAdd(cmd, args)
	},
}

// runQuickAdd parses, confirms and submits a single entry.
func runQuickAdd(cmd *cobra.Command, args []string) {
	cfg := settings.FromViper()
	logger := newLogger(cfg)
	sess := newSession(cfg)
	resolver := parser.Resolver{Timezone: cfg.Timezone, BaseDate: cfg.BaseDate}

	entry := forms.FromCandidate(parser.Extract(strings.Join(args, " ")))

	// Explicit flags take precedence over parsed values
	if employee, _ := cmd.Flags().GetString("employee"); employee != "" {
		entry.Employee = employee
	}
	if datePhrase, _ := cmd.Flags().GetString("date"); datePhrase != "" {
		resolved := resolver.Resolve(datePhrase)
		if resolved == "" {
			fmt.Printf("Could not understand the date %q.\n", datePhrase)
			return
		}
		entry.Date = resolved
	}
	if worked, _ := cmd.Flags().GetFloat64("hours"); worked > 0 {
		entry.Hours = worked
	}
	if project, _ := cmd.Flags().GetString("project"); project != "" {
		entry.Project = &project
	}
	if note, _ := cmd.Flags().GetString("notes"); note != "" {
		entry.Notes = &note
	}

	if problems := sess.ValidateEntry(entry); len(problems) > 0 {
		fmt.Println("This entry is not ready to submit:")
		for _, problem := range problems {
			fmt.Printf("  - %s\n", problem)
		}
		return
	}

	fmt.Printf("Employee: %s\n", entry.Employee)
	fmt.Printf("Date:     %s\n", entry.Date)
	fmt.Printf("Hours:    %s\n", hours.FormatThreshold(entry.Hours))
	if entry.Project != nil {
		fmt.Printf("Project:  %s\n", *entry.Project)
	}
	if entry.Notes != nil {
		fmt.Printf("Notes:    %s\n", *entry.Notes)
	}

	if assumeYes, _ := cmd.Flags().GetBool("yes"); !assumeYes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Submit this entry?").
				Affirmative("Submit").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return
		}
	}

	committed, problems := sess.SubmitEntry(entry.Employee, entry.Date, entry.Hours, entry.Project, entry.Notes)
	if len(problems) > 0 {
		fmt.Println("This entry is not ready to submit:")
		for _, problem := range problems {
			fmt.Printf("  - %s\n", problem)
		}
		return
	}
	if committed.Notes != nil && (entry.Notes == nil || *committed.Notes != *entry.Notes) {
		fmt.Printf("Added note: %s\n", *committed.Notes)
	}

	csvText := sess.ExportCSV()
	fmt.Print(csvText)
	if cfg.SavePath != "" {
		if err := session.SaveCSV(cfg.SavePath, csvText); err != nil {
			fmt.Printf("Warning: %v\n", err)
		} else {
			logger.Info("csv_saved", "path", cfg.SavePath, "entries", 1)
		}
	}
}

func init() {
	addCmd.Flags().StringP("employee", "e", "", "Employee name (overrides the parsed value)")
	addCmd.Flags().StringP("date", "d", "", "Date or date phrase (overrides the parsed value)")
	addCmd.Flags().Float64P("hours", "H", 0, "Worked hours (overrides the parsed value)")
	addCmd.Flags().StringP("project", "p", "", "Project or jobsite (overrides the parsed value)")
	addCmd.Flags().StringP("notes", "n", "", "Notes (overrides the parsed value)")
	addCmd.Flags().BoolP("yes", "y", false, "Submit without the confirmation prompt")
}
