package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/company"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/settings"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show the loaded company config",
	Long: `Show the roster, jobsites, material categories and labor activities
entries are validated against. The config path comes from
--company-config or TIMESHEET_CONFIG_PATH.`,
	Run: func(cmd *cobra.Command, args []string) {
		printCompanySummary(settings.FromViper().ConfigPath)
	},
}

// printCompanySummary renders the company config sections, or explains
// how to load one.
func printCompanySummary(path string) {
	cfg := company.LoadFromPath(path)
	if cfg == nil {
		fmt.Println("No company config loaded.")
		fmt.Println("Point --company-config (or TIMESHEET_CONFIG_PATH) at a company JSON file.")
		return
	}

	if cfg.Name != "" {
		fmt.Printf("Company: %s\n", cfg.Name)
	}

	fmt.Printf("\nEmployees (%d):\n", len(cfg.Employees))
	for _, e := range cfg.Employees {
		line := "  " + e.Name
		if e.Role != nil && *e.Role != "" {
			line += " - " + *e.Role
		}
		if e.ApprenticePeriod != nil && *e.ApprenticePeriod != "" {
			line += " (" + *e.ApprenticePeriod + ")"
		}
		fmt.Println(line)
	}

	fmt.Printf("\nJobsites (%d):\n", len(cfg.Jobsites))
	for _, site := range cfg.Jobsites {
		fmt.Printf("  %-8s %s\n", site.Code, site.Name)
	}

	fmt.Printf("\nMaterial categories (%d):\n", len(cfg.Materials))
	for _, m := range cfg.Materials {
		fmt.Printf("  %-16s %s", m.Key, m.Label)
		if m.Description != "" {
			fmt.Printf(" - %s", m.Description)
		}
		fmt.Println()
	}

	fmt.Printf("\nLabor activities (%d):\n", len(cfg.LaborActivities))
	for _, a := range cfg.LaborActivities {
		fmt.Printf("  %-16s %s", a.Key, a.Label)
		if a.DefaultQuantity != nil && a.DefaultUnit != nil {
			fmt.Printf(" (default %s %s)", hours.FormatThreshold(*a.DefaultQuantity), *a.DefaultUnit)
		}
		fmt.Println()
	}
}
