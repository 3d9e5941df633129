package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/crewlog/internal/company"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/logutil"
	"github.com/balkashynov/crewlog/internal/session"
	"github.com/balkashynov/crewlog/internal/settings"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "crewlog",
	Short: "A timesheet assistant for field crews",
	Long: `crewlog turns freeform lines like "Alex Doe 7.5 hours on 2025-09-01
for Project A" into validated timesheet entries and payroll-ready CSV.

Entries are collected per session, deduplicated per person and day, and
checked against the company roster and jobsites when a company config is
loaded. Running crewlog with no arguments starts an interactive session.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveSession(cmd)
	},
}

// newSession builds a session from the current settings, loading the
// company config when one is configured.
func newSession(cfg settings.Settings) *session.Session {
	var dir session.Directory
	if companyCfg := company.LoadFromPath(cfg.ConfigPath); companyCfg != nil {
		dir = companyCfg
	}
	return session.New(dir, cfg.FullDayHours)
}

// newLogger builds the command logger from settings. A bad logging flag
// falls back to the defaults rather than blocking the command.
func newLogger(cfg settings.Settings) *slog.Logger {
	logger, err := logutil.FromConfig(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, _ = logutil.FromConfig("", "")
	}
	return logger
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(settings.Init)

	flags := rootCmd.PersistentFlags()
	flags.String("company-config", "", "Path to the company config JSON (roster, jobsites, materials)")
	flags.Float64("full-day", hours.DefaultFullDay, "Full-day hours used to flag partial and overtime days")
	flags.String("timezone", "", "IANA timezone for resolving relative dates (defaults to system)")
	flags.String("base-date", "", "YYYY-MM-DD anchor for relative dates instead of today")
	flags.String("save", "", "Also write the final entries CSV to this path")
	flags.String("log-level", "", "Logging level: debug, info, warn or error")
	flags.String("log-format", "", "Logging format: text or json")

	_ = viper.BindPFlag("config_path", flags.Lookup("company-config"))
	_ = viper.BindPFlag("full_day_hours", flags.Lookup("full-day"))
	_ = viper.BindPFlag("tz", flags.Lookup("timezone"))
	_ = viper.BindPFlag("base_date", flags.Lookup("base-date"))
	_ = viper.BindPFlag("save_path", flags.Lookup("save"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(helpCmd)
}
