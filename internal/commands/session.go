package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/agent"
	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/session"
	"github.com/balkashynov/crewlog/internal/settings"
	"github.com/balkashynov/crewlog/internal/tui"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive timesheet session",
	Long: `Collect timesheet entries in a full-screen interactive session.

Type lines like "Alex Doe 7.5 hours on 2025-09-01 for Project A"; the
assistant parses each one, asks for whatever is missing, and keeps one
entry per person and day. Finishing the session prints the entries CSV
(and writes it to --save when set).

Use --no-ui to run the same loop line-by-line on stdin instead, for
terminals without alt-screen support or for piping.`,
	Run: func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			runLoop(cmd)
			return
		}
		runInteractiveSession(cmd)
	},
}

// runInteractiveSession drives the full-screen TUI and prints the CSV
// after it exits.
func runInteractiveSession(cmd *cobra.Command) {
	cfg := settings.FromViper()
	logger := newLogger(cfg)
	sess := newSession(cfg)
	resolver := parser.Resolver{Timezone: cfg.Timezone, BaseDate: cfg.BaseDate}
	assistant := agent.New(sess, resolver)

	logger.Info("session_start", "session", sess.ID, "full_day_hours", sess.FullDay(), "company_config", sess.HasDirectory())

	if err := tui.RunSessionTUI(assistant); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if len(sess.Entries) == 0 {
		fmt.Println("No entries recorded.")
		logger.Info("session_done", "session", sess.ID, "entries", 0)
		return
	}

	csvText := sess.ExportCSV()
	fmt.Print(csvText)
	if cfg.SavePath != "" {
		if err := session.SaveCSV(cfg.SavePath, csvText); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			logger.Info("csv_saved", "path", cfg.SavePath, "entries", len(sess.Entries))
		}
	}
	logger.Info("session_done", "session", sess.ID, "entries", len(sess.Entries), "materials", len(sess.Materials), "labor", len(sess.Labor))
}

func init() {
	sessionCmd.Flags().Bool("no-ui", false, "Run line-by-line on stdin instead of the full-screen UI")
}
