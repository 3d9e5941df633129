package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/crewlog/internal/agent"
	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/session"
	"github.com/balkashynov/crewlog/internal/settings"
	"github.com/balkashynov/crewlog/internal/stream"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the assistant loop on stdin",
	Long: `Read utterances line by line and build up a timesheet session.

Plain lines go through the freeform parser and merge into the pending
entry. Directives:
  confirm (or yes/y)    Commit the pending entry
  date <phrase>         Resolve a date phrase onto the pending entry
  set <field> <value>   Correct one field: employee, date, hours, project, notes
  done                  Finalize, print the entries CSV and exit
  /company              Show the loaded company config
  /bulk <date> <hours> [project] : <name1>; <name2>; ...
                        Same-day entries for several people
  /material <date> <job> <category> <qty> <unit> [notes...]
  /labor <date> <job> <activity> [qty unit] [notes...]
  /export, /materials, /labor-csv
                        Print the CSVs collected so far

With --sse every agent event is framed as a server-sent event on stdout
and the final CSV is only written to --save, keeping the stream clean.

Examples:
  echo "Alex Doe 7.5 hours on 2025-09-01 for Project A" | crewlog run
  crewlog run --company-config company.json --save entries.csv
  crewlog run --sse < turns.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		runLoop(cmd)
	},
}

// runLoop owns one stdin-driven session from greeting to final CSV.
func runLoop(cmd *cobra.Command) {
	cfg := settings.FromViper()
	logger := newLogger(cfg)
	sess := newSession(cfg)
	resolver := parser.Resolver{Timezone: cfg.Timezone, BaseDate: cfg.BaseDate}
	assistant := agent.New(sess, resolver)
	sse, _ := cmd.Flags().GetBool("sse")

	emit := func(events ...agent.Event) {
		for _, ev := range events {
			if sse {
				if err := stream.WriteEvent(os.Stdout, ev); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
				continue
			}
			printEvent(ev)
		}
	}

	logger.Info("session_start", "session", sess.ID, "full_day_hours", sess.FullDay(), "company_config", sess.HasDirectory())
	emit(assistant.Start())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if finished := handleLine(assistant, sess, resolver, line, emit); finished {
			finishRun(assistant, sess, cfg, sse, emit, logger)
			return
		}
	}

	// stdin closed without "done"; finalize anyway so piped input still
	// produces the CSV.
	finishRun(assistant, sess, cfg, sse, emit, logger)
}

// handleLine routes one line to a directive or the freeform parser. It
// returns true when the session should finalize.
func handleLine(assistant *agent.Agent, sess *session.Session, resolver parser.Resolver, line string, emit func(...agent.Event)) bool {
	lower := strings.ToLower(line)
	switch {
	case lower == "done" || lower == "/done":
		return true
	case lower == "confirm" || lower == "/confirm" || lower == "yes" || lower == "y":
		emit(assistant.Confirm()...)
	case lower == "/company":
		printCompanySummary(settings.FromViper().ConfigPath)
	case lower == "/export":
		fmt.Print(sess.ExportCSV())
	case lower == "/materials":
		fmt.Print(sess.ExportMaterialsCSV())
	case lower == "/labor-csv":
		fmt.Print(sess.ExportLaborCSV())
	case strings.HasPrefix(lower, "date "):
		emit(assistant.Revise("date", line[len("date "):])...)
	case strings.HasPrefix(lower, "set "):
		handleSet(assistant, line, emit)
	case strings.HasPrefix(lower, "/bulk"):
		handleBulk(sess, resolver, line[len("/bulk"):])
	case strings.HasPrefix(lower, "/material "):
		handleMaterial(sess, resolver, line[len("/material "):])
	case strings.HasPrefix(lower, "/labor "):
		handleLabor(sess, resolver, line[len("/labor "):])
	default:
		emit(assistant.Input(line)...)
	}
	return false
}

// handleSet applies "set <field> <value>" corrections.
func handleSet(assistant *agent.Agent, line string, emit func(...agent.Event)) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		fmt.Println("Usage: set <employee|date|hours|project|notes> <value>")
		return
	}
	emit(assistant.Revise(parts[1], parts[2])...)
}

// handleBulk parses "<date> <hours> [project] : names" and submits one
// entry per name.
func handleBulk(sess *session.Session, resolver parser.Resolver, line string) {
	head, namePart, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		fmt.Println("Usage: /bulk <date> <hours> [project] : <name1>; <name2>; ...")
		return
	}

	fields := strings.Fields(head)
	if len(fields) < 2 {
		fmt.Println("Usage: /bulk <date> <hours> [project] : <name1>; <name2>; ...")
		return
	}
	worked, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		fmt.Printf("Could not read %q as hours.\n", fields[1])
		return
	}

	req := session.BulkRequest{
		Date:  resolveOrRaw(resolver, fields[0]),
		Hours: worked,
	}
	if len(fields) > 2 {
		project := strings.Join(fields[2:], " ")
		req.Project = &project
	}
	for _, name := range strings.Split(namePart, ";") {
		if name = strings.TrimSpace(name); name != "" {
			req.Employees = append(req.Employees, name)
		}
	}

	result := sess.BulkSubmit(req)
	switch result.Status {
	case "ok":
		fmt.Printf("✅ Added %d entries (%d total).\n", result.Added, result.Count)
	case "partial":
		fmt.Printf("⚠️  Added %d entries, %d had problems:\n", result.Added, len(result.Issues))
		printBulkIssues(result.Issues)
	default:
		fmt.Println("No entries added:")
		printBulkIssues(result.Issues)
	}
}

func printBulkIssues(issues []session.BulkIssue) {
	for _, issue := range issues {
		fmt.Printf("  %s:\n", issue.Employee)
		for _, problem := range issue.Problems {
			fmt.Printf("    - %s\n", problem)
		}
	}
}

// handleMaterial parses "<date> <job> <category> <qty> <unit> [notes...]".
func handleMaterial(sess *session.Session, resolver parser.Resolver, line string) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		fmt.Println("Usage: /material <date> <job> <category> <qty> <unit> [notes...]")
		return
	}
	quantity, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		fmt.Printf("Could not read %q as a quantity.\n", fields[3])
		return
	}

	rec := session.MaterialRecord{
		Date:     resolveOrRaw(resolver, fields[0]),
		Job:      fields[1],
		Category: fields[2],
		Quantity: quantity,
		Unit:     fields[4],
	}
	if len(fields) > 5 {
		notes := strings.Join(fields[5:], " ")
		rec.Notes = &notes
	}

	if problems := sess.SubmitMaterial(rec); len(problems) > 0 {
		fmt.Println("Material not recorded:")
		for _, problem := range problems {
			fmt.Printf("  - %s\n", problem)
		}
		return
	}
	fmt.Printf("✅ Material recorded (%d total).\n", len(sess.Materials))
}

// handleLabor parses "<date> <job> <activity> [qty unit] [notes...]".
// Quantity and unit may be omitted to pick up the activity's defaults.
func handleLabor(sess *session.Session, resolver parser.Resolver, line string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		fmt.Println("Usage: /labor <date> <job> <activity> [qty unit] [notes...]")
		return
	}

	rec := session.LaborRecord{
		Date:     resolveOrRaw(resolver, fields[0]),
		Job:      fields[1],
		Activity: fields[2],
	}
	rest := fields[3:]
	if len(rest) > 0 {
		if quantity, err := strconv.ParseFloat(rest[0], 64); err == nil {
			rec.Quantity = &quantity
			rest = rest[1:]
			if len(rest) > 0 {
				unit := rest[0]
				rec.Unit = &unit
				rest = rest[1:]
			}
		}
	}
	if len(rest) > 0 {
		notes := strings.Join(rest, " ")
		rec.Notes = &notes
	}

	stored, problems := sess.SubmitLabor(rec)
	if len(problems) > 0 {
		fmt.Println("Labor not recorded:")
		for _, problem := range problems {
			fmt.Printf("  - %s\n", problem)
		}
		return
	}
	fmt.Printf("✅ Labor recorded: %s %s %s (%d total).\n",
		stored.Activity, hoursOrDash(stored.Quantity), unitOrDash(stored.Unit), len(sess.Labor))
}

// resolveOrRaw resolves a date phrase, keeping the raw text when the
// resolver does not recognize it so validation can complain downstream.
func resolveOrRaw(resolver parser.Resolver, phrase string) string {
	if resolved := resolver.Resolve(phrase); resolved != "" {
		return resolved
	}
	return phrase
}

func hoursOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func unitOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// finishRun finalizes the session, prints or saves the CSV and logs the
// outcome.
func finishRun(assistant *agent.Agent, sess *session.Session, cfg settings.Settings, sse bool, emit func(...agent.Event), logger *slog.Logger) {
	emit(assistant.Finalize())

	csvText := sess.ExportCSV()
	if !sse {
		fmt.Print(csvText)
	}
	if cfg.SavePath != "" {
		if err := session.SaveCSV(cfg.SavePath, csvText); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			logger.Info("csv_saved", "path", cfg.SavePath, "entries", len(sess.Entries))
		}
	}
	logger.Info("session_done", "session", sess.ID, "entries", len(sess.Entries), "materials", len(sess.Materials), "labor", len(sess.Labor))
}

// printEvent renders one agent event for the terminal.
func printEvent(ev agent.Event) {
	switch ev.Type {
	case "started", "ready_for_next":
		fmt.Println(ev.Payload["message"])
	case "user_input", "parsed":
		// the follow-up confirmation or revision event carries the detail
	case "needs_confirmation":
		fmt.Println("Please confirm this entry (type 'confirm'):")
		printProposed(ev.Payload["proposed"])
	case "needs_revision":
		fmt.Println("I need a bit more detail:")
		if problems, ok := ev.Payload["problems"].([]string); ok {
			for _, problem := range problems {
				fmt.Printf("  - %s\n", problem)
			}
		}
	case "confirmed":
		fmt.Println("✅ Recorded.")
	case "finalized":
		if count, ok := ev.Payload["count"].(int); ok {
			fmt.Printf("Session complete: %d entries.\n", count)
		}
	case "error":
		fmt.Printf("Error: %v\n", ev.Payload["message"])
	}
}

// printProposed renders the proposed entry under a confirmation prompt.
func printProposed(proposed any) {
	entry, ok := proposed.(map[string]any)
	if !ok {
		return
	}
	fmt.Printf("  Employee: %v\n", entry["employee"])
	fmt.Printf("  Date:     %v\n", entry["date"])
	fmt.Printf("  Hours:    %v\n", entry["hours"])
	if project, ok := entry["project"]; ok {
		fmt.Printf("  Project:  %v\n", project)
	}
	if notes, ok := entry["notes"]; ok {
		fmt.Printf("  Notes:    %v\n", notes)
	}
}

func init() {
	runCmd.Flags().Bool("sse", false, "Emit agent events as server-sent-events frames on stdout")
}
