package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for crewlog",
	Long:  `Display detailed help for all crewlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
  ██████╗██████╗ ███████╗██╗    ██╗
 ██╔════╝██╔══██╗██╔════╝██║    ██║
 ██║     ██████╔╝█████╗  ██║ █╗ ██║
 ██║     ██╔══██╗██╔══╝  ██║███╗██║
 ╚██████╗██║  ██║███████╗╚███╔███╔╝
  ╚═════╝╚═╝  ╚═╝╚══════╝ ╚══╝╚══╝

crewlog - Timesheet assistant for field crews

COMMANDS:

  (no command)            Start an interactive session (same as 'session')

  add [freeform entry]    Parse, confirm and export a single entry
    -e, --employee        Employee name (overrides the parsed value)
    -d, --date            Date or date phrase (overrides the parsed value)
    -H, --hours           Worked hours (overrides the parsed value)
    -p, --project         Project or jobsite (overrides the parsed value)
    -n, --notes           Notes (overrides the parsed value)
    -y, --yes             Submit without the confirmation prompt

    Freeform syntax:
      Alex Doe 7.5 hours on 2025-09-01 for Project A
      Sam half day yesterday for HQP - finished punch list

    Example:
      crewlog add "Alex Doe 8h today for HQP" --yes

  session                 Start an interactive timesheet session
    --no-ui               Run line-by-line on stdin instead of the
                          full-screen UI

  run                     Run the assistant loop on stdin
    --sse                 Emit agent events as server-sent-events frames

    Directives:
      confirm / yes / y   Commit the pending entry
      date <phrase>       Resolve a date phrase onto the pending entry
      set <field> <val>   Correct employee, date, hours, project or notes
      done                Finalize, print the entries CSV and exit
      /company            Show the loaded company config
      /bulk <date> <hours> [project] : <name1>; <name2>; ...
      /material <date> <job> <category> <qty> <unit> [notes...]
      /labor <date> <job> <activity> [qty unit] [notes...]
      /export /materials /labor-csv
                          Print the CSVs collected so far

  parse <text>            Show what the parser makes of one freeform line
  resolve <phrase>        Resolve a date phrase to YYYY-MM-DD
                          (today, yesterday, next friday, Sep 9 2025, ...)
  company                 Show the loaded company config
  version                 Show version information
  help                    Show this help

GLOBAL FLAGS:

  --company-config        Path to the company config JSON
                          (roster, jobsites, materials, labor activities)
  --full-day              Full-day hours used to flag partial and
                          overtime days (default 8)
  --timezone              IANA timezone for resolving relative dates
  --base-date             YYYY-MM-DD anchor for relative dates
  --save                  Also write the final entries CSV to this path
  --log-level             debug, info, warn or error
  --log-format            text or json

ENVIRONMENT:

  Every flag can also come from a TIMESHEET_* variable:
  TIMESHEET_CONFIG_PATH, TIMESHEET_FULL_DAY_HOURS, TIMESHEET_TZ,
  TIMESHEET_BASE_DATE, TIMESHEET_SAVE_PATH, TIMESHEET_LOGGING_LEVEL,
  TIMESHEET_LOGGING_FORMAT.

See company.example.json for the config file format.

`)
}
