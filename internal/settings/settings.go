// Package settings centralizes runtime configuration. Values come from
// flags and TIMESHEET_* environment variables through viper; the rest of
// the code receives a plain Settings struct and never reads the
// environment on its own.
package settings

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/balkashynov/crewlog/internal/hours"
)

// EnvPrefix is the prefix for all environment variables, e.g.
// TIMESHEET_FULL_DAY_HOURS or TIMESHEET_CONFIG_PATH.
const EnvPrefix = "TIMESHEET"

// Settings is the explicit runtime configuration handed to constructors.
type Settings struct {
	FullDayHours float64
	Timezone     string
	BaseDate     string
	ConfigPath   string
	SavePath     string
	LogLevel     string
	LogFormat    string
}

// Init wires defaults and environment lookup into viper. The root command
// calls it once before any settings are read.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("full_day_hours", hours.DefaultFullDay)
	viper.SetDefault("tz", "")
	viper.SetDefault("base_date", "")
	viper.SetDefault("config_path", "")
	viper.SetDefault("save_path", "")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

// FromViper snapshots the current configuration. A non-positive or
// unparseable full-day value falls back to the standard threshold instead
// of failing, so a typo in TIMESHEET_FULL_DAY_HOURS cannot block a crew
// from filing time.
func FromViper() Settings {
	s := Settings{
		FullDayHours: viper.GetFloat64("full_day_hours"),
		Timezone:     viper.GetString("tz"),
		BaseDate:     viper.GetString("base_date"),
		ConfigPath:   viper.GetString("config_path"),
		SavePath:     viper.GetString("save_path"),
		LogLevel:     viper.GetString("logging.level"),
		LogFormat:    viper.GetString("logging.format"),
	}
	if s.FullDayHours <= 0 {
		s.FullDayHours = hours.DefaultFullDay
	}
	return s
}
