// Package company loads the optional company config: the employee roster,
// jobsites, material categories and labor activities that submissions are
// checked against. Everything here is advisory; running without a config
// just skips those checks.
package company

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Employee is one roster entry. Role and ApprenticePeriod are only used
// for display; matching is by name.
type Employee struct {
	Name             string  `json:"name"`
	Role             *string `json:"role,omitempty"`
	ApprenticePeriod *string `json:"apprentice_period,omitempty"`
}

// UnmarshalJSON accepts either a bare name string or a full object, since
// hand-written rosters mix both.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = Employee{Name: name}
		return nil
	}
	type plain Employee
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Employee(p)
	return nil
}

// JobSite is a site entries can be booked against, matched by code or name.
type JobSite struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// MaterialCategory is a material kind the company tracks.
type MaterialCategory struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// LaborActivity is a unit-of-work kind. DefaultQuantity and DefaultUnit
// fill in labor records that omit them.
type LaborActivity struct {
	Key             string   `json:"key"`
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	DefaultQuantity *float64 `json:"default_quantity,omitempty"`
	DefaultUnit     *string  `json:"default_unit,omitempty"`
}

// Config is the loaded company configuration.
type Config struct {
	Name            string
	Employees       []Employee
	Jobsites        []JobSite
	Materials       []MaterialCategory
	LaborActivities []LaborActivity
}

type configFile struct {
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Employees       []Employee         `json:"employees"`
	Jobsites        []JobSite          `json:"jobsites"`
	Materials       []MaterialCategory `json:"materials"`
	LaborActivities []LaborActivity    `json:"labor_activities"`
}

// Load reads a company config from a JSON file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading company config: %w", err)
	}
	var f configFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing company config %s: %w", path, err)
	}
	return &Config{
		Name:            f.Company.Name,
		Employees:       f.Employees,
		Jobsites:        f.Jobsites,
		Materials:       f.Materials,
		LaborActivities: f.LaborActivities,
	}, nil
}

// LoadFromPath is the forgiving variant used at session start: an empty
// path or an unreadable file yields nil instead of an error, which only
// disables the roster and jobsite checks.
func LoadFromPath(path string) *Config {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil
	}
	return cfg
}

// fold normalizes a value for lookup: matching ignores case and
// surrounding whitespace on both sides.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EmployeeExists reports whether name matches a roster entry.
func (c *Config) EmployeeExists(name string) bool {
	target := fold(name)
	for _, e := range c.Employees {
		if fold(e.Name) == target {
			return true
		}
	}
	return false
}

// FindJobsite matches value against jobsite codes and names.
func (c *Config) FindJobsite(value string) (JobSite, bool) {
	target := fold(value)
	for _, site := range c.Jobsites {
		if fold(site.Code) == target || fold(site.Name) == target {
			return site, true
		}
	}
	return JobSite{}, false
}

// JobsitesConfigured reports whether any jobsites are set up; when they
// are, entries must name one.
func (c *Config) JobsitesConfigured() bool {
	return len(c.Jobsites) > 0
}

// MaterialExists matches value against material keys and labels.
func (c *Config) MaterialExists(value string) bool {
	target := fold(value)
	for _, m := range c.Materials {
		if fold(m.Key) == target || fold(m.Label) == target {
			return true
		}
	}
	return false
}

// FindLaborActivity matches value against labor activity keys and labels.
func (c *Config) FindLaborActivity(value string) (LaborActivity, bool) {
	target := fold(value)
	for _, a := range c.LaborActivities {
		if fold(a.Key) == target || fold(a.Label) == target {
			return a, true
		}
	}
	return LaborActivity{}, false
}
