package session

import "fmt"

// MaterialRecord is one material usage line for a jobsite. Material lines
// append as given; unlike timesheet entries they are never merged.
type MaterialRecord struct {
	Date     string  `json:"date"`
	Job      string  `json:"job"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    *string `json:"notes,omitempty"`
}

// LaborRecord is one unit-of-work line. Quantity and Unit are optional on
// input; submission fills them from the activity's configured defaults.
type LaborRecord struct {
	Date     string   `json:"date"`
	Job      string   `json:"job"`
	Activity string   `json:"activity"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// SubmitMaterial validates and appends a material record. On failure
// nothing is stored and every problem is reported.
func (s *Session) SubmitMaterial(rec MaterialRecord) []string {
	var problems []string
	if s.dir != nil {
		if _, ok := s.dir.FindJobsite(rec.Job); !ok {
			problems = append(problems, fmt.Sprintf("Unknown jobsite: %s", rec.Job))
		}
		if !s.dir.MaterialExists(rec.Category) {
			problems = append(problems, fmt.Sprintf("Unknown material category: %s", rec.Category))
		}
	}
	if rec.Date == "" {
		problems = append(problems, "Date is required.")
	}
	if rec.Quantity <= 0 {
		problems = append(problems, "Quantity must be greater than zero.")
	}
	if rec.Unit == "" {
		problems = append(problems, "Unit is required.")
	}
	if len(problems) > 0 {
		return problems
	}

	s.Materials = append(s.Materials, rec)
	return nil
}

// SubmitLabor validates and appends a labor record, filling quantity and
// unit from the activity's defaults when omitted. The returned record
// shows what was actually stored, defaults included.
func (s *Session) SubmitLabor(rec LaborRecord) (LaborRecord, []string) {
	var problems []string
	var defaultQuantity *float64
	var defaultUnit *string

	if s.dir != nil {
		if _, ok := s.dir.FindJobsite(rec.Job); !ok {
			problems = append(problems, fmt.Sprintf("Unknown jobsite: %s", rec.Job))
		}
		if activity, ok := s.dir.FindLaborActivity(rec.Activity); ok {
			defaultQuantity = activity.DefaultQuantity
			defaultUnit = activity.DefaultUnit
		} else {
			problems = append(problems, fmt.Sprintf("Unknown labor activity: %s", rec.Activity))
		}
	}

	if rec.Quantity == nil {
		rec.Quantity = defaultQuantity
	}
	if rec.Unit == nil {
		rec.Unit = defaultUnit
	}

	if rec.Date == "" {
		problems = append(problems, "Date is required.")
	}
	if rec.Quantity == nil || *rec.Quantity <= 0 {
		problems = append(problems, "Quantity must be greater than zero (or set a default in config).")
	}
	if rec.Unit == nil || *rec.Unit == "" {
		problems = append(problems, "Unit is required (or set a default in config).")
	}
	if len(problems) > 0 {
		return rec, problems
	}

	s.Labor = append(s.Labor, rec)
	return rec, nil
}
