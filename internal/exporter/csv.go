// Package exporter renders collected rows as CSV for payroll import.
package exporter

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Render writes rows as CSV with exactly the given header fields, in
// order. Keys missing from a row become empty cells and keys outside
// fields are ignored, so extra data on a row can never shift the output
// shape. Quoting follows encoding/csv: embedded commas force quoting and
// embedded quotes are doubled.
func Render(rows []map[string]any, fields []string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(fields)
	record := make([]string, len(fields))
	for _, row := range rows {
		for i, field := range fields {
			record[i] = formatCell(row[field])
		}
		_ = w.Write(record)
	}
	w.Flush()

	return sb.String()
}

// formatCell stringifies one cell. Floats render without insignificant
// zeros so whole hours come out as "8", not "8.000000".
func formatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case *string:
		if value == nil {
			return ""
		}
		return *value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
