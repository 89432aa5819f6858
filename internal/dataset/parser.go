package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/duochart/duochart/internal/model"
)

// headerScanLimit is the number of leading lines inspected when searching
// for a header row. Spreadsheet exports occasionally prepend title or
// comment lines before the real header; scanning a small window catches
// those without risking misclassifying data lines deep in the file.
const headerScanLimit = 5

// Parse converts comma-separated text into a normalized chart dataset.
//
// Empty input yields default metric labels and an empty dataset, not an
// error. Header detection, label fallback, the legacy leading-empty-column
// shift, and row validation all follow the degrade-never-fail contract
// described in the package documentation.
func Parse(text string) model.ChartData {
	result := model.NewChartData()

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	headerIdx, found := findHeader(lines)
	if found {
		applyLabels(&result, lines[headerIdx])
	}

	// Without a qualifying header, line 0 is still consumed as the header
	// slot. A legacy-shaped line 0 marks a headerless export, so every
	// line is data.
	start := headerIdx + 1
	if !found && legacyShaped(lines[0]) {
		start = 0
	}

	for _, line := range lines[start:] {
		if dp, ok := parseRow(line); ok {
			result.Data = append(result.Data, dp)
		}
	}

	return result
}

// splitLines breaks text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// findHeader scans up to headerScanLimit lines for the first line that
// looks like a header: at least three comma-separated fields with a
// non-numeric second field (after stripping a trailing percent sign).
// Legacy-shaped lines are data rows and never qualify. When no line
// qualifies, findHeader reports 0 and false.
func findHeader(lines []string) (int, bool) {
	limit := headerScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}

	for i := 0; i < limit; i++ {
		if legacyShaped(lines[i]) {
			continue
		}
		fields := strings.Split(lines[i], ",")
		if len(fields) < 3 {
			continue
		}
		second := strings.TrimSuffix(strings.TrimSpace(fields[1]), "%")
		if _, err := strconv.ParseFloat(second, 64); err != nil {
			return i, true
		}
	}
	return 0, false
}

// legacyShaped reports whether a line matches the legacy export shape:
// an empty leading column followed by at least three more fields.
func legacyShaped(line string) bool {
	fields := strings.Split(line, ",")
	return len(fields) > 3 && strings.TrimSpace(fields[0]) == ""
}

// applyLabels sets the metric labels from header fields 1 and 2, keeping
// the defaults for missing or empty fields.
func applyLabels(cd *model.ChartData, header string) {
	fields := strings.Split(header, ",")
	if len(fields) > 1 {
		if label := strings.TrimSpace(fields[1]); label != "" {
			cd.Title1 = label
		}
	}
	if len(fields) > 2 {
		if label := strings.TrimSpace(fields[2]); label != "" {
			cd.Title2 = label
		}
	}
}

// parseRow extracts one data point from a line. It returns false for rows
// lacking a category or a parseable value in either metric column; such
// rows are dropped by the caller.
func parseRow(line string) (model.DataPoint, bool) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	// A known legacy export prepends an empty column. When the first field
	// is empty and the row is wider than the expected three columns, shift
	// one column right instead of dropping the row.
	category, m1, m2 := field(fields, 0), field(fields, 1), field(fields, 2)
	if category == "" && len(fields) > 3 {
		category, m1, m2 = field(fields, 1), field(fields, 2), field(fields, 3)
	}

	if category == "" {
		return model.DataPoint{}, false
	}

	metric1, ok1 := parseMetric(m1)
	metric2, ok2 := parseMetric(m2)

	// Both metrics must parse independently. A row with one valid and one
	// malformed metric is discarded rather than silently zeroed.
	if !ok1 || !ok2 {
		return model.DataPoint{}, false
	}

	return model.DataPoint{Category: category, Metric1: metric1, Metric2: metric2}, true
}

// parseMetric parses a numeric field after stripping percent signs.
// A failed parse reports zero and false.
func parseMetric(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// field returns fields[i] or "" when the index is out of range.
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
