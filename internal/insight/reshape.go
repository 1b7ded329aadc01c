package insight

import (
	"strings"

	"insight-backend/internal/types"
)

// Lines splits completion text on newlines and drops blank lines.
// Remaining lines are returned verbatim, in order.
func Lines(text string) []string {
	out := []string{}
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// window returns lines[from:to] clamped to the available length.
// The result is never nil.
func window(lines []string, from, to int) []string {
	if from > len(lines) {
		from = len(lines)
	}
	if to > len(lines) {
		to = len(lines)
	}
	return append([]string{}, lines[from:to]...)
}

// SplitPair maps the first three non-blank lines to the first sequence and
// the next three to the second. Short replies give short or empty slices.
func SplitPair(text string) (first, second []string) {
	lines := Lines(text)
	return window(lines, 0, 3), window(lines, 3, 6)
}

// ParseReports keeps the lines containing '|' and assigns the first four
// trimmed cells to name, date, type and status. Missing cells stay empty.
func ParseReports(text string) []types.Report {
	reports := []types.Report{}
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		var cells [4]string
		for i, c := range strings.Split(line, "|") {
			if i >= len(cells) {
				break
			}
			cells[i] = strings.TrimSpace(c)
		}
		reports = append(reports, types.Report{
			ID:     len(reports) + 1,
			Name:   cells[0],
			Date:   cells[1],
			Type:   cells[2],
			Status: cells[3],
		})
	}
	return reports
}
