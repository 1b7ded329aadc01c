package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"insight-backend/internal/types"
)

func TestLinesDropsBlankAndKeepsOrder(t *testing.T) {
	got := Lines("1. Expand online\n\n   \n2. Cut costs\n\t\n3. Partner up\n")
	assert.Equal(t, []string{"1. Expand online", "2. Cut costs", "3. Partner up"}, got)
}

func TestLinesKeepsLinesVerbatim(t *testing.T) {
	got := Lines("  indented  \nplain")
	assert.Equal(t, []string{"  indented  ", "plain"}, got)
}

func TestLinesEmpty(t *testing.T) {
	got := Lines("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		first  []string
		second []string
	}{
		{
			name:   "exactly six lines",
			text:   "r1\nr2\nr3\nm1\nm2\nm3",
			first:  []string{"r1", "r2", "r3"},
			second: []string{"m1", "m2", "m3"},
		},
		{
			name:   "blank lines between groups",
			text:   "r1\n\nr2\nr3\n\n\nm1\nm2\nm3\n",
			first:  []string{"r1", "r2", "r3"},
			second: []string{"m1", "m2", "m3"},
		},
		{
			name:   "extra lines are ignored",
			text:   "a\nb\nc\nd\ne\nf\ng\nh",
			first:  []string{"a", "b", "c"},
			second: []string{"d", "e", "f"},
		},
		{
			name:   "four lines",
			text:   "a\nb\nc\nd",
			first:  []string{"a", "b", "c"},
			second: []string{"d"},
		},
		{
			name:   "two lines",
			text:   "a\nb",
			first:  []string{"a", "b"},
			second: []string{},
		},
		{
			name:   "empty",
			text:   "",
			first:  []string{},
			second: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := SplitPair(tt.text)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.second, second)
		})
	}
}

func TestParseReports(t *testing.T) {
	text := "Here are your reports:\n" +
		"A|2024-01-01|Audit|Done\n" +
		"B | 2024-01-02 | Survey | Pending\n"
	got := ParseReports(text)
	assert.Equal(t, []types.Report{
		{ID: 1, Name: "A", Date: "2024-01-01", Type: "Audit", Status: "Done"},
		{ID: 2, Name: "B", Date: "2024-01-02", Type: "Survey", Status: "Pending"},
	}, got)
}

func TestParseReportsMalformedRows(t *testing.T) {
	got := ParseReports("Only|Two\n| lead | pipe | row | x | extra")
	assert.Equal(t, []types.Report{
		{ID: 1, Name: "Only", Date: "Two"},
		{ID: 2, Name: "", Date: "lead", Type: "pipe", Status: "row"},
	}, got)
}

func TestParseReportsNoTable(t *testing.T) {
	got := ParseReports("no table here\nnone at all")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
