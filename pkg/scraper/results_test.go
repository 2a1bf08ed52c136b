package scraper

import (
	"strings"
	"testing"
)

// resultsPage builds an OSOC-shaped results page: a header row, course rows
// with 11 cells each, and the footer font elements carrying the course total.
func resultsPage(total string, courses ...[]string) string {
	var b strings.Builder
	b.WriteString("<html><body><table>")
	b.WriteString("<tr>")
	b.WriteString("<td><font>ControlNumber</font></td>")
	for i := 0; i < 10; i++ {
		b.WriteString("<td><font>Header</font></td>")
	}
	b.WriteString("</tr>")
	for _, cells := range courses {
		b.WriteString("<tr><td><input type=\"checkbox\"></td>")
		for _, cell := range cells {
			b.WriteString("<td><font>" + cell + "</font></td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	b.WriteString("<font>Displaying " + total + " matches</font>")
	b.WriteString("<font>OSOC footer</font>")
	b.WriteString("</body></html>")
	return b.String()
}

// courseCells builds the 10 data cells of a course row from the fields the
// scraper cares about, padding the rest.
func courseCells(ccn, daysTime, location, title string) []string {
	return []string{ccn, "COMPSCI", "61A", daysTime, location, title, "STAFF", "4", "LEC", "open"}
}

func TestParseResults(t *testing.T) {
	page := resultsPage("2",
		courseCells("12345", "MWF 1-2P", "100 SODA HALL", "Structure of Programs"),
		courseCells("23456", "TuTh 1030-12P", "306 SODA HALL", "Data Structures"),
	)

	results, err := ParseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseResults failed: %v", err)
	}

	if len(results.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", results.Warnings)
	}
	if results.ReportedTotal != 2 {
		t.Errorf("expected reported total 2, got %d", results.ReportedTotal)
	}
	if len(results.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(results.Rows))
	}
	if results.Rows[0][colCCN] != "12345" {
		t.Errorf("expected first row CCN 12345, got %q", results.Rows[0][colCCN])
	}
	if results.Rows[1][colDaysTime] != "TuTh 1030-12P" {
		t.Errorf("expected second row meeting field, got %q", results.Rows[1][colDaysTime])
	}
}

func TestParseResultsCountMismatch(t *testing.T) {
	page := resultsPage("3",
		courseCells("12345", "MWF 1-2P", "100 SODA HALL", "Structure of Programs"),
	)

	results, err := ParseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseResults failed: %v", err)
	}

	// A mismatch is a warning, not a failure: the found row is kept.
	if len(results.Rows) != 1 {
		t.Fatalf("expected the found row to be kept, got %d rows", len(results.Rows))
	}
	if len(results.Warnings) != 1 || !strings.Contains(results.Warnings[0], "found 1 courses (should be 3)") {
		t.Errorf("expected a count mismatch warning, got %v", results.Warnings)
	}
}

func TestParseResultsNoClasses(t *testing.T) {
	page := "<html><body><font>No classes match your search criteria</font></body></html>"

	results, err := ParseResults(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseResults failed: %v", err)
	}

	if len(results.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(results.Rows))
	}
	if len(results.Warnings) != 1 || results.Warnings[0] != "no classes found" {
		t.Errorf("expected a 'no classes found' warning, got %v", results.Warnings)
	}
}

func TestNormalizeRow(t *testing.T) {
	row := courseCells("12345", "TuTh 1-4P", "306 SODA HALL", "Data Structures")

	record, err := NormalizeRow(row)
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}

	if record.Start != "0780" {
		t.Errorf("expected start 0780, got %q", record.Start)
	}
	if record.Room != "306" {
		t.Errorf("expected room 306, got %q", record.Room)
	}
	if record.RawTime != "1-4P" {
		t.Errorf("expected raw time 1-4P, got %q", record.RawTime)
	}
	if record.Days != "TH" {
		t.Errorf("expected canonical days TH, got %q", record.Days)
	}
	if record.RawDays != "TuTh" {
		t.Errorf("expected raw days TuTh, got %q", record.RawDays)
	}
	if record.CCN != "12345" {
		t.Errorf("expected CCN 12345, got %q", record.CCN)
	}
	if record.Title != "Data Structures" {
		t.Errorf("expected title, got %q", record.Title)
	}
}

func TestNormalizeRowMalformed(t *testing.T) {
	cases := [][]string{
		courseCells("1", "MWF", "100 HALL", "No time token"),
		courseCells("1", "MWF 1-4X", "100 HALL", "Bad marker"),
		courseCells("1", "MWF 1-4P", "", "Empty location"),
		{"1", "too", "short"},
	}
	for _, row := range cases {
		if _, err := NormalizeRow(row); err == nil {
			t.Errorf("NormalizeRow(%v) should have failed", row)
		}
	}
}
