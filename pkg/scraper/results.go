package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

// courseColumns is the cell count of a course row in OSOC's results table.
// Other row shapes (headers, spacers, footers) have different counts.
const courseColumns = 11

// SearchResults holds the raw course rows extracted from one results page.
// Warnings are data-integrity signals, not failures: the rows that were
// found are still usable.
type SearchResults struct {
	// Rows holds one cell slice per course, with the leading checkbox
	// column already dropped.
	Rows [][]string
	// ReportedTotal is the course count the page itself claims.
	ReportedTotal int
	Warnings      []string
}

// ParseResults parses an OSOC search results page and extracts the course
// rows. A page with no matches or with fewer rows than its reported total
// produces warnings rather than an error.
func ParseResults(r io.Reader) (*SearchResults, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	results := &SearchResults{}

	if strings.Contains(doc.Text(), "No classes match") {
		results.Warnings = append(results.Warnings, "no classes found")
		return results, nil
	}

	// The reported course total lives in the second-to-last font element,
	// as the second word of e.g. "Displaying 42 matches".
	fonts := doc.Find("font")
	if fonts.Length() < 2 {
		return nil, fmt.Errorf("unexpected page shape: no course total found")
	}
	totalFields := strings.Fields(strings.TrimSpace(fonts.Eq(fonts.Length() - 2).Text()))
	if len(totalFields) < 2 {
		return nil, fmt.Errorf("unexpected page shape: could not read course total")
	}
	total, err := strconv.Atoi(totalFields[1])
	if err != nil {
		return nil, fmt.Errorf("unexpected page shape: bad course total %q", totalFields[1])
	}
	results.ReportedTotal = total

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() != courseColumns {
			return
		}
		if strings.TrimSpace(cells.First().Text()) == "ControlNumber" {
			return // header row
		}

		// Drop the leading checkbox cell; keep the 10 data cells.
		var texts []string
		cells.Slice(1, cells.Length()).Each(func(j int, cell *goquery.Selection) {
			text := strings.ReplaceAll(cell.Text(), "\u00a0", " ")
			texts = append(texts, strings.TrimSpace(text))
		})
		results.Rows = append(results.Rows, texts)
	})

	if len(results.Rows) != total {
		results.Warnings = append(results.Warnings,
			fmt.Sprintf("found %d courses (should be %d)", len(results.Rows), total))
	}

	return results, nil
}

// Column offsets within a raw row, after the checkbox cell is dropped.
const (
	colCCN      = 0
	colDaysTime = 3
	colLocation = 4
	colTitle    = 5
)

// NormalizeRow maps one raw course row to a CourseRecord, running the day and
// time strings through their normalizers.
func NormalizeRow(row []string) (store.CourseRecord, error) {
	if len(row) <= colTitle {
		return store.CourseRecord{}, fmt.Errorf("course row has %d cells, want at least %d", len(row), colTitle+1)
	}

	meeting := strings.Fields(row[colDaysTime])
	if len(meeting) != 2 {
		return store.CourseRecord{}, fmt.Errorf("unexpected meeting field %q", row[colDaysTime])
	}
	rawDays, rawTime := meeting[0], meeting[1]

	start, _, err := schedule.NormalizeTime(rawTime)
	if err != nil {
		return store.CourseRecord{}, err
	}

	location := strings.Fields(row[colLocation])
	if len(location) == 0 {
		return store.CourseRecord{}, fmt.Errorf("empty location field")
	}

	return store.CourseRecord{
		Start:   start,
		Room:    location[0],
		RawTime: rawTime,
		Days:    schedule.NormalizeDays(rawDays),
		RawDays: rawDays,
		CCN:     row[colCCN],
		Title:   row[colTitle],
	}, nil
}
