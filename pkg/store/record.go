package store

import "strings"

// CourseRecord is one scheduled class meeting scraped from OSOC.
type CourseRecord struct {
	Start   string // minutes past midnight as a zero-padded 4-digit string
	Room    string // building-local room identifier, e.g. "100"
	RawTime string // time range as scraped, e.g. "1-4P"
	Days    string // canonical day letters from {M,T,W,H,F}
	RawDays string // day string as scraped, e.g. "TuTh"
	CCN     string // course control number
	Title   string
}

// fields returns the record's attributes in declared order, which is also the
// on-disk column order. Start comes first so that default tuple comparison
// yields chronological order.
func (r CourseRecord) fields() []string {
	return []string{r.Start, r.Room, r.RawTime, r.Days, r.RawDays, r.CCN, r.Title}
}

// ReadableAttrs returns the attributes worth showing in a schedule table:
// raw time, canonical days, raw days, control number and title. Start and
// room are dropped since the caller already queried by them.
func (r CourseRecord) ReadableAttrs() []string {
	return []string{r.RawTime, r.Days, r.RawDays, r.CCN, r.Title}
}

// Less orders records by field-by-field comparison of their attribute tuples.
func (r CourseRecord) Less(other CourseRecord) bool {
	a, b := r.fields(), other.fields()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// MatchesDay reports whether the record meets on the given canonical day
// letter. Matching is substring containment: a record with Days "MWF" matches
// "M", "W" and "F", and the empty day matches every record.
func (r CourseRecord) MatchesDay(day string) bool {
	return strings.Contains(r.Days, day)
}
