package exporter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

// weekdays maps canonical day letters to Go weekdays.
var weekdays = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'H': time.Thursday,
	'F': time.Friday,
}

// GenerateICS writes a calendar with one weekly recurring event per meeting
// day of each record. Events are anchored to the first occurrence of their
// weekday on or after the given date.
func GenerateICS(records []store.CourseRecord, from time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Campus timezone
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}
	from = from.In(loc)
	midnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	for _, r := range records {
		startStr, endStr, err := schedule.NormalizeTime(r.RawTime)
		if err != nil {
			return fmt.Errorf("record %s has an unreadable time %q: %w", r.CCN, r.RawTime, err)
		}
		startMin, _ := strconv.Atoi(startStr)
		endMin, _ := strconv.Atoi(endStr)

		for _, day := range r.Days {
			wd, ok := weekdays[day]
			if !ok {
				return fmt.Errorf("record %s has an unknown day letter %q", r.CCN, day)
			}

			daysAhead := (int(wd) - int(from.Weekday()) + 7) % 7
			anchor := midnight.AddDate(0, 0, daysAhead)

			event := cal.AddEvent(fmt.Sprintf("%s-%c@creeper", r.CCN, day))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetStartAt(anchor.Add(time.Duration(startMin) * time.Minute))
			event.SetEndAt(anchor.Add(time.Duration(endMin) * time.Minute))
			event.SetSummary(r.Title)
			event.SetLocation(r.Room)
			event.SetDescription(fmt.Sprintf("CCN: %s\nMeets: %s %s", r.CCN, r.RawDays, r.RawTime))
			event.AddRrule("FREQ=WEEKLY")
		}
	}

	return cal.SerializeTo(w)
}
