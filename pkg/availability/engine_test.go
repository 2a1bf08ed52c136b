package availability

import (
	"reflect"
	"testing"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

func window(raw string, t *testing.T) schedule.MinuteSet {
	t.Helper()
	w, err := schedule.OccupiedMinutes(raw)
	if err != nil {
		t.Fatalf("could not build window from %q: %v", raw, err)
	}
	return w
}

func TestFreeRooms(t *testing.T) {
	records := []store.CourseRecord{
		// Room 100 busy 13:00-16:00 on MWF.
		{Start: "0780", Room: "100", RawTime: "1-4P", Days: "MWF", RawDays: "MWF", CCN: "1", Title: "A"},
		// Room 20 busy 10:00-11:00 on TuTh.
		{Start: "0600", Room: "20", RawTime: "10-11A", Days: "TH", RawDays: "TuTh", CCN: "2", Title: "B"},
		// Room 3 never busy on Mondays.
		{Start: "0840", Room: "3", RawTime: "2-3P", Days: "T", RawDays: "Tu", CCN: "3", Title: "C"},
	}

	// 13:00-14:00 on Monday: room 100 is mid-meeting, the others are free.
	free, err := FreeRooms(records, "M", window("1-2P", t))
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if !reflect.DeepEqual(free, []string{"3", "20"}) {
		t.Errorf("expected rooms 3 and 20 free on Monday afternoon, got %v", free)
	}

	// Same window on Tuesday: only room 3's 2-3P meeting doesn't overlap,
	// and room 100 meets MWF only.
	free, err = FreeRooms(records, "T", window("1-2P", t))
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if !reflect.DeepEqual(free, []string{"3", "20", "100"}) {
		t.Errorf("expected every room free on Tuesday 13:00-14:00, got %v", free)
	}

	// 14:00-15:00 on Tuesday: room 3 is busy.
	free, err = FreeRooms(records, "T", window("2-3P", t))
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if !reflect.DeepEqual(free, []string{"20", "100"}) {
		t.Errorf("expected room 3 busy on Tuesday 14:00-15:00, got %v", free)
	}
}

// Shorter room numbers sort first: ["3","20","100"], not ["100","20","3"].
func TestFreeRoomsRightJustifiedOrder(t *testing.T) {
	records := []store.CourseRecord{
		{Start: "0480", Room: "100", RawTime: "8-9A", Days: "F", RawDays: "F", CCN: "1", Title: "A"},
		{Start: "0480", Room: "20", RawTime: "8-9A", Days: "F", RawDays: "F", CCN: "2", Title: "B"},
		{Start: "0480", Room: "3", RawTime: "8-9A", Days: "F", RawDays: "F", CCN: "3", Title: "C"},
	}

	free, err := FreeRooms(records, "M", window("1-2P", t))
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if !reflect.DeepEqual(free, []string{"3", "20", "100"}) {
		t.Errorf("expected right-justified order [3 20 100], got %v", free)
	}
}

// A room qualifies exactly when the window is a subset of its free minutes:
// sharing even a single minute with a meeting disqualifies it, while a window
// that abuts a meeting boundary does not.
func TestFreeRoomsBoundaries(t *testing.T) {
	records := []store.CourseRecord{
		{Start: "0780", Room: "155", RawTime: "1-2P", Days: "M", RawDays: "M", CCN: "1", Title: "A"},
	}

	// 14:00-15:00 starts exactly where the meeting ends.
	free, err := FreeRooms(records, "M", window("2-3P", t))
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if !reflect.DeepEqual(free, []string{"155"}) {
		t.Errorf("expected the room free immediately after its meeting, got %v", free)
	}

	// 13:00-13:01 overlaps the first minute of the meeting.
	var oneMinute schedule.MinuteSet
	oneMinute.AddRange(780, 781)
	free, err = FreeRooms(records, "M", oneMinute)
	if err != nil {
		t.Fatalf("FreeRooms failed: %v", err)
	}
	if len(free) != 0 {
		t.Errorf("expected a single overlapping minute to disqualify the room, got %v", free)
	}
}
