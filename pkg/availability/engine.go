// Package availability answers "which rooms are free for this window" by set
// arithmetic over the 1440 minutes of a day.
package availability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

// rjustWidth pads room identifiers before comparing so that "20" sorts before
// "100". Plain lexicographic order would put "100" first.
const rjustWidth = 99

// FreeRooms returns the rooms whose meetings on the given canonical day leave
// the whole requested window unoccupied. Rooms come back in right-justified
// lexicographic order, shortest identifiers first among shared suffixes.
func FreeRooms(records []store.CourseRecord, day string, window schedule.MinuteSet) ([]string, error) {
	var free []string

	for _, room := range store.AllRooms(records) {
		var busy schedule.MinuteSet
		for _, r := range records {
			if r.Room != room || !r.MatchesDay(day) {
				continue
			}
			occupied, err := schedule.OccupiedMinutes(r.RawTime)
			if err != nil {
				return nil, fmt.Errorf("room %s has an unreadable time %q: %w", room, r.RawTime, err)
			}
			busy.Union(occupied)
		}
		if window.DisjointFrom(busy) {
			free = append(free, room)
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return rjust(free[i]) < rjust(free[j])
	})
	return free, nil
}

func rjust(s string) string {
	if len(s) >= rjustWidth {
		return s
	}
	return strings.Repeat(" ", rjustWidth-len(s)) + s
}
