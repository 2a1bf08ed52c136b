package schedule

// MinutesPerDay is the size of the minute-of-day universe [0, 1440).
const MinutesPerDay = 24 * 60

// MinuteSet is a set of minute-of-day values. The zero value is empty.
type MinuteSet struct {
	busy [MinutesPerDay]bool
}

// AddRange adds the half-open range [start, end) to the set. Values outside
// [0, MinutesPerDay] are clipped.
func (s *MinuteSet) AddRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > MinutesPerDay {
		end = MinutesPerDay
	}
	for m := start; m < end; m++ {
		s.busy[m] = true
	}
}

// Union adds every minute of other to the set.
func (s *MinuteSet) Union(other MinuteSet) {
	for m, b := range other.busy {
		if b {
			s.busy[m] = true
		}
	}
}

// Contains reports whether the minute is in the set.
func (s *MinuteSet) Contains(minute int) bool {
	if minute < 0 || minute >= MinutesPerDay {
		return false
	}
	return s.busy[minute]
}

// DisjointFrom reports whether the set shares no minute with other. A room is
// free for a requested window exactly when the window is disjoint from the
// room's busy set, i.e. when the window is a subset of the day's remaining
// free minutes.
func (s *MinuteSet) DisjointFrom(other MinuteSet) bool {
	for m, b := range s.busy {
		if b && other.busy[m] {
			return false
		}
	}
	return true
}

// Len returns the number of minutes in the set.
func (s *MinuteSet) Len() int {
	n := 0
	for _, b := range s.busy {
		if b {
			n++
		}
	}
	return n
}
