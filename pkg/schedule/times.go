package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeTime converts an OSOC time range like "1-4P" into start and end
// minutes past midnight, each as a zero-padded four-digit string so that
// string comparison matches chronological comparison.
//
// The raw format is "<start>-<end><A|P>": the start is bare digits, the end is
// digits plus an AM/PM marker. A one- or two-digit group is an hour; a three-
// or four-digit group packs the minutes into the last two digits ("1150" is
// 11:50). Only the end carries a marker, so the start's half of the day has to
// be inferred:
//
//   - end hour 12 with marker 'A' is OSOC's encoding for a range running to
//     midnight; the end becomes 24:00 and the start moves to the evening.
//   - otherwise a non-'A' marker on an end hour other than 12 means PM: the
//     end gains 12 hours, and the start does too unless it already reads as
//     an AM hour before the end (a "10-1150" shape).
//   - end hour 12 with 'P' (noon) and plain 'A' ends need no adjustment.
//
//	NormalizeTime("1-4P") == ("0780", "0960")
func NormalizeTime(raw string) (start, end string, err error) {
	rawStart, rawEnd, ok := strings.Cut(raw, "-")
	if !ok || len(rawEnd) < 2 {
		return "", "", fmt.Errorf("malformed time range %q", raw)
	}

	ampm := rawEnd[len(rawEnd)-1]
	rawEnd = rawEnd[:len(rawEnd)-1]
	if ampm != 'A' && ampm != 'P' {
		return "", "", fmt.Errorf("malformed time range %q: bad AM/PM marker", raw)
	}

	startHour, startMin, err := splitPacked(rawStart)
	if err != nil {
		return "", "", fmt.Errorf("malformed time range %q: %w", raw, err)
	}
	endHour, endMin, err := splitPacked(rawEnd)
	if err != nil {
		return "", "", fmt.Errorf("malformed time range %q: %w", raw, err)
	}

	if endHour == 12 && ampm == 'A' {
		endHour = 24
		startHour += 12
	} else if !(endHour == 12 && ampm == 'P' || ampm == 'A') {
		endHour += 12
		if startHour <= endHour-12 {
			startHour += 12
		}
	}

	start = fmt.Sprintf("%04d", startHour*60+startMin)
	end = fmt.Sprintf("%04d", endHour*60+endMin)
	return start, end, nil
}

// splitPacked parses a digit group into hour and minute: 1-2 digits are a bare
// hour, 3-4 digits are HMM or HHMM.
func splitPacked(digits string) (hour, min int, err error) {
	if len(digits) < 1 || len(digits) > 4 {
		return 0, 0, fmt.Errorf("bad digit group %q", digits)
	}
	if len(digits) <= 2 {
		hour, err = strconv.Atoi(digits)
		return hour, 0, err
	}
	hour, err = strconv.Atoi(digits[:len(digits)-2])
	if err != nil {
		return 0, 0, err
	}
	min, err = strconv.Atoi(digits[len(digits)-2:])
	return hour, min, err
}

// OccupiedMinutes returns the half-open minute range [start, end) covered by
// an OSOC time range, as a set usable for busy/free arithmetic.
func OccupiedMinutes(raw string) (MinuteSet, error) {
	start, end, err := NormalizeTime(raw)
	if err != nil {
		return MinuteSet{}, err
	}
	startMin, _ := strconv.Atoi(start)
	endMin, _ := strconv.Atoi(end)

	var s MinuteSet
	s.AddRange(startMin, endMin)
	return s, nil
}
