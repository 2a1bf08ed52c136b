package schedule

import "testing"

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		raw       string
		wantStart string
		wantEnd   string
	}{
		// Afternoon range: 13:00-16:00.
		{"1-4P", "0780", "0960"},
		// Morning range, packed minutes in the end: 10:00-11:50.
		{"10-1150A", "0600", "0710"},
		// Ends exactly at noon: 09:00-12:00.
		{"9-12P", "0540", "0720"},
		// Starts at noon: 12:30-14:00.
		{"1230-2P", "0750", "0840"},
		// Morning only: 08:00-09:30.
		{"8-930A", "0480", "0570"},
		// Crosses from morning into afternoon: 11:00-12:30.
		{"11-1230P", "0660", "0750"},
		// Evening: 19:00-20:30.
		{"7-830P", "1140", "1230"},
		// OSOC's midnight encoding: end hour 12 with 'A' runs to 24:00.
		{"10-12A", "1320", "1440"},
	}

	for _, c := range cases {
		start, end, err := NormalizeTime(c.raw)
		if err != nil {
			t.Errorf("NormalizeTime(%q) returned error: %v", c.raw, err)
			continue
		}
		if start != c.wantStart || end != c.wantEnd {
			t.Errorf("NormalizeTime(%q) = (%q, %q), want (%q, %q)",
				c.raw, start, end, c.wantStart, c.wantEnd)
		}
	}
}

func TestNormalizeTimeMalformed(t *testing.T) {
	for _, raw := range []string{"", "noon", "1-4X", "14", "1-", "-4P", "12345-4P"} {
		if _, _, err := NormalizeTime(raw); err == nil {
			t.Errorf("NormalizeTime(%q) should have failed", raw)
		}
	}
}

func TestOccupiedMinutes(t *testing.T) {
	s, err := OccupiedMinutes("1-2P")
	if err != nil {
		t.Fatalf("OccupiedMinutes failed: %v", err)
	}

	if got := s.Len(); got != 60 {
		t.Errorf("expected 60 occupied minutes, got %d", got)
	}
	if !s.Contains(780) {
		t.Errorf("expected minute 780 (13:00) to be occupied")
	}
	if !s.Contains(839) {
		t.Errorf("expected minute 839 (13:59) to be occupied")
	}
	// Half-open: the end minute itself is free.
	if s.Contains(840) {
		t.Errorf("expected minute 840 (14:00) to be free")
	}
	if s.Contains(779) {
		t.Errorf("expected minute 779 (12:59) to be free")
	}
}

func TestMinuteSetUnionDisjoint(t *testing.T) {
	var a, b, window MinuteSet
	a.AddRange(600, 660)
	b.AddRange(720, 780)
	a.Union(b)

	if a.Len() != 120 {
		t.Errorf("expected union of two hour ranges to hold 120 minutes, got %d", a.Len())
	}

	window.AddRange(660, 720)
	if !window.DisjointFrom(a) {
		t.Errorf("expected the gap between the ranges to be free")
	}

	window.AddRange(650, 660)
	if window.DisjointFrom(a) {
		t.Errorf("expected overlap at 650-660 to be detected")
	}
}
