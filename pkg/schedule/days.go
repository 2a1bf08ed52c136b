package schedule

import "strings"

// NormalizeDays converts OSOC's day format into a queriable one where every
// weekday is a distinct single letter: M, T (Tuesday), W, H (Thursday), F.
//
// OSOC concatenates day tokens without separators and is inconsistent about
// Tuesday and Thursday: they appear as "Tu" and "Th", but also as bare "T"s
// ("MTWTF" means Monday through Friday). The tokenizer scans greedily, taking
// "Tu" and "Th" when present; a bare "T" is read as Tuesday the first time and
// as Thursday after that, since a second Tuesday in one meeting string cannot
// occur. Strings with more than two T-class tokens are outside OSOC's format
// and the result for them is unspecified.
//
//	NormalizeDays("MTWTF") == "MTWHF"
//	NormalizeDays("TuTh") == "TH"
func NormalizeDays(raw string) string {
	var b strings.Builder
	sawTuesday := false

	for i := 0; i < len(raw); {
		if strings.HasPrefix(raw[i:], "Tu") {
			b.WriteByte('T')
			sawTuesday = true
			i += 2
			continue
		}
		if strings.HasPrefix(raw[i:], "Th") {
			b.WriteByte('H')
			i += 2
			continue
		}
		if raw[i] == 'T' {
			if sawTuesday {
				b.WriteByte('H')
			} else {
				b.WriteByte('T')
				sawTuesday = true
			}
			i++
			continue
		}
		b.WriteByte(raw[i])
		i++
	}

	return b.String()
}
