package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// aliases maps verbose building names to short canonical store-file names.
// Applied identically when ingesting and when querying.
var aliases = map[string]string{
	"valley lsb": "vlsb",
}

// Store persists per-building course records as CSV files under a single
// data directory, one file per building, overwritten wholesale on each
// ingest. Concurrent ingest and query against the same building is a race;
// runs are short-lived single processes so this is left unguarded.
type Store struct {
	dir string
}

// New returns a store rooted at the given data directory, creating it if
// needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the store location under the user's home directory.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".creeper", "buildings"), nil
}

// CanonicalName resolves a building name through the alias map.
func CanonicalName(building string) string {
	if short, ok := aliases[building]; ok {
		return short
	}
	return building
}

func (s *Store) path(building string) string {
	return filepath.Join(s.dir, CanonicalName(building)+".csv")
}

// Write replaces the building's store file with the given records. The file
// is written to a temporary name and renamed into place, so a failed run
// never leaves a partially written store behind.
func (s *Store) Write(building string, records []CourseRecord) error {
	tmp, err := os.CreateTemp(s.dir, CanonicalName(building)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create store file: %w", err)
	}

	w := csv.NewWriter(tmp)
	for _, r := range records {
		if err := w.Write(r.fields()); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(building)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace store file: %w", err)
	}
	return nil
}

// Read loads every record in the building's store file.
func (s *Store) Read(building string) ([]CourseRecord, error) {
	f, err := os.Open(s.path(building))
	if err != nil {
		return nil, fmt.Errorf("no store for building %q (run ingest first): %w", building, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse store for building %q: %w", building, err)
	}

	records := make([]CourseRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) != 7 {
			return nil, fmt.Errorf("store for building %q has a row with %d fields, want 7", building, len(row))
		}
		records = append(records, CourseRecord{
			Start:   row[0],
			Room:    row[1],
			RawTime: row[2],
			Days:    row[3],
			RawDays: row[4],
			CCN:     row[5],
			Title:   row[6],
		})
	}
	return records, nil
}

// Buildings lists the canonical names of every building with a store file,
// sorted ascending.
func (s *Store) Buildings() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	var buildings []string
	for _, m := range matches {
		buildings = append(buildings, strings.TrimSuffix(filepath.Base(m), ".csv"))
	}
	sort.Strings(buildings)
	return buildings, nil
}

// AllRooms returns the distinct room identifiers across the records, sorted
// ascending.
func AllRooms(records []CourseRecord) []string {
	seen := make(map[string]bool)
	var rooms []string
	for _, r := range records {
		if !seen[r.Room] {
			seen[r.Room] = true
			rooms = append(rooms, r.Room)
		}
	}
	sort.Strings(rooms)
	return rooms
}

// FilterByRoomAndDay returns the records meeting in the given room on the
// given canonical day letter, sorted in natural record order (start time
// first). An empty day matches every record.
func FilterByRoomAndDay(records []CourseRecord, room, day string) []CourseRecord {
	var matched []CourseRecord
	for _, r := range records {
		if r.Room == room && r.MatchesDay(day) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Less(matched[j])
	})
	return matched
}
