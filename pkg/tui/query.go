package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/olekukonko/tablewriter"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/availability"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

// dayOptions are the canonical day letters offered in query forms.
var dayOptions = []huh.Option[string]{
	huh.NewOption("Monday", "M"),
	huh.NewOption("Tuesday", "T"),
	huh.NewOption("Wednesday", "W"),
	huh.NewOption("Thursday", "H"),
	huh.NewOption("Friday", "F"),
}

// openStore opens the building store at the configured data directory.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir := cfg.DataDir
	if dir == "" {
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return store.New(dir)
}

// pickBuilding prompts for one of the buildings that have been ingested.
func pickBuilding(s *store.Store) (string, error) {
	buildings, err := s.Buildings()
	if err != nil {
		return "", err
	}
	if len(buildings) == 0 {
		return "", fmt.Errorf("no building stores found; run 'creeper ingest <building>' first")
	}

	var options []huh.Option[string]
	for _, b := range buildings {
		options = append(options, huh.NewOption(b, b))
	}

	var building string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which building?").
				Options(options...).
				Value(&building),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return building, nil
}

// RunRoomScheduleTUI runs the interactive flow for viewing one room's courses
func RunRoomScheduleTUI() error {
	s, err := openStore()
	if err != nil {
		return err
	}

	building, err := pickBuilding(s)
	if err != nil {
		return err
	}

	records, err := s.Read(building)
	if err != nil {
		return err
	}

	rooms := store.AllRooms(records)
	var roomOptions []huh.Option[string]
	for _, r := range rooms {
		roomOptions = append(roomOptions, huh.NewOption(r, r))
	}

	var room, day string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which room?").
				Options(roomOptions...).
				Value(&room),
			huh.NewSelect[string]().
				Title("Which day?").
				Options(append([]huh.Option[string]{huh.NewOption("Any day", "")}, dayOptions...)...).
				Value(&day),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	matched := store.FilterByRoomAndDay(records, room, day)
	if len(matched) == 0 {
		fmt.Println("No courses")
		return nil
	}

	PrintScheduleTable(matched)
	return nil
}

// RunFreeRoomsTUI runs the interactive flow for the free-room search
func RunFreeRoomsTUI() error {
	s, err := openStore()
	if err != nil {
		return err
	}

	building, err := pickBuilding(s)
	if err != nil {
		return err
	}

	var timeRange, day string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time range").
				Description("OSOC syntax, e.g. 1-4P or 10-1150A").
				Value(&timeRange),
			huh.NewSelect[string]().
				Title("Which day?").
				Options(dayOptions...).
				Value(&day),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	window, err := schedule.OccupiedMinutes(timeRange)
	if err != nil {
		return fmt.Errorf("could not read time range: %w", err)
	}

	records, err := s.Read(building)
	if err != nil {
		return err
	}

	free, err := availability.FreeRooms(records, day, window)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Found %d results", len(free))))
	for _, room := range free {
		fmt.Println(room)
	}
	return nil
}

// PrintScheduleTable renders records as a column-aligned table of their
// readable attributes.
func PrintScheduleTable(records []store.CourseRecord) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Days", "Raw Days", "CCN", "Title"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, r := range records {
		table.Append(r.ReadableAttrs())
	}
	table.Render()
}
