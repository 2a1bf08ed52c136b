package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/scraper"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

// RunIngestTUI runs the interactive flow for scraping a building
func RunIngestTUI() error {
	var building string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Building name").
				Description("As OSOC knows it, e.g. 'soda' or 'valley lsb'").
				Value(&building),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if building == "" {
		fmt.Println(errorStyle.Render("No building given!"))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := scraper.NewClient()
	var results *scraper.SearchResults
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching courses for %s...", building)).
		Action(func() {
			results, fetchErr = client.FetchCourses(building, cfg.TermOrDefault())
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch courses: %w", fetchErr)
	}

	for _, w := range results.Warnings {
		fmt.Println(errorStyle.Render("##### Error: " + w))
	}

	records := make([]store.CourseRecord, 0, len(results.Rows))
	for _, row := range results.Rows {
		record, err := scraper.NormalizeRow(row)
		if err != nil {
			return fmt.Errorf("failed to normalize a course row: %w", err)
		}
		records = append(records, record)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	if err := s.Write(building, records); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(
		fmt.Sprintf("Saved %d courses for %s", len(records), store.CanonicalName(building))))
	return nil
}
