package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
)

// RunConfigTUI runs the interactive settings editor
func RunConfigTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	term := cfg.TermOrDefault()
	dataDir := cfg.DataDir
	accent := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Term").
				Description("Which OSOC term to scrape").
				Options(
					huh.NewOption("Fall", "FL"),
					huh.NewOption("Spring", "SP"),
					huh.NewOption("Summer", "SU"),
				).
				Value(&term),
			huh.NewInput().
				Title("Data directory").
				Description("Where building stores live (empty = default)").
				Value(&dataDir),
			huh.NewInput().
				Title("Accent color").
				Description("ANSI 256 color code (empty = default)").
				Value(&accent),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Term = term
	cfg.DataDir = dataDir
	cfg.AccentColor = accent

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("Settings saved."))
	return nil
}
