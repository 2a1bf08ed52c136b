package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

var rootCmd = &cobra.Command{
	Use:   "creeper",
	Short: "A CLI for Berkeley classroom schedules",
	Long: `creeper scrapes the Berkeley Online Schedule of Classes for a building
and answers two questions against the scraped data: what courses meet in a
given room, and which rooms are free for a given time window.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

// printWarning reports a non-fatal data-integrity problem with a marker that
// stands out from normal output.
func printWarning(msg string) {
	fmt.Println(warnStyle.Render("##### Error: " + msg))
}

// openStore opens the building store at the configured data directory,
// falling back to the default under the user's home.
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
