package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage creeper configuration",
	Long:  "View or edit your local configuration settings (term to scrape, data directory, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setTerm, _ := cmd.Flags().GetString("set-term")
		if setTerm != "" {
			cfg.Term = setTerm
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Term set to %s\n", setTerm)
			return nil
		}

		setDataDir, _ := cmd.Flags().GetString("set-data-dir")
		if setDataDir != "" {
			cfg.DataDir = setDataDir
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Data directory set to %s\n", setDataDir)
			return nil
		}

		// If no flags are given, launch the interactive settings editor
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-term", "", "Set the OSOC term code (e.g. FL, SP)")
	configCmd.Flags().String("set-data-dir", "", "Set the building store directory")
}
