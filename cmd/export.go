package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/exporter"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <room> <building>",
	Short: "Export a room's weekly schedule to an ICS file",
	Long: `Write an ICS calendar with one weekly recurring event per course
meeting in the given room, suitable for importing into a calendar app.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		room, building := args[0], args[1]
		output, _ := cmd.Flags().GetString("output")

		s, err := openStore()
		if err != nil {
			return err
		}
		records, err := s.Read(building)
		if err != nil {
			return err
		}

		matched := store.FilterByRoomAndDay(records, room, "")
		if len(matched) == 0 {
			return fmt.Errorf("no courses found for room %s in %s", room, building)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(matched, time.Now(), file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d courses to %s\n", len(matched), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
