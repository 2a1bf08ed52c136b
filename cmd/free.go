package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/availability"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/schedule"
)

var freeCmd = &cobra.Command{
	Use:   "free <timerange> <building> <day>",
	Short: "Find rooms free for a time window",
	Long: `List the rooms in a building with no meetings overlapping the given
time window on the given day. The window uses OSOC's own time syntax, e.g.
"1-4P" for 13:00-16:00 or "10-1150A" for 10:00-11:50.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeRange, building := args[0], args[1]
		day := strings.ToUpper(args[2])

		window, err := schedule.OccupiedMinutes(timeRange)
		if err != nil {
			return fmt.Errorf("could not read time range: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		records, err := s.Read(building)
		if err != nil {
			return err
		}

		free, err := availability.FreeRooms(records, day, window)
		if err != nil {
			return err
		}

		fmt.Printf("Found %d results\n", len(free))
		for _, room := range free {
			fmt.Println(room)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeCmd)
}
