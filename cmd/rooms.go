package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/tui"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms <room> <building> [day]",
	Short: "Show the courses that meet in a room",
	Long: `List every course meeting in the given room, optionally restricted to
one day (M, T, W, H or F, where H is Thursday). Without a day, meetings on
every day are shown.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		room, building := args[0], args[1]
		day := ""
		if len(args) == 3 {
			day = strings.ToUpper(args[2])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		records, err := s.Read(building)
		if err != nil {
			return err
		}

		matched := store.FilterByRoomAndDay(records, room, day)
		if len(matched) > 0 {
			tui.PrintScheduleTable(matched)
			return nil
		}

		// An empty result for a known room means the room is just free
		// that day; an unknown room is the user's mistake. Keep the two
		// answers distinct.
		for _, known := range store.AllRooms(records) {
			if known == room {
				fmt.Println("No courses")
				return nil
			}
		}
		fmt.Println("Invalid room")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}
