package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/prendradjaja/cal-classroom-creeper/pkg/config"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/scraper"
	"github.com/prendradjaja/cal-classroom-creeper/pkg/store"
)

var ingestTerm string

var ingestCmd = &cobra.Command{
	Use:   "ingest <building>",
	Short: "Scrape a building's courses into its local store",
	Long: `Fetch the OSOC search results for a building, normalize every course
row, and overwrite the building's store file. Warnings about incomplete
results are printed but do not stop the run; the store is only written after
the whole page has been parsed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		building := args[0]

		term := ingestTerm
		if term == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			term = cfg.TermOrDefault()
		}

		client := scraper.NewClient()
		var results *scraper.SearchResults
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching courses for %s...", building)).
			Action(func() {
				results, fetchErr = client.FetchCourses(building, term)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch courses: %w", fetchErr)
		}

		for _, w := range results.Warnings {
			printWarning(w)
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

		fmt.Printf("Saved %d courses for %s\n", len(records), store.CanonicalName(building))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestTerm, "term", "t", "", "OSOC term code (overrides the configured term)")
}
