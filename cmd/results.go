package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/profile"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show past assessment runs and the aggregated profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.EventRepo().Assessments(ctx)
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		ended := make([]store.AssessmentRecord, 0, len(runs))
		for _, r := range runs {
			if r.Action == "end" {
				ended = append(ended, r)
			}
		}

		if len(ended) == 0 {
			fmt.Println("No completed assessments yet. Run `academy` to start one.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-8s  %s\n", "Completed", "Scenes", "Scored", "Duration")
		fmt.Println(strings.Repeat("─", 52))
		for _, r := range ended {
			fmt.Printf("%-19s  %-8d  %-8d  %d:%02d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.ScenesCompleted,
				r.ChallengesScored,
				r.DurationSecs/60, r.DurationSecs%60,
			)
		}

		// Aggregate the latest run's ledger into a profile.
		latest := ended[len(ended)-1]
		records, err := s.EventRepo().ResultsForAssessment(ctx, latest.AssessmentID)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		prof := profile.Compute(profile.FromRecords(records))

		fmt.Println()
		fmt.Println("Latest skill profile")
		fmt.Println(strings.Repeat("─", 52))
		for _, d := range prof.Dimensions {
			if d.Evidence == 0 {
				fmt.Printf("%-20s  %s\n", d.Label, "not assessed")
				continue
			}
			stars := strings.Repeat("★", int(d.Score+0.5))
			fmt.Printf("%-20s  %.1f/5  %s\n", d.Label, d.Score, stars)
		}

		overall, evidence := prof.Overall()
		fmt.Println(strings.Repeat("─", 52))
		fmt.Printf("%-20s  %.1f/5  (%d results)\n", "Overall", overall, evidence)

		// Sanity line so partial runs are visible.
		scored := catalog.Default().ScoredCount()
		if latest.ChallengesScored < scored {
			fmt.Printf("\nLatest run scored %d of %d challenges.\n", latest.ChallengesScored, scored)
		}

		return nil
	},
}
