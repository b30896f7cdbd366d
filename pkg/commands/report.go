package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	fo := &options.FilterOptions{}
	var last string
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the filtered entries as a tabular report",
		Long: `Report formats the currently filtered entries into fixed columns
(date, mood, situation, emotion, thoughts, behavior) and renders them as a
table or a CSV document.`,
		Example: `
moodlog report
moodlog report --last 2w
moodlog report --mood sad --out sad-moments.csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			m, err := mo.GetMood()
			if err != nil {
				return err
			}

			ctx := context.Background()
			j, _, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			s := report.Report{
				Query:   fo.Query,
				Mood:    m,
				Last:    last,
				Out:     out,
				Journal: j,
			}
			return s.Do(ctx)
		},
	}

	options.AddMoodArg(cmd, mo, `Only include this mood; "all" or unset includes every mood.`)
	options.AddQueryArg(cmd, fo)
	cmd.Flags().StringVar(&last, "last", "", "Trailing window to include (for example 3d, 2w).")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write a CSV document to this path instead of printing.")

	topLevel.AddCommand(cmd)
}
