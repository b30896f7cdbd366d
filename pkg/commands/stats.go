package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how often each mood was recorded",
		Example: `
moodlog stats
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx := context.Background()
			j, _, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			s := stats.Stats{Journal: j}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
