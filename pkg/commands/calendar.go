package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/cal"
)

const layoutMonth = "2006-01"

func addCalendar(topLevel *cobra.Command) {
	var onString string
	var follow bool

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month as a mood heat-map",
		Long: `Calendar renders one cell per day, colored by the mood recorded that day.
When several entries share a day, the most recently created one colors the cell.`,
		Example: `
moodlog calendar
moodlog calendar --on 2026-02
moodlog calendar --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			on := time.Now()
			if onString != "" {
				t, err := time.ParseInLocation(layoutMonth, onString, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --on value %q, want YYYY-MM: %w", onString, err)
				}
				on = t
			}

			ctx := context.Background()
			j, p, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			s := cal.Cal{
				On:          on,
				Follow:      follow,
				Journal:     j,
				Persistence: p,
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&onString, "on", "",
		`Month to display, like --on="2026-02". Defaults to the current month.`)
	cmd.Flags().BoolVar(&follow, "follow", false,
		"Keep the calendar open and re-render when the journal changes.")

	topLevel.AddCommand(cmd)
}
