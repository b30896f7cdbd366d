package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	var at string
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run a daily journaling reminder",
		Example: `
moodlog remind --at 20:00
moodlog remind --at 08:30 --once
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s := remind.Remind{At: at, Once: once}
			if err := s.Do(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "20:00", "Daily reminder time, HH:MM.")
	cmd.Flags().BoolVar(&once, "once", false, "Stop after the first reminder.")

	topLevel.AddCommand(cmd)
}
