package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	oo := &options.OnOptions{}
	to := &options.TextOptions{}

	cmd := &cobra.Command{
		Use:   "add [situation]",
		Short: "Record how a moment felt",
		Example: `
moodlog add "Missed the bus" --mood sad --thoughts "I'm always late"
moodlog add "Quiet evening" -m neutral --on yesterday
moodlog add "Got the job" -m happy --on 2026-02-14
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("a situation is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			m, err := mo.GetMood()
			if err != nil {
				return err
			}
			if m == mood.Any {
				return errors.New("a mood is required, one of: happy, neutral, sad, anxious, angry")
			}
			when, customDate, err := oo.GetOn()
			if err != nil {
				return err
			}

			ctx := context.Background()
			j, _, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			s := add.Add{
				Mood:       m,
				Situation:  strings.Join(args, " "),
				Thoughts:   to.Thoughts,
				Emotion:    to.Emotion,
				Behavior:   to.Behavior,
				When:       when,
				CustomDate: customDate,
				Journal:    j,
			}
			return s.Do(ctx)
		},
	}

	options.AddMoodArg(cmd, mo, "Mood for the entry: happy, neutral, sad, anxious, angry.")
	options.AddOnArg(cmd, oo)
	options.AddTextArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
