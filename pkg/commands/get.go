package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "List entries, optionally filtered by text and mood",
		Example: `
moodlog list
moodlog list --query bus
moodlog list --mood sad
moodlog list -q work -m anxious --show-ids
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

			s := get.Get{
				ShowID:  io.ShowID,
				Query:   fo.Query,
				Mood:    m,
				Journal: j,
			}
			return s.Do(ctx)
		},
	}

	options.AddMoodArg(cmd, mo, `Only show this mood; "all" or unset shows every mood.`)
	options.AddQueryArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
