package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/confirm"
	"tableflip.dev/moodlog/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete an entry (entries are never edited, only recreated)",
		Example: `
moodlog list --show-ids
moodlog delete 171dff69-f8b9-9dca-b2c1-4f6e8a90d3aa
moodlog delete 171dff69-f8b9-9dca-b2c1-4f6e8a90d3aa --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx := context.Background()
			j, _, err := loadJournal(ctx)
			if err != nil {
				return err
			}

			var c confirm.Confirmer = &confirm.Terminal{In: os.Stdin, Out: os.Stdout}
			if yes {
				c = confirm.Always{}
			}

			s := del.Delete{
				ID:      args[0],
				Confirm: c,
				Journal: j,
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
