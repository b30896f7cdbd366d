package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: base.Wrap80("A mood journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addReport(topLevel)
	addDelete(topLevel)
	addRemind(topLevel)
	addVersion(topLevel)
}

// loadJournal builds the session's journal: config, persistence backend,
// then the snapshot restore.
func loadJournal(ctx context.Context) (*journal.Journal, store.Persistence, error) {
	p, err := store.Load(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	j := journal.New(p)
	if err := j.LoadAll(ctx); err != nil {
		return nil, nil, err
	}
	return j, p, nil
}
