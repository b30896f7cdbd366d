package del

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/confirm"
	"tableflip.dev/moodlog/pkg/journal"
)

type Delete struct {
	ID string

	Confirm confirm.Confirmer
	Journal *journal.Journal
}

func (n *Delete) Do(ctx context.Context) error {
	msg := fmt.Sprintf("Delete entry %s? This cannot be undone.", n.ID)
	if !n.Confirm.ConfirmDestructive(msg) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("aborted")
		return nil
	}

	before := n.Journal.Len()
	if err := n.Journal.Delete(ctx, n.ID); err != nil {
		return err
	}

	if n.Journal.Len() == before {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no entry with id %s\n", n.ID)
		return nil
	}
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
