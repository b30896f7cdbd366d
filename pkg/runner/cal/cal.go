package cal

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/store"
)

type Cal struct {
	// On is any instant inside the month to display.
	On time.Time

	// Follow keeps the calendar on screen, re-rendering when another
	// process writes the journal. Requires the local backend.
	Follow bool

	Journal     *journal.Journal
	Persistence store.Persistence
}

func (n *Cal) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}

	fmt.Println("")
	pp.Calendar(n.On, n.Journal.List()...)

	if !n.Follow {
		return nil
	}

	events, err := store.Watch(ctx, n.Persistence)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := n.Journal.LoadAll(ctx); err != nil {
				return err
			}
			pp.Calendar(n.On, n.Journal.List()...)
		}
	}
}
