package stats

import (
	"context"
	"fmt"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/view"
)

type Stats struct {
	Journal *journal.Journal
}

func (n *Stats) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	all := n.Journal.List()

	fmt.Println("")
	pp.TitleWithCount("mood distribution", len(all))
	pp.Distribution(view.Distribution(all))
	return nil
}
