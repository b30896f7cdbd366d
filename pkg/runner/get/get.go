package get

import (
	"context"
	"fmt"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/view"
)

type Get struct {
	ShowID bool
	Query  string
	Mood   mood.Mood

	Journal *journal.Journal
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	filtered := view.Filter(n.Journal.List(), n.Query, n.Mood)

	title := "mood journal"
	if n.Mood != mood.Any {
		title = title + " · " + n.Mood.Label()
	}
	if n.Query != "" {
		title = fmt.Sprintf("%s · %q", title, n.Query)
	}

	pp.TitleWithCount(title, len(filtered))
	pp.Entries(filtered...)
	return nil
}
