package add

import (
	"context"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

type Add struct {
	Mood      mood.Mood
	Situation string
	Thoughts  string
	Emotion   string
	Behavior  string

	// When selects the logical date; CustomDate applies in Custom mode.
	When       entry.DateMode
	CustomDate time.Time

	Journal *journal.Journal
}

func (n *Add) Do(ctx context.Context) error {
	e, err := n.Journal.Create(ctx, entry.Draft{
		Mood:       n.Mood,
		Situation:  n.Situation,
		Thoughts:   n.Thoughts,
		Emotion:    n.Emotion,
		Behavior:   n.Behavior,
		When:       n.When,
		CustomDate: n.CustomDate,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Detail(e)
	return nil
}
