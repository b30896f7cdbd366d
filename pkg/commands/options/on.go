package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/entry"
)

const layoutISO = "2006-01-02"

// OnOptions selects the logical date for a new entry.
type OnOptions struct {
	OnString string
}

func AddOnArg(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Logical date: "today", "yesterday", or a date like --on="2026-02-28".`)
}

// GetOn resolves the flag into a date mode plus the custom date when one was
// given.
func (o *OnOptions) GetOn() (entry.DateMode, time.Time, error) {
	switch o.OnString {
	case "", "today":
		return entry.Today, time.Time{}, nil
	case "yesterday":
		return entry.Yesterday, time.Time{}, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		return entry.Today, time.Time{}, fmt.Errorf("invalid --on value %q: %w", o.OnString, err)
	}
	return entry.Custom, t, nil
}
