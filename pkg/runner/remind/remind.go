package remind

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tableflip.dev/moodlog/pkg/notify"
)

type Remind struct {
	// At is the daily reminder time, "HH:MM".
	At   string
	Once bool

	Notifier notify.Notifier
}

func (n *Remind) Do(ctx context.Context) error {
	hour, minute, err := parseClock(n.At)
	if err != nil {
		return err
	}

	notifier := n.Notifier
	if notifier == nil {
		notifier = &notify.Terminal{Out: os.Stdout}
	}

	fmt.Printf("reminding daily at %02d:%02d, ctrl-c to stop\n", hour, minute)

	r := &notify.Reminder{
		Notifier: notifier,
		Hour:     hour,
		Minute:   minute,
		Title:    "Mood journal",
		Body:     "Take a minute to record how today felt.",
		Once:     n.Once,
	}
	return r.Run(ctx)
}

func parseClock(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
