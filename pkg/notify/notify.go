// Package notify delivers scheduled reminders. It is fully decoupled from
// the entry model; nothing here fires on entry mutations.
package notify

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Notifier displays a (title, body) notification.
type Notifier interface {
	Notify(title, body string) error
}

// Terminal prints a highlighted banner to the given writer.
type Terminal struct {
	Out io.Writer
}

func (t *Terminal) Notify(title, body string) error {
	b := color.New(color.Bold, color.FgHiYellow)
	if _, err := b.Fprintf(t.Out, "\n🔔 %s\n", title); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.Out, "   %s\n\n", body)
	return err
}

// NextAt returns the next local occurrence of hour:minute strictly after
// now. If the time today has already passed, it lands tomorrow.
func NextAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Reminder fires the notifier at the same wall-clock time every day.
type Reminder struct {
	Notifier Notifier
	Hour     int
	Minute   int
	Title    string
	Body     string

	// Once stops after the first notification; used by tests and --once.
	Once bool

	// now/sleep are swappable for tests.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run blocks, delivering reminders until ctx is cancelled.
func (r *Reminder) Run(ctx context.Context) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for {
		next := NextAt(now(), r.Hour, r.Minute)
		if err := sleep(ctx, next.Sub(now())); err != nil {
			return err
		}
		if err := r.Notifier.Notify(r.Title, r.Body); err != nil {
			return err
		}
		if r.Once {
			return nil
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
