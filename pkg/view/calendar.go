// Package view derives the read views from a journal snapshot. Everything
// here is a pure function over the slice it is handed; views hold no state
// and are recomputed on every render.
package view

import (
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// MoodOnDay resolves the one-mood-per-day display convention for a calendar
// cell: the first entry in store order whose logical date falls on the given
// local calendar day wins. Store order is most-recently-created first, so
// the tie-break is "most recently created entry of that day", not the latest
// by logical time. The second return is false when the day is empty.
func MoodOnDay(entries []*entry.Entry, year int, month time.Month, day int) (mood.Mood, bool) {
	for _, e := range entries {
		if e.Recorded.OnDate(year, month, day) {
			return e.Mood, true
		}
	}
	return mood.Any, false
}
