package view

import (
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// MoodCount is one row of the distribution view.
type MoodCount struct {
	Mood  mood.Mood
	Count int
}

// Distribution counts entries per mood in fixed enumeration order. Every
// mood appears in the result, zero counts included, so the chart always
// renders all five categories. The counts sum to len(entries).
func Distribution(entries []*entry.Entry) []MoodCount {
	counts := make(map[mood.Mood]int, 5)
	for _, e := range entries {
		counts[e.Mood]++
	}

	out := make([]MoodCount, 0, 5)
	for _, m := range mood.All() {
		out = append(out, MoodCount{Mood: m, Count: counts[m]})
	}
	return out
}
