package view

import (
	"strings"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

// Filter returns the entries matching both predicates, preserving input
// order. moodFilter mood.Any admits every mood. A non-empty query matches an
// entry when its lowercase-folded form is a substring of at least one text
// field; matching is plain containment, not tokenized or fuzzy.
func Filter(entries []*entry.Entry, query string, moodFilter mood.Mood) []*entry.Entry {
	query = strings.ToLower(query)

	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if moodFilter != mood.Any && e.Mood != moodFilter {
			continue
		}
		if query != "" && !matchesText(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesText(e *entry.Entry, loweredQuery string) bool {
	for _, field := range e.TextFields() {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
