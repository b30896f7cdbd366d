package view

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

func testEntry(m mood.Mood, situation string, recorded time.Time) *entry.Entry {
	e := entry.New(entry.Draft{Mood: m, Situation: situation}, recorded)
	e.Recorded = entry.Timestamp{Time: recorded}
	return e
}

func TestMoodOnDayTieBreak(t *testing.T) {
	day := time.Date(2026, time.August, 12, 9, 0, 0, 0, time.Local)

	older := testEntry(mood.Sad, "rough morning", day)
	newer := testEntry(mood.Happy, "turned around", day.Add(2*time.Hour))

	// Store order is most-recently-created first: the entry created second
	// sits at the front and wins the cell.
	entries := []*entry.Entry{newer, older}

	got, ok := MoodOnDay(entries, 2026, time.August, 12)
	if !ok {
		t.Fatal("expected a mood for the day")
	}
	if got != mood.Happy {
		t.Fatalf("tie-break returned %v, want the first match in store order (happy)", got)
	}
}

func TestMoodOnDayIgnoresTimeOfDay(t *testing.T) {
	late := testEntry(mood.Anxious, "late night", time.Date(2026, time.March, 1, 23, 59, 0, 0, time.Local))
	entries := []*entry.Entry{late}

	if _, ok := MoodOnDay(entries, 2026, time.March, 2); ok {
		t.Fatal("next day should be empty")
	}
	got, ok := MoodOnDay(entries, 2026, time.March, 1)
	if !ok || got != mood.Anxious {
		t.Fatalf("got %v/%v, want anxious/true", got, ok)
	}
}

func TestMoodOnDayEmpty(t *testing.T) {
	if _, ok := MoodOnDay(nil, 2026, time.January, 1); ok {
		t.Fatal("empty collection has no mood for any day")
	}
}

func TestFilterScenarios(t *testing.T) {
	now := time.Now()
	bus := testEntry(mood.Sad, "Missed the bus", now)
	bus.Thoughts = "I'm always late"
	walk := testEntry(mood.Happy, "Nice walk home", now)
	argument := testEntry(mood.Sad, "Argument at work", now)
	entries := []*entry.Entry{bus, walk, argument}

	got := Filter(entries, "bus", mood.Any)
	if len(got) != 1 || got[0].ID != bus.ID {
		t.Fatalf("query 'bus': got %d entries", len(got))
	}

	got = Filter(entries, "", mood.Sad)
	if len(got) != 2 {
		t.Fatalf("mood filter sad: got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Mood != mood.Sad {
			t.Fatalf("mood filter leaked %v", e.Mood)
		}
	}

	if got := Filter(entries, "zebra", mood.Any); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilterCaseInsensitiveContainment(t *testing.T) {
	now := time.Now()
	e := testEntry(mood.Neutral, "Grocery Shopping", now)
	e.Behavior = "Stayed CALM in the queue"
	entries := []*entry.Entry{e}

	for _, q := range []string{"grocery", "GROCERY", "calm", "Queue"} {
		got := Filter(entries, q, mood.Any)
		if len(got) != 1 {
			t.Fatalf("query %q should match", q)
		}
		// Containment property: some field contains the query, folded.
		if !matchesText(got[0], strings.ToLower(q)) {
			t.Fatalf("query %q returned a non-matching entry", q)
		}
	}
}

func TestFilterSkipsAbsentOptionalFields(t *testing.T) {
	e := testEntry(mood.Happy, "only situation", time.Now())
	got := Filter([]*entry.Entry{e}, "missing", mood.Any)
	if len(got) != 0 {
		t.Fatal("empty optional fields must never match")
	}
}

func TestDistributionTotalsAndZeroCategories(t *testing.T) {
	now := time.Now()
	entries := []*entry.Entry{
		testEntry(mood.Sad, "a", now),
		testEntry(mood.Sad, "b", now),
		testEntry(mood.Happy, "c", now),
	}

	dist := Distribution(entries)
	if len(dist) != 5 {
		t.Fatalf("distribution has %d categories, want all 5", len(dist))
	}

	total := 0
	for i, mc := range dist {
		if mc.Mood != mood.All()[i] {
			t.Fatalf("category %d out of order: %v", i, mc.Mood)
		}
		total += mc.Count
	}
	if total != len(entries) {
		t.Fatalf("counts sum to %d, want %d", total, len(entries))
	}

	if dist[0].Count != 1 || dist[2].Count != 2 {
		t.Fatalf("unexpected counts %+v", dist)
	}
	// Zero-count categories still present.
	if dist[1].Count != 0 || dist[3].Count != 0 || dist[4].Count != 0 {
		t.Fatalf("expected zero counts preserved, got %+v", dist)
	}
}

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(nil)
	if len(dist) != 5 {
		t.Fatalf("empty collection still renders 5 categories, got %d", len(dist))
	}
	for _, mc := range dist {
		if mc.Count != 0 {
			t.Fatalf("expected zeros, got %+v", dist)
		}
	}
}
