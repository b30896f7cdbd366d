package entry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/moodlog/pkg/mood"
)

// CurrentSchema names the snapshot namespace entries are persisted under.
// Incompatible revisions get a new schema and a fresh namespace; there is no
// migration between them.
const CurrentSchema = "v1"

// Entry is one journaled moment. Entries are immutable once created;
// correction is delete and recreate.
type Entry struct {
	ID        string    `json:"id"`
	Schema    string    `json:"schema,omitempty"`
	Recorded  Timestamp `json:"recorded"`
	Created   Timestamp `json:"created"`
	Mood      mood.Mood `json:"mood"`
	Situation string    `json:"situation"`
	Thoughts  string    `json:"thoughts,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Behavior  string    `json:"behavior,omitempty"`
}

// DateMode selects how a draft's logical date is resolved.
type DateMode int

const (
	Today DateMode = iota
	Yesterday
	Custom
)

// Draft carries everything a user submits before an Entry exists. ID and
// Recorded are assigned at creation time.
type Draft struct {
	Mood       mood.Mood
	Situation  string
	Thoughts   string
	Emotion    string
	Behavior   string
	When       DateMode
	CustomDate time.Time
}

// Valid reports whether the draft can become an entry. Situation is the only
// required field.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Situation) != ""
}

// New materializes a draft into an Entry at the instant now. The logical
// date follows the draft's date mode: Yesterday keeps the time-of-day one
// calendar day back, Custom pins the chosen day at midday so the date
// survives timezone boundaries.
func New(d Draft, now time.Time) *Entry {
	recorded := now
	switch d.When {
	case Yesterday:
		recorded = now.AddDate(0, 0, -1)
	case Custom:
		c := d.CustomDate
		recorded = time.Date(c.Year(), c.Month(), c.Day(), 12, 0, 0, 0, time.Local)
	}

	return &Entry{
		ID:        uuid.NewString(),
		Schema:    CurrentSchema,
		Recorded:  Timestamp{Time: recorded},
		Created:   Timestamp{Time: now},
		Mood:      d.Mood,
		Situation: d.Situation,
		Thoughts:  d.Thoughts,
		Emotion:   d.Emotion,
		Behavior:  d.Behavior,
	}
}

// TextFields returns the free-text fields in a fixed order for searching.
// Absent optional fields are empty strings.
func (e *Entry) TextFields() []string {
	return []string{e.Situation, e.Thoughts, e.Emotion, e.Behavior}
}
