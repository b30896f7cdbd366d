// Package mood defines the closed set of mood categories and their display
// tones. Adding or removing a mood is a change to the table in this file and
// nothing else.
package mood

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Mood int

const (
	Happy Mood = iota
	Neutral
	Sad
	Anxious
	Angry

	// Any is a filter sentinel, never stored on an entry.
	Any
)

// Tone describes how a mood appears everywhere it is rendered: the stable
// storage key, the human label, the calendar cell glyph, and the terminal
// color attributes.
type Tone struct {
	Key     string
	Label   string
	Cell    string
	Attrs   []color.Attribute
	Aliases []string
}

func defaultTones() []Tone {
	t := make([]Tone, 0, 6)

	t = append(t, Tone{
		Key:     "happy",
		Label:   "Happy",
		Cell:    "●",
		Attrs:   []color.Attribute{color.FgGreen},
		Aliases: []string{"h", "glad"},
	}, Tone{
		Key:     "neutral",
		Label:   "Neutral",
		Cell:    "●",
		Attrs:   []color.Attribute{color.FgWhite, color.Faint},
		Aliases: []string{"n", "calm", "ok"},
	}, Tone{
		Key:     "sad",
		Label:   "Sad",
		Cell:    "●",
		Attrs:   []color.Attribute{color.FgBlue},
		Aliases: []string{"s", "down"},
	}, Tone{
		Key:     "anxious",
		Label:   "Anxious",
		Cell:    "●",
		Attrs:   []color.Attribute{color.FgMagenta},
		Aliases: []string{"x", "worried"},
	}, Tone{
		Key:     "angry",
		Label:   "Angry",
		Cell:    "●",
		Attrs:   []color.Attribute{color.FgRed},
		Aliases: []string{"a", "mad"},
	}, Tone{
		Key:     "all",
		Label:   "All",
		Cell:    " ",
		Aliases: []string{"any", ""},
	})

	return t
}

// All returns the five storable moods in fixed enumeration order. Any is
// excluded.
func All() []Mood {
	return []Mood{Happy, Neutral, Sad, Anxious, Angry}
}

func (m Mood) Tone() Tone {
	return defaultTones()[m]
}

func (m Mood) String() string {
	return m.Tone().Key
}

func (m Mood) Label() string {
	return m.Tone().Label
}

// Sprint renders s in the mood's color.
func (m Mood) Sprint(s string) string {
	return color.New(m.Tone().Attrs...).Sprint(s)
}

// Parse resolves a mood key or alias, case-insensitively. "all" and "" map
// to Any for use as a filter.
func Parse(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range append(All(), Any) {
		tone := m.Tone()
		if tone.Key == s {
			return m, nil
		}
		for _, alias := range tone.Aliases {
			if alias == s {
				return m, nil
			}
		}
	}
	return Any, fmt.Errorf("mood: unknown mood %q", s)
}

// MarshalJSON stores the stable key, not the numeric value.
func (m Mood) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.Tone().Key)), nil
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	key := strings.Trim(string(b), `"`)
	parsed, err := Parse(key)
	if err != nil {
		return err
	}
	if parsed == Any {
		return fmt.Errorf("mood: %q is not a storable mood", key)
	}
	*m = parsed
	return nil
}
