// Package report maps journal entries to fixed-column rows for export. The
// transform is pure; rendering to a document is a separate collaborator.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"tableflip.dev/moodlog/pkg/entry"
)

// Placeholder stands in for an optional field the user left empty.
const Placeholder = "—"

const layoutUS = "January 2, 2006"

// Row is one exported line. Column order is fixed.
type Row struct {
	Date      string
	Mood      string
	Situation string
	Emotion   string
	Thoughts  string
	Behavior  string
}

// Header returns the column titles in row order.
func Header() []string {
	return []string{"Date", "Mood", "Situation", "Emotion", "Thoughts", "Behavior"}
}

func (r Row) Strings() []string {
	return []string{r.Date, r.Mood, r.Situation, r.Emotion, r.Thoughts, r.Behavior}
}

// Rows transforms the given entries, typically the currently filtered view,
// preserving input order.
func Rows(entries []*entry.Entry) []Row {
	out := make([]Row, 0, len(entries))
	for _, e := range entries {
		out = append(out, Row{
			Date:      e.Recorded.Local().Format(layoutUS),
			Mood:      e.Mood.Label(),
			Situation: e.Situation,
			Emotion:   orPlaceholder(e.Emotion),
			Thoughts:  e.Thoughts,
			Behavior:  orPlaceholder(e.Behavior),
		})
	}
	return out
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// Renderer turns formatted rows plus a title into a document.
type Renderer interface {
	Render(title string, rows []Row) error
}

// CSVRenderer writes the report as CSV, title first as a comment line.
type CSVRenderer struct {
	Out io.Writer
}

func (r *CSVRenderer) Render(title string, rows []Row) error {
	if title != "" {
		if _, err := fmt.Fprintf(r.Out, "# %s\n", title); err != nil {
			return err
		}
	}

	w := csv.NewWriter(r.Out)
	if err := w.Write(Header()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.Strings()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
