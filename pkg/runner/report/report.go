package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/timeutil"
	"tableflip.dev/moodlog/pkg/view"
)

type Report struct {
	Query string
	Mood  mood.Mood

	// Last restricts the report to a trailing window like "2w"; empty means
	// everything.
	Last string

	// Out is a path to write a CSV document to; empty renders a table on
	// stdout instead.
	Out string

	Journal *journal.Journal
}

func (n *Report) Do(ctx context.Context) error {
	window, label, err := timeutil.ParseWindow(n.Last)
	if err != nil {
		return err
	}

	entries := view.Filter(n.Journal.List(), n.Query, n.Mood)
	if window > 0 {
		since := time.Now().Add(-window)
		kept := entries[:0]
		for _, e := range entries {
			if e.Recorded.After(since) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	rows := report.Rows(entries)
	title := "Mood report"
	if label != "" {
		title = fmt.Sprintf("%s · last %s", title, label)
	}

	if n.Out != "" {
		f, err := os.Create(n.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		r := &report.CSVRenderer{Out: f}
		if err := r.Render(title, rows); err != nil {
			return err
		}
		fmt.Printf("wrote %d rows to %s\n", len(rows), n.Out)
		return nil
	}

	fmt.Println("")
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)

	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no matching entries\n\n")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	hdr := make([]interface{}, 0, len(report.Header()))
	for _, h := range report.Header() {
		hdr = append(hdr, h)
	}
	tbl.AddRow(hdr...)
	for _, row := range rows {
		cells := make([]interface{}, 0, 6)
		for _, c := range row.Strings() {
			cells = append(cells, c)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
