package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))
)

const layoutUS = "January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders the list view. An empty slice is an explicit state, never
// a blank screen.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" no matching entries\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	for _, e := range entries {
		cell := e.Mood.Sprint(e.Mood.Tone().Cell + " " + e.Mood.Label())
		date := d.Sprint(e.Recorded.Local().Format(layoutUS))
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), cell, date, e.Situation)
		} else {
			tbl.AddRow(cell, date, e.Situation)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Detail renders one entry with all text fields.
func (pp *PrettyPrint) Detail(e *entry.Entry) {
	if e == nil {
		return
	}
	f := color.New(color.Faint)

	fmt.Printf("%s  %s\n", e.Mood.Sprint(e.Mood.Tone().Cell+" "+e.Mood.Label()), e.Recorded.Local().Format(layoutUS))
	if pp.ShowID {
		_, _ = f.Printf("id: %s\n", e.ID)
	}
	fmt.Printf("situation: %s\n", e.Situation)
	for _, field := range []struct{ label, value string }{
		{"thoughts", e.Thoughts},
		{"emotion", e.Emotion},
		{"behavior", e.Behavior},
	} {
		if field.value == "" {
			continue
		}
		fmt.Printf("%s: %s\n", field.label, field.value)
	}
	fmt.Println("")
}

// Distribution renders the mood frequency chart; every category shows, zero
// counts included.
func (pp *PrettyPrint) Distribution(dist []view.MoodCount) {
	f := color.New(color.Faint)

	width := 0
	for _, mc := range dist {
		if l := len(mc.Mood.Label()); l > width {
			width = l
		}
	}

	for _, mc := range dist {
		label := fmt.Sprintf("%-*s", width, mc.Mood.Label())
		bar := strings.Repeat("█", mc.Count)
		if mc.Count == 0 {
			_, _ = f.Printf("%s  0\n", label)
			continue
		}
		fmt.Printf("%s  %s %d\n", label, mc.Mood.Sprint(bar), mc.Count)
	}
	fmt.Println("")
}
