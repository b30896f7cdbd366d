package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/view"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar renders the month containing on as a heat-map: each day number
// takes the color of the mood occupying that day, one mood per cell.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...*entry.Entry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, entries...)
}

func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...*entry.Entry) {
	d := StartDay(then)
	days := DaysIn(then)
	now := time.Now()

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)

	for i := 0; i < days; i++ {
		day := i + 1
		cell := fmt.Sprintf("%2d ", day)

		if m, ok := view.MoodOnDay(entries, then.Year(), then.Month(), day); ok {
			attrs := append([]color.Attribute{}, m.Tone().Attrs...)
			if sameDay(now, then, day) {
				attrs = append(attrs, color.Bold, color.Underline)
			}
			color.New(attrs...).Print(cell)
		} else if sameDay(now, then, day) {
			color.New(color.Bold, color.Underline).Print(cell)
		} else {
			empty.Print(cell)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func sameDay(now, then time.Time, day int) bool {
	return now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == day
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()-1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
