package options

import (
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

func TestGetOn(t *testing.T) {
	for _, in := range []string{"", "today"} {
		o := &OnOptions{OnString: in}
		mode, _, err := o.GetOn()
		if err != nil || mode != entry.Today {
			t.Fatalf("%q: got %v/%v, want Today", in, mode, err)
		}
	}

	o := &OnOptions{OnString: "yesterday"}
	mode, _, err := o.GetOn()
	if err != nil || mode != entry.Yesterday {
		t.Fatalf("yesterday: got %v/%v", mode, err)
	}

	o = &OnOptions{OnString: "2026-02-28"}
	mode, when, err := o.GetOn()
	if err != nil || mode != entry.Custom {
		t.Fatalf("custom: got %v/%v", mode, err)
	}
	want := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.Local)
	if !when.Equal(want) {
		t.Fatalf("custom date %v, want %v", when, want)
	}

	o = &OnOptions{OnString: "last tuesday"}
	if _, _, err := o.GetOn(); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
