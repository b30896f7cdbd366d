package mood

import (
	"encoding/json"
	"testing"
)

func TestToneTableCoversAllMoods(t *testing.T) {
	seen := make(map[string]Mood)
	for _, m := range All() {
		tone := m.Tone()
		if tone.Key == "" {
			t.Fatalf("mood %d has no key", m)
		}
		if tone.Label == "" {
			t.Fatalf("mood %q has no label", tone.Key)
		}
		if len(tone.Attrs) == 0 {
			t.Fatalf("mood %q has no color attributes", tone.Key)
		}
		if prev, dup := seen[tone.Key]; dup {
			t.Fatalf("key %q shared by %d and %d", tone.Key, prev, m)
		}
		seen[tone.Key] = m
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 moods, got %d", len(seen))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mood
		wantErr bool
	}{
		{in: "happy", want: Happy},
		{in: "SAD", want: Sad},
		{in: " anxious ", want: Anxious},
		{in: "mad", want: Angry},
		{in: "all", want: Any},
		{in: "", want: Any},
		{in: "ecstatic", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, m := range All() {
		b, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal %v: %v", m, err)
		}
		var back Mood
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back != m {
			t.Fatalf("round trip %v -> %s -> %v", m, b, back)
		}
	}

	var m Mood
	if err := json.Unmarshal([]byte(`"all"`), &m); err == nil {
		t.Fatal("expected error unmarshaling the filter sentinel")
	}
}
