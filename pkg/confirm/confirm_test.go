package confirm

import (
	"strings"
	"testing"
)

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tc := range tests {
		var out strings.Builder
		c := &Terminal{In: strings.NewReader(tc.input), Out: &out}
		if got := c.ConfirmDestructive("delete entry?"); got != tc.want {
			t.Errorf("input %q: got %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "delete entry?") {
			t.Errorf("prompt missing message: %q", out.String())
		}
	}
}

func TestTerminalConfirmEOF(t *testing.T) {
	var out strings.Builder
	c := &Terminal{In: strings.NewReader(""), Out: &out}
	if c.ConfirmDestructive("delete?") {
		t.Fatal("EOF must decline")
	}
}
