// Package confirm guards destructive operations behind a user prompt.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers whether a destructive operation may proceed.
type Confirmer interface {
	ConfirmDestructive(message string) bool
}

// Terminal prompts y/N on the given reader/writer pair. Anything other than
// an explicit yes declines.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) ConfirmDestructive(message string) bool {
	fmt.Fprintf(t.Out, "%s [y/N]: ", message)
	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// Always skips the prompt, for --yes flags and tests.
type Always struct{}

func (Always) ConfirmDestructive(string) bool { return true }

// Never declines everything.
type Never struct{}

func (Never) ConfirmDestructive(string) bool { return false }
