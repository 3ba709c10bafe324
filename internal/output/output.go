// Package output provides the line-oriented writers that services report
// results through.
package output

import (
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// DefaultPrefix is prepended to every line printed on the console.
const DefaultPrefix = "[ppm] "

// Writer receives user-facing result text one line at a time.
type Writer interface {
	WriteLine(msg string) error
}

// Console prints lines to a terminal stream.
type Console struct {
	w      io.Writer
	prefix string
}

// NewConsole returns a Console that writes to w. Each line is preceded by
// prefix, which is coloured unless pterm styling has been disabled.
func NewConsole(w io.Writer, prefix string) *Console {
	return &Console{w: w, prefix: prefix}
}

func (c *Console) WriteLine(msg string) error {
	prefix := c.prefix
	if prefix != "" {
		prefix = pterm.LightCyan(prefix)
	}

	_, err := io.WriteString(c.w, prefix+msg+"\n")

	return err
}

// Memory records lines for inspection in tests.
type Memory struct {
	lines []string
	mu    sync.Mutex
}

func (m *Memory) WriteLine(msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = append(m.lines, msg)

	return nil
}

// Lines returns a copy of everything written so far.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.lines))
	copy(out, m.lines)

	return out
}

// Reset discards the recorded lines.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lines = nil
}
