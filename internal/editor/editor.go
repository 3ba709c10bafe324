// Package editor collects free text from the user through an external text
// editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/ppm/internal/apperr"
)

const defaultEditor = "vim"

var errEditorFailed = &apperr.Error{
	Message: "editor %q failed",
}

// Editor opens initial in an editor and returns the trimmed result. ok is
// false when the user saved an empty document.
type Editor interface {
	Open(initial string) (content string, ok bool, err error)
}

// System launches the user's editor on a temporary file.
type System struct {
	// Command overrides $VISUAL and $EDITOR. It may contain arguments,
	// e.g. "code --wait".
	Command string
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func (s System) command() string {
	return firstNonEmptyString(
		s.Command,
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}

func (s System) Open(initial string) (string, bool, error) {
	f, err := os.CreateTemp("", "ppm_note_*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}

	path := f.Name()
	defer os.Remove(path)

	if _, err = f.WriteString(initial); err != nil {
		f.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}

	if err = f.Close(); err != nil {
		return "", false, err
	}

	if err = s.Edit(path); err != nil {
		return "", false, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading temp file: %w", err)
	}

	content := strings.TrimSpace(string(b))

	return content, content != "", nil
}

// Edit opens the file at path in the editor and waits for it to exit.
func (s System) Edit(path string) error {
	editorCmd := s.command()

	args, err := shellquote.Split(editorCmd)
	if err != nil {
		return errEditorFailed.Fmt(editorCmd).Wrap(err)
	}

	if len(args) == 0 {
		return errEditorFailed.Fmt(editorCmd).Wrap(errors.New("empty command"))
	}

	args = append(args, path)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err = cmd.Run(); err != nil {
		return errEditorFailed.Fmt(editorCmd).Wrap(err)
	}

	return nil
}

// Memory is an Editor that returns canned responses in order and records
// the text it was opened with.
type Memory struct {
	Responses []string
	Opened    []string
	mu        sync.Mutex
}

func (m *Memory) Open(initial string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Opened = append(m.Opened, initial)

	if len(m.Responses) == 0 {
		return "", false, nil
	}

	content := strings.TrimSpace(m.Responses[0])
	m.Responses = m.Responses[1:]

	return content, content != "", nil
}
