package store

import (
	"bufio"
	"strings"
	"time"

	"github.com/ayoisaiah/ppm/internal/models"
)

const frontMatterDelim = "---"

const (
	keyID        = "id"
	keyCreatedAt = "created_at"
	keyProject   = "project"
)

// EncodeNote renders a note as Markdown with a front matter header. The
// project line is left out when the note has no project.
func EncodeNote(n *models.Note) string {
	var sb strings.Builder

	sb.WriteString(frontMatterDelim + "\n")
	sb.WriteString(keyID + ": " + n.ID + "\n")
	sb.WriteString(keyCreatedAt + ": " + n.CreatedAt.Format(time.RFC3339Nano) + "\n")

	if n.Project != "" {
		sb.WriteString(keyProject + ": " + n.Project + "\n")
	}

	sb.WriteString(frontMatterDelim + "\n\n")
	sb.WriteString(n.Content)

	return sb.String()
}

// DecodeNote parses the output of EncodeNote. Unknown header keys are
// ignored. The body is returned trimmed.
func DecodeNote(content string) (*models.Note, error) {
	parts := strings.SplitN(content, frontMatterDelim, 3)
	if len(parts) < 3 {
		return nil, errMalformedNote.Fmt("missing front matter")
	}

	var (
		n       models.Note
		created string
	)

	scanner := bufio.NewScanner(strings.NewReader(parts[1]))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}

		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case keyID:
			n.ID = value
		case keyCreatedAt:
			created = value
		case keyProject:
			n.Project = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errMalformedNote.Fmt("unreadable front matter").Wrap(err)
	}

	if n.ID == "" {
		return nil, errMalformedNote.Fmt("missing id")
	}

	if created == "" {
		return nil, errMalformedNote.Fmt("missing created_at")
	}

	createdAt, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, errMalformedNote.Fmt("invalid created_at").Wrap(err)
	}

	n.CreatedAt = createdAt
	n.Content = strings.TrimSpace(parts[2])

	return &n, nil
}

// ExtractBody returns the text after a front matter header, or the whole
// text if there is no header. The result is trimmed.
func ExtractBody(content string) string {
	parts := strings.SplitN(content, frontMatterDelim, 3)
	if len(parts) < 3 {
		return strings.TrimSpace(content)
	}

	return strings.TrimSpace(parts[2])
}
