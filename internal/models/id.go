package models

import (
	"github.com/google/uuid"
)

const (
	SessionPrefix = "session_"
	NotePrefix    = "note_"
	TaskPrefix    = "task_"
)

// NewID returns a prefixed UUIDv7. The timestamp in the leading bits keeps
// ids created later sorting after earlier ones.
func NewID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}
