package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPermission  = 0o755
	filePermission = 0o600
)

// jsonFile holds a collection as a single JSON array. Every mutation loads
// the whole array, changes it in memory and writes it back. Changes made to
// the file by another process between the load and the save are lost.
type jsonFile[T any] struct {
	fs   afero.Fs
	path string
}

func newJSONFile[T any](fsys afero.Fs, path string) jsonFile[T] {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return jsonFile[T]{fs: fsys, path: path}
}

// load returns an empty collection when the file does not exist yet.
func (j jsonFile[T]) load() ([]T, error) {
	b, err := afero.ReadFile(j.fs, j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}

		return nil, fmt.Errorf("reading %s: %w", j.path, err)
	}

	var items []T

	if len(b) == 0 {
		return []T{}, nil
	}

	if err = json.Unmarshal(b, &items); err != nil {
		return nil, errMalformedStore.Fmt(j.path).Wrap(err)
	}

	slog.Debug("loaded collection", slog.String("path", j.path), slog.Int("count", len(items)))

	return items, nil
}

// save replaces the file through a temporary file in the same directory so
// a failed write never leaves a truncated collection behind.
func (j jsonFile[T]) save(items []T) error {
	dir := filepath.Dir(j.path)

	if err := j.fs.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(j.fs, dir, "."+filepath.Base(j.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(b); err != nil {
		tmp.Close()
		_ = j.fs.Remove(tmpName)

		return fmt.Errorf("writing %s: %w", j.path, err)
	}

	if err = tmp.Close(); err != nil {
		_ = j.fs.Remove(tmpName)
		return err
	}

	if err = j.fs.Chmod(tmpName, filePermission); err != nil {
		_ = j.fs.Remove(tmpName)
		return err
	}

	if err = j.fs.Rename(tmpName, j.path); err != nil {
		_ = j.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", j.path, err)
	}

	slog.Debug("saved collection", slog.String("path", j.path), slog.Int("count", len(items)))

	return nil
}
