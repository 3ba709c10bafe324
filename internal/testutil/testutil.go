// Package testutil holds helpers shared by ppm tests.
package testutil

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"

	"github.com/ayoisaiah/ppm/internal/osutil"
)

// GoldenTest is implemented by test cases that produce a snapshot.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the snapshot of a test case matches the
// named file in testdata. Run tests with -update to rewrite the files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: golden files are written with LF line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	g.Assert(t, golden, snap)
}

// CopyFile copies src on the host filesystem to dst on fsys.
func CopyFile(fsys afero.Fs, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := fsys.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// Date returns a UTC instant for use as a test fixture.
func Date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
