// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir         = "ppm"
	configFileName = "config.yml"
	logFileName    = "ppm.log"
	envVar         = "PPM_ENV"
)

// Paths holds the computed absolute locations used by ppm.
type Paths struct {
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths, initErr = compute()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DataDir is the directory that relative storage paths are resolved
// against.
func DataDir() string {
	return Must().dataDir
}

func LogFilePath() string {
	return Must().logFilePath
}

// Env returns the trimmed value of PPM_ENV.
func Env() string {
	return strings.TrimSpace(os.Getenv(envVar))
}

// WithEnv adds the PPM_ENV suffix to a file name so that separate
// environments never share files: "sessions.json" becomes
// "sessions_dev.json" when PPM_ENV=dev.
func WithEnv(fileName string) string {
	env := Env()
	if env == "" {
		return fileName
	}

	ext := filepath.Ext(fileName)

	return fmt.Sprintf("%s_%s%s", StripExtension(fileName), env, ext)
}

func compute() (*Paths, error) {
	p := &Paths{}

	var err error

	relPath := filepath.Join(appDir, WithEnv(configFileName))

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return nil, err
	}

	p.dataDir, err = xdg.DataFile(appDir)
	if err != nil {
		return nil, err
	}

	p.logFilePath = filepath.Join(p.dataDir, "log", WithEnv(logFileName))

	return p, nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
